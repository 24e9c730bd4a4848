// Package router exposes the course HTTP surface.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course/uc"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// Handler handles course-related HTTP requests.
type Handler struct {
	store store.Service
}

// NewHandler creates a new course handler.
func NewHandler(storeSvc store.Service) *Handler {
	return &Handler{store: storeSvc}
}

// ListCourses returns all courses.
func (h *Handler) ListCourses(c *gin.Context) {
	rows, err := uc.NewListCourses(h.store).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, rows)
}

// GetCourse returns a single course by id.
func (h *Handler) GetCourse(c *gin.Context) {
	row, err := uc.NewGetCourse(h.store, c.Param("id")).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, row)
}

// CreateCourse inserts a new course from a free-form body.
func (h *Handler) CreateCourse(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	row, err := uc.NewCreateCourse(h.store, fields).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondCreated(c, row)
}

// UpdateCourse patches a course by id.
func (h *Handler) UpdateCourse(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	row, err := uc.NewUpdateCourse(h.store, c.Param("id"), fields).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, row)
}

// DeleteCourse removes a course by id.
func (h *Handler) DeleteCourse(c *gin.Context) {
	id := c.Param("id")
	if err := uc.NewDeleteCourse(h.store, id).Execute(c.Request.Context()); err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, gin.H{"id": id})
}

// GetCurriculum returns the nested modules→lessons→files tree.
func (h *Handler) GetCurriculum(c *gin.Context) {
	row, err := uc.NewGetCurriculum(h.store, c.Param("id")).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, row)
}

// bindFields decodes a free-form JSON object body. On failure the error
// response has already been written.
func bindFields(c *gin.Context) (store.Row, bool) {
	var fields store.Row
	if err := c.ShouldBindJSON(&fields); err != nil {
		router.RespondError(c, core.WrapError(core.KindValidation, "invalid request body", err))
		return nil, false
	}
	return fields, true
}
