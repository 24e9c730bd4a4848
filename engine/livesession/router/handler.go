// Package router exposes the live-session HTTP surface.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession/uc"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// Handler handles live-session HTTP requests.
type Handler struct {
	store store.Service
}

// NewHandler creates a new live-session handler.
func NewHandler(storeSvc store.Service) *Handler {
	return &Handler{store: storeSvc}
}

// actor extracts the acting identity and role attached by the gate chain.
// On failure the error response has already been written.
func actor(c *gin.Context) (string, auth.Role, bool) {
	ident, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		router.RespondError(c, core.Unauthenticatedf("authentication required"))
		return "", "", false
	}
	role, ok := auth.RoleFromContext(c.Request.Context())
	if !ok {
		router.RespondError(c, core.Forbiddenf("no role resolved"))
		return "", "", false
	}
	return ident.ID, role, true
}

// ListSessions returns the sessions visible to the caller.
func (h *Handler) ListSessions(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	rows, err := uc.NewListSessions(h.store, actorID, role).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, rows)
}

// GetSession returns a single session by id.
func (h *Handler) GetSession(c *gin.Context) {
	row, err := uc.NewGetSession(h.store, c.Param("id")).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, row)
}

// CreateSession inserts a new session from a free-form body.
func (h *Handler) CreateSession(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var fields store.Row
	if err := c.ShouldBindJSON(&fields); err != nil {
		router.RespondError(c, core.WrapError(core.KindValidation, "invalid request body", err))
		return
	}
	row, err := uc.NewCreateSession(h.store, actorID, role, fields).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondCreated(c, row)
}

// UpdateSession patches a session by id.
func (h *Handler) UpdateSession(c *gin.Context) {
	var fields store.Row
	if err := c.ShouldBindJSON(&fields); err != nil {
		router.RespondError(c, core.WrapError(core.KindValidation, "invalid request body", err))
		return
	}
	row, err := uc.NewUpdateSession(h.store, c.Param("id"), fields).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, row)
}

// DeleteSession removes a session by id.
func (h *Handler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := uc.NewDeleteSession(h.store, id).Execute(c.Request.Context()); err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, gin.H{"id": id})
}
