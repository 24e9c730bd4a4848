// Package router exposes the user-domain HTTP surface: admin-gated profile
// listings and instructor provisioning.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	"github.com/RumanAkhtar/lms-app-backend/engine/user/uc"
)

// Handler handles user-related HTTP requests. It carries no authorization
// logic itself; gating happens in the middleware chain.
type Handler struct {
	identity identity.Service
	store    store.Service
}

// NewHandler creates a new user handler.
func NewHandler(identitySvc identity.Service, storeSvc store.Service) *Handler {
	return &Handler{identity: identitySvc, store: storeSvc}
}

// ListUsers returns all profiles, optionally filtered by ?role=.
func (h *Handler) ListUsers(c *gin.Context) {
	rows, err := uc.NewListUsers(h.store, c.Query("role")).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, rows)
}

// ListInstructors returns instructor profiles only.
func (h *Handler) ListInstructors(c *gin.Context) {
	rows, err := uc.NewListInstructors(h.store).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondOK(c, rows)
}

// CreateInstructor runs the provisioning workflow.
func (h *Handler) CreateInstructor(c *gin.Context) {
	var input uc.CreateInstructorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		router.RespondError(c, core.WrapError(core.KindValidation, "invalid request body", err))
		return
	}
	out, err := uc.NewCreateInstructor(h.identity, h.store, &input).Execute(c.Request.Context())
	if err != nil {
		router.RespondError(c, err)
		return
	}
	router.RespondCreated(c, out)
}
