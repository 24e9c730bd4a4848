// Package router provides the uniform response envelope shared by every
// handler and gate. All outcomes funnel through here so the wire shape is
// decided in exactly one place.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

// ErrorResponse is the error envelope: the kind label and a human message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondError maps a failure to its envelope and status code and aborts the
// chain. The cause is logged server-side; stack traces never reach the
// caller.
func RespondError(c *gin.Context, err error) {
	kind := core.KindOf(err)
	log := logger.FromContext(c.Request.Context())
	switch kind {
	case core.KindUpstream, core.KindInternal:
		log.Error("request failed", "kind", string(kind), "path", c.FullPath(), "error", err)
	default:
		log.Debug("request denied", "kind", string(kind), "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(kind.Status(), ErrorResponse{
		Error:   string(kind),
		Message: core.MessageOf(err),
	})
}

// Respond emits a success payload with the given status code.
func Respond(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// RespondOK emits a 200 with the payload.
func RespondOK(c *gin.Context, payload any) {
	Respond(c, http.StatusOK, payload)
}

// RespondCreated emits a 201 with the payload.
func RespondCreated(c *gin.Context, payload any) {
	Respond(c, http.StatusCreated, payload)
}
