package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	authmw "github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// RegisterRoutes mounts the live-session endpoints under apiBase.
// Collection routes require an admin or instructor role; item routes
// additionally require ownership of the session.
func RegisterRoutes(apiBase *gin.RouterGroup, gates *authmw.Manager, storeSvc store.Service) {
	h := NewHandler(storeSvc)
	owns := gates.RequireOwnership(livesession.Table, livesession.OwnerColumn)

	sessions := apiBase.Group("/live-sessions")
	sessions.Use(gates.Authenticate(), gates.RequireRole(auth.RoleAdmin, auth.RoleInstructor))
	{
		sessions.GET("", h.ListSessions)
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", owns, h.GetSession)
		sessions.PUT("/:id", owns, h.UpdateSession)
		sessions.DELETE("/:id", owns, h.DeleteSession)
	}
}
