package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
	authmw "github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// RegisterRoutes registers the user routes. Everything here is admin only.
func RegisterRoutes(apiBase *gin.RouterGroup, gates *authmw.Manager, identitySvc identity.Service, storeSvc store.Service) {
	handler := NewHandler(identitySvc, storeSvc)

	users := apiBase.Group("/users")
	users.Use(gates.Authenticate(), gates.RequireRole(auth.RoleAdmin))
	{
		users.GET("", handler.ListUsers)
	}

	instructors := apiBase.Group("/instructors")
	instructors.Use(gates.Authenticate(), gates.RequireRole(auth.RoleAdmin))
	{
		instructors.GET("", handler.ListInstructors)
		instructors.POST("", handler.CreateInstructor)
	}
}
