package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	authmw "github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// RegisterRoutes registers the course routes. Courses are admin managed;
// publicList optionally opens the listing to unauthenticated callers (a
// per-deployment choice, defaulting to closed).
func RegisterRoutes(apiBase *gin.RouterGroup, gates *authmw.Manager, storeSvc store.Service, publicList bool) {
	handler := NewHandler(storeSvc)

	courses := apiBase.Group("/courses")
	if publicList {
		courses.GET("", handler.ListCourses)
	}
	courses.Use(gates.Authenticate(), gates.RequireRole(auth.RoleAdmin))
	{
		if !publicList {
			courses.GET("", handler.ListCourses)
		}
		courses.GET("/:id", handler.GetCourse)
		courses.POST("", handler.CreateCourse)
		courses.PUT("/:id", handler.UpdateCourse)
		courses.DELETE("/:id", handler.DeleteCourse)
		courses.GET("/:id/curriculum", handler.GetCurriculum)
	}
}
