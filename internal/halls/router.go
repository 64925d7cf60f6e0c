package halls

import (
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the hall configuration endpoints. Hall setup is
// manager-only; availability lookup is mounted here because it is a
// hall query even though the scheduler answers it.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, availability AvailabilityFinder, jwtSecret string) {
	hallGroup := rg.Group("/halls")
	hallGroup.Use(middleware.JWTAuth(jwtSecret), middleware.RequireRoles(constants.RoleManager))
	{
		hallGroup.GET("", ctrl.ListHalls)
		hallGroup.GET("/available", availability.FindAvailableHalls)
		hallGroup.GET("/:id", ctrl.GetHall)
		hallGroup.POST("", ctrl.CreateHall)
	}
}
