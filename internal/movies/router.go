package movies

import (
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the movie catalogue endpoints
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	movieGroup := rg.Group("/movies")
	movieGroup.Use(middleware.JWTAuth(jwtSecret))
	{
		// Counter lookups, any staff role
		movieGroup.GET("", middleware.RequireRoles(constants.RoleCashier, constants.RoleManager), ctrl.ListOnDate)
		movieGroup.GET("/:id", middleware.RequireRoles(constants.RoleCashier, constants.RoleManager), ctrl.GetMovie)

		// Catalogue management, manager only
		movieGroup.GET("/active", middleware.RequireRoles(constants.RoleManager), ctrl.ListActive)
		movieGroup.POST("", middleware.RequireRoles(constants.RoleManager), ctrl.CreateMovie)
	}
}
