package pricing

import (
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the pricing endpoints
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	priceGroup := rg.Group("/prices")
	priceGroup.Use(middleware.JWTAuth(jwtSecret))
	{
		priceGroup.POST("/quote", middleware.RequireRoles(constants.RoleCashier, constants.RoleManager), ctrl.QuoteSeats)

		priceGroup.GET("", middleware.RequireRoles(constants.RoleManager), ctrl.ListListings)
		priceGroup.PUT("/:id", middleware.RequireRoles(constants.RoleManager), ctrl.UpdateListing)
	}
}
