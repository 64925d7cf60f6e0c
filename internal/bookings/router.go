package bookings

import (
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the booking endpoints
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	bookingGroup := rg.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuth(jwtSecret))
	{
		anyStaff := middleware.RequireRoles(constants.RoleCashier, constants.RoleManager)

		bookingGroup.POST("", anyStaff, ctrl.CreateBooking)
		bookingGroup.GET("/ref/:ref", anyStaff, ctrl.LookupByRef)

		bookingGroup.GET("", middleware.RequireRoles(constants.RoleManager), ctrl.DailyReport)
	}
}
