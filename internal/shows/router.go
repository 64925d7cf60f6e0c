package shows

import (
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the show schedule endpoints. Seat maps and
// booked-ticket listings live under /shows but are answered by the
// seating and booking slices, so their handlers are injected.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, seatMap, bookedTickets gin.HandlerFunc, jwtSecret string) {
	showGroup := rg.Group("/shows")
	showGroup.Use(middleware.JWTAuth(jwtSecret))
	{
		anyStaff := middleware.RequireRoles(constants.RoleCashier, constants.RoleManager)
		managerOnly := middleware.RequireRoles(constants.RoleManager)

		showGroup.GET("/timings", anyStaff, ctrl.Timings)
		showGroup.GET("/resolve", anyStaff, ctrl.Resolve)
		showGroup.GET("/:id/seats", anyStaff, seatMap)

		showGroup.GET("", managerOnly, ctrl.ListOnDate)
		showGroup.GET("/:id/tickets", managerOnly, bookedTickets)
		showGroup.POST("", managerOnly, ctrl.ScheduleShow)
	}
}
