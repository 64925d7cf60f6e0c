package bookings

import (
	"net/http"
	"strconv"

	"cinebox/internal/movies"
	"cinebox/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /bookings
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := ctrl.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "booking confirmed", result)
}

// LookupByRef handles GET /bookings/ref/:ref
func (ctrl *Controller) LookupByRef(c *gin.Context) {
	result, err := ctrl.service.LookupByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "booking retrieved", result)
}

// TicketsForShow handles GET /shows/:id/tickets
func (ctrl *Controller) TicketsForShow(c *gin.Context) {
	showID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid show id", nil)
		return
	}

	tickets, err := ctrl.service.TicketsForShow(c.Request.Context(), showID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "tickets retrieved", tickets)
}

// DailyReport handles GET /bookings?date=
func (ctrl *Controller) DailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}
	if err := movies.ValidateDate(date); err != nil {
		response.FromError(c, err)
		return
	}

	report, err := ctrl.service.DailyReport(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "daily bookings retrieved", report)
}
