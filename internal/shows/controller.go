package shows

import (
	"net/http"
	"strconv"

	"cinebox/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListOnDate handles GET /shows?date=
func (ctrl *Controller) ListOnDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	result, err := ctrl.service.ShowsOnDate(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "shows retrieved", result)
}

// Timings handles GET /shows/timings?date&movie_id&type
func (ctrl *Controller) Timings(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Query("movie_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie_id", nil)
		return
	}
	date := c.Query("date")
	showType := c.Query("type")
	if date == "" || showType == "" {
		response.Error(c, http.StatusBadRequest, "date and type query parameters are required", nil)
		return
	}

	timings, err := ctrl.service.Timings(c.Request.Context(), movieID, date, showType)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "show timings retrieved", timings)
}

// Resolve handles GET /shows/resolve?date&movie_id&type&time
func (ctrl *Controller) Resolve(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Query("movie_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie_id", nil)
		return
	}
	timeHHMM, err := strconv.Atoi(c.Query("time"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid time", nil)
		return
	}
	date := c.Query("date")
	showType := c.Query("type")
	if date == "" || showType == "" {
		response.Error(c, http.StatusBadRequest, "date and type query parameters are required", nil)
		return
	}

	show, err := ctrl.service.Resolve(c.Request.Context(), movieID, date, showType, timeHHMM)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "show resolved", gin.H{"show_id": show.ShowID})
}

// ScheduleShow handles POST /shows
func (ctrl *Controller) ScheduleShow(c *gin.Context) {
	var req ScheduleShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	show, err := ctrl.service.ScheduleShow(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "show scheduled", show)
}

// FindAvailableHalls handles GET /halls/available?movie_id&date&time
func (ctrl *Controller) FindAvailableHalls(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Query("movie_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie_id", nil)
		return
	}
	timeHHMM, err := strconv.Atoi(c.Query("time"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid time", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	slots, err := ctrl.service.AvailableHalls(c.Request.Context(), movieID, date, timeHHMM)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "available halls retrieved", slots)
}
