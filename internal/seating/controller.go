package seating

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

// SeatMap handles GET /shows/:id/seats
func (ctrl *Controller) SeatMap(c *gin.Context) {
	showID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid show id", nil)
		return
	}

	seatMap, err := ctrl.service.SeatMapForShow(c.Request.Context(), showID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "seat map retrieved", seatMap)
}
