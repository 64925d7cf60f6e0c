package halls

import (
	"net/http"
	"strconv"

	"cinebox/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// AvailabilityFinder answers which halls are free for a slot. Wired to
// the show scheduler, which owns the conflict check.
type AvailabilityFinder interface {
	FindAvailableHalls(c *gin.Context)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListHalls handles GET /halls
func (ctrl *Controller) ListHalls(c *gin.Context) {
	halls, err := ctrl.service.ListHalls(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "halls retrieved", halls)
}

// GetHall handles GET /halls/:id
func (ctrl *Controller) GetHall(c *gin.Context) {
	hallID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid hall id", nil)
		return
	}

	hall, err := ctrl.service.GetHall(c.Request.Context(), hallID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "hall retrieved", hall)
}

// CreateHall handles POST /halls
func (ctrl *Controller) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	hall, err := ctrl.service.CreateHall(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "hall created", hall)
}
