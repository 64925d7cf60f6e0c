package movies

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

// ListOnDate handles GET /movies?date=
func (ctrl *Controller) ListOnDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	result, err := ctrl.service.MoviesOnDate(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "movies retrieved", result)
}

// ListActive handles GET /movies/active?date=
func (ctrl *Controller) ListActive(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	result, err := ctrl.service.ActiveMovies(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "active movies retrieved", result)
}

// GetMovie handles GET /movies/:id
func (ctrl *Controller) GetMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie id", nil)
		return
	}

	movie, err := ctrl.service.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "movie retrieved", movie)
}

// CreateMovie handles POST /movies
func (ctrl *Controller) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movie, err := ctrl.service.CreateMovie(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "movie created", movie)
}
