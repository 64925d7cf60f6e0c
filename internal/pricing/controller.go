package pricing

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

// ListListings handles GET /prices
func (ctrl *Controller) ListListings(c *gin.Context) {
	listings, err := ctrl.service.ListListings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "price listings retrieved", listings)
}

// UpdateListing handles PUT /prices/:id
func (ctrl *Controller) UpdateListing(c *gin.Context) {
	priceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid price id", nil)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	listing, err := ctrl.service.UpdateListing(c.Request.Context(), priceID, req.Price)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "price listing updated", listing)
}

// QuoteSeats handles POST /prices/quote
func (ctrl *Controller) QuoteSeats(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	quote, err := ctrl.service.QuoteForShow(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "quote calculated", quote)
}
