package handler

import (
	"net/http"
	"strconv"

	"estatehub/internal/model"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /reviews?propertyId=
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context(), c.Query("propertyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ByReviewer handles GET /reviews/:email
func (h *ReviewHandler) ByReviewer(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	reviews, err := h.reviews.ByReviewer(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Latest handles GET /latest-review?limit=
func (h *ReviewHandler) Latest(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = n
		}
	}
	reviews, err := h.reviews.Latest(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var review model.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if review.PropertyID == "" || review.ReviewerEmail == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("propertyId and reviewer_email are required", ""))
		return
	}
	created, err := h.reviews.Create(c.Request.Context(), &review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Review deleted", nil))
}
