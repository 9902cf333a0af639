package handler

import (
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles offer lifecycle HTTP requests
type OfferHandler struct {
	offers *service.OfferService
}

func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// List handles GET /make-offer?agent_email=&buyer_email=
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context(), c.Query("agent_email"), c.Query("buyer_email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Get handles GET /make-offer/:id
func (h *OfferHandler) Get(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Create handles POST /make-offer
func (h *OfferHandler) Create(c *gin.Context) {
	var offer model.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if offer.PropertyID == "" || offer.BuyerEmail == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("propertyId and buyerEmail are required", ""))
		return
	}
	created, err := h.offers.Create(c.Request.Context(), &offer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Accept handles PUT /offers/:id/accept
func (h *OfferHandler) Accept(c *gin.Context) {
	offer, err := h.offers.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Offer accepted and others rejected", offer))
}

// Reject handles PUT /offers/:id/reject
func (h *OfferHandler) Reject(c *gin.Context) {
	if err := h.offers.Reject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Offer rejected", nil))
}

// Delete handles DELETE /make-offer/:id
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Offer deleted", nil))
}
