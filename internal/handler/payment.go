package handler

import (
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles purchase recording and payment intents
type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// History handles GET /payment-history?email=&propertyId=&offerId=
func (h *PaymentHandler) History(c *gin.Context) {
	filter := repository.PaymentFilter{
		BuyerEmail: c.Query("email"),
		PropertyID: c.Query("propertyId"),
		OfferID:    c.Query("offerId"),
	}
	payments, err := h.payments.History(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// MarkPaid handles PUT /payment/:id/paid, where :id is the offer id.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	var req model.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	payment, err := h.payments.MarkPaid(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Payment recorded and offer marked as bought", payment))
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	secret, err := h.payments.CreateIntent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.PaymentIntentResponse{ClientSecret: secret})
}
