package model

import "time"

// Request DTOs. Updates go through explicit field sets, never a raw body
// merge, so callers cannot inject role or status through a generic endpoint.

type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserUpdateRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
}

type PropertyUpdateRequest struct {
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	MinPrice    *Price  `json:"minPrice"`
	MaxPrice    *Price  `json:"maxPrice"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// MarkPaidRequest carries the client-side payment confirmation for an offer.
type MarkPaidRequest struct {
	TransactionID string    `json:"transaction_Id" binding:"required"`
	PaidAt        time.Time `json:"paidAt"`
	PropertyID    string    `json:"propertyId"`
	Title         string    `json:"title"`
	AgentName     string    `json:"agent_name"`
	BuyerEmail    string    `json:"buyerEmail"`
	BuyerName     string    `json:"buyerName"`
	OfferAmount   Price     `json:"offerAmount"`
}

type PaymentIntentRequest struct {
	AmountInCents int64  `json:"amountInCents" binding:"required,gt=0"`
	ParcelID      string `json:"parcelId"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
