package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer lifecycle: pending -> accepted -> bought, or pending -> rejected.
// Bought and rejected are terminal.
const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
	OfferStatusBought   = "bought"
)

type Offer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	AgentName     string             `bson:"agent_name,omitempty" json:"agent_name,omitempty"`
	AgentEmail    string             `bson:"agent_email" json:"agent_email"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName     string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	OfferAmount   Price              `bson:"offerAmount" json:"offerAmount"`
	BuyingDate    string             `bson:"buyingDate,omitempty" json:"buyingDate,omitempty"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transaction_Id,omitempty" json:"transaction_Id,omitempty"`
	DecisionAt    time.Time          `bson:"decisionAt,omitempty" json:"decisionAt,omitempty"`
	PaidAt        time.Time          `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}
