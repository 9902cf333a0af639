package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a denormalized record of a completed purchase, copied from the
// offer at the moment it is marked bought. Unique per TransactionID.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID string             `bson:"transaction_Id" json:"transaction_Id"`
	OfferID       string             `bson:"offerId" json:"offerId"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	AgentName     string             `bson:"agent_name,omitempty" json:"agent_name,omitempty"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName     string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	OfferAmount   Price              `bson:"offerAmount" json:"offerAmount"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
