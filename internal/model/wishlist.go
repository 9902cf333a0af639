package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry is a denormalized card snapshot of a property saved by a
// buyer. PropertyID is a soft reference held as a hex string.
type WishlistEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	AgentName  string             `bson:"agent_name,omitempty" json:"agent_name,omitempty"`
	AgentEmail string             `bson:"agent_email,omitempty" json:"agent_email,omitempty"`
	MinPrice   Price              `bson:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice   Price              `bson:"maxPrice,omitempty" json:"maxPrice,omitempty"`
	AddedAt    time.Time          `bson:"addedAt,omitempty" json:"addedAt,omitempty"`
}
