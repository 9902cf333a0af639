package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property verification states. Admins move a listing out of pending;
// "reject" (not "rejected") matches what the web client filters on.
const (
	PropertyStatusPending  = "pending"
	PropertyStatusVerified = "verified"
	PropertyStatusRejected = "reject"
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	AgentName    string             `bson:"agent_name,omitempty" json:"agent_name,omitempty"`
	AgentEmail   string             `bson:"agent_email" json:"agent_email"`
	AgentImage   string             `bson:"agent_image,omitempty" json:"agent_image,omitempty"`
	MinPrice     Price              `bson:"minPrice" json:"minPrice"`
	MaxPrice     Price              `bson:"maxPrice" json:"maxPrice"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	IsAdvertised bool               `bson:"isAdvertised" json:"isAdvertised"`
	AdvertisedAt time.Time          `bson:"advertisedAt,omitempty" json:"advertisedAt,omitempty"`
}
