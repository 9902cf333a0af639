package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	PropertyTitle string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	ReviewerEmail string             `bson:"reviewer_email" json:"reviewer_email"`
	ReviewerName  string             `bson:"reviewer_name,omitempty" json:"reviewer_name,omitempty"`
	ReviewerImage string             `bson:"reviewer_image,omitempty" json:"reviewer_image,omitempty"`
	Rating        int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
