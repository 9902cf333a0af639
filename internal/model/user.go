package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Stored as plain strings; RoleUser is assumed when unset.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// UserStatusFraud marks an agent whose listings have been pulled.
const UserStatusFraud = "fraud"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	LastLogIn time.Time          `bson:"last_log_in,omitempty" json:"last_log_in,omitempty"`
}

// IsFraud reports whether the user has been flagged by an admin.
func (u *User) IsFraud() bool {
	return u.Status == UserStatusFraud
}
