package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role names with behavior attached to them.
const (
	RoleAdmin    = "admin"
	RoleSurveyor = "encuestador"
)

// Role of a user account.
type Role struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name" validate:"required"`
}
