package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups surveys for the catalog views.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
}
