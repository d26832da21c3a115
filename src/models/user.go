package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User - an account in the identity provider. Password holds a bcrypt hash,
// never the clear text, and is omitted from JSON responses.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	RoleID   primitive.ObjectID `json:"roleId" bson:"roleId"`
}

// UserRequest is the create/update body for users.
type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   string `json:"roleId" validate:"required"`
}

// UserWithRole - a user row joined with its role name.
type UserWithRole struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Role  string             `json:"role" bson:"role"`
}

// LoginRequest is the credential body for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
