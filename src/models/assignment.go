package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment lifecycle states. Completion is one-way: the evaluator never
// moves an assignment back to pending.
const (
	AssignmentPending   = "pending"
	AssignmentCompleted = "completed"
)

// Assignment - an obligation for one user to answer one survey Quantity times.
type Assignment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	SurveyID  primitive.ObjectID `json:"surveyId" bson:"surveyId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// AssignmentRequest is the create/update body. Quantity below 1 is rejected.
type AssignmentRequest struct {
	UserID   string `json:"userId" validate:"required"`
	SurveyID string `json:"surveyId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Status   string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// AssignmentProgress - an assignment enriched with its derived progress, as
// returned to the assigned user. CompletedPasses is recomputed from the answer
// ledger on every read, never stored.
type AssignmentProgress struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	SurveyID        primitive.ObjectID `json:"surveyId" bson:"surveyId"`
	SurveyName      string             `json:"surveyName" bson:"surveyName"`
	UserName        string             `json:"userName" bson:"userName"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	Status          string             `json:"status"`
	CompletedPasses int64              `json:"completedPasses"`
}

// AssignmentListRow - one row of the admin assignment list (user and survey
// names joined in).
type AssignmentListRow struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	UserName   string             `json:"userName" bson:"userName"`
	SurveyName string             `json:"surveyName" bson:"surveyName"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	Status     string             `json:"status" bson:"status"`
}
