package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerOption - one selectable option of a multiple-choice question.
type AnswerOption struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	QuestionID primitive.ObjectID `json:"questionId" bson:"questionId"`
	Text       string             `json:"text" bson:"text" validate:"required"`
}
