package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Survey groups questions. The question count is always derived by counting
// the questions collection, never cached on the survey document.
type Survey struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
}

// SurveyDetail - a survey composed with its questions and their options.
type SurveyDetail struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Questions   []QuestionDetail   `json:"questions" bson:"questions"`
}

// SurveyWithCategory - a survey row joined with its category.
type SurveyWithCategory struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    Category           `json:"category" bson:"category"`
}
