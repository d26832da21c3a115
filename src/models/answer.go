package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer - one respondent's answer to one question within one pass.
// Exactly one of OptionID / AnswerText is set, depending on the question type.
// CreatedAt is stamped at insert time and groups answers into passes.
type Answer struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	QuestionID   primitive.ObjectID  `json:"questionId" bson:"questionId"`
	OptionID     *primitive.ObjectID `json:"optionId" bson:"optionId,omitempty"`
	AnswerText   *string             `json:"answerText" bson:"answerText,omitempty"`
	UserID       primitive.ObjectID  `json:"userId" bson:"userId"`
	SurveyID     primitive.ObjectID  `json:"surveyId" bson:"surveyId"`
	AssignmentID primitive.ObjectID  `json:"assignmentId" bson:"assignmentId"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
}

// AnswerRequest is the submission body for one answer.
type AnswerRequest struct {
	QuestionID   string  `json:"questionId" validate:"required"`
	OptionID     *string `json:"optionId"`
	AnswerText   *string `json:"answerText"`
	UserID       string  `json:"userId" validate:"required"`
	SurveyID     string  `json:"surveyId" validate:"required"`
	AssignmentID string  `json:"assignmentId" validate:"required"`
}

// AnswerDetail - a ledger row joined with its question, option and user, used
// when reconstructing passes for audit display.
type AnswerDetail struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	AssignmentID primitive.ObjectID `json:"assignmentId" bson:"assignmentId"`
	SurveyID     primitive.ObjectID `json:"surveyId" bson:"surveyId"`
	SurveyName   string             `json:"surveyName" bson:"surveyName"`
	QuestionID   primitive.ObjectID `json:"questionId" bson:"questionId"`
	QuestionText string             `json:"questionText" bson:"questionText"`
	QuestionType string             `json:"questionType" bson:"questionType"`
	OptionID     *primitive.ObjectID `json:"optionId" bson:"optionId,omitempty"`
	OptionText   *string            `json:"optionText" bson:"optionText,omitempty"`
	AnswerText   *string            `json:"answerText" bson:"answerText,omitempty"`
	UserName     string             `json:"userName" bson:"userName"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// AnswerPass - one reconstructed pass: every answer of an assignment sharing
// the same exact submission timestamp.
type AnswerPass struct {
	AssignmentID primitive.ObjectID `json:"assignmentId"`
	SurveyID     primitive.ObjectID `json:"surveyId"`
	SurveyName   string             `json:"surveyName"`
	UserName     string             `json:"userName"`
	CreatedAt    time.Time          `json:"createdAt"`
	Answers      []AnswerDetail     `json:"answers"`
}
