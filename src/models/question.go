package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types. Options only apply to opcion_multiple; the other two are
// open questions answered with free text.
const (
	QuestionMultipleChoice = "opcion_multiple"
	QuestionParagraph      = "parrafo"
	QuestionShortText      = "texto_corto"
)

// Question belongs to one survey.
type Question struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SurveyID primitive.ObjectID `json:"surveyId" bson:"surveyId"`
	Text     string             `json:"text" bson:"text" validate:"required"`
	Type     string             `json:"type" bson:"type" validate:"required,oneof=opcion_multiple parrafo texto_corto"`
}

// QuestionDetail - a question with its answer options, as nested in SurveyDetail.
type QuestionDetail struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Text    string             `json:"text" bson:"text"`
	Type    string             `json:"type" bson:"type"`
	Options []AnswerOption     `json:"options" bson:"options"`
}

// IsOpenType reports whether a question type takes free-text answers.
func IsOpenType(questionType string) bool {
	return questionType == QuestionParagraph || questionType == QuestionShortText
}
