package answers

import (
	"testing"
	"time"

	"Backend-SurveyTrack/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestValidateAnswerRequest(t *testing.T) {
	base := models.AnswerRequest{
		QuestionID:   primitive.NewObjectID().Hex(),
		UserID:       primitive.NewObjectID().Hex(),
		SurveyID:     primitive.NewObjectID().Hex(),
		AssignmentID: primitive.NewObjectID().Hex(),
	}

	t.Run("TestTextAnswer", func(t *testing.T) {
		req := base
		req.AnswerText = strPtr("Todo bien")
		assert.NoError(t, ValidateAnswerRequest(req))
	})

	t.Run("TestOptionAnswer", func(t *testing.T) {
		req := base
		req.OptionID = strPtr(primitive.NewObjectID().Hex())
		assert.NoError(t, ValidateAnswerRequest(req))
	})

	// Neither an option nor text is a rejected submission
	t.Run("TestContentMissing", func(t *testing.T) {
		req := base
		assert.ErrorIs(t, ValidateAnswerRequest(req), ErrContentMissing)
	})

	t.Run("TestRequiredFields", func(t *testing.T) {
		req := base
		req.AnswerText = strPtr("x")
		req.QuestionID = ""
		err := ValidateAnswerRequest(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "QuestionID is required")

		req = base
		req.AnswerText = strPtr("x")
		req.AssignmentID = ""
		err = ValidateAnswerRequest(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "AssignmentID is required")
	})
}

func TestGroupIntoPasses(t *testing.T) {
	assignmentID := primitive.NewObjectID()
	surveyID := primitive.NewObjectID()

	firstPass := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	secondPass := time.Date(2026, 8, 2, 16, 30, 0, 0, time.UTC)

	row := func(createdAt time.Time, questionText string) models.AnswerDetail {
		return models.AnswerDetail{
			ID:           primitive.NewObjectID(),
			AssignmentID: assignmentID,
			SurveyID:     surveyID,
			SurveyName:   "Customer satisfaction",
			QuestionID:   primitive.NewObjectID(),
			QuestionText: questionText,
			UserName:     "Maria",
			CreatedAt:    createdAt,
		}
	}

	t.Run("TestGroupsByExactTimestamp", func(t *testing.T) {
		rows := []models.AnswerDetail{
			row(firstPass, "Q1"),
			row(firstPass, "Q2"),
			row(secondPass, "Q1"),
			row(secondPass, "Q2"),
		}

		passes := GroupIntoPasses(rows)
		assert.Len(t, passes, 2)
		for _, pass := range passes {
			assert.Len(t, pass.Answers, 2)
			assert.Equal(t, assignmentID, pass.AssignmentID)
			assert.Equal(t, "Customer satisfaction", pass.SurveyName)
			assert.Equal(t, "Maria", pass.UserName)
		}
	})

	t.Run("TestMostRecentFirst", func(t *testing.T) {
		rows := []models.AnswerDetail{
			row(firstPass, "Q1"),
			row(secondPass, "Q1"),
			row(firstPass, "Q2"),
		}

		passes := GroupIntoPasses(rows)
		assert.Len(t, passes, 2)
		assert.Equal(t, secondPass, passes[0].CreatedAt)
		assert.Equal(t, firstPass, passes[1].CreatedAt)
		assert.Len(t, passes[0].Answers, 1)
		assert.Len(t, passes[1].Answers, 2)
	})

	t.Run("TestEmptyInput", func(t *testing.T) {
		assert.Empty(t, GroupIntoPasses(nil))
	})

	// A lone answer at its own timestamp is its own (partial) pass
	t.Run("TestPartialPass", func(t *testing.T) {
		stray := time.Date(2026, 8, 3, 9, 15, 0, 0, time.UTC)
		passes := GroupIntoPasses([]models.AnswerDetail{row(stray, "Q3")})
		assert.Len(t, passes, 1)
		assert.Len(t, passes[0].Answers, 1)
	})
}
