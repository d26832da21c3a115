package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type assignmentBody struct {
	UserID   string `validate:"required"`
	SurveyID string `validate:"required"`
	Quantity int    `validate:"required,min=1"`
	Status   string `validate:"omitempty,oneof=pending completed"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("TestValidBody", func(t *testing.T) {
		err := ValidateStruct(assignmentBody{
			UserID:   "64f1a2b3c4d5e6f7a8b9c0d1",
			SurveyID: "64f1a2b3c4d5e6f7a8b9c0d2",
			Quantity: 3,
		})
		assert.NoError(t, err)
	})

	t.Run("TestMissingFields", func(t *testing.T) {
		err := ValidateStruct(assignmentBody{Quantity: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "UserID is required")
		assert.Contains(t, err.Error(), "SurveyID is required")
	})

	// Quantity zero trips "required" before "min", either way it is rejected
	t.Run("TestZeroQuantity", func(t *testing.T) {
		err := ValidateStruct(assignmentBody{
			UserID:   "u",
			SurveyID: "s",
			Quantity: 0,
		})
		assert.Error(t, err)
	})

	t.Run("TestStatusOneOf", func(t *testing.T) {
		err := ValidateStruct(assignmentBody{
			UserID:   "u",
			SurveyID: "s",
			Quantity: 1,
			Status:   "archived",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Status must be one of [pending completed]")

		err = ValidateStruct(assignmentBody{
			UserID:   "u",
			SurveyID: "s",
			Quantity: 1,
			Status:   "completed",
		})
		assert.NoError(t, err)
	})
}
