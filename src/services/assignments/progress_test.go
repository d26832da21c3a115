package assignments

import (
	"testing"
	"time"

	"Backend-SurveyTrack/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCompletedPasses(t *testing.T) {
	// Test partial passes round down
	t.Run("TestFloorDivision", func(t *testing.T) {
		passes, err := CompletedPasses(3, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), passes)

		passes, err = CompletedPasses(5, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), passes)

		passes, err = CompletedPasses(2, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), passes)
	})

	// Test count is clamped to the assigned quantity
	t.Run("TestClampToQuantity", func(t *testing.T) {
		passes, err := CompletedPasses(6, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), passes)

		// extra answers beyond the quantity never raise the count
		passes, err = CompletedPasses(7, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), passes)

		passes, err = CompletedPasses(30, 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), passes)
	})

	// Test empty ledger
	t.Run("TestNoAnswers", func(t *testing.T) {
		passes, err := CompletedPasses(0, 5, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), passes)
	})

	// Test surveys with no questions are an error, never a division
	t.Run("TestZeroQuestions", func(t *testing.T) {
		_, err := CompletedPasses(4, 0, 2)
		assert.ErrorIs(t, err, ErrSurveyNoQuestions)

		_, err = CompletedPasses(4, -1, 2)
		assert.ErrorIs(t, err, ErrSurveyNoQuestions)
	})
}

func TestDeriveStatus(t *testing.T) {
	t.Run("TestPendingBelowQuantity", func(t *testing.T) {
		assert.Equal(t, models.AssignmentPending, DeriveStatus(0, 2))
		assert.Equal(t, models.AssignmentPending, DeriveStatus(1, 2))
	})

	t.Run("TestCompletedAtQuantity", func(t *testing.T) {
		assert.Equal(t, models.AssignmentCompleted, DeriveStatus(2, 2))
		assert.Equal(t, models.AssignmentCompleted, DeriveStatus(3, 2))
	})

	// Walk the quantity=2, three-question survey through its ledger growth
	t.Run("TestProgressScenario", func(t *testing.T) {
		quantity := 2
		questions := int64(3)

		for _, tc := range []struct {
			answers    int64
			wantPasses int64
			wantStatus string
		}{
			{0, 0, models.AssignmentPending},
			{3, 1, models.AssignmentPending},
			{5, 1, models.AssignmentPending},
			{6, 2, models.AssignmentCompleted},
			{7, 2, models.AssignmentCompleted},
		} {
			passes, err := CompletedPasses(tc.answers, questions, quantity)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantPasses, passes, "answers=%d", tc.answers)
			assert.Equal(t, tc.wantStatus, DeriveStatus(passes, quantity), "answers=%d", tc.answers)
		}
	})
}

func TestBuildListFilter(t *testing.T) {
	t.Run("TestNameFilter", func(t *testing.T) {
		filter := buildListFilter("maria", FilterByName)
		assert.Equal(t, bson.M{"user.name": bson.M{"$regex": "maria", "$options": "i"}}, filter)
	})

	t.Run("TestSurveyFilter", func(t *testing.T) {
		filter := buildListFilter("clima", FilterBySurvey)
		assert.Equal(t, bson.M{"survey.name": bson.M{"$regex": "clima", "$options": "i"}}, filter)
	})

	t.Run("TestQuantityFilter", func(t *testing.T) {
		filter := buildListFilter("3", FilterByQuantity)
		assert.Equal(t, bson.M{"quantity": 3}, filter)

		// non-numeric quantity is a no-op
		assert.Nil(t, buildListFilter("three", FilterByQuantity))
	})

	t.Run("TestDateFilter", func(t *testing.T) {
		filter := buildListFilter("2026-08-01", FilterByDate)
		assert.NotNil(t, filter)

		day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, bson.M{"createdAt": bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		}}, filter)

		assert.Nil(t, buildListFilter("01/08/2026", FilterByDate))
	})

	// Unknown keys and empty inputs match everything instead of erroring
	t.Run("TestNoOpInputs", func(t *testing.T) {
		assert.Nil(t, buildListFilter("x", "status"))
		assert.Nil(t, buildListFilter("", FilterByName))
		assert.Nil(t, buildListFilter("x", ""))
	})
}
