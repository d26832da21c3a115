package assignments

import (
	"testing"

	"Backend-SurveyTrack/src/models"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	t.Run("TestPendingStaysPending", func(t *testing.T) {
		assert.Equal(t, models.AssignmentPending, NextStatus(models.AssignmentPending, 0, 2))
		assert.Equal(t, models.AssignmentPending, NextStatus(models.AssignmentPending, 1, 2))
	})

	t.Run("TestPendingReachesCompleted", func(t *testing.T) {
		assert.Equal(t, models.AssignmentCompleted, NextStatus(models.AssignmentPending, 2, 2))
		assert.Equal(t, models.AssignmentCompleted, NextStatus(models.AssignmentPending, 5, 2))
	})

	// Completion never rolls back, whatever the recount says
	t.Run("TestCompletedIsSticky", func(t *testing.T) {
		assert.Equal(t, models.AssignmentCompleted, NextStatus(models.AssignmentCompleted, 0, 2))
		assert.Equal(t, models.AssignmentCompleted, NextStatus(models.AssignmentCompleted, 1, 2))
		assert.Equal(t, models.AssignmentCompleted, NextStatus(models.AssignmentCompleted, 2, 2))
	})

	// Re-running with an unchanged count lands on the same state
	t.Run("TestIdempotent", func(t *testing.T) {
		first := NextStatus(models.AssignmentPending, 2, 2)
		second := NextStatus(first, 2, 2)
		assert.Equal(t, first, second)

		first = NextStatus(models.AssignmentPending, 1, 2)
		second = NextStatus(first, 1, 2)
		assert.Equal(t, first, second)
	})
}
