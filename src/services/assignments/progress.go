package assignments

import (
	DB "Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSurveyNotFound     = errors.New("survey not found")
	// ErrSurveyNoQuestions is raised when progress is requested for a survey
	// with zero questions. That is an administrative data problem, not a bad
	// request, so controllers map it to a 500.
	ErrSurveyNoQuestions = errors.New("survey has no questions")
)

// CompletedPasses derives how many full passes a ledger count represents:
// floor(answers / questions), clamped to the assigned quantity. Extra answers
// beyond the assigned quantity stay in the ledger but never raise the count.
func CompletedPasses(answerCount, questionCount int64, quantity int) (int64, error) {
	if questionCount <= 0 {
		return 0, ErrSurveyNoQuestions
	}

	passes := answerCount / questionCount
	if passes > int64(quantity) {
		passes = int64(quantity)
	}
	return passes, nil
}

// DeriveStatus labels progress against the assigned quantity.
func DeriveStatus(completedPasses int64, quantity int) string {
	if completedPasses >= int64(quantity) {
		return models.AssignmentCompleted
	}
	return models.AssignmentPending
}

// ProgressFor recounts an assignment's progress from current store state.
// Answers are filtered by assignment AND user; a ledger row always carries
// both, the double filter guards against rows patched onto a foreign user.
func ProgressFor(ctx context.Context, assignment models.Assignment) (int64, string, error) {
	questionCount, err := DB.QuestionCollection.CountDocuments(ctx, bson.M{"surveyId": assignment.SurveyID})
	if err != nil {
		return 0, "", err
	}

	answerCount, err := DB.AnswerCollection.CountDocuments(ctx, bson.M{
		"assignmentId": assignment.ID,
		"userId":       assignment.UserID,
	})
	if err != nil {
		return 0, "", err
	}

	passes, err := CompletedPasses(answerCount, questionCount, assignment.Quantity)
	if err != nil {
		return 0, "", err
	}

	return passes, DeriveStatus(passes, assignment.Quantity), nil
}

// findByID loads one assignment.
func findByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := DB.AssignmentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		return nil, ErrAssignmentNotFound
	}
	return &assignment, nil
}
