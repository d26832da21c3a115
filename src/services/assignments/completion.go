package assignments

import (
	DB "Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NextStatus decides the state an assignment should carry after evaluation.
// Completion is monotonic: once completed, no recount moves it back.
func NextStatus(current string, completedPasses int64, quantity int) string {
	if current == models.AssignmentCompleted {
		return models.AssignmentCompleted
	}
	return DeriveStatus(completedPasses, quantity)
}

// EvaluateAndUpdate recounts every assignment of (user, survey) and stores the
// completed state for those that reached their quantity. Normally the pair has
// one assignment, but multiples are tolerated and each is evaluated on its
// own. Running it twice with an unchanged ledger is a no-op the second time.
func EvaluateAndUpdate(userID, surveyID primitive.ObjectID) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.AssignmentCollection.Find(ctx, bson.M{
		"userId":   userID,
		"surveyId": surveyID,
	})
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return "", err
	}
	if len(assignments) == 0 {
		return "", ErrAssignmentNotFound
	}

	for _, assignment := range assignments {
		passes, _, err := ProgressFor(ctx, assignment)
		if err != nil {
			return "", err
		}

		next := NextStatus(assignment.Status, passes, assignment.Quantity)
		if next != models.AssignmentCompleted || assignment.Status == models.AssignmentCompleted {
			continue
		}

		_, err = DB.AssignmentCollection.UpdateOne(ctx,
			bson.M{"_id": assignment.ID},
			bson.M{"$set": bson.M{"status": models.AssignmentCompleted}},
		)
		if err != nil {
			return "", err
		}
		log.Println("✅ Assignment completed:", assignment.ID.Hex())
	}

	return "Verification completed", nil
}
