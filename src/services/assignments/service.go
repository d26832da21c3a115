package assignments

import (
	DB "Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/utils"
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAssignment inserts a new pending assignment after checking that the
// referenced user and survey exist.
func CreateAssignment(req models.AssignmentRequest) (*models.Assignment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, errors.New("invalid userId format")
	}
	surveyID, err := primitive.ObjectIDFromHex(req.SurveyID)
	if err != nil {
		return nil, errors.New("invalid surveyId format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1) referenced user must exist
	if count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"_id": userID}); err != nil {
		return nil, err
	} else if count == 0 {
		return nil, ErrUserNotFound
	}

	// 2) referenced survey must exist
	if count, err := DB.SurveyCollection.CountDocuments(ctx, bson.M{"_id": surveyID}); err != nil {
		return nil, err
	} else if count == 0 {
		return nil, ErrSurveyNotFound
	}

	assignment := models.Assignment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		SurveyID:  surveyID,
		Quantity:  req.Quantity,
		Status:    models.AssignmentPending,
		CreatedAt: time.Now(),
	}

	if _, err := DB.AssignmentCollection.InsertOne(ctx, assignment); err != nil {
		return nil, err
	}

	return &assignment, nil
}

// UpdateAssignment applies an administrative full update. It does not touch
// derived progress; the evaluator recounts on its own schedule.
func UpdateAssignment(id string, req models.AssignmentRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid assignment ID")
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return errors.New("invalid userId format")
	}
	surveyID, err := primitive.ObjectIDFromHex(req.SurveyID)
	if err != nil {
		return errors.New("invalid surveyId format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"userId":   userID,
		"surveyId": surveyID,
		"quantity": req.Quantity,
	}
	if req.Status != "" {
		update["status"] = req.Status
	}

	result, err := DB.AssignmentCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// DeleteAssignment removes an assignment and its ledger rows. The cascade
// keeps the ledger free of answers that no longer belong to any assignment.
func DeleteAssignment(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid assignment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.AssignmentCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAssignmentNotFound
	}

	if _, err := DB.AnswerCollection.DeleteMany(ctx, bson.M{"assignmentId": objID}); err != nil {
		return err
	}
	return nil
}

// GetAssignmentByID returns one assignment as stored.
func GetAssignmentByID(id string) (*models.Assignment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid assignment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return findByID(ctx, objID)
}

// GetAssignmentsByUser lists a user's assignments enriched with the survey
// name and the derived progress, the payload the respondent UI works from.
func GetAssignmentsByUser(userID primitive.ObjectID) ([]models.AssignmentProgress, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$lookup": bson.M{
			"from":         "surveys",
			"localField":   "surveyId",
			"foreignField": "_id",
			"as":           "survey",
		}},
		{"$unwind": "$survey"},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$project": bson.M{
			"_id":        1,
			"userId":     1,
			"surveyId":   1,
			"quantity":   1,
			"createdAt":  1,
			"status":     1,
			"surveyName": "$survey.name",
			"userName":   "$user.name",
		}},
	}

	cursor, err := DB.AssignmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.AssignmentProgress{}
	for cursor.Next(ctx) {
		var entry models.AssignmentProgress
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}

		// The status shown here is always the derived one, regardless of what
		// the assignment document currently stores.
		assignment := models.Assignment{
			ID:       entry.ID,
			UserID:   entry.UserID,
			SurveyID: entry.SurveyID,
			Quantity: entry.Quantity,
		}
		passes, derived, err := ProgressFor(ctx, assignment)
		if err != nil {
			return nil, err
		}

		entry.CompletedPasses = passes
		entry.Status = derived
		results = append(results, entry)
	}

	return results, nil
}

// Admin list filter dimensions. Exactly one is applied per call; anything
// else is ignored and the full list comes back.
const (
	FilterByName     = "name"
	FilterBySurvey   = "survey"
	FilterByQuantity = "quantity"
	FilterByDate     = "date"
)

// ListAssignments returns one page of the admin view of all assignments,
// optionally narrowed by one filter dimension. The total counts every match,
// not just the returned page.
func ListAssignments(search, filter string, params models.PaginationParams) ([]models.AssignmentListRow, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	base := []bson.M{
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$lookup": bson.M{
			"from":         "surveys",
			"localField":   "surveyId",
			"foreignField": "_id",
			"as":           "survey",
		}},
		{"$unwind": "$survey"},
	}

	if match := buildListFilter(search, filter); match != nil {
		base = append(base, bson.M{"$match": match})
	}

	// The filters reference joined fields, so the total has to come from the
	// same pipeline rather than a plain CountDocuments.
	countPipeline := append(append([]bson.M{}, base...), bson.M{"$count": "total"})
	countCursor, err := DB.AssignmentCollection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	var countResult []bson.M
	if err := countCursor.All(ctx, &countResult); err != nil {
		return nil, 0, err
	}
	var total int64
	if len(countResult) > 0 {
		switch v := countResult[0]["total"].(type) {
		case int32:
			total = int64(v)
		case int64:
			total = v
		}
	}

	pipeline := append(base,
		bson.M{"$sort": params.GetSortOrder()},
		bson.M{"$skip": params.GetSkip()},
		bson.M{"$limit": int64(params.Limit)},
		bson.M{"$project": bson.M{
			"_id":        1,
			"userName":   "$user.name",
			"surveyName": "$survey.name",
			"quantity":   1,
			"createdAt":  1,
			"status":     1,
		}},
	)

	cursor, err := DB.AssignmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	rows := []models.AssignmentListRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// buildListFilter maps one (search, filter) pair onto a match stage. Unknown
// filter keys are a no-op, not an error.
func buildListFilter(search, filter string) bson.M {
	if search == "" || filter == "" {
		return nil
	}

	switch filter {
	case FilterByName:
		return bson.M{"user.name": bson.M{"$regex": search, "$options": "i"}}
	case FilterBySurvey:
		return bson.M{"survey.name": bson.M{"$regex": search, "$options": "i"}}
	case FilterByQuantity:
		quantity, err := strconv.Atoi(search)
		if err != nil {
			return nil
		}
		return bson.M{"quantity": quantity}
	case FilterByDate:
		day, err := time.Parse("2006-01-02", search)
		if err != nil {
			return nil
		}
		return bson.M{"createdAt": bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		}}
	default:
		return nil
	}
}
