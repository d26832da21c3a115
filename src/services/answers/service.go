package answers

import (
	DB "Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/jobs"
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/utils"
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrAnswerNotFound = errors.New("answer not found")
	ErrNoAnswers      = errors.New("no answers found for this assignment")
	// ErrContentMissing is the exactly-one-of rule: an answer carries either a
	// chosen option or free text, never neither.
	ErrContentMissing = errors.New("either optionId or answerText must be provided")
)

// ValidateAnswerRequest applies the required-field and content rules of a
// submission before anything touches the store.
func ValidateAnswerRequest(req models.AnswerRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	if req.OptionID == nil && req.AnswerText == nil {
		return ErrContentMissing
	}
	return nil
}

// RecordAnswer appends one ledger row. The submission timestamp is stamped
// here, at insert time; it is what later groups answers into passes. After the
// write a completion re-check is queued for the assignment's pair.
func RecordAnswer(req models.AnswerRequest) (*models.Answer, error) {
	if err := ValidateAnswerRequest(req); err != nil {
		return nil, err
	}

	questionID, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return nil, errors.New("invalid questionId format")
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, errors.New("invalid userId format")
	}
	surveyID, err := primitive.ObjectIDFromHex(req.SurveyID)
	if err != nil {
		return nil, errors.New("invalid surveyId format")
	}
	assignmentID, err := primitive.ObjectIDFromHex(req.AssignmentID)
	if err != nil {
		return nil, errors.New("invalid assignmentId format")
	}

	var optionID *primitive.ObjectID
	if req.OptionID != nil {
		oid, err := primitive.ObjectIDFromHex(*req.OptionID)
		if err != nil {
			return nil, errors.New("invalid optionId format")
		}
		optionID = &oid
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// the referenced assignment must exist before a row lands in its ledger
	count, err := DB.AssignmentCollection.CountDocuments(ctx, bson.M{"_id": assignmentID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("assignment not found")
	}

	answer := models.Answer{
		ID:           primitive.NewObjectID(),
		QuestionID:   questionID,
		OptionID:     optionID,
		AnswerText:   req.AnswerText,
		UserID:       userID,
		SurveyID:     surveyID,
		AssignmentID: assignmentID,
		CreatedAt:    time.Now(),
	}

	if _, err := DB.AnswerCollection.InsertOne(ctx, answer); err != nil {
		return nil, err
	}

	jobs.EnqueueEvaluation(req.UserID, req.SurveyID)

	return &answer, nil
}

// GetAllAnswers dumps the raw ledger.
func GetAllAnswers() ([]models.Answer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.AnswerCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.Answer{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateAnswer corrects one ledger row in place. No recount is triggered;
// progress is always recomputed on read.
func UpdateAnswer(id string, req models.AnswerRequest) error {
	if err := ValidateAnswerRequest(req); err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid answer ID")
	}
	questionID, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return errors.New("invalid questionId format")
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return errors.New("invalid userId format")
	}

	update := bson.M{
		"questionId": questionID,
		"userId":     userID,
		"answerText": req.AnswerText,
	}
	if req.OptionID != nil {
		optionID, err := primitive.ObjectIDFromHex(*req.OptionID)
		if err != nil {
			return errors.New("invalid optionId format")
		}
		update["optionId"] = optionID
	} else {
		update["optionId"] = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.AnswerCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAnswerNotFound
	}
	return nil
}

// DeleteAnswer removes one ledger row by id.
func DeleteAnswer(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid answer ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.AnswerCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAnswerNotFound
	}
	return nil
}

// GetPassesByAssignment reconstructs the passes of one assignment for audit
// display: every answer joined with its question, option and user, grouped by
// exact submission timestamp, most recent pass first.
func GetPassesByAssignment(assignmentID primitive.ObjectID) ([]models.AnswerPass, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"assignmentId": assignmentID}},
		{"$lookup": bson.M{
			"from":         "surveys",
			"localField":   "surveyId",
			"foreignField": "_id",
			"as":           "survey",
		}},
		{"$unwind": bson.M{"path": "$survey", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         "questions",
			"localField":   "questionId",
			"foreignField": "_id",
			"as":           "question",
		}},
		{"$unwind": bson.M{"path": "$question", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         "answerOptions",
			"localField":   "optionId",
			"foreignField": "_id",
			"as":           "option",
		}},
		{"$unwind": bson.M{"path": "$option", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"_id":          1,
			"assignmentId": 1,
			"surveyId":     1,
			"surveyName":   "$survey.name",
			"questionId":   1,
			"questionText": "$question.text",
			"questionType": "$question.type",
			"optionId":     1,
			"optionText":   "$option.text",
			"answerText":   1,
			"userName":     "$user.name",
			"createdAt":    1,
		}},
		{"$sort": bson.M{"createdAt": 1, "questionId": 1}},
	}

	// four lookups per row, let large histories spill to disk
	opts := options.Aggregate().SetAllowDiskUse(true)
	cursor, err := DB.AnswerCollection.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []models.AnswerDetail{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoAnswers
	}

	return GroupIntoPasses(rows), nil
}

// GroupIntoPasses clusters joined ledger rows into passes by their exact
// submission timestamp and orders the passes most recent first. This grouping
// is display-only; the progress count never depends on it.
func GroupIntoPasses(rows []models.AnswerDetail) []models.AnswerPass {
	grouped := map[time.Time]*models.AnswerPass{}
	for _, row := range rows {
		key := row.CreatedAt
		pass, ok := grouped[key]
		if !ok {
			pass = &models.AnswerPass{
				AssignmentID: row.AssignmentID,
				SurveyID:     row.SurveyID,
				SurveyName:   row.SurveyName,
				UserName:     row.UserName,
				CreatedAt:    row.CreatedAt,
			}
			grouped[key] = pass
		}
		pass.Answers = append(pass.Answers, row)
	}

	passes := make([]models.AnswerPass, 0, len(grouped))
	for _, pass := range grouped {
		passes = append(passes, *pass)
	}
	sort.Slice(passes, func(i, j int) bool {
		return passes[i].CreatedAt.After(passes[j].CreatedAt)
	})
	return passes
}
