package services

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/utils"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSurveyNotFound = errors.New("survey not found")

// CreateSurvey inserts a new survey under a category.
func CreateSurvey(survey *models.Survey) error {
	if err := utils.ValidateStruct(survey); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	survey.ID = primitive.NewObjectID()
	_, err := database.SurveyCollection.InsertOne(ctx, survey)
	return err
}

// GetAllSurveys returns every survey.
func GetAllSurveys() ([]models.Survey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.SurveyCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []models.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// SearchSurveys filters surveys by name or description.
func SearchSurveys(search string) ([]models.Survey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := database.SurveyCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []models.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetSurveyDetail composes one survey with its questions and their options,
// the full document a respondent needs to fill a pass.
func GetSurveyDetail(id string) (*models.SurveyDetail, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid survey ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var survey models.Survey
	if err := database.SurveyCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&survey); err != nil {
		return nil, ErrSurveyNotFound
	}

	pipeline := []bson.M{
		{"$match": bson.M{"surveyId": objID}},
		{"$lookup": bson.M{
			"from":         "answerOptions",
			"localField":   "_id",
			"foreignField": "questionId",
			"as":           "options",
		}},
	}

	cursor, err := database.QuestionCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.QuestionDetail{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return &models.SurveyDetail{
		ID:          survey.ID,
		Name:        survey.Name,
		Description: survey.Description,
		Questions:   questions,
	}, nil
}

// GetSurveysByCategory lists the surveys of one category joined with the
// category document.
func GetSurveysByCategory(categoryID string) ([]models.SurveyWithCategory, error) {
	objID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"categoryId": objID}},
		{"$lookup": bson.M{
			"from":         "categories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$unwind": "$category"},
	}

	cursor, err := database.SurveyCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []models.SurveyWithCategory{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// UpdateSurvey updates name, description and category.
func UpdateSurvey(id string, survey *models.Survey) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid survey ID")
	}

	result, err := database.SurveyCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"name":        survey.Name,
			"description": survey.Description,
			"categoryId":  survey.CategoryID,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSurveyNotFound
	}
	return nil
}

// DeleteSurvey removes a survey and its questions and options. Assignments
// pointing at the survey are left for the registry to manage.
func DeleteSurvey(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid survey ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.SurveyCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSurveyNotFound
	}

	cursor, err := database.QuestionCollection.Find(ctx, bson.M{"surveyId": objID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	questionIDs := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var q models.Question
		if err := cursor.Decode(&q); err != nil {
			continue
		}
		questionIDs = append(questionIDs, q.ID)
	}

	if len(questionIDs) > 0 {
		if _, err := database.OptionCollection.DeleteMany(ctx, bson.M{"questionId": bson.M{"$in": questionIDs}}); err != nil {
			return err
		}
	}
	_, err = database.QuestionCollection.DeleteMany(ctx, bson.M{"surveyId": objID})
	return err
}
