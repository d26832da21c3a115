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

var ErrOptionNotFound = errors.New("answer option not found")

// CreateOption adds one option to a multiple-choice question.
func CreateOption(option *models.AnswerOption) error {
	if err := utils.ValidateStruct(option); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var question models.Question
	if err := database.QuestionCollection.FindOne(ctx, bson.M{"_id": option.QuestionID}).Decode(&question); err != nil {
		return ErrQuestionNotFound
	}
	if question.Type != models.QuestionMultipleChoice {
		return errors.New("options only apply to multiple-choice questions")
	}

	option.ID = primitive.NewObjectID()
	_, err := database.OptionCollection.InsertOne(ctx, option)
	return err
}

// GetAllOptions returns every answer option.
func GetAllOptions() ([]models.AnswerOption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.OptionCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	opts := []models.AnswerOption{}
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// GetOptionsByQuestion lists the options of one question.
func GetOptionsByQuestion(questionID string) ([]models.AnswerOption, error) {
	objID, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, errors.New("invalid question ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.OptionCollection.Find(ctx, bson.M{"questionId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	opts := []models.AnswerOption{}
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// UpdateOption rewrites the option text.
func UpdateOption(id string, option *models.AnswerOption) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid option ID")
	}

	result, err := database.OptionCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"text": option.Text}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrOptionNotFound
	}
	return nil
}

// DeleteOption removes an option.
func DeleteOption(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid option ID")
	}

	result, err := database.OptionCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrOptionNotFound
	}
	return nil
}
