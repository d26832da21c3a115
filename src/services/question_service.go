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

var ErrQuestionNotFound = errors.New("question not found")

// CreateQuestion inserts a question into a survey after checking the survey
// exists.
func CreateQuestion(question *models.Question) error {
	if err := utils.ValidateStruct(question); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := database.SurveyCollection.CountDocuments(ctx, bson.M{"_id": question.SurveyID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrSurveyNotFound
	}

	question.ID = primitive.NewObjectID()
	_, err = database.QuestionCollection.InsertOne(ctx, question)
	return err
}

// GetAllQuestions returns every question.
func GetAllQuestions() ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.QuestionCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetOpenQuestions lists questions answered with free text (paragraph and
// short-text types).
func GetOpenQuestions() ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"type": bson.M{"$in": []string{
		models.QuestionParagraph,
		models.QuestionShortText,
	}}}

	cursor, err := database.QuestionCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateQuestion updates text and type.
func UpdateQuestion(id string, question *models.Question) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid question ID")
	}

	result, err := database.QuestionCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"text": question.Text, "type": question.Type}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion removes a question and its options.
func DeleteQuestion(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid question ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.QuestionCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrQuestionNotFound
	}

	_, err = database.OptionCollection.DeleteMany(ctx, bson.M{"questionId": objID})
	return err
}
