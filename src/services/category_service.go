package services

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCategoryNotFound = errors.New("category not found")

// CreateCategory inserts a new survey category.
func CreateCategory(category *models.Category) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	category.ID = primitive.NewObjectID()
	_, err := database.CategoryCollection.InsertOne(ctx, category)
	return err
}

// GetAllCategories returns every category.
func GetAllCategories() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.CategoryCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID returns one category.
func GetCategoryByID(id string) (*models.Category, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	var category models.Category
	err = database.CategoryCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&category)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// SearchCategories filters categories by name.
func SearchCategories(search string) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	cursor, err := database.CategoryCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory updates name and description.
func UpdateCategory(id string, category *models.Category) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid category ID")
	}

	result, err := database.CategoryCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"name": category.Name, "description": category.Description}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func DeleteCategory(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid category ID")
	}

	result, err := database.CategoryCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
