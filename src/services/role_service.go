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

var ErrRoleNotFound = errors.New("role not found")

// CreateRole inserts a new role.
func CreateRole(role *models.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	role.ID = primitive.NewObjectID()
	_, err := database.RoleCollection.InsertOne(ctx, role)
	return err
}

// GetAllRoles returns every role.
func GetAllRoles() ([]models.Role, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.RoleCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	roles := []models.Role{}
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRoleByID returns one role.
func GetRoleByID(id string) (*models.Role, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid role ID")
	}

	var role models.Role
	err = database.RoleCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&role)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	return &role, nil
}

// SearchRoles filters roles by name.
func SearchRoles(search string) ([]models.Role, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	cursor, err := database.RoleCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	roles := []models.Role{}
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// UpdateRole renames a role.
func UpdateRole(id string, role *models.Role) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid role ID")
	}

	result, err := database.RoleCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"name": role.Name}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRoleNotFound
	}
	return nil
}

// DeleteRole removes a role.
func DeleteRole(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid role ID")
	}

	result, err := database.RoleCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRoleNotFound
	}
	return nil
}
