package services

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/utils"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidRoleRef = errors.New("referenced role does not exist")
)

// hashPassword turns a clear-text password into a bcrypt hash.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CreateUser registers a new account with a hashed password.
func CreateUser(req models.UserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	roleID, err := primitive.ObjectIDFromHex(req.RoleID)
	if err != nil {
		return nil, errors.New("invalid roleId format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := strings.ToLower(req.Email)

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	roleCount, err := database.RoleCollection.CountDocuments(ctx, bson.M{"_id": roleID})
	if err != nil {
		return nil, err
	}
	if roleCount == 0 {
		return nil, ErrInvalidRoleRef
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		RoleID:   roleID,
	}

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers lists users joined with their role names.
func GetAllUsers() ([]models.UserWithRole, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "roles",
			"localField":   "roleId",
			"foreignField": "_id",
			"as":           "role",
		}},
		{"$unwind": bson.M{"path": "$role", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"_id":   1,
			"name":  1,
			"email": 1,
			"role":  "$role.name",
		}},
	}

	cursor, err := database.UserCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.UserWithRole{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID returns one user profile.
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// SearchUsers filters users by name or email.
func SearchUsers(search string) ([]models.UserWithRole, error) {
	users, err := GetAllUsers()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return users, nil
	}

	needle := strings.ToLower(search)
	matched := []models.UserWithRole{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// GetUsersByRole lists users holding one role name, e.g. every surveyor.
func GetUsersByRole(roleName string) ([]models.UserWithRole, error) {
	users, err := GetAllUsers()
	if err != nil {
		return nil, err
	}

	matched := []models.UserWithRole{}
	for _, u := range users {
		if strings.EqualFold(u.Role, roleName) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// UpdateUser applies an administrative update; the password is re-hashed
// whenever a new one is supplied.
func UpdateUser(id string, req models.UserRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}
	roleID, err := primitive.ObjectIDFromHex(req.RoleID)
	if err != nil {
		return errors.New("invalid roleId format")
	}

	update := bson.M{
		"name":   req.Name,
		"email":  strings.ToLower(req.Email),
		"roleId": roleID,
	}
	if req.Password != "" {
		hashed, err := hashPassword(req.Password)
		if err != nil {
			return err
		}
		update["password"] = hashed
	}

	result, err := database.UserCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser removes an account.
func DeleteUser(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	result, err := database.UserCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
