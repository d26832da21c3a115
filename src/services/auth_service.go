package services

import (
	"Backend-SurveyTrack/src/database"
	"Backend-SurveyTrack/src/models"
	"Backend-SurveyTrack/src/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const sessionTTL = 24 * time.Hour

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// AuthenticateUser checks credentials and issues a token. The token's uuid ID
// is written to Redis so logout can revoke it before expiry.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	roleName := ""
	var role models.Role
	if err := database.RoleCollection.FindOne(ctx, bson.M{"_id": dbUser.RoleID}).Decode(&role); err == nil {
		roleName = role.Name
	}

	token, tokenID, err := utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, roleName)
	if err != nil {
		return nil, "", err
	}

	if database.RedisClient != nil {
		if err := database.RedisClient.Set(database.RedisCtx, sessionKey(tokenID), dbUser.ID.Hex(), sessionTTL).Err(); err != nil {
			return nil, "", err
		}
	}

	return &dbUser, token, nil
}

// RevokeSession drops the session of one token, ending it server-side.
func RevokeSession(tokenID string) error {
	if database.RedisClient == nil {
		return nil
	}
	return database.RedisClient.Del(database.RedisCtx, sessionKey(tokenID)).Err()
}

// SessionActive reports whether a token's session still exists. When Redis is
// not configured every parsed token counts as active.
func SessionActive(tokenID string) bool {
	if database.RedisClient == nil {
		return true
	}
	n, err := database.RedisClient.Exists(database.RedisCtx, sessionKey(tokenID)).Result()
	return err == nil && n > 0
}

// CheckToken parses a bearer token and confirms its session is alive.
func CheckToken(tokenStr string) (*utils.JWTClaims, error) {
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return nil, err
	}
	if !SessionActive(claims.ID) {
		return nil, errors.New("session revoked")
	}
	return claims, nil
}
