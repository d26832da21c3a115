package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWT(t *testing.T) {
	t.Run("TestRoundTrip", func(t *testing.T) {
		signed, tokenID, err := GenerateJWT("64f1a2b3c4d5e6f7a8b9c0d1", "maria@example.com", "admin")
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.NotEmpty(t, tokenID)

		claims, err := ParseJWT(signed)
		assert.NoError(t, err)
		assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", claims.UserID)
		assert.Equal(t, "maria@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, tokenID, claims.ID)
	})

	// Each token gets its own ID so sessions can be revoked one at a time
	t.Run("TestUniqueTokenIDs", func(t *testing.T) {
		_, firstID, err := GenerateJWT("u1", "a@example.com", "surveyor")
		assert.NoError(t, err)
		_, secondID, err := GenerateJWT("u1", "a@example.com", "surveyor")
		assert.NoError(t, err)
		assert.NotEqual(t, firstID, secondID)
	})

	t.Run("TestInvalidToken", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)

		_, err = ParseJWT("not.a.token")
		assert.Error(t, err)
	})
}
