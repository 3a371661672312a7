package httpapi

import (
	"testing"
	"time"

	"employee_voting_system/internal/db/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var tokenSecret = []byte("test-secret")

func TestGenerateToken_RoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Name: "Alice", IsAdmin: true, IsVote: true}

	tokenString, err := GenerateToken(user, tokenSecret, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(tokenString, tokenSecret)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.IsAdmin)
	assert.True(t, claims.IsVote)
}

func TestParseToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: 42, Name: "Alice"}

	tokenString, err := GenerateToken(user, tokenSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString, []byte("other-secret"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	user := &models.User{ID: 42, Name: "Alice"}

	tokenString, err := GenerateToken(user, tokenSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString, tokenSecret)
	assert.Error(t, err)
}

func TestParseToken_RejectsOtherSigningMethods(t *testing.T) {
	// Same key, different HMAC variant: must not verify.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{UserID: 42})
	tokenString, err := token.SignedString(tokenSecret)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString, tokenSecret)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", tokenSecret)
	assert.Error(t, err)
}
