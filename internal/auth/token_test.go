package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice"}

	token, err := CreateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	userID, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice"}

	token, err := CreateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice"}

	token, err := CreateToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
