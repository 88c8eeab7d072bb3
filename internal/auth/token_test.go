package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonna_backend/internal/models"
)

func newTestManager(t *testing.T, secret string) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(secret, "sonna_backend", "sonna_frontend", 7*24*time.Hour)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManager_MissingSecret(t *testing.T) {
	_, err := NewTokenManager("", "iss", "aud", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndParse_RoundTrip(t *testing.T) {
	tm := newTestManager(t, "test-secret")

	user := &models.User{
		FullName: "Jane Roe",
		Email:    "jane@example.com",
		UserType: models.UserTypeAdmin,
	}
	user.ID = 42

	tokenStr, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := tm.Parse(tokenStr)
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", claims.FullName)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.UserTypeAdmin, claims.Role)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := newTestManager(t, "secret-one")
	verifier := newTestManager(t, "secret-two")

	user := &models.User{UserType: models.UserTypeIndividual}
	user.ID = 1

	tokenStr, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = verifier.Parse(tokenStr)
	assert.Error(t, err)
}

func TestParse_WrongIssuerOrAudience(t *testing.T) {
	tm := newTestManager(t, "test-secret")

	other, err := NewTokenManager("test-secret", "other-issuer", "sonna_frontend", time.Hour)
	require.NoError(t, err)

	user := &models.User{UserType: models.UserTypeIndividual}
	user.ID = 7

	tokenStr, err := other.Issue(user)
	require.NoError(t, err)

	_, err = tm.Parse(tokenStr)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	short, err := NewTokenManager("test-secret", "sonna_backend", "sonna_frontend", -time.Minute)
	require.NoError(t, err)

	user := &models.User{UserType: models.UserTypeIndividual}
	user.ID = 3

	tokenStr, err := short.Issue(user)
	require.NoError(t, err)

	verifier := newTestManager(t, "test-secret")
	_, err = verifier.Parse(tokenStr)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	tm := newTestManager(t, "test-secret")
	_, err := tm.Parse("not.a.token")
	assert.Error(t, err)
}
