package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret", Issuer: "school-backoffice", Expiration: time.Hour})

	token, exp, err := svc.Issue("user-1", models.RoleStaff, "Nadia")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleStaff, claims.Role)
	assert.Equal(t, "Nadia", claims.Name)
}

func TestTokenServiceRejectsForeignTokens(t *testing.T) {
	issuer := NewTokenService(TokenConfig{Secret: "other", Issuer: "school-backoffice"})
	token, _, err := issuer.Issue("user-1", models.RoleAdmin, "")
	require.NoError(t, err)

	svc := NewTokenService(TokenConfig{Secret: "secret", Issuer: "school-backoffice"})
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	wrongIssuer := NewTokenService(TokenConfig{Secret: "secret", Issuer: "elsewhere"})
	token, _, err = wrongIssuer.Issue("user-1", models.RoleAdmin, "")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenServiceExpiry(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret", Expiration: time.Minute})
	token, _, err := svc.Issue("user-1", models.RoleAdmin, "")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenServiceIssueValidation(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret"})

	_, _, err := svc.Issue("", models.RoleAdmin, "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, _, err = svc.Issue("user-1", models.Role("principal"), "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, _, err = NewTokenService(TokenConfig{}).Issue("user-1", models.RoleAdmin, "")
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}
