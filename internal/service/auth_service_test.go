package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-helpdesk/helpdesk/internal/config"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 5
	cfg.Auth.BcryptCost = 4 // min cost keeps tests fast
	return NewAuthService(cfg, users), users
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc, _ := newAuthFixture()

	user, token, expiresAt, err := svc.Register(context.Background(), "Jo", "jo@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "secret")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Jo Again", "jo@example.com", "other")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	_, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "secret")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "jo@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	_, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "secret")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "jo@example.com", "wrong")
	assert.Error(t, err)

	_, _, _, err = svc.Login(context.Background(), "nobody@example.com", "secret")
	assert.Error(t, err)
}
