package services

import (
	"context"
	"testing"
	"time"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db), testConfig())
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Username: "capitaine",
		Email:    "capitaine@port-russell.fr",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "capitaine", user.Username)
	assert.Equal(t, "capitaine@port-russell.fr", user.Email)
	assert.NotZero(t, user.ID)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db), testConfig())

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "capitaine",
		Email:    "capitaine@port-russell.fr",
		Password: "supersecret",
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "capitaine").First(&stored).Error)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Username: "capitaine",
		Email:    "capitaine@port-russell.fr",
		Password: "short",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, svc, "capitaine", "capitaine@port-russell.fr")

	_, err := svc.Register(ctx, &RegisterInput{
		Username: "capitaine",
		Email:    "autre@port-russell.fr",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(ctx, &RegisterInput{
		Username: "autre",
		Email:    "capitaine@port-russell.fr",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc, "capitaine", "capitaine@port-russell.fr")

	resp, err := svc.Login(ctx, &LoginInput{
		Email:    "capitaine@port-russell.fr",
		Password: "supersecret",
	}, svc.APITTL())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	claims, err := token.Validate(resp.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	registerTestUser(t, svc, "capitaine", "capitaine@port-russell.fr")

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"wrong password", LoginInput{Email: "capitaine@port-russell.fr", Password: "wrongpass"}},
		{"unknown email", LoginInput{Email: "nobody@port-russell.fr", Password: "supersecret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, &tt.input, svc.APITTL())
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestTokenTTLs(t *testing.T) {
	svc := newAuthService(t)
	assert.Equal(t, 3*24*time.Hour, svc.SessionTTL())
	assert.Equal(t, 30*24*time.Hour, svc.APITTL())
}

func TestGetUserByID(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc, "capitaine", "capitaine@port-russell.fr")

	user, err := svc.GetUserByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "capitaine", user.Username)

	_, err = svc.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
