package services

import (
	"context"
	"testing"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserServices(t *testing.T) (*UserService, *AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	return NewUserService(userRepo), NewAuthService(userRepo, testConfig()), db
}

func TestListUsers(t *testing.T) {
	userSvc, authSvc, _ := newUserServices(t)
	ctx := context.Background()
	registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")
	registerTestUser(t, authSvc, "second", "second@port-russell.fr")

	out, err := userSvc.ListUsers(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Len(t, out.Users, 2)
}

func TestGetUserByEmail(t *testing.T) {
	userSvc, authSvc, _ := newUserServices(t)
	ctx := context.Background()
	registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")

	user, err := userSvc.GetUserByEmail(ctx, "capitaine@port-russell.fr")
	require.NoError(t, err)
	assert.Equal(t, "capitaine", user.Username)

	_, err = userSvc.GetUserByEmail(ctx, "nobody@port-russell.fr")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	userSvc, authSvc, _ := newUserServices(t)
	ctx := context.Background()
	registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")

	newName := "harbormaster"
	updated, err := userSvc.UpdateUser(ctx, "capitaine@port-russell.fr", &UpdateUserInput{
		Username: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "harbormaster", updated.Username)
	assert.Equal(t, "capitaine@port-russell.fr", updated.Email)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	userSvc, authSvc, db := newUserServices(t)
	ctx := context.Background()
	registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")

	var before models.User
	require.NoError(t, db.Where("username = ?", "capitaine").First(&before).Error)

	newPassword := "a-brand-new-password"
	_, err := userSvc.UpdateUser(ctx, "capitaine@port-russell.fr", &UpdateUserInput{
		Password: &newPassword,
	})
	require.NoError(t, err)

	var after models.User
	require.NoError(t, db.Where("username = ?", "capitaine").First(&after).Error)
	assert.NotEqual(t, before.Password, after.Password)
	assert.NotEqual(t, newPassword, after.Password)

	// The old password stops working, the new one logs in.
	_, err = authSvc.Login(ctx, &LoginInput{Email: "capitaine@port-russell.fr", Password: "supersecret"}, authSvc.APITTL())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = authSvc.Login(ctx, &LoginInput{Email: "capitaine@port-russell.fr", Password: newPassword}, authSvc.APITTL())
	assert.NoError(t, err)
}

func TestUpdateUserRejectsTakenIdentifiers(t *testing.T) {
	userSvc, authSvc, _ := newUserServices(t)
	ctx := context.Background()
	registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")
	registerTestUser(t, authSvc, "second", "second@port-russell.fr")

	taken := "capitaine"
	_, err := userSvc.UpdateUser(ctx, "second@port-russell.fr", &UpdateUserInput{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	takenEmail := "capitaine@port-russell.fr"
	_, err = userSvc.UpdateUser(ctx, "second@port-russell.fr", &UpdateUserInput{Email: &takenEmail})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateUserNotFound(t *testing.T) {
	userSvc, _, _ := newUserServices(t)

	name := "anyone"
	_, err := userSvc.UpdateUser(context.Background(), "nobody@port-russell.fr", &UpdateUserInput{Username: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserKeepsReservations(t *testing.T) {
	userSvc, authSvc, db := newUserServices(t)
	ctx := context.Background()
	owner := registerTestUser(t, authSvc, "capitaine", "capitaine@port-russell.fr")

	seedCatway(t, db, "A1")
	resSvc := NewReservationService(repositories.NewReservationRepository(db))
	_, err := resSvc.Create(ctx, "A1", owner.ID, &CreateReservationInput{
		ClientName: "Jean Dupont",
		BoatName:   "La Marinière",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-10",
	})
	require.NoError(t, err)

	require.NoError(t, userSvc.DeleteUser(ctx, "capitaine@port-russell.fr"))

	_, err = userSvc.GetUserByEmail(ctx, "capitaine@port-russell.fr")
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserNotFound(t *testing.T) {
	userSvc, _, _ := newUserServices(t)
	err := userSvc.DeleteUser(context.Background(), "nobody@port-russell.fr")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
