package services

import (
	"context"
	"path/filepath"
	"testing"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway file-backed SQLite database. A file (not
// :memory:) so concurrent connections in the overlap tests see the same
// database; busy_timeout makes the second writer wait out the first
// transaction instead of failing.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "unit-test-secret",
			SessionTokenDays: 3,
			APITokenDays:     30,
		},
	}
}

func seedCatway(t *testing.T, db *gorm.DB, number string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Catway{
		CatwayNumber: number,
		CatwayType:   models.CatwayTypeLong,
		CatwayState:  "bon état",
	}).Error)
}

func newReservationService(t *testing.T) (*ReservationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewReservationService(repositories.NewReservationRepository(db)), db
}

func registerTestUser(t *testing.T, svc *AuthService, username, email string) *models.UserResponse {
	t.Helper()
	user, err := svc.Register(context.Background(), &RegisterInput{
		Username: username,
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user
}
