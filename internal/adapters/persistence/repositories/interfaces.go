package repositories

import (
	"context"

	"port-russell-api/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CatwayRepository defines catway repository interface
type CatwayRepository interface {
	Create(ctx context.Context, catway *models.Catway) error
	GetByNumber(ctx context.Context, number string) (*models.Catway, error)
	List(ctx context.Context) ([]*models.Catway, error)
	UpdateState(ctx context.Context, number, state string) (*models.Catway, error)
	Delete(ctx context.Context, number string) error
	Exists(ctx context.Context, number string) (bool, error)
}

// ReservationRepository defines reservation repository interface.
// Create and Update are the only writers and both go through the
// occupancy guard, so an interval can never be double-booked.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	ListByCatway(ctx context.Context, catwayNumber string) ([]*models.Reservation, error)
	List(ctx context.Context, offset, limit int) ([]*models.Reservation, int64, error)
	ListActiveByUser(ctx context.Context, userID uint) ([]*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id uint) error
	ExistsByCatway(ctx context.Context, catwayNumber string) (bool, error)
}
