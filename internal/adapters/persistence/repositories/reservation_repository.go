package repositories

import (
	"context"
	"errors"
	"time"

	"port-russell-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Occupancy guard errors
var (
	// ErrCatwayMissing means the reservation references a catway number
	// that does not exist.
	ErrCatwayMissing = errors.New("catway does not exist")
	// ErrIntervalConflict means the catway is already booked for an
	// overlapping [start, end) window.
	ErrIntervalConflict = errors.New("catway already reserved for an overlapping period")
)

// reservationRepository implements ReservationRepository interface
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create inserts a reservation through the occupancy guard. The whole
// check-and-insert runs in one transaction that first writes the catway
// row, taking its row lock, so two concurrent bookings of the same
// catway serialize and exactly one of an overlapping pair succeeds.
func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCatway(tx, reservation.CatwayNumber); err != nil {
			return err
		}
		free, err := intervalFree(tx, reservation, 0)
		if err != nil {
			return err
		}
		if !free {
			return ErrIntervalConflict
		}
		return tx.Create(reservation).Error
	})
}

// Update saves a reservation through the same occupancy guard,
// excluding the reservation's own row from the overlap check.
func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCatway(tx, reservation.CatwayNumber); err != nil {
			return err
		}
		free, err := intervalFree(tx, reservation, reservation.ID)
		if err != nil {
			return err
		}
		if !free {
			return ErrIntervalConflict
		}
		return tx.Save(reservation).Error
	})
}

// lockCatway takes the catway's row lock with an idempotent write. The
// write doubles as the existence check; RowsAffected 0 means no such
// catway. Portable across MySQL and SQLite, unlike SELECT ... FOR UPDATE.
func lockCatway(tx *gorm.DB, number string) error {
	result := tx.Model(&models.Catway{}).
		Where("catway_number = ?", number).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatwayMissing
	}
	return nil
}

// intervalFree reports whether [StartDate, EndDate) is free on the
// reservation's catway, ignoring the row with excludeID (0 for inserts).
// Two half-open intervals overlap iff each starts before the other ends.
func intervalFree(tx *gorm.DB, reservation *models.Reservation, excludeID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("catway_number = ? AND start_date < ? AND end_date > ? AND id <> ?",
			reservation.CatwayNumber, reservation.EndDate, reservation.StartDate, excludeID).
		Count(&count).Error
	return count == 0, err
}

// GetByID gets a reservation by ID
func (r *reservationRepository) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListByCatway lists reservations of one catway, soonest first
func (r *reservationRepository) ListByCatway(ctx context.Context, catwayNumber string) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where("catway_number = ?", catwayNumber).
		Order("start_date ASC").
		Find(&reservations).Error
	return reservations, err
}

// List lists all reservations with pagination
func (r *reservationRepository) List(ctx context.Context, offset, limit int) ([]*models.Reservation, int64, error) {
	var reservations []*models.Reservation
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error

	return reservations, total, err
}

// ListActiveByUser lists the user's reservations covering the current
// instant (the dashboard view).
func (r *reservationRepository) ListActiveByUser(ctx context.Context, userID uint) ([]*models.Reservation, error) {
	now := time.Now()
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date > ?", userID, now, now).
		Order("end_date ASC").
		Find(&reservations).Error
	return reservations, err
}

// Delete deletes a reservation by ID
func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByCatway checks whether any reservation references the catway
func (r *reservationRepository) ExistsByCatway(ctx context.Context, catwayNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).Where("catway_number = ?", catwayNumber).Count(&count).Error
	return count > 0, err
}
