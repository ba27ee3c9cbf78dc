package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/core/domain"

	"gorm.io/gorm"
)

// ReservationService handles reservation business logic
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
}

// NewReservationService creates a new reservation service
func NewReservationService(reservationRepo repositories.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

// CreateReservationInput represents reservation creation input
type CreateReservationInput struct {
	ClientName string `json:"client_name"`
	BoatName   string `json:"boat_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// UpdateReservationInput is the allow-list of mutable reservation
// fields. The catway and the owning user are fixed at creation.
type UpdateReservationInput struct {
	ClientName *string `json:"client_name"`
	BoatName   *string `json:"boat_name"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// Create books a catway. Date order is validated here; existence of the
// catway and freedom of the interval are validated atomically by the
// repository's occupancy guard, so two concurrent overlapping bookings
// cannot both succeed.
func (s *ReservationService) Create(ctx context.Context, catwayNumber string, userID uint, input *CreateReservationInput) (*models.Reservation, error) {
	if strings.TrimSpace(input.ClientName) == "" || strings.TrimSpace(input.BoatName) == "" {
		return nil, domain.ErrInvalidInput
	}

	start, err := ParseDate(input.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := ParseDate(input.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrDatesOutOfOrder
	}

	reservation := &models.Reservation{
		CatwayNumber: catwayNumber,
		ClientName:   strings.TrimSpace(input.ClientName),
		BoatName:     strings.TrimSpace(input.BoatName),
		StartDate:    start,
		EndDate:      end,
		UserID:       userID,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCatwayMissing):
			return nil, domain.ErrCatwayNotFound
		case errors.Is(err, repositories.ErrIntervalConflict):
			return nil, domain.ErrCatwayUnavailable
		default:
			return nil, err
		}
	}

	return reservation, nil
}

// ListByCatway lists reservations for one catway
func (s *ReservationService) ListByCatway(ctx context.Context, catwayNumber string) ([]*models.Reservation, error) {
	return s.reservationRepo.ListByCatway(ctx, catwayNumber)
}

// List lists all reservations with pagination
func (s *ReservationService) List(ctx context.Context, offset, limit int) ([]*models.Reservation, int64, error) {
	return s.reservationRepo.List(ctx, offset, limit)
}

// ListActiveByUser lists the user's currently running reservations
func (s *ReservationService) ListActiveByUser(ctx context.Context, userID uint) ([]*models.Reservation, error) {
	return s.reservationRepo.ListActiveByUser(ctx, userID)
}

// GetByID gets one reservation, scoped to the catway in the request
// path; an ID that exists under another catway is a not-found here.
func (s *ReservationService) GetByID(ctx context.Context, catwayNumber string, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	if reservation.CatwayNumber != catwayNumber {
		return nil, domain.ErrReservationNotFound
	}
	return reservation, nil
}

// Update edits a reservation through the allow-list, re-validating date
// order and re-running the occupancy guard with the reservation's own
// row excluded.
func (s *ReservationService) Update(ctx context.Context, catwayNumber string, id uint, input *UpdateReservationInput) (*models.Reservation, error) {
	reservation, err := s.GetByID(ctx, catwayNumber, id)
	if err != nil {
		return nil, err
	}

	if input.ClientName != nil && strings.TrimSpace(*input.ClientName) != "" {
		reservation.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.BoatName != nil && strings.TrimSpace(*input.BoatName) != "" {
		reservation.BoatName = strings.TrimSpace(*input.BoatName)
	}
	if input.StartDate != nil {
		start, err := ParseDate(*input.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		reservation.StartDate = start
	}
	if input.EndDate != nil {
		end, err := ParseDate(*input.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		reservation.EndDate = end
	}

	if !reservation.EndDate.After(reservation.StartDate) {
		return nil, domain.ErrDatesOutOfOrder
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCatwayMissing):
			return nil, domain.ErrCatwayNotFound
		case errors.Is(err, repositories.ErrIntervalConflict):
			return nil, domain.ErrCatwayUnavailable
		default:
			return nil, err
		}
	}

	return reservation, nil
}

// Delete cancels a reservation
func (s *ReservationService) Delete(ctx context.Context, catwayNumber string, id uint) error {
	if _, err := s.GetByID(ctx, catwayNumber, id); err != nil {
		return err
	}
	return s.reservationRepo.Delete(ctx, id)
}
