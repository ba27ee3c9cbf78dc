package services

import (
	"context"
	"errors"
	"strings"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/core/domain"

	"gorm.io/gorm"
)

// CatwayService handles catway business logic
type CatwayService struct {
	catwayRepo      repositories.CatwayRepository
	reservationRepo repositories.ReservationRepository
}

// NewCatwayService creates a new catway service
func NewCatwayService(
	catwayRepo repositories.CatwayRepository,
	reservationRepo repositories.ReservationRepository,
) *CatwayService {
	return &CatwayService{
		catwayRepo:      catwayRepo,
		reservationRepo: reservationRepo,
	}
}

// CreateCatwayInput represents catway creation input
type CreateCatwayInput struct {
	CatwayNumber string `json:"catway_number"`
	CatwayType   string `json:"catway_type"`
	CatwayState  string `json:"catway_state"`
}

// Create creates a catway. A duplicate number is a validation outcome,
// not a server failure.
func (s *CatwayService) Create(ctx context.Context, input *CreateCatwayInput) (*models.Catway, error) {
	catwayType := strings.ToLower(strings.TrimSpace(input.CatwayType))
	if catwayType != models.CatwayTypeLong && catwayType != models.CatwayTypeShort {
		return nil, domain.ErrInvalidCatwayType
	}

	catway := &models.Catway{
		CatwayNumber: strings.TrimSpace(input.CatwayNumber),
		CatwayType:   catwayType,
		CatwayState:  input.CatwayState,
	}

	if err := s.catwayRepo.Create(ctx, catway); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCatwayExists
		}
		return nil, err
	}

	return catway, nil
}

// List lists all catways
func (s *CatwayService) List(ctx context.Context) ([]*models.Catway, error) {
	return s.catwayRepo.List(ctx)
}

// GetByNumber gets a catway by its business number
func (s *CatwayService) GetByNumber(ctx context.Context, number string) (*models.Catway, error) {
	catway, err := s.catwayRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCatwayNotFound
		}
		return nil, err
	}
	return catway, nil
}

// UpdateState updates a catway's state. Number and type are immutable;
// this is the only write the update endpoint performs.
func (s *CatwayService) UpdateState(ctx context.Context, number, state string) (*models.Catway, error) {
	if strings.TrimSpace(state) == "" {
		return nil, domain.ErrInvalidInput
	}

	catway, err := s.catwayRepo.UpdateState(ctx, number, state)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCatwayNotFound
		}
		return nil, err
	}
	return catway, nil
}

// Delete decommissions a catway. Refused while any reservation still
// references the number, past or future, so bookings never dangle.
func (s *CatwayService) Delete(ctx context.Context, number string) error {
	referenced, err := s.reservationRepo.ExistsByCatway(ctx, number)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrCatwayReferenced
	}

	if err := s.catwayRepo.Delete(ctx, number); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCatwayNotFound
		}
		return err
	}
	return nil
}
