package repositories

import (
	"context"

	"port-russell-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// catwayRepository implements CatwayRepository interface
type catwayRepository struct {
	db *gorm.DB
}

// NewCatwayRepository creates a new catway repository
func NewCatwayRepository(db *gorm.DB) CatwayRepository {
	return &catwayRepository{db: db}
}

// Create creates a new catway. A duplicate catway number surfaces as
// gorm.ErrDuplicatedKey via TranslateError.
func (r *catwayRepository) Create(ctx context.Context, catway *models.Catway) error {
	return r.db.WithContext(ctx).Create(catway).Error
}

// GetByNumber gets a catway by its business number
func (r *catwayRepository) GetByNumber(ctx context.Context, number string) (*models.Catway, error) {
	var catway models.Catway
	err := r.db.WithContext(ctx).Where("catway_number = ?", number).First(&catway).Error
	if err != nil {
		return nil, err
	}
	return &catway, nil
}

// List lists all catways ordered by number
func (r *catwayRepository) List(ctx context.Context) ([]*models.Catway, error) {
	var catways []*models.Catway
	err := r.db.WithContext(ctx).Order("catway_number ASC").Find(&catways).Error
	return catways, err
}

// UpdateState updates the state of a catway. Number and type stay as
// created; state is the only mutable column.
func (r *catwayRepository) UpdateState(ctx context.Context, number, state string) (*models.Catway, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Catway{}).
		Where("catway_number = ?", number).
		Update("catway_state", state)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByNumber(ctx, number)
}

// Delete deletes a catway by number
func (r *catwayRepository) Delete(ctx context.Context, number string) error {
	result := r.db.WithContext(ctx).Where("catway_number = ?", number).Delete(&models.Catway{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks if a catway number exists
func (r *catwayRepository) Exists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Catway{}).Where("catway_number = ?", number).Count(&count).Error
	return count > 0, err
}
