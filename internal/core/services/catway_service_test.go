package services

import (
	"context"
	"testing"

	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatwayService(t *testing.T) (*CatwayService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCatwayService(
		repositories.NewCatwayRepository(db),
		repositories.NewReservationRepository(db),
	), db
}

func TestCreateCatway(t *testing.T) {
	svc, _ := newCatwayService(t)
	ctx := context.Background()

	catway, err := svc.Create(ctx, &CreateCatwayInput{
		CatwayNumber: "A12",
		CatwayType:   "long",
		CatwayState:  "bon état",
	})
	require.NoError(t, err)
	assert.Equal(t, "A12", catway.CatwayNumber)
	assert.Equal(t, "long", catway.CatwayType)

	fetched, err := svc.GetByNumber(ctx, "A12")
	require.NoError(t, err)
	assert.Equal(t, catway.ID, fetched.ID)
}

func TestCreateCatwayInvalidType(t *testing.T) {
	svc, _ := newCatwayService(t)

	tests := []string{"", "medium", "LONGISH"}
	for _, typ := range tests {
		t.Run("type "+typ, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &CreateCatwayInput{
				CatwayNumber: "B1",
				CatwayType:   typ,
				CatwayState:  "bon état",
			})
			assert.ErrorIs(t, err, domain.ErrInvalidCatwayType)
		})
	}
}

func TestCreateCatwayNormalizesType(t *testing.T) {
	svc, _ := newCatwayService(t)

	catway, err := svc.Create(context.Background(), &CreateCatwayInput{
		CatwayNumber: "C3",
		CatwayType:   " Short ",
		CatwayState:  "bon état",
	})
	require.NoError(t, err)
	assert.Equal(t, "short", catway.CatwayType)
}

func TestCreateCatwayDuplicateNumber(t *testing.T) {
	svc, _ := newCatwayService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A12", CatwayType: "long", CatwayState: "bon état"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A12", CatwayType: "short", CatwayState: "neuf"})
	assert.ErrorIs(t, err, domain.ErrCatwayExists)
}

func TestGetCatwayNotFound(t *testing.T) {
	svc, _ := newCatwayService(t)
	_, err := svc.GetByNumber(context.Background(), "Z99")
	assert.ErrorIs(t, err, domain.ErrCatwayNotFound)
}

func TestUpdateCatwayState(t *testing.T) {
	svc, _ := newCatwayService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A12", CatwayType: "long", CatwayState: "bon état"})
	require.NoError(t, err)

	updated, err := svc.UpdateState(ctx, "A12", "planche abîmée")
	require.NoError(t, err)
	assert.Equal(t, "planche abîmée", updated.CatwayState)

	// Number and type survive the write untouched.
	assert.Equal(t, created.CatwayNumber, updated.CatwayNumber)
	assert.Equal(t, created.CatwayType, updated.CatwayType)
}

func TestUpdateCatwayStateValidation(t *testing.T) {
	svc, _ := newCatwayService(t)
	ctx := context.Background()

	_, err := svc.UpdateState(ctx, "Z99", "neuf")
	assert.ErrorIs(t, err, domain.ErrCatwayNotFound)

	_, err = svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A1", CatwayType: "long", CatwayState: "bon état"})
	require.NoError(t, err)
	_, err = svc.UpdateState(ctx, "A1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteCatway(t *testing.T) {
	svc, _ := newCatwayService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A12", CatwayType: "long", CatwayState: "bon état"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "A12"))
	_, err = svc.GetByNumber(ctx, "A12")
	assert.ErrorIs(t, err, domain.ErrCatwayNotFound)
}

func TestDeleteCatwayNotFound(t *testing.T) {
	svc, _ := newCatwayService(t)
	err := svc.Delete(context.Background(), "Z99")
	assert.ErrorIs(t, err, domain.ErrCatwayNotFound)
}

func TestDeleteCatwayRefusedWhileReferenced(t *testing.T) {
	svc, db := newCatwayService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateCatwayInput{CatwayNumber: "A12", CatwayType: "long", CatwayState: "bon état"})
	require.NoError(t, err)

	resSvc := NewReservationService(repositories.NewReservationRepository(db))
	_, err = resSvc.Create(ctx, "A12", 1, &CreateReservationInput{
		ClientName: "Jean Dupont",
		BoatName:   "La Marinière",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-10",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, "A12")
	assert.ErrorIs(t, err, domain.ErrCatwayReferenced)

	// Still there.
	_, err = svc.GetByNumber(ctx, "A12")
	assert.NoError(t, err)
}
