package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func entryColumns() []string {
	return []string{
		"id", "booking_category", "vehicle_category", "pricing_model",
		"base_fare", "per_km_rate", "per_minute_rate", "minimum_fare", "cancellation_fee",
		"extra_km_rate", "night_surcharge_pct",
		"to_airport_fare", "from_airport_fare",
	}
}

func TestGetFareEntry_Standard(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFareRepository(&models.Config{}, db)

	rows := sqlmock.NewRows(entryColumns()).
		AddRow(1, "regular", "sedan", "standard", 50, 12.0, 2.0, 100, 60, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM fare_matrix").
		WithArgs(models.BookingRegular, models.VehicleSedan).
		WillReturnRows(rows)

	entry, err := repo.GetFareEntry(context.Background(), models.BookingRegular, models.VehicleSedan)

	require.NoError(t, err)
	require.NotNil(t, entry.Standard)
	assert.Equal(t, 50, entry.Standard.BaseFare)
	assert.Equal(t, 12.0, entry.Standard.PerKmRate)
	assert.Equal(t, 100, entry.Standard.MinimumFare)
	assert.Equal(t, 60, entry.Standard.CancellationFee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFareEntry_SlabLoadsBands(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFareRepository(&models.Config{}, db)

	entryRows := sqlmock.NewRows(entryColumns()).
		AddRow(7, "outstation", "sedan", "slab", nil, nil, nil, nil, nil, 14.0, 10.0, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM fare_matrix").
		WithArgs(models.BookingOutstation, models.VehicleSedan).
		WillReturnRows(entryRows)

	slabRows := sqlmock.NewRows([]string{"up_to_km", "total"}).
		AddRow(10, 350).
		AddRow(50, 1200).
		AddRow(100, 2200)

	mock.ExpectQuery("SELECT up_to_km, total(.+)FROM fare_slabs").
		WithArgs(int64(7)).
		WillReturnRows(slabRows)

	entry, err := repo.GetFareEntry(context.Background(), models.BookingOutstation, models.VehicleSedan)

	require.NoError(t, err)
	require.Len(t, entry.Slabs, 3)
	assert.Equal(t, 100, entry.Slabs[2].UpToKm)
	assert.Equal(t, 2200, entry.Slabs[2].Total)
	require.NotNil(t, entry.SlabExtra)
	assert.Equal(t, 14.0, entry.SlabExtra.ExtraKmRate)

	// The banded totals arrive non-decreasing in distance.
	for i := 1; i < len(entry.Slabs); i++ {
		assert.GreaterOrEqual(t, entry.Slabs[i].Total, entry.Slabs[i-1].Total)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFareEntry_RentalLoadsPackages(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFareRepository(&models.Config{}, db)

	entryRows := sqlmock.NewRows(entryColumns()).
		AddRow(3, "rental", "sedan", "rental", nil, nil, nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM fare_matrix").
		WithArgs(models.BookingRental, models.VehicleSedan).
		WillReturnRows(entryRows)

	pkgRows := sqlmock.NewRows([]string{
		"hours", "base_fare", "included_km", "included_minutes",
		"extra_km_rate", "extra_minute_rate", "discount_pct", "promotional",
	}).
		AddRow(4, 925, 40.0, 240, 17.0, 2.0, 0.0, false).
		AddRow(8, 1800, 80.0, 480, 17.0, 2.0, 0.0, false)

	mock.ExpectQuery("SELECT hours, base_fare(.+)FROM fare_rental_packages").
		WithArgs(int64(3)).
		WillReturnRows(pkgRows)

	entry, err := repo.GetFareEntry(context.Background(), models.BookingRental, models.VehicleSedan)

	require.NoError(t, err)
	require.Len(t, entry.Rentals, 2)
	assert.Equal(t, 925, entry.Rentals[0].BaseFare)
	assert.Equal(t, 40.0, entry.Rentals[0].IncludedKm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFareEntry_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFareRepository(&models.Config{}, db)

	mock.ExpectQuery("SELECT(.+)FROM fare_matrix").
		WithArgs(models.BookingAirport, models.VehicleSUV).
		WillReturnRows(sqlmock.NewRows(entryColumns()))

	_, err := repo.GetFareEntry(context.Background(), models.BookingAirport, models.VehicleSUV)

	assert.True(t, errors.Is(err, errs.ErrFareConfigMissing))
	assert.NoError(t, mock.ExpectationsWereMet())
}
