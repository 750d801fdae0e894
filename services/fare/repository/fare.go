package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// FareRepo implements the fare repository interface over the fare matrix
// tables.
type FareRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFareRepository creates a new fare repository
func NewFareRepository(cfg *models.Config, db *sqlx.DB) *FareRepo {
	return &FareRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetFareEntry loads the active fare matrix entry for a booking category and
// vehicle class, including the parameter set its pricing model needs.
func (r *FareRepo) GetFareEntry(ctx context.Context, category models.BookingCategory, class models.VehicleCategory) (*models.FareEntry, error) {
	query := `
		SELECT
			id, booking_category, vehicle_category, pricing_model,
			base_fare, per_km_rate, per_minute_rate, minimum_fare, cancellation_fee,
			extra_km_rate, night_surcharge_pct,
			to_airport_fare, from_airport_fare
		FROM fare_matrix
		WHERE booking_category = $1 AND vehicle_category = $2 AND active = true
	`

	row := r.db.QueryRowContext(ctx, query, category, class)

	var (
		id                           int64
		entry                        models.FareEntry
		baseFare, minFare, cancelFee sql.NullInt64
		perKm, perMin                sql.NullFloat64
		extraKm, nightPct            sql.NullFloat64
		toAirport, fromAirport       sql.NullInt64
	)

	err := row.Scan(
		&id,
		&entry.BookingCategory,
		&entry.VehicleCategory,
		&entry.Model,
		&baseFare,
		&perKm,
		&perMin,
		&minFare,
		&cancelFee,
		&extraKm,
		&nightPct,
		&toAirport,
		&fromAirport,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.Wrap(errs.KindConfigurationMissing,
				fmt.Sprintf("no active fare entry for %s/%s", category, class), errs.ErrFareConfigMissing)
		}
		return nil, fmt.Errorf("failed to load fare entry: %w", err)
	}

	switch entry.Model {
	case models.PricingStandard:
		entry.Standard = &models.StandardRates{
			BaseFare:        int(baseFare.Int64),
			PerKmRate:       perKm.Float64,
			PerMinuteRate:   perMin.Float64,
			MinimumFare:     int(minFare.Int64),
			CancellationFee: int(cancelFee.Int64),
		}
	case models.PricingSlab:
		entry.SlabExtra = &models.SlabExtras{
			ExtraKmRate:       extraKm.Float64,
			NightSurchargePct: nightPct.Float64,
		}
		slabs, err := r.loadSlabs(ctx, id)
		if err != nil {
			return nil, err
		}
		entry.Slabs = slabs
	case models.PricingRental:
		rentals, err := r.loadRentalPackages(ctx, id)
		if err != nil {
			return nil, err
		}
		entry.Rentals = rentals
	case models.PricingAirport:
		entry.Airport = &models.AirportFares{
			ToAirport:   int(toAirport.Int64),
			FromAirport: int(fromAirport.Int64),
		}
	}

	return &entry, nil
}

// loadSlabs loads the distance-banded totals for a slab entry, ordered by
// band distance so callers can rely on the non-decreasing invariant.
func (r *FareRepo) loadSlabs(ctx context.Context, fareID int64) ([]models.SlabBand, error) {
	query := `
		SELECT up_to_km, total
		FROM fare_slabs
		WHERE fare_id = $1
		ORDER BY up_to_km ASC
	`

	rows, err := r.db.QueryContext(ctx, query, fareID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fare slabs: %w", err)
	}
	defer rows.Close()

	var slabs []models.SlabBand
	for rows.Next() {
		var band models.SlabBand
		if err := rows.Scan(&band.UpToKm, &band.Total); err != nil {
			return nil, err
		}
		slabs = append(slabs, band)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slabs, nil
}

// loadRentalPackages loads the hour-package rows for a rental entry.
func (r *FareRepo) loadRentalPackages(ctx context.Context, fareID int64) ([]models.RentalPackage, error) {
	query := `
		SELECT hours, base_fare, included_km, included_minutes,
			extra_km_rate, extra_minute_rate, discount_pct, promotional
		FROM fare_rental_packages
		WHERE fare_id = $1
		ORDER BY hours ASC
	`

	rows, err := r.db.QueryContext(ctx, query, fareID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental packages: %w", err)
	}
	defer rows.Close()

	var packages []models.RentalPackage
	for rows.Next() {
		var pkg models.RentalPackage
		if err := rows.Scan(
			&pkg.Hours,
			&pkg.BaseFare,
			&pkg.IncludedKm,
			&pkg.IncludedMinutes,
			&pkg.ExtraKmRate,
			&pkg.ExtraMinuteRate,
			&pkg.DiscountPct,
			&pkg.Promotional,
		); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
