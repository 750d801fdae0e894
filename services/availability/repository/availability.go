package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ataxihosur/dispatch/internal/pkg/constants"
	"github.com/ataxihosur/dispatch/internal/pkg/database"
	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// AvailabilityRepo implements the availability repository interface over the
// driver and trip tables plus the redis position index.
type AvailabilityRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewAvailabilityRepo creates a new availability repository
func NewAvailabilityRepo(db *sqlx.DB, redis *database.RedisClient) *AvailabilityRepo {
	return &AvailabilityRepo{
		db:    db,
		redis: redis,
	}
}

// ListCandidateDrivers returns online, verified drivers, optionally
// restricted to a vehicle category.
func (r *AvailabilityRepo) ListCandidateDrivers(ctx context.Context, category models.VehicleCategory) ([]models.Driver, error) {
	query := `
		SELECT d.id, d.full_name, d.phone, d.status, d.is_verified, d.rating,
			d.total_trips, d.vehicle_id, d.created_at, d.updated_at
		FROM drivers d
		WHERE d.status = 'online' AND d.is_verified = true
	`
	args := []interface{}{}
	if category != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM vehicles v WHERE v.id = d.vehicle_id AND v.category = $1
		)`
		args = append(args, category)
	}

	var drivers []models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, r.wrapTimeout(ctx, fmt.Errorf("failed to list candidate drivers: %w", err))
	}
	return drivers, nil
}

// ListBusyDriverIDs returns the IDs of drivers bound to a non-terminal trip
// in either trip table.
func (r *AvailabilityRepo) ListBusyDriverIDs(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	query := `
		SELECT driver_id FROM trips
		WHERE driver_id IS NOT NULL
			AND status IN ('accepted', 'driver_arrived', 'in_progress')
		UNION
		SELECT driver_id FROM scheduled_trips
		WHERE driver_id IS NOT NULL
			AND status IN ('assigned', 'confirmed', 'driver_arrived', 'in_progress')
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, r.wrapTimeout(ctx, fmt.Errorf("failed to list busy drivers: %w", err))
	}

	busy := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		busy[id] = struct{}{}
	}
	return busy, nil
}

// GetPositions returns last-known coordinates from the driver geo set.
// Drivers with no stored position are absent from the result.
func (r *AvailabilityRepo) GetPositions(ctx context.Context, driverIDs []string) (map[string]models.Coord, error) {
	if len(driverIDs) == 0 {
		return map[string]models.Coord{}, nil
	}

	positions, err := r.redis.GeoPos(ctx, constants.KeyDriverGeo, driverIDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver positions: %w", err)
	}

	coords := make(map[string]models.Coord, len(driverIDs))
	for i, pos := range positions {
		if pos == nil {
			continue
		}
		coords[driverIDs[i]] = models.Coord{Latitude: pos.Latitude, Longitude: pos.Longitude}
	}
	return coords, nil
}

// CountDriversByStatus counts drivers currently in the given status.
func (r *AvailabilityRepo) CountDriversByStatus(ctx context.Context, status models.DriverStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM drivers WHERE status = $1`, status)
	if err != nil {
		return 0, r.wrapTimeout(ctx, fmt.Errorf("failed to count drivers: %w", err))
	}
	return count, nil
}

// CountOpenTrips counts non-terminal trips across both trip tables.
func (r *AvailabilityRepo) CountOpenTrips(ctx context.Context) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trips WHERE status NOT IN ('completed', 'cancelled')) +
			(SELECT COUNT(*) FROM scheduled_trips WHERE status NOT IN ('completed', 'cancelled'))
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, r.wrapTimeout(ctx, fmt.Errorf("failed to count open trips: %w", err))
	}
	return count, nil
}

// wrapTimeout marks deadline-driven failures so callers can tell a slow
// store from a broken one.
func (r *AvailabilityRepo) wrapTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.Wrap(errs.KindUpstreamTimeout, err.Error(), errs.ErrUpstreamTimeout)
	}
	return err
}
