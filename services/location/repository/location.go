package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ataxihosur/dispatch/internal/pkg/constants"
	"github.com/ataxihosur/dispatch/internal/pkg/database"
	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// LocationRepo implements the location.LocationRepo interface backed by
// Redis. Each driver has one hash record plus a membership in the shared
// GEO set used for proximity queries.
type LocationRepo struct {
	redis *database.RedisClient
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(redis *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		redis: redis,
	}
}

// UpsertPosition overwrites the driver's position record. Last-writer-wins
// by UpdatedAt: a report older than the stored record is dropped without
// error.
func (r *LocationRepo) UpsertPosition(ctx context.Context, pos *models.LivePosition) error {
	key := fmt.Sprintf(constants.KeyDriverPosition, pos.DriverID)

	existing, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read stored position: %w", err)
	}
	if stored, ok := existing[constants.FieldUpdatedAt]; ok {
		storedAt, perr := time.Parse(time.RFC3339Nano, stored)
		if perr == nil && pos.UpdatedAt.Before(storedAt) {
			logger.Debug("dropping stale position report", logger.Fields{
				"driver_id": pos.DriverID,
				"report_at": pos.UpdatedAt,
				"stored_at": storedAt,
			})
			return nil
		}
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  pos.Latitude,
		constants.FieldLongitude: pos.Longitude,
		constants.FieldHeading:   pos.Heading,
		constants.FieldSpeed:     pos.SpeedKmh,
		constants.FieldAccuracy:  pos.Accuracy,
		constants.FieldGeohash:   pos.Geohash,
		constants.FieldUpdatedAt: pos.UpdatedAt.Format(time.RFC3339Nano),
	}
	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store position: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, pos.Longitude, pos.Latitude, pos.DriverID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// GetPosition returns the driver's last-known position.
func (r *LocationRepo) GetPosition(ctx context.Context, driverID string) (*models.LivePosition, error) {
	key := fmt.Sprintf(constants.KeyDriverPosition, driverID)

	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read position: %w", err)
	}
	if len(fields) == 0 {
		return nil, errs.Wrap(errs.KindNotFound, fmt.Sprintf("no position for driver %s", driverID), errs.ErrLocationUnavailable)
	}

	pos := &models.LivePosition{
		DriverID: driverID,
		Geohash:  fields[constants.FieldGeohash],
	}
	pos.Latitude, _ = strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	pos.Longitude, _ = strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	pos.Heading, _ = strconv.ParseFloat(fields[constants.FieldHeading], 64)
	pos.SpeedKmh, _ = strconv.ParseFloat(fields[constants.FieldSpeed], 64)
	pos.Accuracy, _ = strconv.ParseFloat(fields[constants.FieldAccuracy], 64)
	if at, perr := time.Parse(time.RFC3339Nano, fields[constants.FieldUpdatedAt]); perr == nil {
		pos.UpdatedAt = at
	}

	return pos, nil
}

// DeletePosition removes the driver's position record and geo membership.
func (r *LocationRepo) DeletePosition(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverPosition, driverID)

	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove geo membership: %w", err)
	}
	return nil
}
