package usecase

import (
	"context"
	"time"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg  *models.Config
	repo location.LocationRepo
	gw   location.LocationGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, repo location.LocationRepo, gw location.LocationGW) *LocationUC {
	return &LocationUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// StartTracking obtains a one-shot fix and, on success, starts the session's
// two emission triggers: the source's continuous watch channel and a fixed
// 10 second resample timer that bounds staleness when the watcher goes
// quiet. Both triggers upsert the same single-row position record.
func (uc *LocationUC) StartTracking(ctx context.Context, driverID string, src location.PositionSource) (*location.Session, error) {
	fix, err := src.Fix(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.KindLocationUnavailable, "initial position fix failed", errs.ErrLocationUnavailable)
	}

	if err := uc.ReportPosition(ctx, driverID, fix); err != nil {
		return nil, err
	}

	sessionCtx, cancel := context.WithCancel(context.Background())

	watch, err := src.Watch(sessionCtx)
	if err != nil {
		cancel()
		return nil, errs.Wrap(errs.KindLocationUnavailable, "position watch failed", errs.ErrLocationUnavailable)
	}

	session := location.NewSession(driverID, cancel, *fix)

	go uc.run(sessionCtx, session, src, watch)

	logger.Info("tracking session started", logger.Fields{"driver_id": driverID})
	return session, nil
}

// run drives the two emission triggers until the session is stopped.
func (uc *LocationUC) run(ctx context.Context, session *location.Session, src location.PositionSource, watch <-chan models.PositionFix) {
	defer session.Close()

	interval := time.Duration(uc.cfg.Tracking.ReportInterval) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastReport := time.Now()

	for {
		select {
		case <-ctx.Done():
			return

		case fix, ok := <-watch:
			if !ok {
				// Watcher gone; the timer keeps the record fresh.
				watch = nil
				continue
			}
			if !uc.shouldEmit(session.LastFix(), fix, lastReport) {
				continue
			}
			session.SetLastFix(fix)
			if err := uc.ReportPosition(ctx, session.DriverID, &fix); err != nil {
				logger.Warn("listener position report failed", logger.Fields{"driver_id": session.DriverID, "error": err.Error()})
				continue
			}
			lastReport = time.Now()

		case <-ticker.C:
			// Resample even if the listener has not fired, so staleness is
			// bounded regardless of delivery gaps.
			fix := session.LastFix()
			if fresh, err := src.Fix(ctx); err == nil {
				fix = *fresh
				session.SetLastFix(fix)
			}
			fix.Timestamp = time.Now()
			if err := uc.ReportPosition(ctx, session.DriverID, &fix); err != nil {
				logger.Warn("timer position report failed", logger.Fields{"driver_id": session.DriverID, "error": err.Error()})
				continue
			}
			lastReport = time.Now()
		}
	}
}

// shouldEmit applies the listener's distance-delta or time-delta threshold.
func (uc *LocationUC) shouldEmit(prev, next models.PositionFix, lastReport time.Time) bool {
	moved := utils.DistanceKm(
		models.Coord{Latitude: prev.Latitude, Longitude: prev.Longitude},
		models.Coord{Latitude: next.Latitude, Longitude: next.Longitude},
	) * 1000.0
	if moved >= uc.cfg.Tracking.MinMoveMeters {
		return true
	}
	return time.Since(lastReport) >= time.Duration(uc.cfg.Tracking.MinReportSeconds)*time.Second
}

// StopTracking cancels both triggers and waits for the session loop to
// drain. The last-known position is left in place until the next report or
// driver removal.
func (uc *LocationUC) StopTracking(session *location.Session) {
	if session == nil {
		return
	}
	session.Cancel()
	<-session.Done()
	logger.Info("tracking session stopped", logger.Fields{"driver_id": session.DriverID})
}

// ReportOnce performs one immediate report from the session's last known
// fix, bypassing both triggers. Diagnostic path.
func (uc *LocationUC) ReportOnce(ctx context.Context, session *location.Session) error {
	fix := session.LastFix()
	fix.Timestamp = time.Now()
	return uc.ReportPosition(ctx, session.DriverID, &fix)
}

// ReportPosition validates and stores a single position report and emits the
// change-feed event subscribers rely on.
func (uc *LocationUC) ReportPosition(ctx context.Context, driverID string, fix *models.PositionFix) error {
	coord := models.Coord{Latitude: fix.Latitude, Longitude: fix.Longitude}
	if !utils.ValidCoord(coord) {
		return errs.Wrap(errs.KindInvalidInput, "malformed coordinates", errs.ErrInvalidParameter)
	}

	ts := fix.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	pos := &models.LivePosition{
		DriverID:  driverID,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Heading:   fix.Heading,
		SpeedKmh:  fix.SpeedKmh,
		Accuracy:  fix.Accuracy,
		Geohash:   utils.EncodeLocation(coord),
		UpdatedAt: ts,
	}

	if err := uc.repo.UpsertPosition(ctx, pos); err != nil {
		return err
	}

	event := &models.LocationUpdateEvent{
		DriverID:  driverID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Geohash:   pos.Geohash,
		UpdatedAt: pos.UpdatedAt,
	}
	if err := uc.gw.PublishLocationUpdate(event); err != nil {
		// The stored position is the source of truth; a missed feed event
		// is logged, not fatal.
		logger.Warn("failed to publish location update", logger.Fields{"driver_id": driverID, "error": err.Error()})
	}

	return nil
}

// GetPosition returns the driver's last-known position.
func (uc *LocationUC) GetPosition(ctx context.Context, driverID string) (*models.LivePosition, error) {
	return uc.repo.GetPosition(ctx, driverID)
}
