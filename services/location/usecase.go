package location

import (
	"context"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// PositionSource obtains position fixes from a driver client's location
// hardware. Fix performs a one-shot fix; Watch delivers fixes continuously
// until ctx is cancelled.
type PositionSource interface {
	Fix(ctx context.Context) (*models.PositionFix, error)
	Watch(ctx context.Context) (<-chan models.PositionFix, error)
}

// LocationUC defines the interface for location tracking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ataxihosur/dispatch/services/location LocationUC
type LocationUC interface {
	// StartTracking obtains an initial fix and starts the tracking session's
	// two emission triggers. Failure to obtain a fix keeps the session
	// stopped; the caller must not flip the driver online in that case.
	StartTracking(ctx context.Context, driverID string, src PositionSource) (*Session, error)
	// StopTracking cancels both triggers before returning. The last-known
	// position stays in place.
	StopTracking(session *Session)
	// ReportOnce bypasses both triggers and performs one immediate report
	// using the session's last known fix.
	ReportOnce(ctx context.Context, session *Session) error
	// ReportPosition stores a single position report for a driver.
	ReportPosition(ctx context.Context, driverID string, fix *models.PositionFix) error
	// GetPosition returns the driver's last-known position.
	GetPosition(ctx context.Context, driverID string) (*models.LivePosition, error)
}
