package availability

import (
	"context"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// AvailabilityUC defines the interface for the availability resolver
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ataxihosur/dispatch/services/availability AvailabilityUC
type AvailabilityUC interface {
	// ListAssignableDrivers resolves the point-in-time assignable pool:
	// online and verified drivers, optionally filtered by vehicle category,
	// minus drivers bound to a non-terminal trip. Ranked by distance to
	// query.Near when given, by rating otherwise. Returns an empty slice,
	// never an error, when nobody qualifies.
	ListAssignableDrivers(ctx context.Context, query *models.AssignableQuery) ([]models.AssignableDriver, error)
	// DispatchSnapshot aggregates dashboard counts under the configured
	// deadline, degrading to zeroes on timeout.
	DispatchSnapshot(ctx context.Context) (*models.DispatchSnapshot, error)
}
