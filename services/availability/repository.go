package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// AvailabilityRepo defines the interface for availability data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ataxihosur/dispatch/services/availability AvailabilityRepo
type AvailabilityRepo interface {
	// ListCandidateDrivers returns online, verified drivers, optionally
	// restricted to a vehicle category.
	ListCandidateDrivers(ctx context.Context, category models.VehicleCategory) ([]models.Driver, error)
	// ListBusyDriverIDs returns the IDs of drivers bound to a non-terminal
	// trip in either trip table.
	ListBusyDriverIDs(ctx context.Context) (map[uuid.UUID]struct{}, error)
	// GetPositions returns last-known coordinates for the given drivers.
	// Drivers with no stored position are absent from the result.
	GetPositions(ctx context.Context, driverIDs []string) (map[string]models.Coord, error)

	CountDriversByStatus(ctx context.Context, status models.DriverStatus) (int, error)
	CountOpenTrips(ctx context.Context) (int, error)
}
