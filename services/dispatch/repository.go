package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// DispatchRepo defines the interface for trip and driver state access.
// Trips live in two tables; GetTrip resolves across both and every mutation
// targets the table the trip's Kind selects. All transition updates are
// conditional on the trip's current status and report a lost race through
// their error, never by overwriting.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ataxihosur/dispatch/services/dispatch DispatchRepo
type DispatchRepo interface {
	// GetTrip resolves a trip by ID across both trip tables.
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	// GetCustomerContact returns the customer's name and phone for the
	// assignment notification.
	GetCustomerContact(ctx context.Context, customerID uuid.UUID) (name, phone string, err error)

	// BindDriver sets the trip's driver and assigned status, conditional on
	// the trip still being unassigned. Zero rows affected means a concurrent
	// assignment won; returns TripAlreadyAssigned.
	BindDriver(ctx context.Context, trip *models.Trip, driverID uuid.UUID, at time.Time) error
	// TransitionTrip moves the trip from its loaded status to the given one,
	// stamping the matching timestamp column. Zero rows affected means the
	// trip moved concurrently; returns IllegalTransition.
	TransitionTrip(ctx context.Context, trip *models.Trip, to models.TripStatus, at time.Time) error
	// CompleteTrip is TransitionTrip into completed plus the final fare.
	CompleteTrip(ctx context.Context, trip *models.Trip, fareFinal int, at time.Time) error
	// CancelTrip is TransitionTrip into cancelled plus the cancellation
	// record.
	CancelTrip(ctx context.Context, trip *models.Trip, cancelledBy, reason string, fee int, at time.Time) error

	SetDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error
	IncrementDriverTrips(ctx context.Context, driverID uuid.UUID) error

	CreateNotification(ctx context.Context, notification *models.AssignmentNotification) error
}
