package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for assignment and trip lifecycle logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ataxihosur/dispatch/services/dispatch DispatchUC
type DispatchUC interface {
	// AssignDriver binds an online, verified, free driver to an unassigned
	// trip. The trip update is conditional on its current status; a
	// concurrent assignment loses with TripAlreadyAssigned. A failed driver
	// busy-transition after the bind does not undo the assignment; the
	// result carries DriverStatusLag instead.
	AssignDriver(ctx context.Context, tripID, driverID uuid.UUID, notes string) (*models.AssignmentResult, error)

	// ConfirmTrip records the driver's confirmation of a scheduled
	// assignment.
	ConfirmTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	// MarkDriverArrived records pickup-point arrival.
	MarkDriverArrived(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	// StartTrip begins the ride.
	StartTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	// CompleteTrip finishes the ride, computes the final fare from the
	// actuals and releases the driver back to the assignable pool.
	CompleteTrip(ctx context.Context, tripID uuid.UUID, actualKm float64, actualMinutes int) (*models.Trip, error)
	// CancelTrip cancels a trip, recording who cancelled and why. A
	// cancellation after assignment carries the configured fee and releases
	// the driver.
	CancelTrip(ctx context.Context, tripID uuid.UUID, cancelledBy, reason string) (*models.Trip, error)
}
