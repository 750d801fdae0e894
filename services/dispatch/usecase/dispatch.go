package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/dispatch"
	"github.com/ataxihosur/dispatch/services/fare"
)

// DispatchUC implements the dispatch.DispatchUC interface
type DispatchUC struct {
	cfg    *models.Config
	repo   dispatch.DispatchRepo
	gw     dispatch.DispatchGW
	fareUC fare.FareUC
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(cfg *models.Config, repo dispatch.DispatchRepo, gw dispatch.DispatchGW, fareUC fare.FareUC) *DispatchUC {
	return &DispatchUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		fareUC: fareUC,
	}
}

// AssignDriver binds a driver to a trip. Preconditions are checked in a
// fixed order so callers see the same failure for the same state: trip
// exists, driver exists, driver online, driver verified. The bind itself is
// conditional on the trip's current status; of two concurrent assignments
// exactly one wins and the loser gets TripAlreadyAssigned.
func (uc *DispatchUC) AssignDriver(ctx context.Context, tripID, driverID uuid.UUID, notes string) (*models.AssignmentResult, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != trip.Kind.UnassignedStatus() {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("trip %s is %s, not assignable", tripID, trip.Status), errs.ErrTripAlreadyAssigned)
	}

	driver, err := uc.repo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.Status != models.DriverStatusOnline {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("driver %s is %s", driverID, driver.Status), errs.ErrDriverNotAvailable)
	}
	if !driver.IsVerified {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("driver %s is not verified", driverID), errs.ErrDriverNotVerified)
	}

	now := time.Now()
	if err := uc.repo.BindDriver(ctx, trip, driverID, now); err != nil {
		return nil, err
	}

	from := trip.Status
	trip.DriverID = &driverID
	trip.Status = trip.Kind.AssignedStatus()
	trip.AssignedAt = &now

	// The trip is bound; a failed driver transition leaves the store
	// observably lagging but must not undo the assignment.
	lag := false
	if err := uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusBusy); err != nil {
		lag = true
		logger.Error("driver busy transition failed after assignment", logger.Fields{
			"trip_id":   tripID,
			"driver_id": driverID,
			"error":     err.Error(),
		})
	}

	uc.createAssignmentNotification(ctx, trip, driver, notes)

	if err := uc.gw.PublishTripAssigned(trip); err != nil {
		logger.Warn("failed to publish trip assignment", logger.Fields{"trip_id": tripID, "error": err.Error()})
	}
	uc.publishStatusChange(trip, from, now)

	logger.Info("driver assigned", logger.Fields{
		"trip_id":           tripID,
		"driver_id":         driverID,
		"driver_status_lag": lag,
	})

	return &models.AssignmentResult{Trip: trip, DriverStatusLag: lag}, nil
}

// createAssignmentNotification writes the driver's notification record and
// publishes its feed event. The notification is advisory; failures here
// never fail the assignment.
func (uc *DispatchUC) createAssignmentNotification(ctx context.Context, trip *models.Trip, driver *models.Driver, notes string) {
	name, phone, err := uc.repo.GetCustomerContact(ctx, trip.CustomerID)
	if err != nil {
		logger.Warn("customer contact lookup failed for notification", logger.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
	}

	notification := &models.AssignmentNotification{
		ID:                 uuid.New(),
		TripID:             trip.ID,
		DriverID:           driver.ID,
		PickupAddress:      trip.PickupAddress,
		DestinationAddress: trip.DestinationAddress,
		CustomerName:       name,
		CustomerPhone:      phone,
		AdminNotes:         notes,
		CreatedAt:          time.Now(),
	}

	if err := uc.repo.CreateNotification(ctx, notification); err != nil {
		logger.Warn("failed to create assignment notification", logger.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
		return
	}
	if err := uc.gw.PublishNotificationCreated(notification); err != nil {
		logger.Warn("failed to publish notification event", logger.Fields{"trip_id": trip.ID, "error": err.Error()})
	}
}

// ConfirmTrip records the driver's confirmation of a scheduled assignment.
func (uc *DispatchUC) ConfirmTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, tripID, models.TripStatusConfirmed)
}

// MarkDriverArrived records pickup-point arrival.
func (uc *DispatchUC) MarkDriverArrived(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, tripID, models.TripStatusDriverArrived)
}

// StartTrip begins the ride.
func (uc *DispatchUC) StartTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, tripID, models.TripStatusInProgress)
}

// transition is the shared conditional lifecycle step: legality check
// against the trip's state machine, conditional store update, timestamp
// stamping and feed publication.
func (uc *DispatchUC) transition(ctx context.Context, tripID uuid.UUID, to models.TripStatus) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Kind.CanTransition(trip.Status, to) {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("%s trip cannot move from %s to %s", trip.Kind, trip.Status, to), errs.ErrIllegalTransition)
	}

	now := time.Now()
	if err := uc.repo.TransitionTrip(ctx, trip, to, now); err != nil {
		return nil, err
	}

	from := trip.Status
	trip.Status = to
	switch to {
	case models.TripStatusDriverArrived:
		trip.ArrivedAt = &now
	case models.TripStatusInProgress:
		trip.StartedAt = &now
	}

	uc.publishStatusChange(trip, from, now)
	return trip, nil
}

// CompleteTrip finishes the ride. The final fare is computed from the
// actuals through the fare engine; if the engine cannot price the trip the
// estimate stands rather than blocking completion. The driver is released
// back to the assignable pool and credited the trip.
func (uc *DispatchUC) CompleteTrip(ctx context.Context, tripID uuid.UUID, actualKm float64, actualMinutes int) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Kind.CanTransition(trip.Status, models.TripStatusCompleted) {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("%s trip cannot complete from %s", trip.Kind, trip.Status), errs.ErrIllegalTransition)
	}

	now := time.Now()
	fareFinal := uc.finalFare(ctx, trip, actualKm, actualMinutes, now)

	if err := uc.repo.CompleteTrip(ctx, trip, fareFinal, now); err != nil {
		return nil, err
	}

	from := trip.Status
	trip.Status = models.TripStatusCompleted
	trip.FareFinal = &fareFinal
	trip.CompletedAt = &now

	uc.releaseDriver(ctx, trip, true)
	uc.publishStatusChange(trip, from, now)

	logger.Info("trip completed", logger.Fields{
		"trip_id":    tripID,
		"fare_final": fareFinal,
		"actual_km":  actualKm,
	})
	return trip, nil
}

// finalFare prices the completed trip from its actuals. Airport trips are
// fixed-fare, so the estimate is already final. Any pricing failure falls
// back to the estimate; completion never blocks on the fare matrix.
func (uc *DispatchUC) finalFare(ctx context.Context, trip *models.Trip, actualKm float64, actualMinutes int, completedAt time.Time) int {
	if trip.BookingCategory == models.BookingAirport {
		return trip.FareEstimate
	}

	req := &models.FareRequest{
		BookingCategory: trip.BookingCategory,
		VehicleCategory: trip.VehicleCategory,
		DistanceKm:      actualKm,
		DurationMinutes: actualMinutes,
	}
	switch trip.BookingCategory {
	case models.BookingRental:
		req.RentalHours = trip.RentalHours
		req.ActualKm = actualKm
		req.ActualMinutes = actualMinutes
	case models.BookingOutstation:
		req.WindowStart = trip.StartedAt
		req.WindowEnd = &completedAt
	}

	quote, err := uc.fareUC.EstimateFare(ctx, req)
	if err != nil {
		logger.Warn("final fare computation failed, keeping estimate", logger.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
		return trip.FareEstimate
	}
	return quote.Amount
}

// CancelTrip cancels a trip, recording who cancelled and why. A
// cancellation after assignment carries the configured cancellation fee and
// releases the driver without crediting a trip.
func (uc *DispatchUC) CancelTrip(ctx context.Context, tripID uuid.UUID, cancelledBy, reason string) (*models.Trip, error) {
	if cancelledBy == "" {
		return nil, errs.Wrap(errs.KindInvalidInput, "cancelled_by is required", errs.ErrInvalidParameter)
	}

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Kind.CanTransition(trip.Status, models.TripStatusCancelled) {
		return nil, errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("%s trip cannot cancel from %s", trip.Kind, trip.Status), errs.ErrIllegalTransition)
	}

	fee := 0
	if trip.Status != trip.Kind.UnassignedStatus() {
		fee, err = uc.fareUC.CancellationFee(ctx, trip.BookingCategory, trip.VehicleCategory)
		if err != nil {
			logger.Warn("cancellation fee lookup failed, waiving fee", logger.Fields{
				"trip_id": tripID,
				"error":   err.Error(),
			})
			fee = 0
		}
	}

	now := time.Now()
	if err := uc.repo.CancelTrip(ctx, trip, cancelledBy, reason, fee, now); err != nil {
		return nil, err
	}

	from := trip.Status
	trip.Status = models.TripStatusCancelled
	trip.CancelledBy = cancelledBy
	trip.CancelReason = reason
	trip.CancelledAt = &now

	uc.releaseDriver(ctx, trip, false)
	uc.publishStatusChange(trip, from, now)

	logger.Info("trip cancelled", logger.Fields{
		"trip_id":      tripID,
		"cancelled_by": cancelledBy,
		"fee":          fee,
	})
	return trip, nil
}

// releaseDriver returns a bound driver to the assignable pool, crediting a
// completed trip when asked. Release failures lag, they do not fail the
// lifecycle step.
func (uc *DispatchUC) releaseDriver(ctx context.Context, trip *models.Trip, credit bool) {
	if trip.DriverID == nil {
		return
	}
	if err := uc.repo.SetDriverStatus(ctx, *trip.DriverID, models.DriverStatusOnline); err != nil {
		logger.Error("driver release failed", logger.Fields{
			"trip_id":   trip.ID,
			"driver_id": *trip.DriverID,
			"error":     err.Error(),
		})
	}
	if credit {
		if err := uc.repo.IncrementDriverTrips(ctx, *trip.DriverID); err != nil {
			logger.Warn("trip count increment failed", logger.Fields{
				"driver_id": *trip.DriverID,
				"error":     err.Error(),
			})
		}
	}
}

func (uc *DispatchUC) publishStatusChange(trip *models.Trip, from models.TripStatus, at time.Time) {
	event := &models.TripStatusEvent{
		TripID:    trip.ID.String(),
		Kind:      trip.Kind,
		From:      from,
		To:        trip.Status,
		Timestamp: at,
	}
	if trip.DriverID != nil {
		event.DriverID = trip.DriverID.String()
	}
	if err := uc.gw.PublishTripStatusChanged(event); err != nil {
		logger.Warn("failed to publish trip status change", logger.Fields{"trip_id": trip.ID, "error": err.Error()})
	}
}
