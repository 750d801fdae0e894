package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// DispatchRepo implements the dispatch repository interface over the trip
// and driver tables. Immediate and scheduled trips live in separate tables;
// the loaded trip's Kind selects which one every mutation targets.
type DispatchRepo struct {
	db *sqlx.DB
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(db *sqlx.DB) *DispatchRepo {
	return &DispatchRepo{db: db}
}

func tableFor(kind models.TripKind) string {
	if kind == models.TripKindScheduled {
		return "scheduled_trips"
	}
	return "trips"
}

// GetTrip resolves a trip by ID, checking the immediate table first and the
// scheduled table second.
func (r *DispatchRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := r.getTripFrom(ctx, models.TripKindImmediate, tripID)
	if err == nil {
		return trip, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	trip, err = r.getTripFrom(ctx, models.TripKindScheduled, tripID)
	if err == nil {
		return trip, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.Wrap(errs.KindNotFound, fmt.Sprintf("trip %s not found", tripID), errs.ErrTripNotFound)
	}
	return nil, err
}

func (r *DispatchRepo) getTripFrom(ctx context.Context, kind models.TripKind, tripID uuid.UUID) (*models.Trip, error) {
	scheduledCol := "NULL"
	if kind == models.TripKindScheduled {
		scheduledCol = "scheduled_for"
	}
	query := fmt.Sprintf(`
		SELECT id, customer_id, driver_id,
			pickup_lat, pickup_lng, pickup_address,
			destination_lat, destination_lng, destination_address,
			booking_category, vehicle_category, rental_hours,
			status, fare_estimate, fare_final, payment_status,
			cancelled_by, cancel_reason, %s,
			requested_at, assigned_at, arrived_at, started_at, completed_at, cancelled_at
		FROM %s
		WHERE id = $1
	`, scheduledCol, tableFor(kind))

	trip := models.Trip{Kind: kind}
	var (
		paymentStatus, cancelledBy, cancelReason sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, tripID).Scan(
		&trip.ID,
		&trip.CustomerID,
		&trip.DriverID,
		&trip.Pickup.Latitude,
		&trip.Pickup.Longitude,
		&trip.PickupAddress,
		&trip.Destination.Latitude,
		&trip.Destination.Longitude,
		&trip.DestinationAddress,
		&trip.BookingCategory,
		&trip.VehicleCategory,
		&trip.RentalHours,
		&trip.Status,
		&trip.FareEstimate,
		&trip.FareFinal,
		&paymentStatus,
		&cancelledBy,
		&cancelReason,
		&trip.ScheduledFor,
		&trip.RequestedAt,
		&trip.AssignedAt,
		&trip.ArrivedAt,
		&trip.StartedAt,
		&trip.CompletedAt,
		&trip.CancelledAt,
	)
	if err != nil {
		return nil, err
	}

	trip.PaymentStatus = paymentStatus.String
	trip.CancelledBy = cancelledBy.String
	trip.CancelReason = cancelReason.String
	return &trip, nil
}

// GetDriver loads a driver by ID.
func (r *DispatchRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, full_name, phone, status, is_verified, rating,
			total_trips, vehicle_id, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.Wrap(errs.KindNotFound, fmt.Sprintf("driver %s not found", driverID), errs.ErrDriverNotFound)
		}
		return nil, fmt.Errorf("failed to load driver: %w", err)
	}
	return &driver, nil
}

// GetCustomerContact returns the customer's name and phone.
func (r *DispatchRepo) GetCustomerContact(ctx context.Context, customerID uuid.UUID) (string, string, error) {
	var contact struct {
		FullName string `db:"full_name"`
		Phone    string `db:"phone"`
	}
	err := r.db.GetContext(ctx, &contact, `SELECT full_name, phone FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load customer contact: %w", err)
	}
	return contact.FullName, contact.Phone, nil
}

// BindDriver sets the trip's driver and assigned status, conditional on the
// trip still sitting in its unassigned status. The rows-affected check is
// the whole concurrency story: of two racing assignments one matches the
// predicate, the other sees zero rows.
func (r *DispatchRepo) BindDriver(ctx context.Context, trip *models.Trip, driverID uuid.UUID, at time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET driver_id = $1, status = $2, assigned_at = $3
		WHERE id = $4 AND status = $5
	`, tableFor(trip.Kind))

	result, err := r.db.ExecContext(ctx, query,
		driverID, trip.Kind.AssignedStatus(), at, trip.ID, trip.Kind.UnassignedStatus())
	if err != nil {
		return fmt.Errorf("failed to bind driver: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read bind result: %w", err)
	}
	if affected == 0 {
		return errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("trip %s was assigned concurrently", trip.ID), errs.ErrTripAlreadyAssigned)
	}
	return nil
}

// TransitionTrip moves the trip from its loaded status to the given one,
// stamping the matching timestamp column.
func (r *DispatchRepo) TransitionTrip(ctx context.Context, trip *models.Trip, to models.TripStatus, at time.Time) error {
	var stampCol string
	switch to {
	case models.TripStatusDriverArrived:
		stampCol = "arrived_at"
	case models.TripStatusInProgress:
		stampCol = "started_at"
	}

	var (
		result sql.Result
		err    error
	)
	if stampCol != "" {
		query := fmt.Sprintf(`UPDATE %s SET status = $1, %s = $2 WHERE id = $3 AND status = $4`,
			tableFor(trip.Kind), stampCol)
		result, err = r.db.ExecContext(ctx, query, to, at, trip.ID, trip.Status)
	} else {
		query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2 AND status = $3`, tableFor(trip.Kind))
		result, err = r.db.ExecContext(ctx, query, to, trip.ID, trip.Status)
	}
	if err != nil {
		return fmt.Errorf("failed to transition trip: %w", err)
	}

	return r.requireAffected(result, trip.ID)
}

// CompleteTrip moves the trip into completed with its final fare.
func (r *DispatchRepo) CompleteTrip(ctx context.Context, trip *models.Trip, fareFinal int, at time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, fare_final = $2, completed_at = $3
		WHERE id = $4 AND status = $5
	`, tableFor(trip.Kind))

	result, err := r.db.ExecContext(ctx, query,
		models.TripStatusCompleted, fareFinal, at, trip.ID, trip.Status)
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	return r.requireAffected(result, trip.ID)
}

// CancelTrip moves the trip into cancelled with the cancellation record.
func (r *DispatchRepo) CancelTrip(ctx context.Context, trip *models.Trip, cancelledBy, reason string, fee int, at time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, cancelled_by = $2, cancel_reason = $3, cancellation_fee = $4, cancelled_at = $5
		WHERE id = $6 AND status = $7
	`, tableFor(trip.Kind))

	result, err := r.db.ExecContext(ctx, query,
		models.TripStatusCancelled, cancelledBy, reason, fee, at, trip.ID, trip.Status)
	if err != nil {
		return fmt.Errorf("failed to cancel trip: %w", err)
	}
	return r.requireAffected(result, trip.ID)
}

// requireAffected turns a zero-row conditional update into the concurrent
// transition failure.
func (r *DispatchRepo) requireAffected(result sql.Result, tripID uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return errs.Wrap(errs.KindPreconditionFailed,
			fmt.Sprintf("trip %s changed concurrently", tripID), errs.ErrIllegalTransition)
	}
	return nil
}

// SetDriverStatus updates the driver's availability state.
func (r *DispatchRepo) SetDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to set driver status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read driver update result: %w", err)
	}
	if affected == 0 {
		return errs.Wrap(errs.KindNotFound, fmt.Sprintf("driver %s not found", driverID), errs.ErrDriverNotFound)
	}
	return nil
}

// IncrementDriverTrips credits the driver one completed trip.
func (r *DispatchRepo) IncrementDriverTrips(ctx context.Context, driverID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET total_trips = total_trips + 1 WHERE id = $1`, driverID)
	if err != nil {
		return fmt.Errorf("failed to increment driver trips: %w", err)
	}
	return nil
}

// CreateNotification inserts the write-once assignment notification.
func (r *DispatchRepo) CreateNotification(ctx context.Context, notification *models.AssignmentNotification) error {
	query := `
		INSERT INTO assignment_notifications (
			id, trip_id, driver_id, pickup_address, destination_address,
			customer_name, customer_phone, admin_notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		notification.ID,
		notification.TripID,
		notification.DriverID,
		notification.PickupAddress,
		notification.DestinationAddress,
		notification.CustomerName,
		notification.CustomerPhone,
		notification.AdminNotes,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
