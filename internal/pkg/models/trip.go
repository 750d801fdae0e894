package models

import (
	"time"

	"github.com/google/uuid"
)

// TripKind discriminates the two physical trip representations. Immediate
// trips and pre-scheduled special trips share one logical lifecycle; the
// kind only selects the backing table and the status vocabulary.
type TripKind string

const (
	TripKindImmediate TripKind = "immediate"
	TripKindScheduled TripKind = "scheduled"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	// Immediate trip lifecycle
	TripStatusRequested     TripStatus = "requested"
	TripStatusAccepted      TripStatus = "accepted"
	TripStatusDriverArrived TripStatus = "driver_arrived"
	TripStatusInProgress    TripStatus = "in_progress"
	TripStatusCompleted     TripStatus = "completed"
	TripStatusCancelled     TripStatus = "cancelled"

	// Scheduled trip lifecycle
	TripStatusPending   TripStatus = "pending"
	TripStatusAssigned  TripStatus = "assigned"
	TripStatusConfirmed TripStatus = "confirmed"
)

// BookingCategory selects the pricing model for a trip
type BookingCategory string

const (
	BookingRegular    BookingCategory = "regular"
	BookingRental     BookingCategory = "rental"
	BookingOutstation BookingCategory = "outstation"
	BookingAirport    BookingCategory = "airport"
)

// ValidBookingCategory reports whether c is a known booking category.
func ValidBookingCategory(c BookingCategory) bool {
	switch c {
	case BookingRegular, BookingRental, BookingOutstation, BookingAirport:
		return true
	}
	return false
}

// immediateTransitions is the allowed transition set for immediate trips.
// Cancellation is reachable up to driver_arrived, not once in progress.
var immediateTransitions = map[TripStatus][]TripStatus{
	TripStatusRequested:     {TripStatusAccepted, TripStatusCancelled},
	TripStatusAccepted:      {TripStatusDriverArrived, TripStatusCancelled},
	TripStatusDriverArrived: {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress:    {TripStatusCompleted},
}

// scheduledTransitions is the allowed transition set for scheduled trips.
// Cancellation is reachable from any non-terminal state.
var scheduledTransitions = map[TripStatus][]TripStatus{
	TripStatusPending:       {TripStatusAssigned, TripStatusCancelled},
	TripStatusAssigned:      {TripStatusConfirmed, TripStatusCancelled},
	TripStatusConfirmed:     {TripStatusDriverArrived, TripStatusCancelled},
	TripStatusDriverArrived: {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress:    {TripStatusCompleted, TripStatusCancelled},
}

// IsTerminal reports whether s admits no further transitions.
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// CanTransition reports whether from → to is a legal transition for trips
// of kind k.
func (k TripKind) CanTransition(from, to TripStatus) bool {
	var table map[TripStatus][]TripStatus
	if k == TripKindScheduled {
		table = scheduledTransitions
	} else {
		table = immediateTransitions
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UnassignedStatus is the status an assignable trip of kind k must be in
// before a driver is bound to it.
func (k TripKind) UnassignedStatus() TripStatus {
	if k == TripKindScheduled {
		return TripStatusPending
	}
	return TripStatusRequested
}

// AssignedStatus is the status a trip of kind k enters when a driver is
// bound to it.
func (k TripKind) AssignedStatus() TripStatus {
	if k == TripKindScheduled {
		return TripStatusAssigned
	}
	return TripStatusAccepted
}

// ActiveStatuses are the non-terminal statuses in which a trip keeps its
// driver out of the assignable pool.
func (k TripKind) ActiveStatuses() []TripStatus {
	if k == TripKindScheduled {
		return []TripStatus{TripStatusAssigned, TripStatusConfirmed, TripStatusDriverArrived, TripStatusInProgress}
	}
	return []TripStatus{TripStatusAccepted, TripStatusDriverArrived, TripStatusInProgress}
}

// Trip represents a ride, immediate or pre-scheduled
type Trip struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	Kind               TripKind        `json:"kind" db:"kind"`
	CustomerID         uuid.UUID       `json:"customer_id" db:"customer_id"`
	DriverID           *uuid.UUID      `json:"driver_id,omitempty" db:"driver_id"`
	Pickup             Coord           `json:"pickup"`
	PickupAddress      string          `json:"pickup_address" db:"pickup_address"`
	Destination        Coord           `json:"destination"`
	DestinationAddress string          `json:"destination_address" db:"destination_address"`
	BookingCategory    BookingCategory `json:"booking_category" db:"booking_category"`
	VehicleCategory    VehicleCategory `json:"vehicle_category" db:"vehicle_category"`
	RentalHours        int             `json:"rental_hours,omitempty" db:"rental_hours"`
	Status             TripStatus      `json:"status" db:"status"`
	FareEstimate       int             `json:"fare_estimate" db:"fare_estimate"`
	FareFinal          *int            `json:"fare_final,omitempty" db:"fare_final"`
	PaymentStatus      string          `json:"payment_status" db:"payment_status"`
	CancelledBy        string          `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancelReason       string          `json:"cancel_reason,omitempty" db:"cancel_reason"`
	ScheduledFor       *time.Time      `json:"scheduled_for,omitempty" db:"scheduled_for"`
	RequestedAt        time.Time       `json:"requested_at" db:"requested_at"`
	AssignedAt         *time.Time      `json:"assigned_at,omitempty" db:"assigned_at"`
	ArrivedAt          *time.Time      `json:"arrived_at,omitempty" db:"arrived_at"`
	StartedAt          *time.Time      `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// TripStatusEvent is published on every trip status change.
type TripStatusEvent struct {
	TripID    string     `json:"trip_id"`
	Kind      TripKind   `json:"kind"`
	From      TripStatus `json:"from"`
	To        TripStatus `json:"to"`
	DriverID  string     `json:"driver_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// AssignmentResult is returned by the assignment coordinator. DriverStatusLag
// is set when the trip was bound but the driver's busy transition failed;
// the assignment stands and the lag is reported instead of failing the call.
type AssignmentResult struct {
	Trip            *Trip `json:"trip"`
	DriverStatusLag bool  `json:"driver_status_lag,omitempty"`
}
