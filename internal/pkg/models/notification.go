package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentNotification is the message record created for a driver at
// assignment time. Write-once per assignment; delivery is handled by an
// external channel that subscribes to the change feed.
type AssignmentNotification struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	TripID             uuid.UUID `json:"trip_id" db:"trip_id"`
	DriverID           uuid.UUID `json:"driver_id" db:"driver_id"`
	PickupAddress      string    `json:"pickup_address" db:"pickup_address"`
	DestinationAddress string    `json:"destination_address" db:"destination_address"`
	CustomerName       string    `json:"customer_name" db:"customer_name"`
	CustomerPhone      string    `json:"customer_phone" db:"customer_phone"`
	AdminNotes         string    `json:"admin_notes,omitempty" db:"admin_notes"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
