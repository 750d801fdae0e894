package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the availability state of a driver
type DriverStatus string

const (
	DriverStatusOffline   DriverStatus = "offline"
	DriverStatusOnline    DriverStatus = "online"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusSuspended DriverStatus = "suspended"
)

// Driver represents a platform driver.
// A driver is busy only while bound to a non-terminal trip, and must be
// online and verified to be assignable.
type Driver struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	FullName   string        `json:"full_name" db:"full_name"`
	Phone      string        `json:"phone" db:"phone"`
	Status     DriverStatus  `json:"status" db:"status"`
	IsVerified bool          `json:"is_verified" db:"is_verified"`
	Rating     float64       `json:"rating" db:"rating"`
	TotalTrips int           `json:"total_trips" db:"total_trips"`
	VehicleID  *uuid.UUID    `json:"vehicle_id,omitempty" db:"vehicle_id"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

// AssignableDriver is a driver enriched with ranking context for the
// availability resolver.
type AssignableDriver struct {
	Driver     Driver   `json:"driver"`
	Position   *Coord   `json:"position,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// AssignableQuery narrows the availability resolver's candidate pool.
// Near, when set, switches ranking from rating to pickup proximity.
type AssignableQuery struct {
	VehicleCategory VehicleCategory `json:"vehicle_category,omitempty" query:"vehicle_category"`
	Near            *Coord          `json:"near,omitempty"`
}
