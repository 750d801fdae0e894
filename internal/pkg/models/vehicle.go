package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleCategory is one of the six vehicle classes the platform prices by:
// three body styles, each with a non-AC and an AC variant.
type VehicleCategory string

const (
	VehicleHatchback   VehicleCategory = "hatchback"
	VehicleHatchbackAC VehicleCategory = "hatchback_ac"
	VehicleSedan       VehicleCategory = "sedan"
	VehicleSedanAC     VehicleCategory = "sedan_ac"
	VehicleSUV         VehicleCategory = "suv"
	VehicleSUVAC       VehicleCategory = "suv_ac"
)

// ValidVehicleCategory reports whether c is one of the configured classes.
func ValidVehicleCategory(c VehicleCategory) bool {
	switch c {
	case VehicleHatchback, VehicleHatchbackAC, VehicleSedan, VehicleSedanAC, VehicleSUV, VehicleSUVAC:
		return true
	}
	return false
}

// Vehicle represents a registered vehicle owned by a driver or a vendor fleet
type Vehicle struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Registration string          `json:"registration" db:"registration"`
	Make         string          `json:"make" db:"make"`
	Model        string          `json:"model" db:"model"`
	Year         int             `json:"year" db:"year"`
	Capacity     int             `json:"capacity" db:"capacity"`
	Category     VehicleCategory `json:"category" db:"category"`
	OwnerID      *uuid.UUID      `json:"owner_id,omitempty" db:"owner_id"`
	VendorID     *uuid.UUID      `json:"vendor_id,omitempty" db:"vendor_id"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
