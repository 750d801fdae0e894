package models

import "time"

// PricingModel identifies how a fare matrix entry prices a trip
type PricingModel string

const (
	PricingStandard PricingModel = "standard"
	PricingSlab     PricingModel = "slab"
	PricingRental   PricingModel = "rental"
	PricingAirport  PricingModel = "airport"
)

// FareEntry is one active fare matrix row, keyed by booking category and
// vehicle category. Only the parameter set matching Model is populated.
type FareEntry struct {
	BookingCategory BookingCategory `db:"booking_category"`
	VehicleCategory VehicleCategory `db:"vehicle_category"`
	Model           PricingModel    `db:"pricing_model"`
	Standard        *StandardRates
	Slabs           []SlabBand
	SlabExtra       *SlabExtras
	Rentals         []RentalPackage
	Airport         *AirportFares
}

// StandardRates are the regular-trip pricing parameters. Amounts are whole
// currency units.
type StandardRates struct {
	BaseFare        int     `db:"base_fare"`
	PerKmRate       float64 `db:"per_km_rate"`
	PerMinuteRate   float64 `db:"per_minute_rate"`
	MinimumFare     int     `db:"minimum_fare"`
	CancellationFee int     `db:"cancellation_fee"`
}

// SlabBand is one distance-banded total for outstation pricing. Totals must
// be non-decreasing in distance across a table.
type SlabBand struct {
	UpToKm int `db:"up_to_km"`
	Total  int `db:"total"`
}

// SlabExtras are the outstation parameters applied beyond the slab table.
type SlabExtras struct {
	ExtraKmRate       float64 `db:"extra_km_rate"`
	NightSurchargePct float64 `db:"night_surcharge_pct"`
}

// RentalPackage is one hours → inclusions row for rental pricing.
type RentalPackage struct {
	Hours           int     `db:"hours"`
	BaseFare        int     `db:"base_fare"`
	IncludedKm      float64 `db:"included_km"`
	IncludedMinutes int     `db:"included_minutes"`
	ExtraKmRate     float64 `db:"extra_km_rate"`
	ExtraMinuteRate float64 `db:"extra_minute_rate"`
	DiscountPct     float64 `db:"discount_pct"`
	Promotional     bool    `db:"promotional"`
}

// AirportFares is the fixed two-way fare pair for airport transfers.
type AirportFares struct {
	ToAirport   int `db:"to_airport"`
	FromAirport int `db:"from_airport"`
}

// AirportDirection selects which of the fixed airport fares applies
type AirportDirection string

const (
	DirectionToAirport   AirportDirection = "to_airport"
	DirectionFromAirport AirportDirection = "from_airport"
)

// FareRequest carries the trip parameters a fare estimate is computed from.
// Which fields are required depends on the booking category.
type FareRequest struct {
	BookingCategory BookingCategory  `json:"booking_category"`
	VehicleCategory VehicleCategory  `json:"vehicle_category"`
	DistanceKm      float64          `json:"distance_km,omitempty"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	RentalHours     int              `json:"rental_hours,omitempty"`
	ActualKm        float64          `json:"actual_km,omitempty"`
	ActualMinutes   int              `json:"actual_minutes,omitempty"`
	Direction       AirportDirection `json:"direction,omitempty"`
	WindowStart     *time.Time       `json:"window_start,omitempty"`
	WindowEnd       *time.Time       `json:"window_end,omitempty"`
}

// FareQuote is the result of a fare estimate.
type FareQuote struct {
	BookingCategory BookingCategory `json:"booking_category"`
	VehicleCategory VehicleCategory `json:"vehicle_category"`
	Amount          int             `json:"amount"`
	Currency        string          `json:"currency"`
	Breakdown       map[string]int  `json:"breakdown,omitempty"`
}
