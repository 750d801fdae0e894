package models

import "time"

// Coord is a geographic coordinate pair in degrees
type Coord struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LivePosition is the single latest-value position record kept per driver.
// It is overwritten on every location report; no history is retained.
type LivePosition struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   float64   `json:"heading"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Accuracy  float64   `json:"accuracy_m"`
	Geohash   string    `json:"geohash"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coord returns the position's coordinate pair.
func (p *LivePosition) Coord() Coord {
	return Coord{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PositionFix is a raw position sample obtained from a driver client's
// location source before it is stamped and stored.
type PositionFix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   float64   `json:"heading"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Accuracy  float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdateEvent is published on every stored position report so
// change-feed subscribers (map displays) observe it.
type LocationUpdateEvent struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash"`
	UpdatedAt time.Time `json:"updated_at"`
}
