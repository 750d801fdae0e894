package models

import "time"

// DispatchSnapshot is the dashboard's aggregate view. When a backing query
// exceeds the snapshot deadline the counts degrade to zero and Degraded is
// set instead of failing the read.
type DispatchSnapshot struct {
	OnlineDrivers int       `json:"online_drivers"`
	BusyDrivers   int       `json:"busy_drivers"`
	OpenTrips     int       `json:"open_trips"`
	Degraded      bool      `json:"degraded"`
	GeneratedAt   time.Time `json:"generated_at"`
}
