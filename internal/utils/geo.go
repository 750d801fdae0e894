package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// GeohashPrecision is the cell size stored with live positions; 7 chars is
// roughly a 150m cell, enough for map-tile grouping.
const GeohashPrecision = 7

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(a, b models.Coord) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Bearing calculates the initial bearing in degrees from a to b,
// normalized to [0, 360).
func Bearing(a, b models.Coord) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180.0 / math.Pi

	return math.Mod(deg+360.0, 360.0)
}

// EncodeLocation converts a coordinate to a geohash cell string.
func EncodeLocation(c models.Coord) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a coordinate.
func DecodeGeohash(hash string) models.Coord {
	lat, lng := geohash.Decode(hash)
	return models.Coord{Latitude: lat, Longitude: lng}
}

// ValidCoord reports whether c is a plausible WGS84 coordinate.
func ValidCoord(c models.Coord) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
