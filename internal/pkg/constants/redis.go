package constants

// Redis key formats
const (
	KeyDriverPosition = "driver:position:%s" // Format: driver:position:{driver_id}
	KeyDriverGeo      = "drivers:geo"        // GEO set of all driver live positions
)

// Redis hash fields for the per-driver position record
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldAccuracy  = "accuracy"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)
