package constants

// Change-feed topics
const (
	TopicTripAssigned        = "trip.assigned"
	TopicTripStatusChanged   = "trip.status_changed"
	TopicLocationUpdated     = "location.updated"
	TopicNotificationCreated = "notification.created"
)
