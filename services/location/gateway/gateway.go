package gateway

import (
	"github.com/ataxihosur/dispatch/internal/pkg/constants"
	"github.com/ataxihosur/dispatch/internal/pkg/events"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// LocationGW implements the location.LocationGW interface over NSQ
type LocationGW struct {
	producer *events.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(producer *events.Producer) *LocationGW {
	return &LocationGW{
		producer: producer,
	}
}

// PublishLocationUpdate emits the change-feed event for a stored position
// report.
func (g *LocationGW) PublishLocationUpdate(event *models.LocationUpdateEvent) error {
	return g.producer.Publish(constants.TopicLocationUpdated, event)
}
