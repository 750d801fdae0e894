package gateway

import (
	"github.com/ataxihosur/dispatch/internal/pkg/constants"
	"github.com/ataxihosur/dispatch/internal/pkg/events"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// DispatchGW implements the dispatch.DispatchGW interface over NSQ
type DispatchGW struct {
	producer *events.Producer
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(producer *events.Producer) *DispatchGW {
	return &DispatchGW{
		producer: producer,
	}
}

// PublishTripAssigned emits the assignment feed event.
func (g *DispatchGW) PublishTripAssigned(trip *models.Trip) error {
	return g.producer.Publish(constants.TopicTripAssigned, trip)
}

// PublishTripStatusChanged emits the lifecycle feed event.
func (g *DispatchGW) PublishTripStatusChanged(event *models.TripStatusEvent) error {
	return g.producer.Publish(constants.TopicTripStatusChanged, event)
}

// PublishNotificationCreated emits the notification feed event.
func (g *DispatchGW) PublishNotificationCreated(notification *models.AssignmentNotification) error {
	return g.producer.Publish(constants.TopicNotificationCreated, notification)
}
