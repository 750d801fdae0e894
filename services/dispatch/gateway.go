package dispatch

import (
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// DispatchGW defines the interface for publishing dispatch change-feed
// events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ataxihosur/dispatch/services/dispatch DispatchGW
type DispatchGW interface {
	PublishTripAssigned(trip *models.Trip) error
	PublishTripStatusChanged(event *models.TripStatusEvent) error
	PublishNotificationCreated(notification *models.AssignmentNotification) error
}
