package location

import (
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// LocationGW defines the interface for publishing location change-feed
// events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ataxihosur/dispatch/services/location LocationGW
type LocationGW interface {
	PublishLocationUpdate(event *models.LocationUpdateEvent) error
}
