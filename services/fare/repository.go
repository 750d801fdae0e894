package fare

import (
	"context"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// FareRepo defines the interface for fare matrix data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ataxihosur/dispatch/services/fare FareRepo
type FareRepo interface {
	GetFareEntry(ctx context.Context, category models.BookingCategory, class models.VehicleCategory) (*models.FareEntry, error)
}
