package fare

import (
	"context"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// FareUC defines the interface for fare computation business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ataxihosur/dispatch/services/fare FareUC
type FareUC interface {
	EstimateFare(ctx context.Context, req *models.FareRequest) (*models.FareQuote, error)
	CancellationFee(ctx context.Context, category models.BookingCategory, class models.VehicleCategory) (int, error)
}
