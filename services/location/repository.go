package location

import (
	"context"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for live position data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ataxihosur/dispatch/services/location LocationRepo
type LocationRepo interface {
	// UpsertPosition overwrites the driver's single position record.
	// Last-writer-wins by the record's UpdatedAt wall clock; a report older
	// than the stored one is dropped.
	UpsertPosition(ctx context.Context, pos *models.LivePosition) error
	GetPosition(ctx context.Context, driverID string) (*models.LivePosition, error)
	DeletePosition(ctx context.Context, driverID string) error
}
