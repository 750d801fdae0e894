package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/availability"
)

// AvailabilityUC implements the availability.AvailabilityUC interface
type AvailabilityUC struct {
	cfg  *models.Config
	repo availability.AvailabilityRepo
}

// NewAvailabilityUC creates a new availability use case
func NewAvailabilityUC(cfg *models.Config, repo availability.AvailabilityRepo) *AvailabilityUC {
	return &AvailabilityUC{
		cfg:  cfg,
		repo: repo,
	}
}

// ListAssignableDrivers resolves the assignable pool for this instant. The
// result is never cached; every call reflects the store as of now.
func (uc *AvailabilityUC) ListAssignableDrivers(ctx context.Context, query *models.AssignableQuery) ([]models.AssignableDriver, error) {
	if query == nil {
		query = &models.AssignableQuery{}
	}
	if query.VehicleCategory != "" && !models.ValidVehicleCategory(query.VehicleCategory) {
		return nil, errs.Wrap(errs.KindInvalidInput, "unknown vehicle category", errs.ErrInvalidParameter)
	}
	if query.Near != nil && !utils.ValidCoord(*query.Near) {
		return nil, errs.Wrap(errs.KindInvalidInput, "malformed reference coordinates", errs.ErrInvalidParameter)
	}

	candidates, err := uc.repo.ListCandidateDrivers(ctx, query.VehicleCategory)
	if err != nil {
		return nil, err
	}

	busy, err := uc.repo.ListBusyDriverIDs(ctx)
	if err != nil {
		return nil, err
	}

	assignable := make([]models.AssignableDriver, 0, len(candidates))
	for _, d := range candidates {
		if _, bound := busy[d.ID]; bound {
			continue
		}
		assignable = append(assignable, models.AssignableDriver{Driver: d})
	}

	if query.Near != nil {
		uc.attachDistances(ctx, assignable, *query.Near)
	}
	uc.rank(assignable, query.Near != nil)

	return assignable, nil
}

// attachDistances resolves live positions and annotates each entry with its
// distance to the reference point. Drivers with no stored position keep a
// nil distance and rank after those with one.
func (uc *AvailabilityUC) attachDistances(ctx context.Context, drivers []models.AssignableDriver, near models.Coord) {
	ids := make([]string, len(drivers))
	for i, d := range drivers {
		ids[i] = d.Driver.ID.String()
	}

	positions, err := uc.repo.GetPositions(ctx, ids)
	if err != nil {
		// Ranking falls back to rating; the pool itself is still valid.
		logger.Warn("position lookup failed, ranking by rating", logger.Fields{"error": err.Error()})
		return
	}

	for i := range drivers {
		pos, ok := positions[drivers[i].Driver.ID.String()]
		if !ok {
			continue
		}
		coord := pos
		dist := utils.DistanceKm(coord, near)
		drivers[i].Position = &coord
		drivers[i].DistanceKm = &dist
	}
}

// rank orders the pool: ascending distance when proximity ranking is on
// (unknown positions last), descending rating otherwise and as tiebreak.
func (uc *AvailabilityUC) rank(drivers []models.AssignableDriver, byDistance bool) {
	sort.SliceStable(drivers, func(i, j int) bool {
		if byDistance {
			di, dj := drivers[i].DistanceKm, drivers[j].DistanceKm
			switch {
			case di != nil && dj != nil && *di != *dj:
				return *di < *dj
			case di != nil && dj == nil:
				return true
			case di == nil && dj != nil:
				return false
			}
		}
		return drivers[i].Driver.Rating > drivers[j].Driver.Rating
	})
}

// DispatchSnapshot aggregates the dashboard counts under the configured
// deadline. A timed-out store is reported as a degraded zero-valued
// snapshot, never an error: the dashboard stays up when the store is slow.
func (uc *AvailabilityUC) DispatchSnapshot(ctx context.Context) (*models.DispatchSnapshot, error) {
	timeout := time.Duration(uc.cfg.Dispatch.SnapshotTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	snapshot := &models.DispatchSnapshot{GeneratedAt: time.Now()}

	online, err := uc.repo.CountDriversByStatus(ctx, models.DriverStatusOnline)
	if err != nil {
		return uc.degradeOrFail(snapshot, err)
	}
	busy, err := uc.repo.CountDriversByStatus(ctx, models.DriverStatusBusy)
	if err != nil {
		return uc.degradeOrFail(snapshot, err)
	}
	open, err := uc.repo.CountOpenTrips(ctx)
	if err != nil {
		return uc.degradeOrFail(snapshot, err)
	}

	snapshot.OnlineDrivers = online
	snapshot.BusyDrivers = busy
	snapshot.OpenTrips = open
	return snapshot, nil
}

func (uc *AvailabilityUC) degradeOrFail(snapshot *models.DispatchSnapshot, err error) (*models.DispatchSnapshot, error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errs.ErrUpstreamTimeout) {
		logger.Warn("snapshot query timed out, serving degraded counts", logger.Fields{"error": err.Error()})
		snapshot.Degraded = true
		return snapshot, nil
	}
	return nil, err
}
