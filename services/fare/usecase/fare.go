package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/fare"
)

// FareUC implements the fare.FareUC interface
type FareUC struct {
	cfg  *models.Config
	repo fare.FareRepo
}

// NewFareUC creates a new fare use case
func NewFareUC(cfg *models.Config, repo fare.FareRepo) *FareUC {
	return &FareUC{
		cfg:  cfg,
		repo: repo,
	}
}

// EstimateFare computes a trip price from the active fare matrix entry for
// the requested booking category and vehicle class. Monetary output is
// floored to whole currency units.
func (uc *FareUC) EstimateFare(ctx context.Context, req *models.FareRequest) (*models.FareQuote, error) {
	if !models.ValidBookingCategory(req.BookingCategory) {
		return nil, errs.Wrap(errs.KindInvalidInput, fmt.Sprintf("unknown booking category %q", req.BookingCategory), errs.ErrInvalidParameter)
	}
	if !models.ValidVehicleCategory(req.VehicleCategory) {
		return nil, errs.Wrap(errs.KindInvalidInput, fmt.Sprintf("unknown vehicle category %q", req.VehicleCategory), errs.ErrInvalidParameter)
	}

	entry, err := uc.repo.GetFareEntry(ctx, req.BookingCategory, req.VehicleCategory)
	if err != nil {
		return nil, err
	}

	var amount int
	var breakdown map[string]int

	switch req.BookingCategory {
	case models.BookingRegular:
		amount, breakdown, err = uc.regularFare(entry, req)
	case models.BookingOutstation:
		amount, breakdown, err = uc.outstationFare(entry, req)
	case models.BookingRental:
		amount, breakdown, err = uc.rentalFare(entry, req)
	case models.BookingAirport:
		amount, breakdown, err = uc.airportFare(entry, req)
	}
	if err != nil {
		return nil, err
	}

	return &models.FareQuote{
		BookingCategory: req.BookingCategory,
		VehicleCategory: req.VehicleCategory,
		Amount:          amount,
		Currency:        uc.cfg.Fare.Currency,
		Breakdown:       breakdown,
	}, nil
}

// CancellationFee returns the configured cancellation fee for the standard
// fare entry of the given category and class. It is charged when a trip is
// cancelled after a driver accepted it.
func (uc *FareUC) CancellationFee(ctx context.Context, category models.BookingCategory, class models.VehicleCategory) (int, error) {
	entry, err := uc.repo.GetFareEntry(ctx, category, class)
	if err != nil {
		return 0, err
	}
	if entry.Standard == nil {
		return 0, errs.Wrap(errs.KindConfigurationMissing, "fare entry has no standard rates", errs.ErrFareConfigMissing)
	}
	return entry.Standard.CancellationFee, nil
}

// regularFare: base + km*perKm + minutes*perMinute, floored at minimumFare.
func (uc *FareUC) regularFare(entry *models.FareEntry, req *models.FareRequest) (int, map[string]int, error) {
	if entry.Standard == nil {
		return 0, nil, errs.Wrap(errs.KindConfigurationMissing, "fare entry has no standard rates", errs.ErrFareConfigMissing)
	}
	if req.DistanceKm <= 0 {
		return 0, nil, errs.Wrap(errs.KindInvalidInput, "distance must be positive", errs.ErrInvalidParameter)
	}
	if req.DurationMinutes <= 0 {
		return 0, nil, errs.Wrap(errs.KindInvalidInput, "duration must be positive", errs.ErrInvalidParameter)
	}

	rates := entry.Standard
	distanceFare := floor(req.DistanceKm * rates.PerKmRate)
	durationFare := floor(float64(req.DurationMinutes) * rates.PerMinuteRate)
	amount := rates.BaseFare + distanceFare + durationFare

	breakdown := map[string]int{
		"base_fare":     rates.BaseFare,
		"distance_fare": distanceFare,
		"duration_fare": durationFare,
	}

	if amount < rates.MinimumFare {
		amount = rates.MinimumFare
		breakdown["minimum_fare_applied"] = rates.MinimumFare
	}

	return amount, breakdown, nil
}

// outstationFare: smallest slab band covering the distance; beyond the
// largest band the extra-km rate applies. Multi-day trips add a per-day
// driver allowance and a window overlapping night hours adds a surcharge.
func (uc *FareUC) outstationFare(entry *models.FareEntry, req *models.FareRequest) (int, map[string]int, error) {
	if len(entry.Slabs) == 0 || entry.SlabExtra == nil {
		return 0, nil, errs.Wrap(errs.KindConfigurationMissing, "fare entry has no slab table", errs.ErrFareConfigMissing)
	}
	if req.DistanceKm <= 0 {
		return 0, nil, errs.Wrap(errs.KindInvalidInput, "distance must be positive", errs.ErrInvalidParameter)
	}

	// Slabs are stored ordered by distance; pick the smallest band that
	// covers the requested distance.
	var amount int
	breakdown := map[string]int{}
	largest := entry.Slabs[len(entry.Slabs)-1]

	if req.DistanceKm > float64(largest.UpToKm) {
		extraKm := req.DistanceKm - float64(largest.UpToKm)
		extra := floor(extraKm * entry.SlabExtra.ExtraKmRate)
		amount = largest.Total + extra
		breakdown["slab_total"] = largest.Total
		breakdown["extra_km_fare"] = extra
	} else {
		for _, band := range entry.Slabs {
			if req.DistanceKm <= float64(band.UpToKm) {
				amount = band.Total
				breakdown["slab_total"] = band.Total
				break
			}
		}
	}

	if req.WindowStart != nil && req.WindowEnd != nil {
		if req.WindowEnd.Before(*req.WindowStart) {
			return 0, nil, errs.Wrap(errs.KindInvalidInput, "trip window ends before it starts", errs.ErrInvalidParameter)
		}

		days := calendarDays(*req.WindowStart, *req.WindowEnd)
		if days > 1 {
			allowance := days * uc.cfg.Fare.DriverAllowance
			amount += allowance
			breakdown["driver_allowance"] = allowance
		}

		if overlapsNight(*req.WindowStart, *req.WindowEnd, uc.cfg.Fare.NightStartHour, uc.cfg.Fare.NightEndHour) {
			surcharge := floor(float64(breakdown["slab_total"]+breakdown["extra_km_fare"]) * entry.SlabExtra.NightSurchargePct / 100.0)
			amount += surcharge
			breakdown["night_surcharge"] = surcharge
		}
	}

	return amount, breakdown, nil
}

// rentalFare: hour-package base plus overage beyond the included kilometers
// and minutes; promotional packages apply their discount percentage.
func (uc *FareUC) rentalFare(entry *models.FareEntry, req *models.FareRequest) (int, map[string]int, error) {
	if len(entry.Rentals) == 0 {
		return 0, nil, errs.Wrap(errs.KindConfigurationMissing, "fare entry has no rental packages", errs.ErrFareConfigMissing)
	}
	if req.RentalHours <= 0 {
		return 0, nil, errs.Wrap(errs.KindInvalidInput, "rental hours must be positive", errs.ErrInvalidParameter)
	}

	var pkg *models.RentalPackage
	for i := range entry.Rentals {
		if entry.Rentals[i].Hours == req.RentalHours {
			pkg = &entry.Rentals[i]
			break
		}
	}
	if pkg == nil {
		return 0, nil, errs.Wrap(errs.KindConfigurationMissing, fmt.Sprintf("no rental package for %dh", req.RentalHours), errs.ErrFareConfigMissing)
	}

	amount := pkg.BaseFare
	breakdown := map[string]int{"package_fare": pkg.BaseFare}

	if req.ActualKm > pkg.IncludedKm {
		extra := floor((req.ActualKm - pkg.IncludedKm) * pkg.ExtraKmRate)
		amount += extra
		breakdown["extra_km_fare"] = extra
	}
	if req.ActualMinutes > pkg.IncludedMinutes {
		extra := floor(float64(req.ActualMinutes-pkg.IncludedMinutes) * pkg.ExtraMinuteRate)
		amount += extra
		breakdown["extra_minute_fare"] = extra
	}

	if pkg.Promotional && pkg.DiscountPct > 0 {
		discount := floor(float64(amount) * pkg.DiscountPct / 100.0)
		amount -= discount
		breakdown["discount"] = discount
	}

	return amount, breakdown, nil
}

// airportFare: fixed fare looked up by direction, no distance calculation.
func (uc *FareUC) airportFare(entry *models.FareEntry, req *models.FareRequest) (int, map[string]int, error) {
	if entry.Airport == nil {
		return 0, nil, errs.Wrap(errs.KindConfigurationMissing, "fare entry has no airport fares", errs.ErrFareConfigMissing)
	}

	switch req.Direction {
	case models.DirectionToAirport:
		return entry.Airport.ToAirport, map[string]int{"fixed_fare": entry.Airport.ToAirport}, nil
	case models.DirectionFromAirport:
		return entry.Airport.FromAirport, map[string]int{"fixed_fare": entry.Airport.FromAirport}, nil
	default:
		return 0, nil, errs.Wrap(errs.KindInvalidInput, fmt.Sprintf("unknown airport direction %q", req.Direction), errs.ErrInvalidParameter)
	}
}

// floor truncates a monetary amount to whole currency units.
func floor(v float64) int {
	return int(math.Floor(v))
}

// calendarDays counts the calendar days a window touches.
func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(e.Sub(s).Hours()/24) + 1
}

// overlapsNight reports whether any part of the window falls inside the
// configured night hours. The night window wraps midnight when
// nightStart > nightEnd.
func overlapsNight(start, end time.Time, nightStart, nightEnd int) bool {
	// A window a full day or longer always touches the night hours.
	if end.Sub(start) >= 24*time.Hour {
		return true
	}
	for t := start; !t.After(end); t = t.Add(time.Hour) {
		if hourInNight(t.Hour(), nightStart, nightEnd) {
			return true
		}
	}
	return hourInNight(end.Hour(), nightStart, nightEnd)
}

func hourInNight(hour, nightStart, nightEnd int) bool {
	if nightStart <= nightEnd {
		return hour >= nightStart && hour < nightEnd
	}
	return hour >= nightStart || hour < nightEnd
}
