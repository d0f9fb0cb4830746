// Package pricing aggregates category-level price averages per reporting
// window. Reservations without a price are excluded from every average,
// never treated as zero; an aggregation with no contributing reservations
// yields a missing result distinct from zero.
package pricing

import (
	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// Aggregator computes price averages for one reservation snapshot. The
// category index is built once per run; the aggregator holds no mutable
// state after construction.
type Aggregator struct {
	byCategory map[domain.Category][]domain.Reservation
}

// NewAggregator groups reservations by the category of their apartment.
// Reservations whose apartment is absent from the index have no category
// and never contribute to an average.
func NewAggregator(idx domain.ApartmentIndex, reservations []domain.Reservation) *Aggregator {
	byCategory := make(map[domain.Category][]domain.Reservation)
	for _, r := range reservations {
		apt, ok := idx[r.Apartment]
		if !ok || !apt.Category.Known() {
			continue
		}
		byCategory[apt.Category] = append(byCategory[apt.Category], r)
	}
	return &Aggregator{byCategory: byCategory}
}

// AveragePrice is the mean price per reservation over the category's priced
// reservations overlapping the window: sum(price) / count(reservations).
func (a *Aggregator) AveragePrice(category domain.Category, w domain.Window) (float64, bool) {
	sum, count := 0.0, 0
	for _, r := range a.byCategory[category] {
		if !r.Price.Valid || !w.Overlaps(r.CheckIn, r.CheckOut) {
			continue
		}
		sum += r.Price.Amount
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// AveragePricePerNight is the night-normalized variant:
// sum(price) / sum(nights) over the category's priced reservations
// overlapping the window. Reservations without a positive nights count are
// excluded. Not interchangeable with AveragePrice.
func (a *Aggregator) AveragePricePerNight(category domain.Category, w domain.Window) (float64, bool) {
	sumPrice, sumNights := 0.0, 0
	for _, r := range a.byCategory[category] {
		if !r.Price.Valid || r.Nights <= 0 || !w.Overlaps(r.CheckIn, r.CheckOut) {
			continue
		}
		sumPrice += r.Price.Amount
		sumNights += r.Nights
	}
	if sumNights == 0 {
		return 0, false
	}
	return sumPrice / float64(sumNights), true
}

// MonthlyAveragePerNight averages the per-night period averages of the
// regular windows grouped under a month. Periods without data are skipped;
// a month with no priced periods is missing.
func (a *Aggregator) MonthlyAveragePerNight(
	category domain.Category,
	periods []domain.Window,
) (float64, bool) {
	sum, count := 0.0, 0
	for _, p := range periods {
		avg, ok := a.AveragePricePerNight(category, p)
		if !ok {
			continue
		}
		sum += avg
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
