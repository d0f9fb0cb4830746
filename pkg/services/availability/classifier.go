// Package availability classifies apartment occupancy per reporting window
// and derives occupancy rates from the classifications.
package availability

import (
	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// Classifier answers occupancy questions for one reservation snapshot. It
// groups reservations by apartment once so per-window classification only
// scans that apartment's bookings. Safe for concurrent use: the index is
// never mutated after construction.
type Classifier struct {
	byApartment map[string][]domain.Reservation
}

// NewClassifier indexes a reservation snapshot.
func NewClassifier(reservations []domain.Reservation) *Classifier {
	byApartment := make(map[string][]domain.Reservation)
	for _, r := range reservations {
		byApartment[r.Apartment] = append(byApartment[r.Apartment], r)
	}
	return &Classifier{byApartment: byApartment}
}

// Classify counts the apartment's reservations overlapping the window:
// zero means available, exactly one reserved, two or more overbooked.
// Both confirmed and pre-reservations occupy. An apartment with no
// reservations at all is available for every window.
func (c *Classifier) Classify(apartment string, w domain.Window) domain.AvailabilityStatus {
	overlapping := 0
	for _, r := range c.byApartment[apartment] {
		if w.Overlaps(r.CheckIn, r.CheckOut) {
			overlapping++
		}
	}
	switch {
	case overlapping == 0:
		return domain.Available
	case overlapping == 1:
		return domain.Reserved
	default:
		return domain.Overbooked
	}
}

// CategoryTally counts apartments of one category per status for a window.
func (c *Classifier) CategoryTally(
	idx domain.ApartmentIndex,
	category domain.Category,
	w domain.Window,
) domain.AvailabilityTally {
	var tally domain.AvailabilityTally
	for _, name := range idx.NamesByCategory(category) {
		tally.Total++
		switch c.Classify(name, w) {
		case domain.Reserved:
			tally.Reserved++
		case domain.Overbooked:
			tally.Overbooked++
		default:
			tally.Available++
		}
	}
	return tally
}
