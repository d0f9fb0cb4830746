package loader

import (
	"sort"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// Merge reconciles reservations against the mapping. Reservations that
// reference an apartment absent from the mapping are never dropped: the
// missing apartments are added under the Unassigned owner with a category
// inferred from their name, and each one is surfaced as a warning carrying
// its reservation count.
func Merge(apartments []domain.Apartment, reservations []domain.Reservation) ([]domain.Apartment, []domain.Warning) {
	known := make(map[string]struct{}, len(apartments))
	for _, a := range apartments {
		known[a.Name] = struct{}{}
	}

	unknown := map[string]int{}
	for _, r := range reservations {
		if _, ok := known[r.Apartment]; !ok {
			unknown[r.Apartment]++
		}
	}
	if len(unknown) == 0 {
		return apartments, nil
	}

	names := make([]string, 0, len(unknown))
	for name := range unknown {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make([]domain.Apartment, len(apartments), len(apartments)+len(names))
	copy(merged, apartments)

	warnings := make([]domain.Warning, 0, len(names))
	for _, name := range names {
		merged = append(merged, domain.Apartment{
			Name:     name,
			Owner:    domain.OwnerUnassigned,
			Category: domain.InferCategory(name),
		})
		warnings = append(warnings, domain.Warning{
			Kind:      domain.WarningUnknownApartment,
			Apartment: name,
			Count:     unknown[name],
		})
	}
	return merged, warnings
}
