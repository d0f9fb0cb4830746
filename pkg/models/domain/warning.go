package domain

import "fmt"

// WarningKind classifies non-fatal data issues collected during a run.
type WarningKind string

const (
	// WarningUnknownApartment marks reservations referencing an apartment
	// absent from the mapping file.
	WarningUnknownApartment WarningKind = "unknown_apartment"
	// WarningInvalidDates marks reservation rows dropped for unparseable or
	// inverted check-in/check-out dates.
	WarningInvalidDates WarningKind = "invalid_dates"
)

// Warning is one collected data issue. Warnings never abort a run; they are
// returned alongside the report so the caller can display them.
type Warning struct {
	Kind      WarningKind
	Apartment string
	Count     int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningUnknownApartment:
		return fmt.Sprintf("apartment %q not in mapping (%d reservations)", w.Apartment, w.Count)
	case WarningInvalidDates:
		return fmt.Sprintf("%d reservations dropped for invalid dates", w.Count)
	default:
		return fmt.Sprintf("%s: %s (%d)", w.Kind, w.Apartment, w.Count)
	}
}
