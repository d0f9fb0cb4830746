package domain

import (
	"fmt"
	"time"
)

// WindowKind tags a reporting window as a regular period or a monthly
// summary column.
type WindowKind int

const (
	WindowRegular WindowKind = iota
	WindowMonthly
)

// Window is a closed inclusive date range [Start, End] used as a report
// column. Windows are generated once per run and never mutated.
type Window struct {
	Start time.Time
	End   time.Time
	Kind  WindowKind
	Label string
}

// Overlaps reports whether a reservation [checkIn, checkOut] occupies the
// window. The test is closed on both ends: a reservation checking out on the
// window's start day still counts as overlapping, which is what decides
// same-day turnover classification.
func (w Window) Overlaps(checkIn, checkOut time.Time) bool {
	return !checkIn.After(w.End) && !checkOut.Before(w.Start)
}

// Contains reports whether a day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Within reports whether the window is fully contained in outer.
func (w Window) Within(outer Window) bool {
	return !w.Start.Before(outer.Start) && !w.End.After(outer.End)
}

// Days returns the window length in calendar days, inclusive.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("%s [%s, %s]", w.Label,
		w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
