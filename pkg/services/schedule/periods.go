// Package schedule generates the reporting windows covering a requested
// date range: fixed-length regular periods, clipped monthly summaries, and
// the weekday/weekend split variant.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// ErrInvalidRange is the only condition that aborts a report run. It covers
// an inverted range and a non-positive period length.
var ErrInvalidRange = errors.New("invalid report range")

// DefaultPeriodDays is the period length used when the caller does not
// configure one.
const DefaultPeriodDays = 3

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start %s after end %s",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}

// Regular emits contiguous windows of periodDays days covering
// [start, end]. The windows partition the range with no gaps and no
// overlaps; the final window is clipped so its end never exceeds end.
func Regular(start, end time.Time, periodDays int) ([]domain.Window, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if periodDays < 1 {
		return nil, fmt.Errorf("%w: period length %d days", ErrInvalidRange, periodDays)
	}

	start, end = domain.DayOf(start), domain.DayOf(end)

	var windows []domain.Window
	for cur := start; !cur.After(end); {
		windowEnd := cur.AddDate(0, 0, periodDays-1)
		if windowEnd.After(end) {
			windowEnd = end
		}
		windows = append(windows, domain.Window{
			Start: cur,
			End:   windowEnd,
			Kind:  domain.WindowRegular,
			Label: RegularLabel(cur, windowEnd),
		})
		cur = windowEnd.AddDate(0, 0, 1)
	}
	return windows, nil
}

// Monthly emits one window per calendar month intersecting [start, end],
// clipped at both range boundaries. A month entirely outside the range
// produces no window.
func Monthly(start, end time.Time) ([]domain.Window, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	start, end = domain.DayOf(start), domain.DayOf(end)

	var windows []domain.Window
	for year, month := start.Year(), start.Month(); ; {
		monthStart := domain.Date(year, month, 1)
		monthEnd := monthStart.AddDate(0, 1, -1)
		if monthStart.After(end) {
			break
		}

		winStart, winEnd := monthStart, monthEnd
		clipped := false
		if winStart.Before(start) {
			winStart, clipped = start, true
		}
		if winEnd.After(end) {
			winEnd, clipped = end, true
		}
		windows = append(windows, domain.Window{
			Start: winStart,
			End:   winEnd,
			Kind:  domain.WindowMonthly,
			Label: MonthlyLabel(year, month, clipped),
		})

		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return windows, nil
}

// WeekdaySplit emits alternating Monday-Thursday and Friday-Sunday windows
// covering [start, end], clipped at both boundaries.
func WeekdaySplit(start, end time.Time) ([]domain.Window, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	start, end = domain.DayOf(start), domain.DayOf(end)

	var windows []domain.Window
	for cur := start; !cur.After(end); {
		var windowEnd time.Time
		switch wd := cur.Weekday(); {
		case wd >= time.Monday && wd <= time.Thursday:
			windowEnd = cur.AddDate(0, 0, int(time.Thursday-wd))
		case wd == time.Sunday:
			windowEnd = cur
		default: // Friday or Saturday
			windowEnd = cur.AddDate(0, 0, int(time.Saturday-wd)+1)
		}
		if windowEnd.After(end) {
			windowEnd = end
		}
		windows = append(windows, domain.Window{
			Start: cur,
			End:   windowEnd,
			Kind:  domain.WindowRegular,
			Label: RegularLabel(cur, windowEnd),
		})
		cur = windowEnd.AddDate(0, 0, 1)
	}
	return windows, nil
}

// MonthGroup pairs a monthly summary window with the regular windows that
// belong to its month. A regular window belongs to the month its start date
// falls in; this drives the report's column layout.
type MonthGroup struct {
	Month   domain.Window
	Periods []domain.Window
}

// GroupByMonth arranges regular windows under their monthly summaries in
// chronological order.
func GroupByMonth(regular, monthly []domain.Window) []MonthGroup {
	groups := make([]MonthGroup, 0, len(monthly))
	for _, m := range monthly {
		g := MonthGroup{Month: m}
		for _, p := range regular {
			if p.Start.Year() == m.Start.Year() && p.Start.Month() == m.Start.Month() {
				g.Periods = append(g.Periods, p)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// RegularLabel formats a period column header as "DD/MM - DD/MM".
func RegularLabel(start, end time.Time) string {
	return start.Format("02/01") + " - " + end.Format("02/01")
}

// MonthlyLabel formats a monthly summary header. Months clipped at a range
// boundary are qualified as partial instead of full.
func MonthlyLabel(year int, month time.Month, clipped bool) string {
	qualifier := "Mois complet"
	if clipped {
		qualifier = "Partiel"
	}
	return fmt.Sprintf("%s %d - %s", month.String(), year, qualifier)
}
