package availability

import (
	"math"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// MonthlyOccupancy computes the percentage of a month's sub-periods in
// which the apartment is reserved or overbooked, rounded to one decimal.
// Only regular windows fully contained in the month window count. When the
// month holds no sub-periods the result is not applicable (ok=false), which
// callers must keep distinct from a true 0%.
func (c *Classifier) MonthlyOccupancy(
	apartment string,
	month domain.Window,
	subPeriods []domain.Window,
) (float64, bool) {
	total, occupied := 0, 0
	for _, p := range subPeriods {
		if p.Kind != domain.WindowRegular || !p.Within(month) {
			continue
		}
		total++
		if c.Classify(apartment, p) != domain.Available {
			occupied++
		}
	}
	if total == 0 {
		return 0, false
	}
	pct := float64(occupied) / float64(total) * 100
	return math.Round(pct*10) / 10, true
}
