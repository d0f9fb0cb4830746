// Package report composes classification, occupancy, and pricing results
// into the multi-sheet report structure handed to a writer.
package report

import (
	"context"
	"sync"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/de-tools/rent-atlas/pkg/services/availability"
	"github.com/de-tools/rent-atlas/pkg/services/pricing"
	"github.com/de-tools/rent-atlas/pkg/services/schedule"
)

// Assembler builds reports from one immutable input snapshot. All of its
// collaborators are pure over that snapshot, so sheets can be computed
// concurrently without synchronization.
type Assembler struct {
	index      domain.ApartmentIndex
	categories []domain.Category
	classifier *availability.Classifier
	pricing    *pricing.Aggregator
	groups     []schedule.MonthGroup
	columns    []domain.Window
	header     []string
}

// Input carries everything a report run consumes. Windows must come from
// the schedule package for the same range.
type Input struct {
	Apartments   []domain.Apartment
	Reservations []domain.Reservation
	Regular      []domain.Window
	Monthly      []domain.Window
	// PeriodDays is the configured regular window length; zero under the
	// weekday/weekend split, where no single length exists.
	PeriodDays int
	Warnings   []domain.Warning
}

// NewAssembler prepares the shared read-only state for a run.
func NewAssembler(in Input) *Assembler {
	idx := domain.NewApartmentIndex(in.Apartments)
	groups := schedule.GroupByMonth(in.Regular, in.Monthly)

	// Column layout: each month's regular windows immediately followed by
	// that month's summary column.
	var columns []domain.Window
	header := []string{"Type"}
	for _, g := range groups {
		for _, p := range g.Periods {
			columns = append(columns, p)
			header = append(header, p.Label)
		}
		columns = append(columns, g.Month)
		header = append(header, g.Month.Label)
	}

	return &Assembler{
		index:      idx,
		categories: idx.PresentCategories(),
		classifier: availability.NewClassifier(in.Reservations),
		pricing:    pricing.NewAggregator(idx, in.Reservations),
		groups:     groups,
		columns:    columns,
		header:     header,
	}
}

// Assemble produces one sheet per owner, sorted by owner name, plus the
// combined sheet last. Sheets are built concurrently; the result is a pure
// function of the input, so repeated calls yield identical reports.
// Cancellation is honored between sheets, never mid-sheet.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*domain.Report, error) {
	owners := a.index.Owners()
	sheets := make([]domain.Sheet, len(owners)+1)

	var wg sync.WaitGroup
	for i, owner := range owners {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, owner string) {
			defer wg.Done()
			sheets[i] = a.buildSheet(owner, owner, a.index.ByOwner(owner))
		}(i, owner)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		combined := a.buildSheet(domain.CombinedSheetName, "", a.index.All())
		for _, category := range a.categories {
			combined.Rows = append(combined.Rows, a.tallyRow(category))
		}
		sheets[len(owners)] = combined
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		Sheets:     sheets,
		PeriodDays: in.PeriodDays,
		Warnings:   in.Warnings,
	}
	if len(in.Regular) > 0 {
		report.RangeStart = in.Regular[0].Start
		report.RangeEnd = in.Regular[len(in.Regular)-1].End
	}
	return report, nil
}

func (a *Assembler) buildSheet(name, owner string, apartments []domain.Apartment) domain.Sheet {
	sheet := domain.Sheet{
		Name:    sheetName(name),
		Owner:   owner,
		Header:  a.header,
		Columns: a.columns,
	}

	for _, category := range a.categories {
		sheet.Rows = append(sheet.Rows, a.categoryRow(category))
	}
	for _, apt := range apartments {
		sheet.Rows = append(sheet.Rows, a.apartmentRow(apt))
	}
	return sheet
}

// categoryRow holds per-night price averages for the regular columns and
// the mean of the month's period averages for monthly columns. Occupancy is
// apartment-level only and never computed here.
func (a *Assembler) categoryRow(category domain.Category) domain.Row {
	row := domain.Row{Label: category.Label(), Kind: domain.RowCategory}
	for _, g := range a.groups {
		for _, p := range g.Periods {
			avg, ok := a.pricing.AveragePricePerNight(category, p)
			row.Cells = append(row.Cells, domain.PriceCell(avg, ok))
		}
		avg, ok := a.pricing.MonthlyAveragePerNight(category, g.Periods)
		row.Cells = append(row.Cells, domain.PriceCell(avg, ok))
	}
	return row
}

// apartmentRow holds availability statuses for the regular columns and
// monthly occupancy for monthly columns.
func (a *Assembler) apartmentRow(apt domain.Apartment) domain.Row {
	row := domain.Row{Label: apt.Name, Kind: domain.RowApartment}
	for _, g := range a.groups {
		for _, p := range g.Periods {
			row.Cells = append(row.Cells, domain.StatusCell(a.classifier.Classify(apt.Name, p)))
		}
		pct, ok := a.classifier.MonthlyOccupancy(apt.Name, g.Month, g.Periods)
		row.Cells = append(row.Cells, domain.OccupancyCell(pct, ok))
	}
	return row
}

// tallyRow counts every apartment of a category per status, column by
// column. Only the combined sheet carries these rows.
func (a *Assembler) tallyRow(category domain.Category) domain.Row {
	row := domain.Row{Label: category.TallyLabel(), Kind: domain.RowTally}
	for _, w := range a.columns {
		row.Cells = append(row.Cells, domain.TallyCell(a.classifier.CategoryTally(a.index, category, w)))
	}
	return row
}

// sheetName caps a sheet name to the 31 characters a workbook allows.
func sheetName(name string) string {
	if r := []rune(name); len(r) > 31 {
		return string(r[:31])
	}
	return name
}
