package adapters

import (
	"github.com/de-tools/rent-atlas/pkg/models/api"
	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

// MapDomainReportToSummary flattens an assembled report into the JSON
// summary document served by the HTTP API.
func MapDomainReportToSummary(report *domain.Report) api.ReportSummary {
	summary := api.ReportSummary{
		Range: api.TimeRange{
			Start: report.RangeStart,
			End:   report.RangeEnd,
		},
		PeriodDays: report.PeriodDays,
		Sheets:     make([]api.SheetSummary, 0, len(report.Sheets)),
		Warnings:   MapDomainWarnings(report.Warnings),
	}

	for _, sheet := range report.Sheets {
		s := api.SheetSummary{
			Name:    sheet.Name,
			Owner:   sheet.Owner,
			Columns: len(sheet.Columns),
		}
		for _, row := range sheet.Rows {
			switch row.Kind {
			case domain.RowCategory:
				s.Categories++
			case domain.RowApartment:
				s.Apartments++
			}
		}
		summary.Sheets = append(summary.Sheets, s)
	}
	return summary
}

// MapDomainWarnings converts collected warnings for the API, always
// returning a non-nil slice so the JSON field is a list, not null.
func MapDomainWarnings(warnings []domain.Warning) []api.Warning {
	out := make([]api.Warning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, api.Warning{
			Kind:      string(w.Kind),
			Apartment: w.Apartment,
			Count:     w.Count,
			Message:   w.String(),
		})
	}
	return out
}
