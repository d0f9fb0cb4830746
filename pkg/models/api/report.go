package api

import "time"

// Warning is a non-fatal data issue surfaced alongside a report.
type Warning struct {
	Kind      string `json:"kind"`
	Apartment string `json:"apartment,omitempty"`
	Count     int    `json:"count"`
	Message   string `json:"message"`
}

// TimeRange is the report's requested date range.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SheetSummary describes one generated sheet without its cell data.
type SheetSummary struct {
	Name       string `json:"name"`
	Owner      string `json:"owner,omitempty"`
	Columns    int    `json:"columns"`
	Categories int    `json:"category_rows"`
	Apartments int    `json:"apartment_rows"`
}

// ReportSummary is the JSON answer of the report endpoint when the caller
// asks for a summary instead of the workbook itself.
type ReportSummary struct {
	Range      TimeRange      `json:"range"`
	PeriodDays int            `json:"period_days"`
	Sheets     []SheetSummary `json:"sheets"`
	Warnings   []Warning      `json:"warnings"`
}

// Error is the uniform error envelope of the HTTP API.
type Error struct {
	Error string `json:"error"`
}
