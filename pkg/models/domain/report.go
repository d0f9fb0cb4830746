package domain

import "time"

// AvailabilityStatus is the multi-way occupancy classification of one
// apartment over one window.
type AvailabilityStatus int

const (
	Available AvailabilityStatus = iota
	Reserved
	Overbooked
)

// String renders the status the way the report displays it.
func (s AvailabilityStatus) String() string {
	switch s {
	case Reserved:
		return "Réservé"
	case Overbooked:
		return "Surbooking"
	default:
		return "Disponible"
	}
}

// CellKind tags the typed value carried by a report cell.
type CellKind int

const (
	CellPrice CellKind = iota
	CellStatus
	CellOccupancy
	CellTally
)

// Cell is one typed value of a report matrix. Valid=false is the
// MISSING / NOT_APPLICABLE sentinel: the aggregation had no contributing
// records, which is distinct from a zero value.
type Cell struct {
	Kind      CellKind
	Valid     bool
	Price     float64
	Status    AvailabilityStatus
	Occupancy float64
	Tally     AvailabilityTally
}

// AvailabilityTally counts apartments of one category per status.
type AvailabilityTally struct {
	Available  int
	Reserved   int
	Overbooked int
	Total      int
}

// PriceCell wraps an aggregation result; ok=false produces a blank cell.
func PriceCell(amount float64, ok bool) Cell {
	return Cell{Kind: CellPrice, Valid: ok, Price: amount}
}

// StatusCell holds an availability classification.
func StatusCell(s AvailabilityStatus) Cell {
	return Cell{Kind: CellStatus, Valid: true, Status: s}
}

// OccupancyCell wraps a monthly occupancy percentage; ok=false means the
// month held no sub-periods and the cell renders as not applicable.
func OccupancyCell(pct float64, ok bool) Cell {
	return Cell{Kind: CellOccupancy, Valid: ok, Occupancy: pct}
}

// TallyCell holds per-category availability counts.
func TallyCell(t AvailabilityTally) Cell {
	return Cell{Kind: CellTally, Valid: t.Total > 0, Tally: t}
}

// RowKind distinguishes category summary rows, apartment rows, and the
// per-category availability tally rows of the combined sheet.
type RowKind int

const (
	RowCategory RowKind = iota
	RowApartment
	RowTally
)

// Row is one labeled line of a sheet.
type Row struct {
	Label string
	Kind  RowKind
	Cells []Cell
}

// Sheet is a matrix of (row = category summary or apartment) x
// (column = window). Columns holds the window of each data column, aligned
// with Header[1:] and with every row's Cells.
type Sheet struct {
	Name    string
	Owner   string
	Header  []string
	Columns []Window
	Rows    []Row
}

// Report is the assembled result handed to a writer. Sheets are ordered by
// owner name with the combined sheet last; contents are a pure function of
// the inputs.
type Report struct {
	RangeStart time.Time
	RangeEnd   time.Time
	PeriodDays int
	Sheets     []Sheet
	Warnings   []Warning
}

// CombinedSheetName is the sheet spanning every apartment regardless of
// owner. Always the last sheet of a report.
const CombinedSheetName = "All Apartments"
