// Package xlsx renders an assembled report into a multi-sheet workbook.
package xlsx

import (
	"fmt"
	"io"
	"math"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	labelColumnWidth = 35
	dataColumnWidth  = 12
)

// Write renders every sheet of the report and writes the workbook to w.
func Write(report *domain.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6F3FF"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create summary style: %w", err)
	}

	for _, sheet := range report.Sheets {
		if err := writeSheet(f, sheet, headerStyle, summaryStyle); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	if len(report.Sheets) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet domain.Sheet, headerStyle, summaryStyle int) error {
	if _, err := f.NewSheet(sheet.Name); err != nil {
		return err
	}

	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		values := make([]interface{}, 0, len(row.Cells)+1)
		values = append(values, row.Label)
		for _, c := range row.Cells {
			values = append(values, cellValue(c))
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, start, &values); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheet.Header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet.Name, "A", "A", labelColumnWidth); err != nil {
		return err
	}
	if len(sheet.Header) > 1 {
		if err := f.SetColWidth(sheet.Name, "B", lastCol, dataColumnWidth); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	// Category summary rows sit on top; highlight the block.
	summaryRows := 0
	for _, row := range sheet.Rows {
		if row.Kind != domain.RowCategory {
			break
		}
		summaryRows++
	}
	if summaryRows > 0 {
		end := fmt.Sprintf("%s%d", lastCol, summaryRows+1)
		if err := f.SetCellStyle(sheet.Name, "A2", end, summaryStyle); err != nil {
			return err
		}
	}
	return nil
}

// cellValue renders a typed cell. Sentinels become empty cells: a missing
// price or a not-applicable occupancy is never written as zero.
func cellValue(c domain.Cell) interface{} {
	if !c.Valid {
		return nil
	}
	switch c.Kind {
	case domain.CellPrice:
		return math.Round(c.Price*100) / 100
	case domain.CellStatus:
		return c.Status.String()
	case domain.CellOccupancy:
		return fmt.Sprintf("%.1f%%", c.Occupancy)
	case domain.CellTally:
		t := c.Tally
		v := fmt.Sprintf("%dD/%dR", t.Available, t.Reserved)
		if t.Overbooked > 0 {
			v += fmt.Sprintf("/%dS", t.Overbooked)
		}
		return v
	default:
		return nil
	}
}
