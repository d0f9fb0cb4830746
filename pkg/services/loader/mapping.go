// Package loader reads the two input files of a report run: the apartment
// mapping workbook and the reservations export. Parsing is strict about the
// columns the engine needs and tolerant about everything else.
package loader

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// Column headers of the mapping workbook and the reservations export.
const (
	colApartment  = "Nom du logement"
	colOwner      = "Proprio"
	colCategory   = "catégorie"
	colCommission = "commission"
	colCheckIn    = "Date d'arrivée"
	colCheckOut   = "Date de sortie"
	colStatus     = "Statut"
	colPrice      = "Location avec TVA"
	colNights     = "nuits"
)

// ErrMissingColumn marks an input file that lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// LoadMapping reads the apartment mapping from the first sheet of an .xlsx
// workbook. Rows without an apartment name are skipped.
func LoadMapping(r io.Reader) ([]domain.Apartment, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("mapping workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("mapping sheet is empty")
	}

	cols, err := columnIndex(rows[0], colApartment, colOwner, colCategory)
	if err != nil {
		return nil, fmt.Errorf("mapping file: %w", err)
	}

	var apartments []domain.Apartment
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, cols[colApartment]))
		if name == "" {
			continue
		}
		category, _ := domain.ParseCategory(cell(row, cols[colCategory]))
		apt := domain.Apartment{
			Name:     name,
			Owner:    strings.TrimSpace(cell(row, cols[colOwner])),
			Category: category,
		}
		if i, ok := cols[colCommission]; ok {
			if v, err := strconv.ParseFloat(normalizeDecimal(cell(row, i)), 64); err == nil {
				apt.Commission = v
			}
		}
		apartments = append(apartments, apt)
	}
	return apartments, nil
}

type columnSet map[string]int

// columnIndex maps header names to positions and checks the required set.
func columnIndex(header []string, required ...string) (columnSet, error) {
	cols := columnSet{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// normalizeDecimal accepts the export's French number formatting: comma
// decimals and space (or narrow no-break space) thousand separators.
func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, ",", ".")
}
