package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

const dateLayout = "02/01/2006"

// LoadReservations reads the reservations CSV export. The export carries a
// title line before the header, so the first record is skipped. Rows with
// unparseable or inverted dates are dropped and reported as a warning, not
// an error. Reservations come back sorted by check-in date.
func LoadReservations(r io.Reader) ([]domain.Reservation, []domain.Warning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		return nil, nil, fmt.Errorf("failed to read reservations title line: %w", err)
	}
	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read reservations header: %w", err)
	}

	cols, err := columnIndex(header, colApartment, colCheckIn, colCheckOut, colStatus, colPrice)
	if err != nil {
		return nil, nil, fmt.Errorf("reservations file: %w", err)
	}

	var reservations []domain.Reservation
	dropped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read reservations row: %w", err)
		}

		name := strings.TrimSpace(cell(row, cols[colApartment]))
		if name == "" {
			continue
		}

		checkIn, inErr := time.Parse(dateLayout, strings.TrimSpace(cell(row, cols[colCheckIn])))
		checkOut, outErr := time.Parse(dateLayout, strings.TrimSpace(cell(row, cols[colCheckOut])))
		if inErr != nil || outErr != nil || checkOut.Before(checkIn) {
			dropped++
			continue
		}
		checkIn, checkOut = domain.DayOf(checkIn.UTC()), domain.DayOf(checkOut.UTC())

		res := domain.Reservation{
			Apartment: name,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Status:    parseStatus(cell(row, cols[colStatus])),
			Price:     parsePrice(cell(row, cols[colPrice])),
			Nights:    int(checkOut.Sub(checkIn).Hours() / 24),
		}
		if i, ok := cols[colNights]; ok {
			if n, err := strconv.Atoi(strings.TrimSpace(cell(row, i))); err == nil && n > 0 {
				res.Nights = n
			}
		}
		reservations = append(reservations, res)
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CheckIn.Before(reservations[j].CheckIn)
	})

	var warnings []domain.Warning
	if dropped > 0 {
		warnings = append(warnings, domain.Warning{Kind: domain.WarningInvalidDates, Count: dropped})
	}
	return reservations, warnings, nil
}

// parseStatus maps the export's status labels. Anything not recognizably a
// pre-reservation counts as confirmed; both occupy either way.
func parseStatus(raw string) domain.ReservationStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(s, "pré") || strings.Contains(s, "pre") {
		return domain.StatusPreReservation
	}
	return domain.StatusConfirmed
}

// parsePrice accepts both dot and comma decimals; blank or unparseable
// values are absent, never zero.
func parsePrice(raw string) domain.Price {
	s := normalizeDecimal(raw)
	if s == "" {
		return domain.Price{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Price{}
	}
	return domain.SomePrice(v)
}
