package report

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/de-tools/rent-atlas/pkg/services/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureInput(t *testing.T) Input {
	t.Helper()

	start := domain.Date(2025, time.January, 1)
	end := domain.Date(2025, time.January, 10)
	regular, err := schedule.Regular(start, end, 3)
	require.NoError(t, err)
	monthly, err := schedule.Monthly(start, end)
	require.NoError(t, err)

	return Input{
		Apartments: []domain.Apartment{
			{Name: "Apt Nova", Owner: "Martin", Category: domain.CategoryStudio},
			{Name: "Apt Lumen", Owner: "Martin", Category: domain.CategoryOneBedroom},
			{Name: "Apt Orion", Owner: "Durand", Category: domain.CategoryStudio},
		},
		Reservations: []domain.Reservation{
			{
				Apartment: "Apt Nova",
				CheckIn:   domain.Date(2025, time.January, 2),
				CheckOut:  domain.Date(2025, time.January, 5),
				Status:    domain.StatusConfirmed,
				Price:     domain.SomePrice(300),
				Nights:    3,
			},
			{
				Apartment: "Apt Orion",
				CheckIn:   domain.Date(2025, time.January, 4),
				CheckOut:  domain.Date(2025, time.January, 8),
				Status:    domain.StatusPreReservation,
				Price:     domain.SomePrice(600),
				Nights:    4,
			},
		},
		Regular:    regular,
		Monthly:    monthly,
		PeriodDays: 3,
	}
}

func TestAssemble_EndToEnd(t *testing.T) {
	in := fixtureInput(t)
	require.Len(t, in.Regular, 4) // [01-03][04-06][07-09][10]
	require.Len(t, in.Monthly, 1)

	rep, err := NewAssembler(in).Assemble(context.Background(), in)
	require.NoError(t, err)

	// Two owner sheets plus the combined sheet, combined last.
	require.Len(t, rep.Sheets, 3)
	assert.Equal(t, "Durand", rep.Sheets[0].Name)
	assert.Equal(t, "Martin", rep.Sheets[1].Name)
	assert.Equal(t, domain.CombinedSheetName, rep.Sheets[2].Name)

	for _, sheet := range rep.Sheets {
		// "Type" plus 4 regular labels plus 1 monthly label.
		assert.Len(t, sheet.Header, 6)
		assert.Len(t, sheet.Columns, 5)
		for _, row := range sheet.Rows {
			assert.Len(t, row.Cells, 5)
		}
	}

	// Category rows precede apartment rows: both present categories on
	// every sheet, then this sheet's apartments.
	martin := rep.Sheets[1]
	require.Len(t, martin.Rows, 4)
	assert.Equal(t, domain.RowCategory, martin.Rows[0].Kind)
	assert.Equal(t, "Prix moyen - studio", martin.Rows[0].Label)
	assert.Equal(t, "Prix moyen - 1 chambre", martin.Rows[1].Label)
	assert.Equal(t, "Apt Lumen", martin.Rows[2].Label)
	assert.Equal(t, "Apt Nova", martin.Rows[3].Label)

	// The combined sheet additionally carries one tally row per category.
	combined := rep.Sheets[2]
	require.Len(t, combined.Rows, 7)
	assert.Equal(t, domain.RowTally, combined.Rows[5].Kind)
	assert.Equal(t, "Disponibilité - studio", combined.Rows[5].Label)
	assert.Equal(t, "Disponibilité - 1 chambre", combined.Rows[6].Label)

	// First window: Nova is reserved, Orion is free.
	studioTally := combined.Rows[5].Cells[0]
	require.True(t, studioTally.Valid)
	assert.Equal(t, domain.AvailabilityTally{Available: 1, Reserved: 1, Total: 2}, studioTally.Tally)
}

func TestAssemble_CellValues(t *testing.T) {
	in := fixtureInput(t)
	rep, err := NewAssembler(in).Assemble(context.Background(), in)
	require.NoError(t, err)

	combined := rep.Sheets[2]

	// Studio per-night averages: Nova (100/night) overlaps windows 1-2,
	// Orion (150/night) overlaps windows 2-3; window 2 mixes both.
	studio := combined.Rows[0]
	w1, ok1 := studio.Cells[0], studio.Cells[0].Valid
	require.True(t, ok1)
	assert.InDelta(t, 100.0, w1.Price, 0.001)

	w2 := studio.Cells[1]
	require.True(t, w2.Valid)
	assert.InDelta(t, (300.0+600.0)/7.0, w2.Price, 0.001)

	w4 := studio.Cells[3]
	assert.False(t, w4.Valid, "no studio reservation overlaps the final window")

	// Apt Nova statuses: reserved, reserved, available, available; the
	// monthly cell carries occupancy 50%.
	var nova domain.Row
	for _, row := range combined.Rows {
		if row.Label == "Apt Nova" {
			nova = row
		}
	}
	require.NotEmpty(t, nova.Label)
	assert.Equal(t, domain.Reserved, nova.Cells[0].Status)
	assert.Equal(t, domain.Reserved, nova.Cells[1].Status)
	assert.Equal(t, domain.Available, nova.Cells[2].Status)
	assert.Equal(t, domain.Available, nova.Cells[3].Status)

	monthlyCell := nova.Cells[4]
	assert.Equal(t, domain.CellOccupancy, monthlyCell.Kind)
	require.True(t, monthlyCell.Valid)
	assert.InDelta(t, 50.0, monthlyCell.Occupancy, 0.001)
}

func TestAssemble_PeriodDaysFromInput(t *testing.T) {
	in := fixtureInput(t)
	rep, err := NewAssembler(in).Assemble(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.PeriodDays)

	// A range shorter than one period clips the only window; the
	// configured length must still be reported, not the window's.
	start := domain.Date(2025, time.January, 1)
	end := domain.Date(2025, time.January, 2)
	regular, err := schedule.Regular(start, end, 3)
	require.NoError(t, err)
	require.Len(t, regular, 1)
	require.Equal(t, 2, regular[0].Days())
	monthly, err := schedule.Monthly(start, end)
	require.NoError(t, err)

	short := Input{
		Apartments: in.Apartments,
		Regular:    regular,
		Monthly:    monthly,
		PeriodDays: 3,
	}
	rep, err = NewAssembler(short).Assemble(context.Background(), short)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.PeriodDays)
}

func TestAssemble_Idempotent(t *testing.T) {
	in := fixtureInput(t)
	a := NewAssembler(in)

	first, err := a.Assemble(context.Background(), in)
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_Cancelled(t *testing.T) {
	in := fixtureInput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAssembler(in).Assemble(ctx, in)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssemble_WarningsPassedThrough(t *testing.T) {
	in := fixtureInput(t)
	in.Warnings = []domain.Warning{
		{Kind: domain.WarningUnknownApartment, Apartment: "Apt Ghost", Count: 2},
	}

	rep, err := NewAssembler(in).Assemble(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, "Apt Ghost", rep.Warnings[0].Apartment)
}
