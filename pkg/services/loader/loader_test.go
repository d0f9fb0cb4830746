package loader

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mappingWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestLoadMapping(t *testing.T) {
	r := mappingWorkbook(t, [][]interface{}{
		{"Nom du logement", "Proprio", "catégorie", "commission"},
		{" Apt Nova ", "Martin", "studio", "0,2"},
		{"Apt Orion", "Durand", "2 chambres", ""},
		{"", "Ignored", "studio", ""},
		{"Apt Zephyr", "Durand", "penthouse", ""},
	})

	apartments, err := LoadMapping(r)
	require.NoError(t, err)
	require.Len(t, apartments, 3)

	assert.Equal(t, "Apt Nova", apartments[0].Name)
	assert.Equal(t, "Martin", apartments[0].Owner)
	assert.Equal(t, domain.CategoryStudio, apartments[0].Category)
	assert.InDelta(t, 0.2, apartments[0].Commission, 0.001)

	assert.Equal(t, domain.CategoryTwoBedrooms, apartments[1].Category)

	// Unrecognized categories are kept on the apartment but not part of
	// the closed set.
	assert.False(t, apartments[2].Category.Known())
}

func TestLoadMapping_MissingColumns(t *testing.T) {
	r := mappingWorkbook(t, [][]interface{}{
		{"Nom du logement", "catégorie"},
		{"Apt Nova", "studio"},
	})

	_, err := LoadMapping(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Proprio")
}

const reservationsCSV = `Liste des réservations
Nom du logement,Date d'arrivée,Date de sortie,Statut,Location avec TVA,nuits
Apt Nova,02/10/2025,05/10/2025,Confirmée,300,3
Apt Orion,04/10/2025,08/10/2025,Pré-réservation,"600,50",4
Apt Nova,10/10/2025,11/10/2025,Confirmée,,1
Apt Ghost,not-a-date,05/10/2025,Confirmée,100,1
Apt Ghost,08/10/2025,06/10/2025,Confirmée,100,1
`

func TestLoadReservations(t *testing.T) {
	// The export carries a title line before the header.
	reservations, warnings, err := LoadReservations(strings.NewReader(reservationsCSV))
	require.NoError(t, err)
	require.Len(t, reservations, 3)

	first := reservations[0]
	assert.Equal(t, "Apt Nova", first.Apartment)
	assert.True(t, first.CheckIn.Equal(domain.Date(2025, time.October, 2)))
	assert.True(t, first.CheckOut.Equal(domain.Date(2025, time.October, 5)))
	assert.Equal(t, domain.StatusConfirmed, first.Status)
	require.True(t, first.Price.Valid)
	assert.InDelta(t, 300.0, first.Price.Amount, 0.001)
	assert.Equal(t, 3, first.Nights)

	second := reservations[1]
	assert.Equal(t, domain.StatusPreReservation, second.Status)
	require.True(t, second.Price.Valid)
	assert.InDelta(t, 600.50, second.Price.Amount, 0.001)

	// Absent price stays absent, never zero.
	third := reservations[2]
	assert.False(t, third.Price.Valid)

	// Two rows dropped for invalid dates, reported once.
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningInvalidDates, warnings[0].Kind)
	assert.Equal(t, 2, warnings[0].Count)
}

func TestLoadReservations_MissingColumns(t *testing.T) {
	csv := "title\nNom du logement,Statut\nApt Nova,Confirmée\n"
	_, _, err := LoadReservations(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMerge(t *testing.T) {
	apartments := []domain.Apartment{
		{Name: "Apt Nova", Owner: "Martin", Category: domain.CategoryStudio},
	}
	reservations := []domain.Reservation{
		{Apartment: "Apt Nova"},
		{Apartment: "Studio Ghost"},
		{Apartment: "Studio Ghost"},
		{Apartment: "Villa 3 chambres Mer"},
	}

	merged, warnings := Merge(apartments, reservations)
	require.Len(t, merged, 3)

	assert.Equal(t, "Studio Ghost", merged[1].Name)
	assert.Equal(t, domain.OwnerUnassigned, merged[1].Owner)
	assert.Equal(t, domain.CategoryStudio, merged[1].Category)

	assert.Equal(t, "Villa 3 chambres Mer", merged[2].Name)
	assert.Equal(t, domain.CategoryThreeBedrooms, merged[2].Category)

	require.Len(t, warnings, 2)
	assert.Equal(t, domain.WarningUnknownApartment, warnings[0].Kind)
	assert.Equal(t, "Studio Ghost", warnings[0].Apartment)
	assert.Equal(t, 2, warnings[0].Count)
}

func TestMerge_NothingUnknown(t *testing.T) {
	apartments := []domain.Apartment{{Name: "Apt Nova", Owner: "Martin"}}
	merged, warnings := Merge(apartments, []domain.Reservation{{Apartment: "Apt Nova"}})
	assert.Equal(t, apartments, merged)
	assert.Empty(t, warnings)
}
