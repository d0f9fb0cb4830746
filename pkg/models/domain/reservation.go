package domain

import "time"

// ReservationStatus distinguishes confirmed bookings from pre-reservations.
// Both count as occupying for availability purposes.
type ReservationStatus string

const (
	StatusConfirmed      ReservationStatus = "confirmed"
	StatusPreReservation ReservationStatus = "pre-reservation"
)

// Price is a price-with-VAT amount that may be absent in the source data.
// An absent price is excluded from averages, never coerced to zero.
type Price struct {
	Amount float64
	Valid  bool
}

// SomePrice wraps a present amount.
func SomePrice(amount float64) Price {
	return Price{Amount: amount, Valid: true}
}

// Reservation is one row of the reservations export. Read-only input; the
// apartment name may reference an apartment absent from the mapping.
type Reservation struct {
	Apartment string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    ReservationStatus
	Price     Price
	Nights    int
}

// Date normalizes a calendar day to midnight UTC. All interval arithmetic in
// the engine operates on values produced by it.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates an arbitrary timestamp to its calendar day.
func DayOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
