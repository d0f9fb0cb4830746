package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/de-tools/rent-atlas/pkg/services/loader"
	"github.com/de-tools/rent-atlas/pkg/services/schedule"
	"github.com/rs/zerolog"
)

// Params configure one report generation.
type Params struct {
	Start time.Time
	End   time.Time
	// PeriodDays is the regular window length; zero means the service
	// default.
	PeriodDays int
	// SplitWeekends switches the regular windows to the Monday-Thursday /
	// Friday-Sunday split instead of fixed-length periods. Nil means the
	// caller did not choose and the service default applies.
	SplitWeekends *bool
}

// Defaults are the configured fallbacks applied when a request leaves a
// parameter unset. A zero PeriodDays falls back to the engine default.
type Defaults struct {
	PeriodDays    int
	SplitWeekends bool
}

// Service turns the two uploaded files into an assembled report. It holds
// only the configured defaults; every call builds a fresh snapshot.
type Service struct {
	defaults Defaults
}

// NewService creates the report service.
func NewService(defaults Defaults) *Service {
	return &Service{defaults: defaults}
}

// resolve fills unset request parameters from the configured defaults.
func (s *Service) resolve(params Params) (periodDays int, split bool) {
	periodDays = params.PeriodDays
	if periodDays == 0 {
		periodDays = s.defaults.PeriodDays
	}
	if periodDays == 0 {
		periodDays = schedule.DefaultPeriodDays
	}
	split = s.defaults.SplitWeekends
	if params.SplitWeekends != nil {
		split = *params.SplitWeekends
	}
	return periodDays, split
}

// Generate loads both inputs, derives the window set, and assembles the
// report. A zero Start or End falls back to the reservations' own span.
func (s *Service) Generate(
	ctx context.Context,
	mapping io.Reader,
	reservations io.Reader,
	params Params,
) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	apartments, err := loader.LoadMapping(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}
	bookings, loadWarnings, err := loader.LoadReservations(reservations)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	apartments, mergeWarnings := loader.Merge(apartments, bookings)

	start, end := params.Start, params.End
	if start.IsZero() || end.IsZero() {
		span, ok := reservationSpan(bookings)
		if !ok {
			return nil, fmt.Errorf("%w: no date range given and no reservations to derive one", schedule.ErrInvalidRange)
		}
		if start.IsZero() {
			start = span.Start
		}
		if end.IsZero() {
			end = span.End
		}
	}
	periodDays, split := s.resolve(params)

	var regular []domain.Window
	if split {
		regular, err = schedule.WeekdaySplit(start, end)
		// Split windows have no single configured length.
		periodDays = 0
	} else {
		regular, err = schedule.Regular(start, end, periodDays)
	}
	if err != nil {
		return nil, err
	}
	monthly, err := schedule.Monthly(start, end)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("apartments", len(apartments)).
		Int("reservations", len(bookings)).
		Int("periods", len(regular)).
		Int("months", len(monthly)).
		Msg("assembling report")

	in := Input{
		Apartments:   apartments,
		Reservations: bookings,
		Regular:      regular,
		Monthly:      monthly,
		PeriodDays:   periodDays,
		Warnings:     append(loadWarnings, mergeWarnings...),
	}
	return NewAssembler(in).Assemble(ctx, in)
}

func reservationSpan(reservations []domain.Reservation) (domain.Window, bool) {
	if len(reservations) == 0 {
		return domain.Window{}, false
	}
	span := domain.Window{Start: reservations[0].CheckIn, End: reservations[0].CheckOut}
	for _, r := range reservations[1:] {
		if r.CheckIn.Before(span.Start) {
			span.Start = r.CheckIn
		}
		if r.CheckOut.After(span.End) {
			span.End = r.CheckOut
		}
	}
	return span, true
}
