// Package report exposes report generation over HTTP: two uploaded files in,
// a workbook (or JSON summary) out.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/de-tools/rent-atlas/pkg/adapters"
	"github.com/de-tools/rent-atlas/pkg/export/xlsx"
	"github.com/de-tools/rent-atlas/pkg/models/api"
	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/de-tools/rent-atlas/pkg/services/loader"
	"github.com/de-tools/rent-atlas/pkg/services/report"
	"github.com/de-tools/rent-atlas/pkg/services/schedule"
	"github.com/rs/zerolog"
)

const (
	maxUploadBytes = 32 << 20
	dateParam      = "2006-01-02"
)

// Generator produces a report from the two uploaded inputs.
type Generator interface {
	Generate(ctx context.Context, mapping, reservations io.Reader, params report.Params) (*domain.Report, error)
}

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// GenerateReport handles POST /api/v1/reports. Multipart form with the
// "mapping" workbook and "reservations" CSV, plus optional form fields:
// from, to (YYYY-MM-DD), period_days, split_weekends, format=xlsx|summary.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	mapping, _, err := r.FormFile("mapping")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing mapping file"))
		return
	}
	defer func() { _ = mapping.Close() }()

	reservations, _, err := r.FormFile("reservations")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing reservations file"))
		return
	}
	defer func() { _ = reservations.Close() }()

	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rep, err := h.generator.Generate(ctx, mapping, reservations, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, schedule.ErrInvalidRange) || errors.Is(err, loader.ErrMissingColumn) {
			status = http.StatusBadRequest
		}
		logger.Error().Err(err).Msg("report generation failed")
		writeError(w, status, err)
		return
	}

	for _, warning := range rep.Warnings {
		logger.Warn().Str("kind", string(warning.Kind)).Msg(warning.String())
	}

	if r.FormValue("format") == "summary" {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToSummary(rep)); err != nil {
			logger.Error().Err(err).Msg("failed to encode report summary")
		}
		return
	}

	filename := fmt.Sprintf("Rapport_disponibilite_%s_%s.xlsx",
		rep.RangeStart.Format(dateParam), rep.RangeEnd.Format(dateParam))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Report-Warnings", fmt.Sprintf("%d", len(rep.Warnings)))

	if err := xlsx.Write(rep, w); err != nil {
		logger.Error().Err(err).Msg("failed to stream workbook")
	}
}

func parseParams(r *http.Request) (report.Params, error) {
	var params report.Params

	if v := r.FormValue("from"); v != "" {
		t, err := time.Parse(dateParam, v)
		if err != nil {
			return params, fmt.Errorf("invalid from date %q", v)
		}
		params.Start = domain.DayOf(t.UTC())
	}
	if v := r.FormValue("to"); v != "" {
		t, err := time.Parse(dateParam, v)
		if err != nil {
			return params, fmt.Errorf("invalid to date %q", v)
		}
		params.End = domain.DayOf(t.UTC())
	}
	if v := r.FormValue("period_days"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &params.PeriodDays); err != nil {
			return params, fmt.Errorf("invalid period_days %q", v)
		}
	}
	// Absent means the configured default decides, not false.
	if v := r.FormValue("split_weekends"); v != "" {
		split := v == "true"
		params.SplitWeekends = &split
	}
	return params, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
