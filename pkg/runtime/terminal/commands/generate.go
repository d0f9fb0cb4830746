package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/rent-atlas/pkg/export/xlsx"
	"github.com/de-tools/rent-atlas/pkg/models/domain"
	"github.com/de-tools/rent-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/rent-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type generateOptions struct {
	mapping       string
	reservations  string
	from          string
	to            string
	periodDays    int
	splitWeekends bool
	out           string
}

func NewGenerateCmd(svc *report.Service, reporter *export.Reporter) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an availability and price report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, svc, reporter, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mapping, "mapping", "", "apartment mapping workbook (xlsx)")
	cmd.Flags().StringVar(&opts.reservations, "reservations", "", "reservations export (csv)")
	cmd.Flags().StringVar(&opts.from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.periodDays, "period-days", 0, "length of the fixed reporting periods")
	cmd.Flags().BoolVar(&opts.splitWeekends, "split-weekends", false, "split weeks into weekday and weekend periods")
	cmd.Flags().StringVar(&opts.out, "out", "", "output workbook path")

	_ = cmd.MarkFlagRequired("mapping")
	_ = cmd.MarkFlagRequired("reservations")

	return cmd
}

func runGenerate(cmd *cobra.Command, svc *report.Service, reporter *export.Reporter, opts *generateOptions) error {
	params := report.Params{
		PeriodDays: opts.periodDays,
	}
	if cmd.Flags().Changed("split-weekends") {
		params.SplitWeekends = &opts.splitWeekends
	}

	var err error
	if opts.from != "" {
		params.Start, err = time.Parse(dateLayout, opts.from)
		if err != nil {
			return fmt.Errorf("invalid --from value %q: %w", opts.from, err)
		}
	}
	if opts.to != "" {
		params.End, err = time.Parse(dateLayout, opts.to)
		if err != nil {
			return fmt.Errorf("invalid --to value %q: %w", opts.to, err)
		}
	}

	mapping, err := os.Open(opts.mapping)
	if err != nil {
		return fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer mapping.Close()

	reservations, err := os.Open(opts.reservations)
	if err != nil {
		return fmt.Errorf("failed to open reservations file: %w", err)
	}
	defer reservations.Close()

	rep, err := svc.Generate(cmd.Context(), mapping, reservations, params)
	if err != nil {
		return err
	}

	outPath := opts.out
	if outPath == "" {
		outPath = defaultOutputName(rep)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := xlsx.Write(rep, out); err != nil {
		return err
	}

	if err := reporter.Handle(rep); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
	return nil
}

func defaultOutputName(rep *domain.Report) string {
	return fmt.Sprintf("Rapport_disponibilite_%s_%s.xlsx",
		rep.RangeStart.Format(dateLayout),
		rep.RangeEnd.Format(dateLayout))
}
