package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/rent-atlas/pkg/models/domain"
)

type TableConfig struct {
	SheetWidth int
	RowsWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		SheetWidth: 34,
		RowsWidth:  8,
	}
}

// Reporter prints a generated report summary to the console.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(sheet string, rows int) string {
			return fmt.Sprintf("| %-*s | %*d |",
				c.config.SheetWidth, sheet,
				c.config.RowsWidth, rows)
		},
		"formatHeader": func() string {
			return fmt.Sprintf("| %-*s | %*s |",
				c.config.SheetWidth, "Sheet",
				c.config.RowsWidth, "Rows")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.SheetWidth+2),
				strings.Repeat("-", c.config.RowsWidth+2))
		},
	}

	tmpl := `
Availability report{{if .PeriodDays}} ({{.PeriodDays}}-day periods){{end}}
Range: {{.RangeStart.Format "2006-01-02"}} to {{.RangeEnd.Format "2006-01-02"}}

{{separator}}
{{formatHeader}}
{{separator}}
{{range .Sheets}}{{formatRow .Name (len .Rows)}}
{{end}}{{separator}}
{{if .Warnings}}
Warnings:
{{range .Warnings}}- {{.}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
