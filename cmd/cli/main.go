package main

import (
	"fmt"
	"os"

	"github.com/de-tools/rent-atlas/pkg/runtime/terminal"
	"github.com/de-tools/rent-atlas/pkg/services/report"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Service: report.NewService(report.Defaults{}),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
