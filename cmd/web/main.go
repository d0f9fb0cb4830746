package main

import (
	"fmt"
	"os"

	"github.com/de-tools/rent-atlas/pkg/config"
	"github.com/de-tools/rent-atlas/pkg/server"
	"github.com/de-tools/rent-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Rent Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional, APP_* env vars override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ExposeMetrics:   cfg.Metrics.Enabled,
		Dependencies: server.Dependencies{
			Reports: report.NewService(report.Defaults{
				PeriodDays:    cfg.Report.PeriodDays,
				SplitWeekends: cfg.Report.SplitWeekends,
			}),
		},
	})

	return api.Start()
}
