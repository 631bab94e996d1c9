package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpd-industries/planner/pkg/interfaces/cli/commands"
)

var version = "dev"

func main() {
	if err := buildCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "planner",
		Short:   "Production planning simulator for batch manufacturing",
		Long:    "Simulates planned manufacturing batches day by day, projecting material and packaging consumption, reactor occupancy and automatic safety-stock reorders.",
		Version: version,
	}

	rootCmd.AddCommand(buildSimulateCommand())
	return rootCmd
}

func buildSimulateCommand() *cobra.Command {
	var config commands.Config

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a production plan simulation",
		Long: `Run a production plan simulation from either a single YAML scenario file
or a directory of CSV files (materials.csv, formulations.csv, ratios.csv,
batches.csv, stock.csv).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewSimulateCommand(config).Execute(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&config.ScenarioFile, "scenario", "s", "", "Path to YAML scenario file")
	cmd.Flags().StringVar(&config.ScenarioDir, "scenario-dir", "", "Path to directory containing scenario CSV files")
	cmd.Flags().StringVarP(&config.OutputDir, "output", "o", "", "Output directory for results (optional)")
	cmd.Flags().StringVarP(&config.Format, "format", "f", "text", "Output format: text, json, csv")
	cmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().IntVar(&config.BufferDays, "buffer-days", -1, "Trailing buffer days past the last batch (default 30)")
	cmd.Flags().BoolVar(&config.NoConflicts, "no-conflict-check", false, "Skip reactor double-booking checks")

	return cmd
}
