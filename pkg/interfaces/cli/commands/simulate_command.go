package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/application/services/planning"
	"github.com/mpd-industries/planner/pkg/application/services/simulation"
	"github.com/mpd-industries/planner/pkg/domain/entities"
	"github.com/mpd-industries/planner/pkg/infrastructure/repositories/csv"
	"github.com/mpd-industries/planner/pkg/infrastructure/repositories/memory"
	"github.com/mpd-industries/planner/pkg/infrastructure/scenario"
	"github.com/mpd-industries/planner/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	ScenarioFile string
	ScenarioDir  string
	OutputDir    string
	Format       string
	Verbose      bool
	BufferDays   int
	NoConflicts  bool
}

// SimulateCommand runs a production plan simulation from scenario files
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	materials, formulations, openingStock, batches, err := c.loadInputs()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Materials: %d\n", len(materials))
		fmt.Printf("  Formulations: %d\n", len(formulations))
		fmt.Printf("  Batches: %d\n", len(batches))
		fmt.Printf("  Opening Stock Lines: %d\n", len(openingStock))
		fmt.Println()
	}

	materialRepo := memory.NewMaterialRepository(len(materials))
	if err := materialRepo.LoadMaterials(materials); err != nil {
		return fmt.Errorf("failed to load materials into repository: %w", err)
	}

	formulationRepo := memory.NewFormulationRepository(len(formulations))
	if err := formulationRepo.LoadFormulations(formulations); err != nil {
		return fmt.Errorf("failed to load formulations into repository: %w", err)
	}

	engineConfig := simulation.DefaultConfig()
	if c.config.BufferDays >= 0 {
		engineConfig.TrailingBufferDays = c.config.BufferDays
	}
	engineConfig.CheckReactorConflicts = !c.config.NoConflicts

	logLevel := slog.LevelWarn
	if c.config.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	service := planning.NewService(materialRepo, formulationRepo,
		planning.WithLogger(logger),
		planning.WithEngine(simulation.NewEngineWithConfig(engineConfig)))

	if c.config.Verbose {
		fmt.Println("🔄 Running production plan simulation...")
	}

	startTime := time.Now()
	result, err := service.PlanProduction(ctx, openingStock, batches)
	runTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running simulation: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Simulation completed in %v\n\n", runTime)
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		RunTime:   runTime,
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// validateInputs validates the command configuration
func (c *SimulateCommand) validateInputs() error {
	if c.config.ScenarioFile == "" && c.config.ScenarioDir == "" {
		return fmt.Errorf("must specify either --scenario YAML file or --scenario-dir CSV directory")
	}
	if c.config.ScenarioFile != "" && c.config.ScenarioDir != "" {
		return fmt.Errorf("--scenario and --scenario-dir are mutually exclusive")
	}
	return nil
}

// loadInputs reads the planning inputs from either a single YAML scenario or
// a directory of CSV files.
func (c *SimulateCommand) loadInputs() (
	[]*entities.Material,
	[]*entities.Formulation,
	map[entities.MaterialCode]decimal.Decimal,
	[]entities.Batch,
	error,
) {
	if c.config.ScenarioFile != "" {
		s, err := scenario.Load(c.config.ScenarioFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return s.Materials, s.Formulations, s.OpeningStock, s.Batches, nil
	}

	dir := c.config.ScenarioDir
	files := map[string]string{
		"Materials":    filepath.Join(dir, "materials.csv"),
		"Formulations": filepath.Join(dir, "formulations.csv"),
		"Ratios":       filepath.Join(dir, "ratios.csv"),
		"Batches":      filepath.Join(dir, "batches.csv"),
		"Stock":        filepath.Join(dir, "stock.csv"),
	}
	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil, nil, nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	loader := csv.NewLoader()

	materials, err := loader.LoadMaterials(files["Materials"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading materials: %w", err)
	}
	formulations, err := loader.LoadFormulations(files["Formulations"], files["Ratios"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading formulations: %w", err)
	}
	batches, err := loader.LoadBatches(files["Batches"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading batches: %w", err)
	}
	openingStock, err := loader.LoadOpeningStock(files["Stock"])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading opening stock: %w", err)
	}

	return materials, formulations, openingStock, batches, nil
}
