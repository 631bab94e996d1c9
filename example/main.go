package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/application/services/simulation"
	"github.com/mpd-industries/planner/pkg/domain/entities"
)

func main() {
	ctx := context.Background()

	materials, formulations := setupCatalog()

	openingStock := map[entities.MaterialCode]decimal.Decimal{
		"CAUSTIC-SODA": decimal.NewFromInt(250),
		"WATER-DM":     decimal.NewFromInt(3000),
		"DRUM-200L":    decimal.NewFromInt(40),
	}

	// A week of planned production on two reactors.
	baseDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	batches := []entities.Batch{
		{
			Name:                "B-1001",
			FormulationID:       "F-CLEANER-01",
			StartDate:           baseDate,
			ActualBatchSize:     decimal.NewFromInt(500),
			ReactorID:           "R1",
			ProcessingTimeHours: 24,
		},
		{
			Name:                "B-1002",
			FormulationID:       "F-CLEANER-01",
			StartDate:           baseDate.AddDate(0, 0, 2),
			ActualBatchSize:     decimal.NewFromInt(1000),
			ReactorID:           "R1",
			ProcessingTimeHours: 36,
		},
		{
			Name:                "B-1003",
			FormulationID:       "F-DEGREASER-02",
			StartDate:           baseDate.AddDate(0, 0, 2),
			ActualBatchSize:     decimal.NewFromInt(750),
			ReactorID:           "R2",
			ProcessingTimeHours: 24,
		},
	}

	fmt.Println("🏭 Simulating production plan...")
	fmt.Printf("Batches: %d starting %s\n\n", len(batches), baseDate.Format(entities.DateFormat))

	engine := simulation.NewEngine()
	result, err := engine.Run(ctx, openingStock, materials, formulations, batches)
	if err != nil {
		fmt.Printf("❌ Simulation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Simulation Results:")
	fmt.Printf("  Days With Consumption: %d\n", len(result.DailyUsage))
	fmt.Printf("  Days With Reorder Activity: %d\n", len(result.Reorders))
	fmt.Printf("  Materials Touched: %d\n", len(result.Totals))
	fmt.Println()

	if len(result.Reorders) > 0 {
		fmt.Println("🚚 Reorder Events:")
		for _, day := range result.Reorders {
			for code, record := range day.Placed {
				fmt.Printf("  %s: place %s of %s\n", day.Date, record.Quantity, code)
			}
			for code, record := range day.Arrived {
				fmt.Printf("  %s: receive %s of %s\n", day.Date, record.Quantity, code)
			}
		}
		fmt.Println()
	}

	fmt.Println("📦 Material Totals:")
	for _, totals := range result.Totals {
		fmt.Printf("  %s: consumed %s %s, reordered %s %s\n",
			totals.MaterialCode,
			totals.TotalConsumed, totals.Unit,
			totals.TotalReordered, totals.Unit)
	}
	fmt.Println()

	fmt.Println("✅ Planning complete!")
}

func setupCatalog() ([]*entities.Material, []*entities.Formulation) {
	materials := []*entities.Material{
		{
			Code:            "CAUSTIC-SODA",
			LeadTimeDays:    7,
			ReorderQuantity: decimal.NewFromInt(500),
			SafetyStock:     decimal.NewFromInt(100),
			Unit:            "kg",
		},
		{
			Code:            "WATER-DM",
			LeadTimeDays:    1,
			ReorderQuantity: decimal.NewFromInt(5000),
			SafetyStock:     decimal.NewFromInt(1000),
			Unit:            "kg",
		},
		{
			Code:            "RECOVERED-SOLVENT",
			LeadTimeDays:    3,
			ReorderQuantity: decimal.NewFromInt(200),
			SafetyStock:     decimal.Zero,
			Unit:            "kg",
		},
		{
			Code:            "DRUM-200L",
			LeadTimeDays:    14,
			ReorderQuantity: decimal.NewFromInt(50),
			SafetyStock:     decimal.NewFromInt(10),
			Unit:            "nos",
		},
	}

	formulations := []*entities.Formulation{
		{
			ID:                "F-CLEANER-01",
			StandardBatchSize: decimal.NewFromInt(1000),
			Ratios: []entities.RatioLine{
				{MaterialCode: "CAUSTIC-SODA", Quantity: decimal.NewFromInt(160)},
				{MaterialCode: "WATER-DM", Quantity: decimal.NewFromInt(800)},
			},
			PackagingCode:   "DRUM-200L",
			PackagingAmount: decimal.NewFromInt(5),
		},
		{
			ID:                "F-DEGREASER-02",
			StandardBatchSize: decimal.NewFromInt(500),
			Ratios: []entities.RatioLine{
				{MaterialCode: "CAUSTIC-SODA", Quantity: decimal.NewFromInt(40)},
				// Solvent recovered during the run flows back to stock.
				{MaterialCode: "RECOVERED-SOLVENT", Quantity: decimal.NewFromFloat(-7.06)},
			},
		},
	}

	return materials, formulations
}
