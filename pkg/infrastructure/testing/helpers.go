package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
	"github.com/mpd-industries/planner/pkg/infrastructure/repositories/memory"
)

// BuildChemicalPlantTestData builds a small specialty-chemicals scenario: two
// formulations sharing a raw material, one recovered-solvent credit line and
// packaging on the finished product.
func BuildChemicalPlantTestData() (
	*memory.MaterialRepository,
	*memory.FormulationRepository,
	map[entities.MaterialCode]decimal.Decimal,
	[]entities.Batch,
) {
	materialRepo := memory.NewMaterialRepository(10)
	formulationRepo := memory.NewFormulationRepository(5)

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
	for _, m := range materials {
		materialRepo.AddMaterial(*m)
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
				{MaterialCode: "RECOVERED-SOLVENT", Quantity: decimal.NewFromFloat(-7.06)},
			},
		},
	}
	for _, f := range formulations {
		formulationRepo.AddFormulation(*f)
	}

	openingStock := map[entities.MaterialCode]decimal.Decimal{
		"CAUSTIC-SODA":      decimal.NewFromInt(250),
		"WATER-DM":          decimal.NewFromInt(3000),
		"RECOVERED-SOLVENT": decimal.NewFromInt(50),
		"DRUM-200L":         decimal.NewFromInt(40),
	}

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
			FormulationID:       "F-DEGREASER-02",
			StartDate:           baseDate.AddDate(0, 0, 1),
			ActualBatchSize:     decimal.NewFromInt(750),
			ReactorID:           "R2",
			ProcessingTimeHours: 36,
		},
	}

	return materialRepo, formulationRepo, openingStock, batches
}

// BuildSimpleTestData creates one material, one formulation and one batch for
// basic tests.
func BuildSimpleTestData() (
	*memory.MaterialRepository,
	*memory.FormulationRepository,
	map[entities.MaterialCode]decimal.Decimal,
	[]entities.Batch,
) {
	materialRepo := memory.NewMaterialRepository(1)
	formulationRepo := memory.NewFormulationRepository(1)

	materialRepo.AddMaterial(entities.Material{
		Code:            "M1",
		LeadTimeDays:    3,
		ReorderQuantity: decimal.NewFromInt(200),
		SafetyStock:     decimal.NewFromInt(50),
		Unit:            "kg",
	})

	formulationRepo.AddFormulation(entities.Formulation{
		ID:                "F-100",
		StandardBatchSize: decimal.NewFromInt(1000),
		Ratios: []entities.RatioLine{
			{MaterialCode: "M1", Quantity: decimal.NewFromInt(160)},
		},
	})

	openingStock := map[entities.MaterialCode]decimal.Decimal{
		"M1": decimal.NewFromInt(100),
	}

	batches := []entities.Batch{
		{
			Name:                "B-1",
			FormulationID:       "F-100",
			StartDate:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ActualBatchSize:     decimal.NewFromInt(500),
			ReactorID:           "R1",
			ProcessingTimeHours: 24,
		},
	}

	return materialRepo, formulationRepo, openingStock, batches
}
