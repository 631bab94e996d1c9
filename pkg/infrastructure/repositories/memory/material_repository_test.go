package memory

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

func TestMaterialRepository_LoadAndGet(t *testing.T) {
	repo := NewMaterialRepository(10)

	materials := []*entities.Material{
		{
			Code:            "CAUSTIC-SODA",
			LeadTimeDays:    7,
			ReorderQuantity: decimal.NewFromInt(500),
			SafetyStock:     decimal.NewFromInt(100),
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

	err := repo.LoadMaterials(materials)
	if err != nil {
		t.Fatalf("Failed to load materials: %v", err)
	}

	retrieved, err := repo.GetMaterial("CAUSTIC-SODA")
	if err != nil {
		t.Fatalf("Failed to get material: %v", err)
	}
	if retrieved.LeadTimeDays != 7 {
		t.Errorf("Expected lead time 7, got %d", retrieved.LeadTimeDays)
	}
	if !retrieved.SafetyStock.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected safety stock 100, got %s", retrieved.SafetyStock)
	}

	all, err := repo.GetAllMaterials()
	if err != nil {
		t.Fatalf("Failed to get all materials: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 materials, got %d", len(all))
	}
}

func TestMaterialRepository_DuplicateCodeReplaces(t *testing.T) {
	repo := NewMaterialRepository(10)

	repo.AddMaterial(entities.Material{
		Code:         "M1",
		LeadTimeDays: 3,
		Unit:         "kg",
	})
	repo.AddMaterial(entities.Material{
		Code:         "M1",
		LeadTimeDays: 9,
		Unit:         "kg",
	})

	retrieved, err := repo.GetMaterial("M1")
	if err != nil {
		t.Fatalf("Failed to get material: %v", err)
	}
	if retrieved.LeadTimeDays != 9 {
		t.Errorf("Expected replacement lead time 9, got %d", retrieved.LeadTimeDays)
	}

	all, err := repo.GetAllMaterials()
	if err != nil {
		t.Fatalf("Failed to get all materials: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 material after replacement, got %d", len(all))
	}
}

func TestMaterialRepository_GetMaterial_NotFound(t *testing.T) {
	repo := NewMaterialRepository(10)

	_, err := repo.GetMaterial("NONEXISTENT")
	if err == nil {
		t.Error("Expected error for nonexistent material, got none")
	}
	if !strings.Contains(err.Error(), "material not found") {
		t.Errorf("Expected error message to contain 'material not found', got: %v", err)
	}
}
