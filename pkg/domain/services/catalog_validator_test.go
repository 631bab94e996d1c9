package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

func TestValidateCatalogConsistency(t *testing.T) {
	mat := func(code string) *entities.Material {
		m, err := entities.NewMaterial(entities.MaterialCode(code), 5,
			decimal.NewFromInt(100), decimal.NewFromInt(10), "kg")
		if err != nil {
			t.Fatalf("test material %s: %v", code, err)
		}
		return m
	}

	materials := []*entities.Material{mat("RM-001"), mat("PKG-20L")}

	formulations := []*entities.Formulation{
		{
			ID:                "F-100",
			StandardBatchSize: decimal.NewFromInt(1000),
			Ratios: []entities.RatioLine{
				{MaterialCode: "RM-001", Quantity: decimal.NewFromInt(80)},
				{MaterialCode: "RM-UNREGISTERED", Quantity: decimal.NewFromInt(5)},
			},
			PackagingCode:   "PKG-20L",
			PackagingAmount: decimal.NewFromInt(50),
		},
	}

	result := ValidateCatalogConsistency(formulations, materials)
	if len(result.Errors) != 0 {
		t.Fatalf("Expected no errors, got %v", result.Errors)
	}
	if len(result.OrphanedMaterials) != 1 || result.OrphanedMaterials[0] != "RM-UNREGISTERED" {
		t.Errorf("Expected RM-UNREGISTERED as the only orphan, got %v", result.OrphanedMaterials)
	}
}

func TestValidateCatalogConsistency_Errors(t *testing.T) {
	materials := []*entities.Material{
		{Code: "RM-001", Unit: "kg"},
		{Code: "RM-001", Unit: "kg"},
	}
	formulations := []*entities.Formulation{
		{ID: "F-100", StandardBatchSize: decimal.NewFromInt(100)},
		{ID: "F-100", StandardBatchSize: decimal.Zero},
	}

	result := ValidateCatalogConsistency(formulations, materials)
	if len(result.Errors) != 3 {
		t.Fatalf("Expected 3 errors (dup material, dup formulation, bad batch size), got %v", result.Errors)
	}
}

func TestValidateCatalogConsistency_OrphanReportedOnce(t *testing.T) {
	formulations := []*entities.Formulation{
		{
			ID:                "F-1",
			StandardBatchSize: decimal.NewFromInt(10),
			Ratios: []entities.RatioLine{
				{MaterialCode: "RM-X", Quantity: decimal.NewFromInt(1)},
			},
		},
		{
			ID:                "F-2",
			StandardBatchSize: decimal.NewFromInt(10),
			Ratios: []entities.RatioLine{
				{MaterialCode: "RM-X", Quantity: decimal.NewFromInt(2)},
			},
		},
	}

	result := ValidateCatalogConsistency(formulations, nil)
	if len(result.OrphanedMaterials) != 1 {
		t.Errorf("Expected orphan RM-X reported once, got %v", result.OrphanedMaterials)
	}
}
