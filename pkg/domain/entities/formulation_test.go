package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormulation_Validation(t *testing.T) {
	ratios := []RatioLine{
		{MaterialCode: "RM-001", Quantity: decimal.NewFromInt(80)},
		{MaterialCode: "RM-002", Quantity: decimal.NewFromFloat(-7.06)},
	}

	valid, err := NewFormulation("F-100", decimal.NewFromInt(1000), ratios, "PKG-20L", decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("Expected valid formulation creation to succeed: %v", err)
	}
	if !valid.HasPackaging() {
		t.Error("Expected formulation with packaging code and amount to report packaging")
	}

	testCases := []struct {
		name        string
		id          FormulationID
		batchSize   decimal.Decimal
		ratios      []RatioLine
		pkgCode     MaterialCode
		pkgAmount   decimal.Decimal
		expectError string
	}{
		{
			"empty id",
			"", decimal.NewFromInt(1000), ratios, "", decimal.Zero,
			"formulation id cannot be empty",
		},
		{
			"zero batch size",
			"F-100", decimal.Zero, ratios, "", decimal.Zero,
			"standard batch size must be positive, got 0",
		},
		{
			"negative batch size",
			"F-100", decimal.NewFromInt(-1000), ratios, "", decimal.Zero,
			"standard batch size must be positive, got -1000",
		},
		{
			"empty ratio material code",
			"F-100", decimal.NewFromInt(1000),
			[]RatioLine{{MaterialCode: "", Quantity: decimal.NewFromInt(1)}},
			"", decimal.Zero,
			"ratio line 1: material code cannot be empty",
		},
		{
			"negative packaging amount",
			"F-100", decimal.NewFromInt(1000), ratios, "PKG-20L", decimal.NewFromInt(-1),
			"packaging amount cannot be negative, got -1",
		},
		{
			"packaging amount without code",
			"F-100", decimal.NewFromInt(1000), ratios, "", decimal.NewFromInt(10),
			"packaging amount given without a packaging code",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFormulation(tc.id, tc.batchSize, tc.ratios, tc.pkgCode, tc.pkgAmount)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestFormulation_NegativeRatioAccepted(t *testing.T) {
	// A negative ratio quantity credits material back during the batch.
	// It is intentional domain behavior, not a validation failure.
	f, err := NewFormulation("F-200", decimal.NewFromInt(500),
		[]RatioLine{{MaterialCode: "RM-SOLVENT", Quantity: decimal.NewFromFloat(-7.06)}},
		"", decimal.Zero)
	if err != nil {
		t.Fatalf("Expected negative ratio to be accepted: %v", err)
	}
	if !f.Ratios[0].Quantity.IsNegative() {
		t.Error("Expected ratio quantity to stay negative")
	}
}

func TestFormulation_HasPackaging(t *testing.T) {
	noPkg, _ := NewFormulation("F-300", decimal.NewFromInt(100), nil, "", decimal.Zero)
	if noPkg.HasPackaging() {
		t.Error("Expected formulation without packaging code to report no packaging")
	}

	zeroAmt, _ := NewFormulation("F-301", decimal.NewFromInt(100), nil, "PKG-1", decimal.Zero)
	if zeroAmt.HasPackaging() {
		t.Error("Expected zero packaging amount to report no packaging")
	}
}
