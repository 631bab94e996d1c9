package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormulationID represents a unique formulation (bill-of-materials) identifier
type FormulationID string

// RatioLine represents one material ratio entry in a formulation. Quantity is
// per standard batch and may be negative: a negative line credits the material
// back to stock during the batch instead of consuming it.
type RatioLine struct {
	MaterialCode MaterialCode
	Quantity     decimal.Decimal
}

// Formulation is a bill-of-materials template: material ratios per a standard
// batch size, plus an optional packaging requirement.
type Formulation struct {
	ID                FormulationID
	StandardBatchSize decimal.Decimal
	Ratios            []RatioLine
	PackagingCode     MaterialCode    // empty = no packaging requirement
	PackagingAmount   decimal.Decimal // per standard batch
}

// NewFormulation creates a validated Formulation
func NewFormulation(
	id FormulationID,
	standardBatchSize decimal.Decimal,
	ratios []RatioLine,
	packagingCode MaterialCode,
	packagingAmount decimal.Decimal,
) (*Formulation, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("formulation id cannot be empty")
	}
	if !standardBatchSize.IsPositive() {
		return nil, fmt.Errorf("standard batch size must be positive, got %s", standardBatchSize)
	}
	for i, line := range ratios {
		if string(line.MaterialCode) == "" {
			return nil, fmt.Errorf("ratio line %d: material code cannot be empty", i+1)
		}
	}
	if packagingAmount.IsNegative() {
		return nil, fmt.Errorf("packaging amount cannot be negative, got %s", packagingAmount)
	}
	if string(packagingCode) == "" && packagingAmount.IsPositive() {
		return nil, fmt.Errorf("packaging amount given without a packaging code")
	}

	return &Formulation{
		ID:                id,
		StandardBatchSize: standardBatchSize,
		Ratios:            ratios,
		PackagingCode:     packagingCode,
		PackagingAmount:   packagingAmount,
	}, nil
}

// HasPackaging reports whether the formulation declares a packaging
// requirement that actually consumes anything.
func (f *Formulation) HasPackaging() bool {
	return string(f.PackagingCode) != "" && f.PackagingAmount.IsPositive()
}
