package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialCode represents a unique raw-material or packaging identifier
type MaterialCode string

// Material holds the replenishment parameters for one material. It is loaded
// once per simulation run and never mutated during it.
type Material struct {
	Code            MaterialCode
	LeadTimeDays    int
	ReorderQuantity decimal.Decimal
	SafetyStock     decimal.Decimal
	Unit            string
}

// NewMaterial creates a validated Material
func NewMaterial(
	code MaterialCode,
	leadTimeDays int,
	reorderQuantity, safetyStock decimal.Decimal,
	unit string,
) (*Material, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("material code cannot be empty")
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be negative, got %d", leadTimeDays)
	}
	if reorderQuantity.IsNegative() {
		return nil, fmt.Errorf("reorder quantity cannot be negative, got %s", reorderQuantity)
	}
	if safetyStock.IsNegative() {
		return nil, fmt.Errorf("safety stock cannot be negative, got %s", safetyStock)
	}
	if unit == "" {
		return nil, fmt.Errorf("unit of measure cannot be empty")
	}

	return &Material{
		Code:            code,
		LeadTimeDays:    leadTimeDays,
		ReorderQuantity: reorderQuantity,
		SafetyStock:     safetyStock,
		Unit:            unit,
	}, nil
}
