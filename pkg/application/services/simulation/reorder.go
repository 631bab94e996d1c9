package simulation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// fallbackLeadTimeDays is assumed for materials without a usable registry
// entry, so a missing entry never aborts a run.
const fallbackLeadTimeDays = 5

// placement is one sized replenishment: recorded as placed on the back-dated
// place date, credited to stock on the arrival day that triggered it.
type placement struct {
	MaterialCode entities.MaterialCode
	Quantity     decimal.Decimal
	PlaceDate    time.Time
	ArrivalDate  time.Time
	Reason       string
}

// reorderManager sizes and dates replenishments against the material
// registry snapshot. It owns the only mutation of the registry map: caching
// synthesized fallback profiles for unknown materials.
type reorderManager struct {
	registry     map[entities.MaterialCode]*entities.Material
	clampToToday bool
	today        time.Time
}

func newReorderManager(
	materials []*entities.Material,
	clampToToday bool,
	today time.Time,
) *reorderManager {
	registry := make(map[entities.MaterialCode]*entities.Material, len(materials))
	for _, m := range materials {
		registry[m.Code] = m
	}
	return &reorderManager{
		registry:     registry,
		clampToToday: clampToToday,
		today:        today,
	}
}

// profileFor resolves the replenishment profile for a material. Unknown
// materials get a synthesized fallback (lead 5, order exactly what is
// needed, no safety stock), which is cached so later shortfalls see the same
// profile. A registered entry with zero lead time and zero reorder quantity
// is treated as unconfigured and gets the same lead/quantity substitution
// while keeping its safety stock and unit.
func (m *reorderManager) profileFor(
	code entities.MaterialCode,
	neededQty decimal.Decimal,
) *entities.Material {
	if mat, ok := m.registry[code]; ok {
		if mat.LeadTimeDays == 0 && mat.ReorderQuantity.IsZero() {
			return &entities.Material{
				Code:            code,
				LeadTimeDays:    fallbackLeadTimeDays,
				ReorderQuantity: neededQty,
				SafetyStock:     mat.SafetyStock,
				Unit:            mat.Unit,
			}
		}
		return mat
	}

	fallback := &entities.Material{
		Code:            code,
		LeadTimeDays:    fallbackLeadTimeDays,
		ReorderQuantity: neededQty,
		SafetyStock:     decimal.Zero,
		Unit:            "kg",
	}
	m.registry[code] = fallback
	return fallback
}

// placeReplenishment sizes a replenishment for a shortfall: the configured
// standard reorder lot, unless the shortfall itself exceeds it. The recorded
// place date is arrival minus lead time; the effective arrival is always the
// triggering day itself.
func (m *reorderManager) placeReplenishment(
	day time.Time,
	code entities.MaterialCode,
	neededQty decimal.Decimal,
	reason string,
) (placement, error) {
	profile := m.profileFor(code, neededQty)

	orderedQty := decimal.Max(profile.ReorderQuantity, neededQty)
	placeDate := day.AddDate(0, 0, -profile.LeadTimeDays)

	if m.clampToToday && placeDate.Before(m.today) {
		return placement{}, &entities.ReorderInPastError{
			MaterialCode: code,
			PlaceDate:    placeDate,
			Today:        m.today,
		}
	}

	return placement{
		MaterialCode: code,
		Quantity:     orderedQty,
		PlaceDate:    placeDate,
		ArrivalDate:  day,
		Reason:       reason,
	}, nil
}

// safetyStockFor returns the registered safety stock for a material, zero
// when the material is unknown. Unknown materials are not synthesized here;
// that happens only when a shortfall actually needs a profile.
func (m *reorderManager) safetyStockFor(code entities.MaterialCode) decimal.Decimal {
	if mat, ok := m.registry[code]; ok {
		return mat.SafetyStock
	}
	return decimal.Zero
}

// unitFor returns the registered unit for a material, defaulting to kg.
func (m *reorderManager) unitFor(code entities.MaterialCode) string {
	if mat, ok := m.registry[code]; ok && mat.Unit != "" {
		return mat.Unit
	}
	return "kg"
}
