package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// DailyUsage reports one simulated day's consumption: quantity per material,
// the usage-context trail for that material, and the end-of-day stock
// snapshot. Days without consumption are omitted from the report.
type DailyUsage struct {
	Date        string                                     `json:"date"`
	Usage       map[entities.MaterialCode]decimal.Decimal  `json:"usage"`
	UsageContext map[entities.MaterialCode]string          `json:"usage_context"`
	EndingStock map[entities.MaterialCode]decimal.Decimal  `json:"ending_stock"`
}

// ReorderRecord is one replenishment for a material on a day. Quantities from
// multiple shortfalls on the same day accumulate into one record, reasons
// joined with "; ".
type ReorderRecord struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// DailyReorders reports the reorders recorded against one calendar day:
// Placed is keyed by the back-dated place date's materials, Arrived by the
// day the stock was actually credited. Days without reorder activity are
// omitted from the report.
type DailyReorders struct {
	Date    string                                    `json:"date"`
	Placed  map[entities.MaterialCode]ReorderRecord   `json:"reorders_placed"`
	Arrived map[entities.MaterialCode]ReorderRecord   `json:"reorders_arrived"`
}

// MaterialTotals is the whole-horizon summary for one material.
type MaterialTotals struct {
	MaterialCode   entities.MaterialCode `json:"material_code"`
	TotalConsumed  decimal.Decimal       `json:"total_consumed"`
	TotalReordered decimal.Decimal       `json:"total_reordered"`
	OpeningStock   decimal.Decimal       `json:"opening_stock"`
	SafetyStock    decimal.Decimal       `json:"safety_stock"`
	Unit           string                `json:"unit"`
	UsageTrail     string                `json:"usage_trail"`
}

// SimulationResult contains the complete output of a simulation run. All
// slices are date- or code-ordered so that identical inputs serialize to
// byte-identical output.
type SimulationResult struct {
	DailyUsage []DailyUsage     `json:"daily_usage"`
	Reorders   []DailyReorders  `json:"reorders"`
	Totals     []MaterialTotals `json:"totals"`
}
