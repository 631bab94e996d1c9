package simulation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/application/dto"
	"github.com/mpd-industries/planner/pkg/domain/entities"
)

const reasonSeparator = "; "

// aggregate reduces the finished day-by-day log into the three reports. Days
// with zero activity in a given report are omitted from that report; the
// totals cover every material the run ever touched.
func aggregate(state *runState, manager *reorderManager) *dto.SimulationResult {
	result := &dto.SimulationResult{
		DailyUsage: make([]dto.DailyUsage, 0, len(state.days)),
		Reorders:   make([]dto.DailyReorders, 0),
		Totals:     make([]dto.MaterialTotals, 0),
	}

	days := state.sortedDays()
	if len(days) == 0 {
		return result
	}

	totalConsumed := make(map[entities.MaterialCode]decimal.Decimal)
	totalReordered := make(map[entities.MaterialCode]decimal.Decimal)
	trails := make(map[entities.MaterialCode][]string)

	for _, day := range days {
		act := state.days[day]
		date := day.Format(entities.DateFormat)

		if len(act.usage) > 0 {
			du := dto.DailyUsage{
				Date:         date,
				Usage:        make(map[entities.MaterialCode]decimal.Decimal, len(act.usage)),
				UsageContext: make(map[entities.MaterialCode]string, len(act.usageTrail)),
				EndingStock:  act.endingStock,
			}
			for code, qty := range act.usage {
				du.Usage[code] = qty
				totalConsumed[code] = totalConsumed[code].Add(qty)
			}
			for code, trail := range act.usageTrail {
				du.UsageContext[code] = strings.Join(trail, reasonSeparator)
				trails[code] = append(trails[code], trail...)
			}
			result.DailyUsage = append(result.DailyUsage, du)
		}

		if len(act.placed) > 0 || len(act.arrived) > 0 {
			dr := dto.DailyReorders{
				Date:    date,
				Placed:  make(map[entities.MaterialCode]dto.ReorderRecord, len(act.placed)),
				Arrived: make(map[entities.MaterialCode]dto.ReorderRecord, len(act.arrived)),
			}
			for code, acc := range act.placed {
				dr.Placed[code] = dto.ReorderRecord{
					Quantity: acc.quantity,
					Reason:   strings.Join(acc.reasons, reasonSeparator),
				}
			}
			for code, acc := range act.arrived {
				dr.Arrived[code] = dto.ReorderRecord{
					Quantity: acc.quantity,
					Reason:   strings.Join(acc.reasons, reasonSeparator),
				}
				totalReordered[code] = totalReordered[code].Add(acc.quantity)
			}
			result.Reorders = append(result.Reorders, dr)
		}
	}

	// stockCodes is sorted, so the totals report is code-ordered.
	for _, code := range state.stockCodes() {
		result.Totals = append(result.Totals, dto.MaterialTotals{
			MaterialCode:   code,
			TotalConsumed:  totalConsumed[code],
			TotalReordered: totalReordered[code],
			OpeningStock:   state.opening[code],
			SafetyStock:    manager.safetyStockFor(code),
			Unit:           manager.unitFor(code),
			UsageTrail:     strings.Join(trails[code], reasonSeparator),
		})
	}

	return result
}
