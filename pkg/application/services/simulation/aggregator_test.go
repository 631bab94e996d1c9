package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

func TestAggregate_SameDayUsageJoinsContexts(t *testing.T) {
	opening, materials, formulations := planScenario(t)
	opening["M1"] = decimal.NewFromInt(1000)

	second := planBatch("B-2")
	second.ReactorID = "R2"

	engine := NewEngine()
	result, err := engine.Run(context.Background(), opening, materials, formulations,
		[]entities.Batch{planBatch("B-1"), second})
	require.NoError(t, err)

	require.Len(t, result.DailyUsage, 1)
	du := result.DailyUsage[0]
	assert.True(t, du.Usage["M1"].Equal(decimal.NewFromInt(160)))
	assert.Contains(t, du.UsageContext["M1"], "batch 'B-1'")
	assert.Contains(t, du.UsageContext["M1"], reasonSeparator)
	assert.Contains(t, du.UsageContext["M1"], "batch 'B-2'")

	require.Len(t, result.Totals, 1)
	assert.True(t, result.Totals[0].TotalConsumed.Equal(decimal.NewFromInt(160)))
	assert.Contains(t, result.Totals[0].UsageTrail, "B-1")
	assert.Contains(t, result.Totals[0].UsageTrail, "B-2")
}

func TestAggregate_QuietDaysOmittedFromReports(t *testing.T) {
	opening, materials, formulations := planScenario(t)
	opening["M1"] = decimal.NewFromInt(1000)

	later := planBatch("B-2")
	later.StartDate = day1.AddDate(0, 0, 10)

	engine := NewEngine()
	result, err := engine.Run(context.Background(), opening, materials, formulations,
		[]entities.Batch{planBatch("B-1"), later})
	require.NoError(t, err)

	// 41 days are simulated; only the two batch days show up.
	require.Len(t, result.DailyUsage, 2)
	assert.Equal(t, "2026-03-02", result.DailyUsage[0].Date)
	assert.Equal(t, "2026-03-12", result.DailyUsage[1].Date)
	assert.Empty(t, result.Reorders)
}

func TestAggregate_TotalsOrderedByMaterialCode(t *testing.T) {
	mA, err := entities.NewMaterial("AAA", 1, decimal.NewFromInt(10), decimal.Zero, "kg")
	require.NoError(t, err)
	mZ, err := entities.NewMaterial("ZZZ", 1, decimal.NewFromInt(10), decimal.Zero, "kg")
	require.NoError(t, err)

	f, err := entities.NewFormulation("F-100", decimal.NewFromInt(1000),
		[]entities.RatioLine{
			{MaterialCode: "ZZZ", Quantity: decimal.NewFromInt(10)},
			{MaterialCode: "AAA", Quantity: decimal.NewFromInt(10)},
		}, "", decimal.Zero)
	require.NoError(t, err)

	engine := NewEngine()
	result, err := engine.Run(context.Background(),
		map[entities.MaterialCode]decimal.Decimal{
			"AAA": decimal.NewFromInt(100),
			"ZZZ": decimal.NewFromInt(100),
		},
		[]*entities.Material{mA, mZ}, []*entities.Formulation{f},
		[]entities.Batch{planBatch("B-1")})
	require.NoError(t, err)

	require.Len(t, result.Totals, 2)
	assert.Equal(t, entities.MaterialCode("AAA"), result.Totals[0].MaterialCode)
	assert.Equal(t, entities.MaterialCode("ZZZ"), result.Totals[1].MaterialCode)
}

func TestAggregate_PlacedDayPrecedesWindow(t *testing.T) {
	// A back-dated placement lands before the first simulated day and must
	// still appear, in calendar order, ahead of every activity day.
	opening, materials, formulations := planScenario(t)

	engine := NewEngine()
	result, err := engine.Run(context.Background(), opening, materials, formulations,
		[]entities.Batch{planBatch("B-1")})
	require.NoError(t, err)

	require.Len(t, result.Reorders, 2)
	placedDate, err := time.Parse(entities.DateFormat, result.Reorders[0].Date)
	require.NoError(t, err)
	assert.True(t, placedDate.Before(day1))
}
