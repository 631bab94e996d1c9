package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadMaterials(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv",
		"material_code,lead_time_days,reorder_quantity,safety_stock,unit\n"+
			"CAUSTIC-SODA,7,500,100,kg\n"+
			"DRUM-200L,14,50,10,nos\n")

	materials, err := NewLoader().LoadMaterials(path)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, entities.MaterialCode("CAUSTIC-SODA"), materials[0].Code)
	assert.Equal(t, 7, materials[0].LeadTimeDays)
	assert.True(t, materials[0].ReorderQuantity.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "nos", materials[1].Unit)
}

func TestLoader_LoadMaterials_HeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv",
		"code,lead,reorder,safety,unit\nM1,7,500,100,kg\n")

	_, err := NewLoader().LoadMaterials(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoader_LoadMaterials_InvalidRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "materials.csv",
		"material_code,lead_time_days,reorder_quantity,safety_stock,unit\n"+
			"M1,seven,500,100,kg\n")

	_, err := NewLoader().LoadMaterials(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "lead_time_days")
}

func TestLoader_LoadFormulations(t *testing.T) {
	dir := t.TempDir()
	formulations := writeFile(t, dir, "formulations.csv",
		"formulation_id,standard_batch_size,packaging_code,packaging_amount\n"+
			"F-CLEANER-01,1000,DRUM-200L,5\n"+
			"F-BULK-02,500,,\n")
	ratios := writeFile(t, dir, "ratios.csv",
		"formulation_id,material_code,quantity\n"+
			"F-CLEANER-01,CAUSTIC-SODA,160\n"+
			"F-CLEANER-01,WATER-DM,800\n"+
			"F-BULK-02,CAUSTIC-SODA,-7.06\n")

	loaded, err := NewLoader().LoadFormulations(formulations, ratios)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	first := loaded[0]
	assert.Equal(t, entities.FormulationID("F-CLEANER-01"), first.ID)
	require.Len(t, first.Ratios, 2)
	assert.True(t, first.HasPackaging())

	second := loaded[1]
	require.Len(t, second.Ratios, 1)
	assert.True(t, second.Ratios[0].Quantity.Equal(decimal.NewFromFloat(-7.06)))
	assert.False(t, second.HasPackaging())
}

func TestLoader_LoadFormulations_UnknownRatioReference(t *testing.T) {
	dir := t.TempDir()
	formulations := writeFile(t, dir, "formulations.csv",
		"formulation_id,standard_batch_size,packaging_code,packaging_amount\n"+
			"F-1,1000,,\n")
	ratios := writeFile(t, dir, "ratios.csv",
		"formulation_id,material_code,quantity\n"+
			"F-MISSING,M1,10\n")

	_, err := NewLoader().LoadFormulations(formulations, ratios)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formulation_id: F-MISSING")
}

func TestLoader_LoadBatches_SkipsBlankRequiredCells(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batches.csv",
		"batch_name,formulation_id,start_date,actual_batch_size,reactor_id,processing_time_hours\n"+
			"B-1,F-1,2026-03-02,500,R1,24\n"+
			"B-2,F-1,2026-03-03,500,,24\n"+
			"B-3,,2026-03-04,500,R2,24\n"+
			"B-4,F-1,2026-03-05,750,R2,36\n")

	batches, err := NewLoader().LoadBatches(path)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "B-1", batches[0].Name)
	assert.Equal(t, "B-4", batches[1].Name)
	assert.Equal(t, 36, batches[1].ProcessingTimeHours)
	assert.Equal(t, "2026-03-05", batches[1].StartDate.Format(entities.DateFormat))
}

func TestLoader_LoadBatches_MalformedDate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batches.csv",
		"batch_name,formulation_id,start_date,actual_batch_size,reactor_id,processing_time_hours\n"+
			"B-1,F-1,03/02/2026,500,R1,24\n")

	_, err := NewLoader().LoadBatches(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start_date")
}

func TestLoader_LoadOpeningStock_SumsRepeatedCodes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stock.csv",
		"material_code,quantity\n"+
			"CAUSTIC-SODA,100\n"+
			"CAUSTIC-SODA,50.5\n"+
			"WATER-DM,2000\n")

	stock, err := NewLoader().LoadOpeningStock(path)
	require.NoError(t, err)
	require.Len(t, stock, 2)
	assert.True(t, stock["CAUSTIC-SODA"].Equal(decimal.NewFromFloat(150.5)))
	assert.True(t, stock["WATER-DM"].Equal(decimal.NewFromInt(2000)))
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadMaterials(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
