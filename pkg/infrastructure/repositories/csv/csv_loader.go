package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// Loader handles loading planning data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterials loads the material registry from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]*entities.Material, error) {
	records, err := readAll(filename, "materials")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"material_code", "lead_time_days", "reorder_quantity", "safety_stock", "unit"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("materials CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var materials []*entities.Material
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("materials CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		material, err := parseMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}

		materials = append(materials, material)
	}

	return materials, nil
}

// LoadFormulations loads the formulation catalog from two CSV files: the
// formulation headers and their ratio lines. Ratio lines referencing a
// formulation ID absent from the headers file are an error.
func (l *Loader) LoadFormulations(formulationsFile, ratiosFile string) ([]*entities.Formulation, error) {
	records, err := readAll(formulationsFile, "formulations")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"formulation_id", "standard_batch_size", "packaging_code", "packaging_amount"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("formulations CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	index := make(map[entities.FormulationID]*entities.Formulation)
	var formulations []*entities.Formulation
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("formulations CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		formulation, err := parseFormulation(record)
		if err != nil {
			return nil, fmt.Errorf("formulations CSV row %d: %w", i+2, err)
		}

		index[formulation.ID] = formulation
		formulations = append(formulations, formulation)
	}

	ratioRecords, err := readAll(ratiosFile, "ratios")
	if err != nil {
		return nil, err
	}

	ratioHeader := []string{"formulation_id", "material_code", "quantity"}
	if !validateHeader(ratioRecords[0], ratioHeader) {
		return nil, fmt.Errorf("ratios CSV header mismatch. Expected: %v, Got: %v", ratioHeader, ratioRecords[0])
	}

	for i, record := range ratioRecords[1:] {
		if len(record) != len(ratioHeader) {
			return nil, fmt.Errorf("ratios CSV row %d: expected %d columns, got %d", i+2, len(ratioHeader), len(record))
		}

		id := entities.FormulationID(record[0])
		formulation, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("ratios CSV row %d: unknown formulation_id: %s", i+2, id)
		}

		quantity, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("ratios CSV row %d: invalid quantity: %s", i+2, record[2])
		}

		formulation.Ratios = append(formulation.Ratios, entities.RatioLine{
			MaterialCode: entities.MaterialCode(record[1]),
			Quantity:     quantity,
		})
	}

	return formulations, nil
}

// LoadBatches loads planned batches from a CSV file. Rows with any required
// cell left blank are skipped, mirroring how the simulation drops incomplete
// planning records; rows with malformed values are an error.
func (l *Loader) LoadBatches(filename string) ([]entities.Batch, error) {
	records, err := readAll(filename, "batches")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"batch_name", "formulation_id", "start_date", "actual_batch_size", "reactor_id", "processing_time_hours"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("batches CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var batches []entities.Batch
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("batches CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		if hasBlankCell(record) {
			continue
		}

		batch, err := parseBatch(record)
		if err != nil {
			return nil, fmt.Errorf("batches CSV row %d: %w", i+2, err)
		}

		batches = append(batches, batch)
	}

	return batches, nil
}

// LoadOpeningStock loads the opening inventory snapshot from a CSV file.
// Repeated material codes sum.
func (l *Loader) LoadOpeningStock(filename string) (map[entities.MaterialCode]decimal.Decimal, error) {
	records, err := readAll(filename, "stock")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"material_code", "quantity"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("stock CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	stock := make(map[entities.MaterialCode]decimal.Decimal)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("stock CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid quantity: %s", i+2, record[1])
		}

		code := entities.MaterialCode(record[0])
		stock[code] = stock[code].Add(quantity)
	}

	return stock, nil
}

// Helper functions for parsing CSV records

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func hasBlankCell(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}

func parseMaterial(record []string) (*entities.Material, error) {
	code := entities.MaterialCode(record[0])

	leadTimeDays, err := strconv.Atoi(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[1])
	}

	reorderQuantity, err := decimal.NewFromString(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid reorder_quantity: %s", record[2])
	}

	safetyStock, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid safety_stock: %s", record[3])
	}

	unit := record[4]

	return entities.NewMaterial(code, leadTimeDays, reorderQuantity, safetyStock, unit)
}

func parseFormulation(record []string) (*entities.Formulation, error) {
	id := entities.FormulationID(record[0])

	standardBatchSize, err := decimal.NewFromString(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid standard_batch_size: %s", record[1])
	}
	if !standardBatchSize.IsPositive() {
		return nil, fmt.Errorf("standard_batch_size must be positive: %s", record[1])
	}

	packagingCode := entities.MaterialCode(record[2])

	packagingAmount := decimal.Zero
	if record[3] != "" {
		packagingAmount, err = decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid packaging_amount: %s", record[3])
		}
	}

	return &entities.Formulation{
		ID:                id,
		StandardBatchSize: standardBatchSize,
		PackagingCode:     packagingCode,
		PackagingAmount:   packagingAmount,
	}, nil
}

func parseBatch(record []string) (entities.Batch, error) {
	startDate, err := time.Parse(entities.DateFormat, record[2])
	if err != nil {
		return entities.Batch{}, fmt.Errorf("invalid start_date format: %s (expected YYYY-MM-DD)", record[2])
	}

	actualBatchSize, err := decimal.NewFromString(record[3])
	if err != nil {
		return entities.Batch{}, fmt.Errorf("invalid actual_batch_size: %s", record[3])
	}

	processingTimeHours, err := strconv.Atoi(record[5])
	if err != nil {
		return entities.Batch{}, fmt.Errorf("invalid processing_time_hours: %s", record[5])
	}

	return entities.Batch{
		Name:                record[0],
		FormulationID:       entities.FormulationID(record[1]),
		StartDate:           startDate,
		ActualBatchSize:     actualBatchSize,
		ReactorID:           entities.ReactorID(record[4]),
		ProcessingTimeHours: processingTimeHours,
	}, nil
}
