package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// Scenario is a complete planning input set loaded from one YAML file:
// material registry, formulation catalog, planned batches and the opening
// stock snapshot.
type Scenario struct {
	Materials    []*entities.Material
	Formulations []*entities.Formulation
	Batches      []entities.Batch
	OpeningStock map[entities.MaterialCode]decimal.Decimal
}

// Quantities are YAML strings so they survive the trip into decimals without
// a float detour.
type document struct {
	Materials []struct {
		Code            string `yaml:"code"`
		LeadTimeDays    int    `yaml:"lead_time_days"`
		ReorderQuantity string `yaml:"reorder_quantity"`
		SafetyStock     string `yaml:"safety_stock"`
		Unit            string `yaml:"unit"`
	} `yaml:"materials"`
	Formulations []struct {
		ID                string `yaml:"id"`
		StandardBatchSize string `yaml:"standard_batch_size"`
		PackagingCode     string `yaml:"packaging_code"`
		PackagingAmount   string `yaml:"packaging_amount"`
		Ratios            []struct {
			MaterialCode string `yaml:"material_code"`
			Quantity     string `yaml:"quantity"`
		} `yaml:"ratios"`
	} `yaml:"formulations"`
	Batches []struct {
		Name                string `yaml:"name"`
		FormulationID       string `yaml:"formulation_id"`
		StartDate           string `yaml:"start_date"`
		ActualBatchSize     string `yaml:"actual_batch_size"`
		ReactorID           string `yaml:"reactor_id"`
		ProcessingTimeHours int    `yaml:"processing_time_hours"`
	} `yaml:"batches"`
	OpeningStock map[string]string `yaml:"opening_stock"`
}

// Load reads and parses a scenario file. Batch entries with missing fields
// are kept as-is; the simulation drops incomplete records itself. Malformed
// quantities and dates are errors.
func Load(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse parses a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	s := &Scenario{
		OpeningStock: make(map[entities.MaterialCode]decimal.Decimal, len(doc.OpeningStock)),
	}

	for i, m := range doc.Materials {
		reorderQty, err := parseQuantity(m.ReorderQuantity)
		if err != nil {
			return nil, fmt.Errorf("material %d (%s): invalid reorder_quantity: %w", i, m.Code, err)
		}
		safetyStock, err := parseQuantity(m.SafetyStock)
		if err != nil {
			return nil, fmt.Errorf("material %d (%s): invalid safety_stock: %w", i, m.Code, err)
		}

		material, err := entities.NewMaterial(entities.MaterialCode(m.Code), m.LeadTimeDays, reorderQty, safetyStock, m.Unit)
		if err != nil {
			return nil, fmt.Errorf("material %d (%s): %w", i, m.Code, err)
		}
		s.Materials = append(s.Materials, material)
	}

	for i, f := range doc.Formulations {
		standardBatchSize, err := parseQuantity(f.StandardBatchSize)
		if err != nil {
			return nil, fmt.Errorf("formulation %d (%s): invalid standard_batch_size: %w", i, f.ID, err)
		}
		packagingAmount, err := parseQuantity(f.PackagingAmount)
		if err != nil {
			return nil, fmt.Errorf("formulation %d (%s): invalid packaging_amount: %w", i, f.ID, err)
		}

		var ratios []entities.RatioLine
		for j, r := range f.Ratios {
			quantity, err := parseQuantity(r.Quantity)
			if err != nil {
				return nil, fmt.Errorf("formulation %d (%s) ratio %d: invalid quantity: %w", i, f.ID, j, err)
			}
			ratios = append(ratios, entities.RatioLine{
				MaterialCode: entities.MaterialCode(r.MaterialCode),
				Quantity:     quantity,
			})
		}

		formulation, err := entities.NewFormulation(
			entities.FormulationID(f.ID), standardBatchSize, ratios,
			entities.MaterialCode(f.PackagingCode), packagingAmount)
		if err != nil {
			return nil, fmt.Errorf("formulation %d (%s): %w", i, f.ID, err)
		}
		s.Formulations = append(s.Formulations, formulation)
	}

	for i, b := range doc.Batches {
		var startDate time.Time
		if b.StartDate != "" {
			parsed, err := time.Parse(entities.DateFormat, b.StartDate)
			if err != nil {
				return nil, fmt.Errorf("batch %d (%s): invalid start_date: %s (expected YYYY-MM-DD)", i, b.Name, b.StartDate)
			}
			startDate = parsed
		}
		actualBatchSize, err := parseQuantity(b.ActualBatchSize)
		if err != nil {
			return nil, fmt.Errorf("batch %d (%s): invalid actual_batch_size: %w", i, b.Name, err)
		}

		s.Batches = append(s.Batches, entities.Batch{
			Name:                b.Name,
			FormulationID:       entities.FormulationID(b.FormulationID),
			StartDate:           startDate,
			ActualBatchSize:     actualBatchSize,
			ReactorID:           entities.ReactorID(b.ReactorID),
			ProcessingTimeHours: b.ProcessingTimeHours,
		})
	}

	for code, qty := range doc.OpeningStock {
		quantity, err := parseQuantity(qty)
		if err != nil {
			return nil, fmt.Errorf("opening_stock %s: invalid quantity: %w", code, err)
		}
		s.OpeningStock[entities.MaterialCode(code)] = quantity
	}

	return s, nil
}

// parseQuantity treats an absent value as zero.
func parseQuantity(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
