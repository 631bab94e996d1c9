package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mpd-industries/planner/pkg/application/dto"
	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	RunTime   time.Duration
}

// Generate creates output in the specified format
func Generate(result *dto.SimulationResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func sortedCodes[V any](m map[entities.MaterialCode]V) []entities.MaterialCode {
	codes := make([]entities.MaterialCode, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.SimulationResult, config Config) error {
	fmt.Printf("📊 Production Plan Summary\n")
	fmt.Printf("==========================\n\n")

	fmt.Printf("Days With Consumption: %d\n", len(result.DailyUsage))
	fmt.Printf("Days With Reorder Activity: %d\n", len(result.Reorders))
	fmt.Printf("Materials Touched: %d\n", len(result.Totals))
	fmt.Printf("Simulation Time: %v\n\n", config.RunTime)

	if len(result.DailyUsage) > 0 {
		fmt.Printf("📅 Daily Material Usage:\n")
		fmt.Printf("%-12s %-20s %-14s %-14s\n",
			"Date", "Material", "Usage", "Ending Stock")
		fmt.Printf("%-12s %-20s %-14s %-14s\n",
			"------------", "--------------------", "--------------", "--------------")

		for _, day := range result.DailyUsage {
			for _, code := range sortedCodes(day.Usage) {
				fmt.Printf("%-12s %-20s %-14s %-14s\n",
					day.Date,
					code,
					day.Usage[code],
					day.EndingStock[code])
			}
		}
		fmt.Println()
	}

	if len(result.Reorders) > 0 {
		fmt.Printf("🚚 Reorders:\n")
		fmt.Printf("%-12s %-20s %-8s %-14s\n",
			"Date", "Material", "Event", "Quantity")
		fmt.Printf("%-12s %-20s %-8s %-14s\n",
			"------------", "--------------------", "--------", "--------------")

		for _, day := range result.Reorders {
			for _, code := range sortedCodes(day.Placed) {
				fmt.Printf("%-12s %-20s %-8s %-14s\n",
					day.Date, code, "placed", day.Placed[code].Quantity)
			}
			for _, code := range sortedCodes(day.Arrived) {
				fmt.Printf("%-12s %-20s %-8s %-14s\n",
					day.Date, code, "arrived", day.Arrived[code].Quantity)
			}
		}
		fmt.Println()
	}

	if len(result.Totals) > 0 {
		fmt.Printf("📦 Material Totals:\n")
		fmt.Printf("%-20s %-14s %-14s %-14s %-14s %-6s\n",
			"Material", "Consumed", "Reordered", "Opening", "Safety Stock", "Unit")
		fmt.Printf("%-20s %-14s %-14s %-14s %-14s %-6s\n",
			"--------------------", "--------------", "--------------", "--------------", "--------------", "------")

		for _, totals := range result.Totals {
			fmt.Printf("%-20s %-14s %-14s %-14s %-14s %-6s\n",
				totals.MaterialCode,
				totals.TotalConsumed,
				totals.TotalReordered,
				totals.OpeningStock,
				totals.SafetyStock,
				totals.Unit)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.SimulationResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "plan_results.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.SimulationResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	usageFile := filepath.Join(config.OutputDir, "daily_usage.csv")
	if err := writeUsageCSV(result.DailyUsage, usageFile); err != nil {
		return fmt.Errorf("failed to write daily usage CSV: %w", err)
	}

	reordersFile := filepath.Join(config.OutputDir, "reorders.csv")
	if err := writeReordersCSV(result.Reorders, reordersFile); err != nil {
		return fmt.Errorf("failed to write reorders CSV: %w", err)
	}

	totalsFile := filepath.Join(config.OutputDir, "totals.csv")
	if err := writeTotalsCSV(result.Totals, totalsFile); err != nil {
		return fmt.Errorf("failed to write totals CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Daily Usage: %s\n", usageFile)
		fmt.Printf("  Reorders: %s\n", reordersFile)
		fmt.Printf("  Totals: %s\n", totalsFile)
	}

	return nil
}

func writeCSV(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeUsageCSV(usage []dto.DailyUsage, filename string) error {
	header := []string{"date", "material_code", "usage", "ending_stock", "context"}
	var rows [][]string
	for _, day := range usage {
		for _, code := range sortedCodes(day.Usage) {
			rows = append(rows, []string{
				day.Date,
				string(code),
				day.Usage[code].String(),
				day.EndingStock[code].String(),
				day.UsageContext[code],
			})
		}
	}
	return writeCSV(filename, header, rows)
}

func writeReordersCSV(reorders []dto.DailyReorders, filename string) error {
	header := []string{"date", "material_code", "event", "quantity", "reason"}
	var rows [][]string
	for _, day := range reorders {
		for _, code := range sortedCodes(day.Placed) {
			record := day.Placed[code]
			rows = append(rows, []string{day.Date, string(code), "placed", record.Quantity.String(), record.Reason})
		}
		for _, code := range sortedCodes(day.Arrived) {
			record := day.Arrived[code]
			rows = append(rows, []string{day.Date, string(code), "arrived", record.Quantity.String(), record.Reason})
		}
	}
	return writeCSV(filename, header, rows)
}

func writeTotalsCSV(totals []dto.MaterialTotals, filename string) error {
	header := []string{"material_code", "total_consumed", "total_reordered", "opening_stock", "safety_stock", "unit"}
	var rows [][]string
	for _, t := range totals {
		rows = append(rows, []string{
			string(t.MaterialCode),
			t.TotalConsumed.String(),
			t.TotalReordered.String(),
			t.OpeningStock.String(),
			t.SafetyStock.String(),
			t.Unit,
		})
	}
	return writeCSV(filename, header, rows)
}
