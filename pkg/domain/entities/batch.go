package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ReactorID represents a physical reactor identifier
type ReactorID string

// DateFormat is the calendar-day format used throughout reports and messages.
const DateFormat = "2006-01-02"

// Batch is one planned production run. It is a pure input record and is never
// mutated during simulation.
type Batch struct {
	Name                string // optional display name
	FormulationID       FormulationID
	StartDate           time.Time
	ActualBatchSize     decimal.Decimal
	ReactorID           ReactorID
	ProcessingTimeHours int
}

// IsUsable reports whether the record carries every field the simulation
// needs: formulation, start date, batch size, reactor and processing time.
// Name is optional.
func (b Batch) IsUsable() bool {
	return string(b.FormulationID) != "" &&
		!b.StartDate.IsZero() &&
		b.ActualBatchSize.IsPositive() &&
		string(b.ReactorID) != "" &&
		b.ProcessingTimeHours > 0
}

// OccupancyDays returns the number of calendar days the batch engages its
// reactor: ceil(processing hours / 24), minimum one day.
func (b Batch) OccupancyDays() int {
	days := (b.ProcessingTimeHours + 23) / 24
	if days < 1 {
		days = 1
	}
	return days
}

// DisplayName returns the batch name, or a stable placeholder when none was
// supplied.
func (b Batch) DisplayName() string {
	if b.Name == "" {
		return "unnamed"
	}
	return b.Name
}

// FilterUsable drops batch records missing any required field. The drop is
// silent by documented policy: incomplete records are planner input noise,
// not an error condition.
func FilterUsable(batches []Batch) []Batch {
	usable := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if b.IsUsable() {
			usable = append(usable, b)
		}
	}
	return usable
}

// SortByStartDate sorts batches by start date ascending, keeping declaration
// order within a day.
func SortByStartDate(batches []Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].StartDate.Before(batches[j].StartDate)
	})
}

// Day normalizes a timestamp to its calendar day (UTC midnight). All
// simulation state is keyed by normalized days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
