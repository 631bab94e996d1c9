package entities

import (
	"fmt"
	"time"
)

// UnknownFormulationError is returned when a batch references a formulation
// absent from the catalog. The run aborts with no partial output.
type UnknownFormulationError struct {
	BatchName     string
	FormulationID FormulationID
}

func (e *UnknownFormulationError) Error() string {
	return fmt.Sprintf("formulation '%s' not found for batch '%s'", e.FormulationID, e.BatchName)
}

// InvalidFormulationError is returned when a formulation referenced by a
// batch has a non-positive standard batch size.
type InvalidFormulationError struct {
	FormulationID FormulationID
}

func (e *InvalidFormulationError) Error() string {
	return fmt.Sprintf("invalid standard batch size in formulation '%s'", e.FormulationID)
}

// SchedulingConflictError is returned when two batches claim the same reactor
// on an overlapping day. It names the reactor and the first conflicting date
// so the plan can be corrected.
type SchedulingConflictError struct {
	ReactorID ReactorID
	Date      time.Time
	BatchName string
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("reactor '%s' is double-booked on %s (batch '%s')",
		e.ReactorID, e.Date.Format(DateFormat), e.BatchName)
}

// ReorderInPastError is returned, only when place-date clamping is enabled,
// for a replenishment whose back-dated place date precedes the reference
// date.
type ReorderInPastError struct {
	MaterialCode MaterialCode
	PlaceDate    time.Time
	Today        time.Time
}

func (e *ReorderInPastError) Error() string {
	return fmt.Sprintf("cannot back-date reorder for '%s': would need placing on %s, before %s",
		e.MaterialCode, e.PlaceDate.Format(DateFormat), e.Today.Format(DateFormat))
}
