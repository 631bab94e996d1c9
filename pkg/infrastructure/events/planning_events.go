package events

import (
	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

const (
	RunStartedEvent   = "planning.run.started"
	RunCompletedEvent = "planning.run.completed"
	RunFailedEvent    = "planning.run.failed"

	ReorderPlacedEvent    = "reorder.placed"
	ShortageDetectedEvent = "shortage.detected"
)

// PlanningStream is the stream ID for run lifecycle events.
const PlanningStream = "planning"

// RunStarted is emitted once per planning run, on the planning stream.
type RunStarted struct {
	Batches       int `json:"batches"`
	UsableBatches int `json:"usable_batches"`
	Materials     int `json:"materials"`
	Formulations  int `json:"formulations"`
}

// RunCompleted is emitted after a successful run.
type RunCompleted struct {
	UsageDays        int `json:"usage_days"`
	ReordersPlaced   int `json:"reorders_placed"`
	MaterialsTouched int `json:"materials_touched"`
}

// RunFailed is emitted when a run aborts.
type RunFailed struct {
	Error string `json:"error"`
}

// ReorderPlaced is emitted per placed replenishment, on the material's
// stream.
type ReorderPlaced struct {
	MaterialCode entities.MaterialCode `json:"material_code"`
	Quantity     decimal.Decimal       `json:"quantity"`
	PlaceDate    string                `json:"place_date"`
	Reason       string                `json:"reason"`
}
