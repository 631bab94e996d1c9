package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/application/dto"
	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// DefaultTrailingBufferDays is the fixed window extension past the last
// batch start date. It lets safety-stock corrections from late batches
// settle before the log is finalized; it is not derived from any lead time.
const DefaultTrailingBufferDays = 30

// usageDecimalPlaces is the rounding applied to every consumption and
// shortfall quantity at the point of computation. Downstream totals are sums
// of already-rounded values.
const usageDecimalPlaces = 4

// Receipt is a finished-goods quantity credited to stock by a
// CompletionSource.
type Receipt struct {
	MaterialCode entities.MaterialCode
	Quantity     decimal.Decimal
}

// CompletionSource supplies finished-goods receipts for production completed
// the previous day. The engine consults it at the start of each simulated
// day; a nil source makes the carry-over step a no-op.
type CompletionSource interface {
	CompletedOn(day time.Time) []Receipt
}

// Config holds the engine's policy switches
type Config struct {
	// TrailingBufferDays extends the simulation window past the latest
	// batch start date
	TrailingBufferDays int
	// CheckReactorConflicts fails the run when two batches claim the same
	// reactor on an overlapping day
	CheckReactorConflicts bool
	// ClampPlacementToToday fails the run when a back-dated place date
	// would fall before Today (an order that would have to be placed in
	// the real past)
	ClampPlacementToToday bool
	// SkipNonPositiveUsage drops zero and negative usage quantities
	// instead of applying them
	SkipNonPositiveUsage bool
	// Today is the reference date for place-date clamping; zero means the
	// wall clock at the start of the run
	Today time.Time
	// Completions is the optional finished-goods carry-over source
	Completions CompletionSource
}

// DefaultConfig returns the reference policy: conflicts checked, no
// clamping, no usage skipping, 30-day trailing buffer.
func DefaultConfig() Config {
	return Config{
		TrailingBufferDays:    DefaultTrailingBufferDays,
		CheckReactorConflicts: true,
	}
}

// Engine advances a virtual calendar one day at a time, projecting material
// consumption, reactor occupancy and replenishment. A run is a pure function
// of its inputs: identical inputs produce byte-identical serialized output.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom policy switches
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Run simulates the given batch plan against the opening stock snapshot,
// material registry and formulation catalog. Batch records missing required
// fields are dropped silently; an empty usable set yields an empty result.
// The run fails fast, with no partial output, on an unknown or invalid
// formulation, a reactor double-booking, or (when clamping is enabled) a
// reorder that would have to be placed in the past.
func (e *Engine) Run(
	ctx context.Context,
	openingStock map[entities.MaterialCode]decimal.Decimal,
	materials []*entities.Material,
	formulations []*entities.Formulation,
	batches []entities.Batch,
) (*dto.SimulationResult, error) {
	today := e.config.Today
	if today.IsZero() {
		today = time.Now()
	}
	manager := newReorderManager(materials, e.config.ClampPlacementToToday, entities.Day(today))
	state := newRunState(openingStock)

	usable := entities.FilterUsable(batches)
	if len(usable) == 0 {
		return aggregate(state, manager), nil
	}
	for i := range usable {
		usable[i].StartDate = entities.Day(usable[i].StartDate)
	}

	catalog, err := e.resolveCatalog(usable, formulations)
	if err != nil {
		return nil, err
	}

	entities.SortByStartDate(usable)

	batchesByDay := make(map[time.Time][]entities.Batch)
	for _, b := range usable {
		batchesByDay[b.StartDate] = append(batchesByDay[b.StartDate], b)
	}

	windowStart := usable[0].StartDate
	windowEnd := usable[len(usable)-1].StartDate.AddDate(0, 0, e.config.TrailingBufferDays)

	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Carry-over: finished goods completed the previous day.
		if e.config.Completions != nil {
			for _, r := range e.config.Completions.CompletedOn(day) {
				state.credit(r.MaterialCode, r.Quantity)
			}
		}

		for _, b := range batchesByDay[day] {
			if e.config.CheckReactorConflicts {
				if err := state.reserveReactor(day, b); err != nil {
					return nil, err
				}
			}
			e.consumeBatch(state, day, b, catalog[b.FormulationID])
		}

		if err := e.enforceSafetyStock(state, manager, day); err != nil {
			return nil, err
		}

		state.snapshot(day)
	}

	return aggregate(state, manager), nil
}

// resolveCatalog indexes the formulations referenced by the usable batches,
// failing fast on references the catalog cannot satisfy.
func (e *Engine) resolveCatalog(
	usable []entities.Batch,
	formulations []*entities.Formulation,
) (map[entities.FormulationID]*entities.Formulation, error) {
	index := make(map[entities.FormulationID]*entities.Formulation, len(formulations))
	for _, f := range formulations {
		index[f.ID] = f
	}

	catalog := make(map[entities.FormulationID]*entities.Formulation)
	for _, b := range usable {
		f, ok := index[b.FormulationID]
		if !ok {
			return nil, &entities.UnknownFormulationError{
				BatchName:     b.DisplayName(),
				FormulationID: b.FormulationID,
			}
		}
		if !f.StandardBatchSize.IsPositive() {
			return nil, &entities.InvalidFormulationError{FormulationID: f.ID}
		}
		catalog[f.ID] = f
	}
	return catalog, nil
}

// consumeBatch applies one batch's recipe and packaging consumption, rounded
// to four decimal places per line at the point of computation.
func (e *Engine) consumeBatch(
	state *runState,
	day time.Time,
	b entities.Batch,
	f *entities.Formulation,
) {
	multiplier := b.ActualBatchSize.Div(f.StandardBatchSize)

	for _, line := range f.Ratios {
		usage := line.Quantity.Mul(multiplier).Round(usageDecimalPlaces)
		if e.config.SkipNonPositiveUsage && usage.Sign() <= 0 {
			continue
		}
		state.consume(day, line.MaterialCode, usage, usageContext(b, f, day, usage))
	}

	if f.HasPackaging() {
		usage := f.PackagingAmount.Mul(multiplier).Round(usageDecimalPlaces)
		if e.config.SkipNonPositiveUsage && usage.Sign() <= 0 {
			return
		}
		state.consume(day, f.PackagingCode, usage, usageContext(b, f, day, usage))
	}
}

// enforceSafetyStock runs after all of a day's batches: every material whose
// stock ended below its safety threshold gets a replenishment placed and
// received the same day, restoring the end-of-day invariant.
func (e *Engine) enforceSafetyStock(state *runState, manager *reorderManager, day time.Time) error {
	for _, code := range state.stockCodes() {
		stock := state.currentStock[code]
		safety := manager.safetyStockFor(code)
		if stock.GreaterThanOrEqual(safety) {
			continue
		}

		shortfall := safety.Sub(stock).Round(usageDecimalPlaces)
		reason := fmt.Sprintf(
			"below safety stock: shortfall %s %s for material '%s' on %s (stock %s, safety stock %s)",
			shortfall, manager.unitFor(code), code, day.Format(entities.DateFormat), stock, safety,
		)

		p, err := manager.placeReplenishment(day, code, shortfall, reason)
		if err != nil {
			return err
		}
		state.recordReorder(p)
	}
	return nil
}

// usageContext builds the human-readable annotation attached to one usage
// entry: formulation, batch, reactor, date and quantity.
func usageContext(
	b entities.Batch,
	f *entities.Formulation,
	day time.Time,
	usage decimal.Decimal,
) string {
	return fmt.Sprintf("%s for formulation '%s' in batch '%s' (reactor: %s, date: %s)",
		usage, f.ID, b.DisplayName(), b.ReactorID, day.Format(entities.DateFormat))
}
