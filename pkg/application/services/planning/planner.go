package planning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/application/dto"
	"github.com/mpd-industries/planner/pkg/application/services/simulation"
	"github.com/mpd-industries/planner/pkg/domain/entities"
	"github.com/mpd-industries/planner/pkg/domain/repositories"
	"github.com/mpd-industries/planner/pkg/domain/services"
	"github.com/mpd-industries/planner/pkg/infrastructure/events"
	"github.com/mpd-industries/planner/pkg/infrastructure/metrics"
)

// Service orchestrates a planning run: it pulls the material registry and
// formulation catalog from their repositories, validates catalog consistency,
// runs the simulation engine and records observability signals.
type Service struct {
	materialRepo    repositories.MaterialRepository
	formulationRepo repositories.FormulationRepository
	engine          *simulation.Engine
	logger          *slog.Logger
	collector       *metrics.Collector
	eventStore      events.Store
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the structured logger. The default discards nothing; it is
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the Prometheus collector. Without one, no metrics are
// recorded.
func WithMetrics(collector *metrics.Collector) Option {
	return func(s *Service) { s.collector = collector }
}

// WithEngine replaces the default engine, for callers that need custom policy
// switches.
func WithEngine(engine *simulation.Engine) Option {
	return func(s *Service) { s.engine = engine }
}

// WithEventStore enables audit events for run lifecycle and placed reorders.
func WithEventStore(store events.Store) Option {
	return func(s *Service) { s.eventStore = store }
}

// NewService creates a planning service backed by the given repositories.
func NewService(
	materialRepo repositories.MaterialRepository,
	formulationRepo repositories.FormulationRepository,
	opts ...Option,
) *Service {
	s := &Service{
		materialRepo:    materialRepo,
		formulationRepo: formulationRepo,
		engine:          simulation.NewEngine(),
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanProduction simulates the given batch plan against the opening stock
// snapshot. Catalog consistency problems that the engine would surface as
// hard failures are reported up front; orphaned material references are
// logged and tolerated, matching the engine's fallback behavior.
func (s *Service) PlanProduction(
	ctx context.Context,
	openingStock map[entities.MaterialCode]decimal.Decimal,
	batches []entities.Batch,
) (*dto.SimulationResult, error) {
	start := time.Now()

	materials, err := s.materialRepo.GetAllMaterials()
	if err != nil {
		s.recordFailure(start)
		return nil, fmt.Errorf("failed to load material registry: %w", err)
	}
	formulations, err := s.formulationRepo.GetAllFormulations()
	if err != nil {
		s.recordFailure(start)
		return nil, fmt.Errorf("failed to load formulation catalog: %w", err)
	}

	validation := services.ValidateCatalogConsistency(formulations, materials)
	if len(validation.Errors) > 0 {
		s.recordFailure(start)
		return nil, fmt.Errorf("catalog validation failed: %s", validation.Errors[0])
	}
	for _, code := range validation.OrphanedMaterials {
		s.logger.Warn("formulation references unregistered material",
			"material", code)
	}

	usable := len(entities.FilterUsable(batches))
	s.logger.Info("starting planning run",
		"batches", len(batches),
		"usable_batches", usable,
		"materials", len(materials),
		"formulations", len(formulations))
	s.publish(events.PlanningStream, events.RunStartedEvent, events.RunStarted{
		Batches:       len(batches),
		UsableBatches: usable,
		Materials:     len(materials),
		Formulations:  len(formulations),
	})

	result, err := s.engine.Run(ctx, openingStock, materials, formulations, batches)
	if err != nil {
		s.recordFailure(start)
		s.logger.Error("planning run failed", "error", err)
		s.publish(events.PlanningStream, events.RunFailedEvent, events.RunFailed{Error: err.Error()})
		return nil, err
	}

	reorders := 0
	for _, day := range result.Reorders {
		reorders += len(day.Placed)
		for code, record := range day.Placed {
			s.publish(string(code), events.ReorderPlacedEvent, events.ReorderPlaced{
				MaterialCode: code,
				Quantity:     record.Quantity,
				PlaceDate:    day.Date,
				Reason:       record.Reason,
			})
		}
	}
	if s.collector != nil {
		s.collector.RecordRun(time.Since(start).Seconds(), usable, reorders)
	}
	s.publish(events.PlanningStream, events.RunCompletedEvent, events.RunCompleted{
		UsageDays:        len(result.DailyUsage),
		ReordersPlaced:   reorders,
		MaterialsTouched: len(result.Totals),
	})
	s.logger.Info("planning run complete",
		"duration", time.Since(start),
		"usage_days", len(result.DailyUsage),
		"reorders_placed", reorders,
		"materials_touched", len(result.Totals))

	return result, nil
}

func (s *Service) recordFailure(start time.Time) {
	if s.collector != nil {
		s.collector.RecordFailure(time.Since(start).Seconds())
	}
}

func (s *Service) publish(streamID, eventType string, data interface{}) {
	if s.eventStore == nil {
		return
	}
	if err := s.eventStore.Append(streamID, eventType, data); err != nil {
		s.logger.Warn("failed to append audit event", "type", eventType, "error", err)
	}
}
