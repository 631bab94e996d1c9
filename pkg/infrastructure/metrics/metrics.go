package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the planning service's Prometheus instruments.
//
// Counters:
//   - planner_runs_total: simulation runs started
//   - planner_run_failures_total: runs that returned an error
//   - planner_batches_simulated_total: usable batches processed
//   - planner_reorders_placed_total: replenishment orders placed
//
// Histogram:
//   - planner_run_duration_seconds: wall-clock duration per run
type Collector struct {
	runs             prometheus.Counter
	runFailures      prometheus.Counter
	batchesSimulated prometheus.Counter
	reordersPlaced   prometheus.Counter
	runDuration      prometheus.Histogram
}

// NewCollector creates the instruments and registers them with reg. Passing
// prometheus.DefaultRegisterer wires them to the process-global registry;
// tests pass a fresh prometheus.NewRegistry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_runs_total",
			Help: "Total number of simulation runs started",
		}),
		runFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_run_failures_total",
			Help: "Total number of simulation runs that failed",
		}),
		batchesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_batches_simulated_total",
			Help: "Total number of usable batches processed",
		}),
		reordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_reorders_placed_total",
			Help: "Total number of replenishment orders placed",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_run_duration_seconds",
			Help:    "Simulation run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.runs, c.runFailures, c.batchesSimulated, c.reordersPlaced, c.runDuration)
	return c
}

// RecordRun records one completed run: its duration, how many batches it
// simulated and how many reorders it placed.
func (c *Collector) RecordRun(durationSeconds float64, batches, reorders int) {
	c.runs.Inc()
	c.runDuration.Observe(durationSeconds)
	c.batchesSimulated.Add(float64(batches))
	c.reordersPlaced.Add(float64(reorders))
}

// RecordFailure records one failed run.
func (c *Collector) RecordFailure(durationSeconds float64) {
	c.runs.Inc()
	c.runFailures.Inc()
	c.runDuration.Observe(durationSeconds)
}
