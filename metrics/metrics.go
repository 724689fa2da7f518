// Package metrics exports Prometheus collectors for correspondence searches.
//
// A Collector is fed from search hooks (OnRound, OnExpand) and the final
// Result; it never touches the search itself.
package metrics

import (
	"sync"
	"time"

	"github.com/katalvlaran/pcp/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "pcp"

// Collector groups the search metrics registered on one Registerer.
type Collector struct {
	rounds        prometheus.Counter
	configs       prometheus.Counter
	frontier      prometheus.Gauge
	depth         prometheus.Gauge
	roundDuration prometheus.Histogram
	searches      *prometheus.CounterVec

	mu         sync.Mutex
	roundStart time.Time
}

// New registers the search collectors on reg. Pass prometheus.NewRegistry()
// in tests to avoid duplicate registration on the default registry.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "rounds_total",
			Help:      "Total search rounds expanded",
		}),
		configs: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "configurations_total",
			Help:      "Total configurations produced by frontier expansion",
		}),
		frontier: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "frontier_size",
			Help:      "Size of the most recently produced frontier",
		}),
		depth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "depth",
			Help:      "Depth of the most recently produced frontier",
		}),
		roundDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "round_duration_seconds",
			Help:      "Wall time to expand one round",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "completed_total",
			Help:      "Finished searches by outcome",
		}, []string{"state"}),
	}
}

// ObserveRound marks the start of a round. Its signature matches the
// OnRound hook minus the error result.
func (c *Collector) ObserveRound(_, _ int) {
	c.mu.Lock()
	c.roundStart = time.Now()
	c.mu.Unlock()
}

// ObserveExpand records a produced round; use it as the OnExpand hook.
func (c *Collector) ObserveExpand(depth, produced int) {
	c.mu.Lock()
	start := c.roundStart
	c.mu.Unlock()

	c.rounds.Inc()
	c.configs.Add(float64(produced))
	c.frontier.Set(float64(produced))
	c.depth.Set(float64(depth))
	if !start.IsZero() {
		c.roundDuration.Observe(time.Since(start).Seconds())
	}
}

// ObserveResult counts a finished search by its state.
func (c *Collector) ObserveResult(res *search.Result) {
	if res == nil {
		return
	}
	c.searches.WithLabelValues(res.State.String()).Inc()
}

// Options returns search options wiring the collector's hooks.
// A caller needing its own OnRound logic should call ObserveRound from it
// instead, since a later WithOnRound replaces an earlier one.
func (c *Collector) Options() []search.Option {
	return []search.Option{
		search.WithOnRound(func(depth, frontier int) error {
			c.ObserveRound(depth, frontier)
			return nil
		}),
		search.WithOnExpand(c.ObserveExpand),
	}
}
