// Package export adapts a histz Registry onto the Prometheus exposition
// format. It is a thin layer above the core: registries, label handling, and
// HTTP scrape endpoints are explicitly out of scope for the lock-free core
// itself (see histz's package doc), so this package supplies them instead of
// leaving histz un-scrapeable.
package export

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/flowmetric/histz"
)

// Collector adapts a *histz.Registry into a prometheus.Collector. A single
// Collector can be registered with a prometheus.Registerer once; Describe
// sends nothing and Collect takes a read-only pass over the underlying
// registry, so concurrent scrapes never block histz's observation path.
type Collector struct {
	registry *histz.Registry
	log      *zap.Logger

	mu       sync.Mutex
	warnedAt map[string]bool // metric names already warned about by warnOnce, so each is logged once
}

// NewCollector builds a Collector over registry. A nil logger falls back to
// zap.NewNop(), matching how this repo treats logging elsewhere: observable
// but never mandatory to wire up.
func NewCollector(registry *histz.Registry, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		registry: registry,
		log:      logger,
		warnedAt: make(map[string]bool),
	}
}

// Describe is intentionally a no-op: histz keys are created dynamically at
// runtime, so this Collector is unchecked (see prometheus.Collector's own
// documentation of that trade-off) rather than pre-declaring a fixed set of
// descriptors.
func (c *Collector) Describe(_ chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector by snapshotting every counter,
// gauge, histogram, and timer currently in the registry.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for key, counter := range c.registry.GetCounters() {
		name := metricName(key)
		desc := prometheus.NewDesc(name, "histz counter "+string(key), nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, counter.Value())
	}

	for key, gauge := range c.registry.GetGauges() {
		name := metricName(key)
		desc := prometheus.NewDesc(name, "histz gauge "+string(key), nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, gauge.Value())
	}

	for key, hist := range c.registry.GetHistograms() {
		c.collectHistogram(ch, metricName(key), "histz histogram "+string(key), hist)
	}

	for key, timer := range c.registry.GetTimers() {
		c.collectHistogram(ch, metricName(key), "histz timer (ms) "+string(key), timer)
	}
}

// histogramLike is satisfied by both histz.Histogram and histz.Timer: both
// expose the bucket/sum/count surface Prometheus's const-histogram API
// needs.
type histogramLike interface {
	Sum() float64
	Count() uint64
	Buckets() ([]float64, []uint64)
}

func (c *Collector) collectHistogram(ch chan<- prometheus.Metric, name, help string, h histogramLike) {
	bounds, counts := h.Buckets()
	if len(bounds) != len(counts) {
		c.warnOnce(name, "bucket boundary count does not match count vector, skipping scrape of this metric")
		return
	}

	// Prometheus wants cumulative (less-than-or-equal) bucket counts; histz
	// returns raw per-bucket counts (see histz.Snapshot), so accumulate here.
	cumulative := make(map[float64]uint64, len(bounds))
	var running uint64
	for i, bound := range bounds {
		running += counts[i]
		cumulative[bound] = running
	}

	desc := prometheus.NewDesc(name, help, nil, nil)
	metric, err := prometheus.NewConstHistogram(desc, h.Count(), h.Sum(), cumulative)
	if err != nil {
		c.log.Warn("failed to build const histogram", zap.String("metric", name), zap.Error(err))
		return
	}
	ch <- metric
}

func (c *Collector) warnOnce(name, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.warnedAt[name] {
		return
	}
	c.warnedAt[name] = true
	c.log.Warn(msg, zap.String("metric", name))
}

// metricName normalizes a histz.Key into a Prometheus-legal metric name:
// lowercase, non-alphanumerics collapsed to underscores. histz.Key is free
// text (it only forbids raw strings at the call site, not arbitrary
// characters), so this is a real translation, not a pass-through.
func metricName(key histz.Key) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(string(key)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "histz_unnamed"
	}
	return name
}
