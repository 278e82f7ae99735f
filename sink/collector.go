package sink

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/levelgate/core"
)

// Collector exposes Stats as the Prometheus counter
// <namespace>_log_calls_total{level="..."}.
type Collector struct {
	stats *Stats
	desc  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector reading from stats
func NewCollector(stats *Stats, namespace string) *Collector {
	return &Collector{
		stats: stats,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "log_calls_total"),
			"Total number of log calls forwarded to the sink, by level",
			[]string{"level"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, level := range core.Levels() {
		if level == core.NoneLevel {
			continue
		}
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.CounterValue,
			float64(c.stats.Get(level)),
			strings.ToLower(level.String()),
		)
	}
}
