package mixer

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mixCycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mix_cycles_total",
		Help: "Completed mix cycles.",
	})
	mixFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mix_failures_total",
		Help: "Mix cycles aborted by a peer or registry failure.",
	})
	mixPulledBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mix_pulled_bytes_total",
		Help: "Bytes pulled from peers during mix cycles.",
	})
	mixPushedBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mix_pushed_bytes_total",
		Help: "Bytes pushed to peers during mix cycles.",
	})
	mixPushApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mix_push_applied_total",
		Help: "Diffs merged into the local model.",
	})
	mixPendingUpdates = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mix_pending_updates",
		Help: "Local updates recorded since the last mix.",
	})
)

func init() {
	prometheus.MustRegister(mixCycles)
	prometheus.MustRegister(mixFailures)
	prometheus.MustRegister(mixPulledBytes)
	prometheus.MustRegister(mixPushedBytes)
	prometheus.MustRegister(mixPushApplied)
	prometheus.MustRegister(mixPendingUpdates)
}
