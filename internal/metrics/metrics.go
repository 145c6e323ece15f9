// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every evdump metric; it is private so tests and embedders
// do not collide with the default registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// RecordsTotal counts records read, by link type.
	RecordsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evdump_records_total",
			Help: "Total number of capture records decoded",
		},
		[]string{"link_type"},
	)

	// RecordErrorsTotal counts recovered per-record errors.
	RecordErrorsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evdump_record_errors_total",
			Help: "Total number of records rendered with a fallback",
		},
		[]string{"kind"},
	)

	// DecodeRunsTotal counts finished Decode calls by outcome. A file read in
	// batches yields one "limit" run per full batch.
	DecodeRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evdump_decode_runs_total",
			Help: "Total number of decode runs by outcome",
		},
		[]string{"outcome"},
	)
)

// WriteTextfile writes the registry in text exposition format, suitable for
// the node-exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
