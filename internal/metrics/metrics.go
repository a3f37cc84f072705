// Package metrics records counters about a single analysis run and writes
// them in the Prometheus text format, so a node_exporter textfile collector
// can pick them up after the batch job finishes.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	models "github.com/Schera-ole/loganalyzer/internal/model"
	"github.com/Schera-ole/loganalyzer/internal/parser"
)

const namespace = "loganalyzer"

// Match kinds used as the "kind" label of lines_matched_total.
const (
	KindAddress     = "address"
	KindEndpoint    = "endpoint"
	KindFailedLogin = "failed_login"
)

// Recorder collects run metrics in its own registry.
type Recorder struct {
	registry *prometheus.Registry

	linesProcessed       prometheus.Counter
	linesMatched         *prometheus.CounterVec
	uniqueAddresses      prometheus.Gauge
	suspiciousAddresses  prometheus.Gauge
	failedLoginThreshold prometheus.Gauge
}

// NewRecorder creates a Recorder with every metric registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		linesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_processed_total",
			Help:      "Total number of log lines read",
		}),
		linesMatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lines_matched_total",
				Help:      "Total number of log lines matching each pattern",
			},
			[]string{"kind"},
		),
		uniqueAddresses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unique_addresses",
			Help:      "Number of distinct source addresses in the log",
		}),
		suspiciousAddresses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "suspicious_addresses",
			Help:      "Number of addresses above the failed login threshold",
		}),
		failedLoginThreshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failed_login_threshold",
			Help:      "Failed login count an address must exceed to be reported",
		}),
	}

	r.registry.MustRegister(
		r.linesProcessed,
		r.linesMatched,
		r.uniqueAddresses,
		r.suspiciousAddresses,
		r.failedLoginThreshold,
	)

	// Expose every kind from the start, even when it never matches
	for _, kind := range []string{KindAddress, KindEndpoint, KindFailedLogin} {
		r.linesMatched.WithLabelValues(kind)
	}

	return r
}

// Registry returns the registry the metrics are registered in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveLine counts one processed line and the patterns it matched.
func (r *Recorder) ObserveLine(c parser.Classification) {
	r.linesProcessed.Inc()
	if c.HasAddress {
		r.linesMatched.WithLabelValues(KindAddress).Inc()
	}
	if c.HasEndpoint {
		r.linesMatched.WithLabelValues(KindEndpoint).Inc()
	}
	if c.CountsFailedLogin() {
		r.linesMatched.WithLabelValues(KindFailedLogin).Inc()
	}
}

// ObserveReport sets the gauges derived from the final report.
func (r *Recorder) ObserveReport(report *models.Report) {
	if report == nil {
		return
	}
	r.uniqueAddresses.Set(float64(len(report.Requests)))
	r.suspiciousAddresses.Set(float64(len(report.Suspicious)))
	r.failedLoginThreshold.Set(float64(report.Threshold))
}

// WriteTextfile writes every metric to fname in the Prometheus text format.
func (r *Recorder) WriteTextfile(fname string) error {
	dir := filepath.Dir(fname)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(fname, r.registry); err != nil {
		return fmt.Errorf("error writing metrics textfile: %w", err)
	}
	return nil
}
