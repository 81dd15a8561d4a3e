// Package dvecprom exports dvec container events as Prometheus metrics.
package dvecprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/dvec"
)

// DefaultNamespace prefixes metric names when New is given an empty namespace.
const DefaultNamespace = "dvec"

var (
	_ dvec.Recorder        = (*Recorder)(nil)
	_ prometheus.Collector = (*Recorder)(nil)
)

// Recorder counts checkouts and usage errors per container name.
// It is safe for concurrent use and can be shared by many containers.
type Recorder struct {
	checkouts *prometheus.CounterVec
	faults    *prometheus.CounterVec
}

// New creates a Recorder. Register it with a prometheus.Registerer and pass
// it to containers with dvec.WithRecorder.
func New(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Recorder{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Full checkouts of container storage.",
		}, []string{"vec"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Fatal usage errors raised by containers.",
		}, []string{"vec", "kind"}),
	}
}

// CheckedOut implements dvec.Recorder.
func (r *Recorder) CheckedOut(vec string) {
	r.checkouts.WithLabelValues(vec).Inc()
}

// Faulted implements dvec.Recorder.
func (r *Recorder) Faulted(vec string, kind dvec.Kind) {
	r.faults.WithLabelValues(vec, string(kind)).Inc()
}

// Describe implements prometheus.Collector.
func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	r.checkouts.Describe(ch)
	r.faults.Describe(ch)
}

// Collect implements prometheus.Collector.
func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	r.checkouts.Collect(ch)
	r.faults.Collect(ch)
}
