package metrics

import "github.com/prometheus/client_golang/prometheus"

// Operations instruments bigint/rational operations performed by the demo
// binary: a counter per operation name and a histogram of result bit
// lengths, so a long-running `-metrics-addr` process exposes something
// more interesting than Go runtime metrics alone.
type Operations struct {
	opsTotal        *prometheus.CounterVec
	resultBitLength prometheus.Histogram
}

// NewOperations registers the operation metrics on reg and returns the
// collector. reg is typically prometheus.NewRegistry(), kept separate from
// the global DefaultRegisterer so tests can create independent instances.
func NewOperations(reg prometheus.Registerer) *Operations {
	o := &Operations{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpl_operations_total",
			Help: "Number of bigint/rational operations performed, by operation name.",
		}, []string{"op"}),
		resultBitLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpl_result_bit_length",
			Help:    "Bit length of operation results.",
			Buckets: prometheus.ExponentialBuckets(8, 4, 16),
		}),
	}
	reg.MustRegister(o.opsTotal, o.resultBitLength)
	return o
}

// Observe records that op completed producing a result of the given bit
// length.
func (o *Operations) Observe(op string, resultBits int) {
	o.opsTotal.WithLabelValues(op).Inc()
	o.resultBitLength.Observe(float64(resultBits))
}
