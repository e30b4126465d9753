package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DNSSECValidationTotal tracks RRset verification outcomes by verdict
	DNSSECValidationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clouddns_dnssec_validation_total",
		Help: "Total number of DNSSEC RRset verifications by verdict",
	}, []string{"verdict"})

	// DNSSECValidationDuration tracks how long a single RRset
	// verification (try-all-signatures-against-all-keys) takes
	DNSSECValidationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clouddns_dnssec_validation_duration_seconds",
		Help:    "Histogram of DNSSEC RRset verification duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"verdict"})
)
