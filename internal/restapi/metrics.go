package restapi

import "github.com/prometheus/client_golang/prometheus"

var (
	tripsRequests = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:        "req_trips",
		Help:        "Histogram for serving requests related to trips",
		ConstLabels: prometheus.Labels{"endpoint_type": "trips"},
	})
	tripsExtracted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trips_extracted_total",
		Help: "Number of trips parsed out of the station page",
	})
	rowsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rows_skipped_total",
		Help: "Number of malformed schedule rows dropped during extraction",
	})
)

func init() {
	prometheus.MustRegister(tripsRequests, tripsExtracted, rowsSkipped)
}
