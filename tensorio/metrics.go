package tensorio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	csvRowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_csv_rows_written_total",
		Help: "Total number of CSV rows written",
	})

	csvFieldsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_csv_fields_discarded_total",
		Help: "Total number of CSV fields discarded as undecodable",
	})

	arrowRecordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_arrow_records_total",
		Help: "Total number of Arrow record batches written",
	})
)
