package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casetrack_import_runs_total",
		Help: "Spreadsheet import runs by final outcome.",
	}, []string{"outcome"})

	ImportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casetrack_import_rows_total",
		Help: "Spreadsheet import rows by per-row outcome.",
	}, []string{"outcome"})
)
