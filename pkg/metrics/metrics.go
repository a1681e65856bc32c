// Package metrics expõe os contadores Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "publimais_http_requests_total",
		Help: "Total de requisições HTTP por método, rota e status",
	}, []string{"method", "path", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "publimais_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	ImportedRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "publimais_imported_rows_total",
		Help: "Linhas importadas por tipo de importação",
	}, []string{"kind", "format"})

	SharedReportViews = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "publimais_shared_report_views_total",
		Help: "Acessos a relatórios públicos",
	})

	JobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "publimais_job_runs_total",
		Help: "Execuções dos agendadores por job e resultado",
	}, []string{"job", "result"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ImportedRows, SharedReportViews, JobRuns)
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest registra uma requisição concluída
func ObserveRequest(method, path string, status int, start time.Time) {
	HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// IncImportedRows soma as linhas importadas
func IncImportedRows(kind, format string, rows int) {
	ImportedRows.WithLabelValues(kind, format).Add(float64(rows))
}

// IncJobRun registra a execução de um job agendado
func IncJobRun(job string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	JobRuns.WithLabelValues(job, result).Inc()
}
