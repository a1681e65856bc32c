package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsExposure(t *testing.T) {
	ObserveRequest(http.MethodGet, "/healthcheck", http.StatusOK, time.Now().Add(-20*time.Millisecond))
	IncImportedRows("posts", "csv", 3)
	SharedReportViews.Inc()
	IncJobRun("report_cleanup", nil)
	IncJobRun("report_cleanup", errors.New("falha"))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, name := range []string{
		"publimais_http_requests_total",
		"publimais_http_request_duration_seconds",
		"publimais_imported_rows_total",
		"publimais_shared_report_views_total",
		"publimais_job_runs_total",
	} {
		assert.Contains(t, body, name)
	}
}
