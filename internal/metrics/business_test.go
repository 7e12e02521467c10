package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine matches a metric line while tolerating the scope labels the
// exporter adds.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestBusinessMetrics_Export(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "record", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "record", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "record", "encrypt", StatusError)
	bm.RecordOperation(ctx, "delivery", "intercept", StatusSuccess)
	bm.RecordCount(ctx, "delivery", "entry_sent", StatusSuccess, 7)
	bm.RecordCount(ctx, "delivery", "entry_failed", StatusError, 0)

	bm.RecordDuration(ctx, "record", "encrypt", 50*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "record", "encrypt", 60*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "delivery", "process_queue", 2*time.Second, StatusError)

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="record".*operation="encrypt".*status="success"`, `2`)
	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="record".*operation="encrypt".*status="error"`, `1`)
	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="delivery".*operation="intercept".*status="success"`, `1`)
	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="delivery".*operation="entry_sent".*status="success"`, `7`)
	assert.NotContains(t, output, `operation="entry_failed"`)

	assertBizMetricLine(t, output, `integration_test_operation_duration_seconds_count`,
		`domain="record".*operation="encrypt".*status="success"`, `2`)
	assertBizMetricLine(t, output, `integration_test_operation_duration_seconds_count`,
		`domain="delivery".*operation="process_queue".*status="error"`, `1`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, bm)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		bm.RecordOperation(ctx, "record", "encrypt", StatusSuccess)
		bm.RecordCount(ctx, "delivery", "entry_sent", StatusSuccess, 3)
		bm.RecordDuration(ctx, "delivery", "process_queue", time.Second, StatusError)
	})
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusError, StatusOf(errors.New("boom")))
}
