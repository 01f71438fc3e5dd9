package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/labkit/internal/logging"
	"github.com/danmuck/labkit/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
	RecordChartRender(40 * time.Millisecond)

	logging.Logf("observability/metrics: registration idempotent and recording paths executed")
}

func TestRecordTransformCountsLinesOnlyOnSuccess(t *testing.T) {
	testlog.Start(t)
	okBefore := testutil.ToFloat64(transformFiles.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(transformFiles.WithLabelValues("error"))
	linesBefore := testutil.ToFloat64(transformLines)

	RecordTransform(true, 7)
	RecordTransform(false, 99)

	if got := testutil.ToFloat64(transformFiles.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Fatalf("expected one ok job, got %v", got)
	}
	if got := testutil.ToFloat64(transformFiles.WithLabelValues("error")) - errBefore; got != 1 {
		t.Fatalf("expected one failed job, got %v", got)
	}
	if got := testutil.ToFloat64(transformLines) - linesBefore; got != 7 {
		t.Fatalf("expected 7 lines, got %v", got)
	}
}

func TestRecordQuoteLabels(t *testing.T) {
	testlog.Start(t)
	before := testutil.ToFloat64(pricingQuotes.WithLabelValues("true"))
	RecordQuote(true)
	if got := testutil.ToFloat64(pricingQuotes.WithLabelValues("true")) - before; got != 1 {
		t.Fatalf("expected applied quote counted, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordQuote(false)
	path := filepath.Join(t.TempDir(), "labkit.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(raw), "labkit_pricing_quotes_total") {
		t.Fatalf("textfile missing quote counter:\n%s", raw)
	}
}
