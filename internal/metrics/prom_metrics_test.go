package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromMetrics_IncCounter(t *testing.T) {
	m := NewPromMetrics()

	m.IncCounter(LinesReceived, 1)
	m.IncCounter(LinesReceived, 2)
	m.IncCounter(ParseErrors, 1)
	m.IncCounter("unknown_counter", 5)

	if got := testutil.ToFloat64(m.Counter(LinesReceived)); got != 3 {
		t.Fatalf("lines received: want 3, got %v", got)
	}
	if got := testutil.ToFloat64(m.Counter(ParseErrors)); got != 1 {
		t.Fatalf("parse errors: want 1, got %v", got)
	}
	if got := testutil.ToFloat64(m.Counter(ReadingsAccepted)); got != 0 {
		t.Fatalf("readings accepted: want 0, got %v", got)
	}
}

func TestPromMetrics_SeparateRegistries(t *testing.T) {
	// two instances must not panic on duplicate registration
	a := NewPromMetrics()
	b := NewPromMetrics()
	a.IncCounter(NoiseDiscarded, 1)
	if got := testutil.ToFloat64(b.Counter(NoiseDiscarded)); got != 0 {
		t.Fatalf("instances share state: got %v", got)
	}
}

func TestPromMetrics_Handler(t *testing.T) {
	m := NewPromMetrics()
	m.IncCounter(ReadingsAccepted, 4)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), ReadingsAccepted+" 4") {
		t.Fatalf("exposition missing counter:\n%s", body)
	}
}
