package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sensor_bridge/internal/metrics"
	"sensor_bridge/internal/service"
)

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, Options{})
	if len(h.opts.CORSOrigins) != 1 || h.opts.CORSOrigins[0] != anyOrigin {
		t.Fatalf("CORSOrigins default: %v", h.opts.CORSOrigins)
	}
	if h.opts.WSInterval != defaultInterval {
		t.Fatalf("WSInterval default: %v", h.opts.WSInterval)
	}
	if h.log == nil {
		t.Fatalf("expected nop logger when none given")
	}

	h = NewHandler(&service.Service{}, nil, Options{WSInterval: 5 * time.Second})
	if h.opts.WSInterval != 5*time.Second {
		t.Fatalf("WSInterval override lost: %v", h.opts.WSInterval)
	}
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.NewPromMetrics()
	m.IncCounter(metrics.ParseErrors, 2)

	r := newTestRouter(&service.Service{Monitoring: &mockMonitoring{}}, Options{Metrics: m.Handler()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), metrics.ParseErrors+" 2") {
		t.Fatalf("metrics body missing counter:\n%s", w.Body.String())
	}
}

func TestMetricsRoute_AbsentWithoutHandler(t *testing.T) {
	r := newTestRouter(&service.Service{Monitoring: &mockMonitoring{}}, Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without metrics handler, got %d", w.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := newTestRouter(&service.Service{Monitoring: &mockMonitoring{}}, Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"/sensor"`) {
		t.Fatalf("swagger doc missing /sensor path:\n%s", w.Body.String())
	}
}
