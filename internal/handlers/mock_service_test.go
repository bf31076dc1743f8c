package handlers

import (
	"sync"

	"sensor_bridge/internal/models"
	"sensor_bridge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockMonitoring struct {
	mu      sync.Mutex
	reading models.Reading
	calls   int
}

func (m *mockMonitoring) Latest() models.Reading {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.reading
}

func (m *mockMonitoring) set(r models.Reading) {
	m.mu.Lock()
	m.reading = r
	m.mu.Unlock()
}

func (m *mockMonitoring) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts)
	return h.InitRoutes()
}
