package service

import (
	"context"
	"io"
	"time"

	"sensor_bridge/internal/logger"
	"sensor_bridge/internal/models"
	"sensor_bridge/internal/repository"
)

// Ingestor turns the serial byte stream into Readings.
type Ingestor interface {
	// HandleLine classifies one raw line and stores it when it parses.
	// It reports whether the snapshot was replaced.
	HandleLine(raw string) bool
	// Consume reads newline-terminated lines from src until ctx is done,
	// src is exhausted, or a read fails. There is no retry.
	Consume(ctx context.Context, src io.Reader) error
}

// Monitoring exposes the current Reading to the publishing side.
type Monitoring interface {
	Latest() models.Reading
}

// Simulator writes synthetic device output. Stop via ctx cancellation.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration, w io.WriteCloser)
}

// Metrics receives ingestion counters (see internal/metrics).
type Metrics interface {
	IncCounter(name string, v float64)
}

type noopMetrics struct{}

func (noopMetrics) IncCounter(string, float64) {}

// Service aggregates the sub-services used by main and the HTTP handlers.
type Service struct {
	Ingestor
	Monitoring
	Simulator
}

func NewService(repos *repository.Repository, m Metrics, log *logger.Logger) *Service {
	return &Service{
		Ingestor:   NewIngestService(repos.Snapshot, m, log),
		Monitoring: NewMonitoringService(repos.Snapshot),
		Simulator:  NewSimulatorService(time.Now().UnixNano()),
	}
}
