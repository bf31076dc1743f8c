package repository

import (
	"sync"

	"sensor_bridge/internal/models"
)

// SnapshotMemory is an in-memory SnapshotRepo. One writer (the ingestor)
// and any number of readers may use it concurrently.
type SnapshotMemory struct {
	mu      sync.RWMutex
	current models.Reading
}

func NewSnapshotMemory() *SnapshotMemory {
	return &SnapshotMemory{}
}

// Set swaps in r as a whole; fields are never merged with the previous value.
func (s *SnapshotMemory) Set(r models.Reading) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}

// Get returns a copy of the current Reading.
func (s *SnapshotMemory) Get() models.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
