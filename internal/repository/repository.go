package repository

import (
	"sensor_bridge/internal/models"
)

// SnapshotRepo holds the single most recent Reading.
type SnapshotRepo interface {
	// Set replaces the stored Reading unconditionally.
	Set(r models.Reading)
	// Get returns the current Reading, or the all-null Reading if Set was
	// never called.
	Get() models.Reading
}

type Repository struct {
	Snapshot SnapshotRepo
}

func NewRepository() *Repository {
	return &Repository{
		Snapshot: NewSnapshotMemory(),
	}
}
