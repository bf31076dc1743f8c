package service

import (
	"sensor_bridge/internal/models"
	"sensor_bridge/internal/repository"
)

type MonitoringService struct {
	snapshot repository.SnapshotRepo
}

func NewMonitoringService(snapshot repository.SnapshotRepo) *MonitoringService {
	return &MonitoringService{snapshot: snapshot}
}

// Latest returns the current snapshot; the all-null Reading until the
// first line parses.
func (s *MonitoringService) Latest() models.Reading {
	return s.snapshot.Get()
}
