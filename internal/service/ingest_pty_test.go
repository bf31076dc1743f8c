//go:build linux

package service

import (
	"context"
	"testing"
	"time"

	"sensor_bridge/internal/models"
	"sensor_bridge/internal/repository"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// TestIngestService_ConsumeFromPTY drives the ingestor through a real tty
// pair, the way the board's USB serial device behaves.
func TestIngestService_ConsumeFromPTY(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	repo := repository.NewSnapshotMemory()
	svc := NewIngestService(repo, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Consume(ctx, slave) }()

	_, err = master.Write([]byte("[RX] raw telemetry byte 0x00\n"))
	require.NoError(t, err)
	_, err = master.Write([]byte("{\"tilt\":5}\n"))
	require.NoError(t, err)
	_, err = master.Write([]byte("{\"temp\":30}\n"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got := repo.Get()
		return got.Temp != nil && *got.Temp == 30
	}, time.Second, 5*time.Millisecond)

	got := repo.Get()
	require.Nil(t, got.Tilt, "second line must overwrite tilt with null")
	require.Nil(t, got.Humid)
	require.Equal(t, models.Float(30), got.Temp)

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Consume did not return after cancel")
	}
}
