package serialport

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

// fakePort satisfies serial.Port for OpenWith tests.
type fakePort struct {
	serial.Port
	io.Reader
	closed bool
}

func (f *fakePort) Read(p []byte) (int, error) { return f.Reader.Read(p) }
func (f *fakePort) Close() error              { f.closed = true; return nil }

func TestOpenWith_EmptyPath(t *testing.T) {
	called := false
	open := func(string, *serial.Mode) (serial.Port, error) {
		called = true
		return nil, nil
	}
	_, err := OpenWith(open, "   ", PortOptions{})
	require.ErrorIs(t, err, ErrNoDevice)
	require.False(t, called, "opener must not be called without a path")
}

func TestOpenWith_PassesModeAndPath(t *testing.T) {
	var gotPath string
	var gotMode *serial.Mode
	fp := &fakePort{}
	open := func(path string, mode *serial.Mode) (serial.Port, error) {
		gotPath, gotMode = path, mode
		return fp, nil
	}

	port, err := OpenWith(open, "/dev/ttyUSB0", PortOptions{BaudRate: 57600})
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyUSB0", gotPath)
	require.Equal(t, 57600, gotMode.BaudRate)
	require.NoError(t, port.Close())
	require.True(t, fp.closed)
}

func TestOpenWith_WrapsOpenError(t *testing.T) {
	boom := errors.New("no such device")
	open := func(string, *serial.Mode) (serial.Port, error) { return nil, boom }

	_, err := OpenWith(open, "COM14", PortOptions{})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "COM14")
}

func TestOpenWith_InvalidOptions(t *testing.T) {
	open := func(string, *serial.Mode) (serial.Port, error) {
		t.Fatal("opener must not be called with invalid options")
		return nil, nil
	}
	_, err := OpenWith(open, "/dev/ttyUSB0", PortOptions{DataBits: 12})
	require.Error(t, err)
}

func TestOpen_MissingDevice(t *testing.T) {
	_, err := Open("/dev/does-not-exist-sensor-bridge", PortOptions{})
	require.Error(t, err)
}
