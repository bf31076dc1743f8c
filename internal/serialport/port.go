package serialport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial"
)

// ErrNoDevice is returned by Open when no device path is configured.
var ErrNoDevice = errors.New("serial device path is empty")

// Port is the byte stream the ingestor consumes.
type Port interface {
	io.ReadCloser
}

// Opener opens a serial device. It is swapped out in tests.
type Opener func(path string, mode *serial.Mode) (serial.Port, error)

// Open opens the device at path with the given options using go.bug.st/serial.
func Open(path string, opts PortOptions) (Port, error) {
	return OpenWith(serial.Open, path, opts)
}

// OpenWith is Open with an explicit opener.
func OpenWith(open Opener, path string, opts PortOptions) (Port, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrNoDevice
	}

	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}

	port, err := open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %q: %w", path, err)
	}
	return port, nil
}
