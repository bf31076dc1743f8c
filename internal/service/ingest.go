package service

import (
	"bufio"
	"context"
	"errors"
	"io"

	"sensor_bridge/internal/logger"
	"sensor_bridge/internal/metrics"
	"sensor_bridge/internal/repository"
)

// maxLineBytes bounds a single framed line.
const maxLineBytes = 1 << 20

// maxLoggedLine bounds the line text attached to a log entry.
const maxLoggedLine = 256

type IngestService struct {
	snapshot repository.SnapshotRepo
	metrics  Metrics
	log      *logger.Logger
}

func NewIngestService(snapshot repository.SnapshotRepo, m Metrics, log *logger.Logger) *IngestService {
	if m == nil {
		m = noopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &IngestService{snapshot: snapshot, metrics: m, log: log}
}

// HandleLine classifies raw and, when it parses, replaces the snapshot with
// the new Reading in full. Errors stop at this line.
func (s *IngestService) HandleLine(raw string) bool {
	s.metrics.IncCounter(metrics.LinesReceived, 1)

	reading, err := ParseLine(raw)
	switch {
	case err == nil:
		s.snapshot.Set(reading)
		s.metrics.IncCounter(metrics.ReadingsAccepted, 1)
		s.log.Debugw("reading_updated", "reading", reading)
		return true
	case errors.Is(err, ErrNotTelemetry):
		s.metrics.IncCounter(metrics.NoiseDiscarded, 1)
		s.log.Debugw("line_ignored", "line", logLine(raw))
	default:
		s.metrics.IncCounter(metrics.ParseErrors, 1)
		s.log.Warnw("line_parse_failed", "err", err, "line", logLine(raw))
	}
	return false
}

// rejectOverlong accounts for a line that was dropped by the framer.
func (s *IngestService) rejectOverlong(n int) {
	s.metrics.IncCounter(metrics.LinesReceived, 1)
	s.metrics.IncCounter(metrics.ParseErrors, 1)
	s.log.Warnw("line_parse_failed", "err", ErrLineTooLong, "line_bytes", n)
}

// frame is one unit handed from the reader goroutine to Consume.
type frame struct {
	line    string
	dropped int // >0 when an overlong line of this many bytes was discarded
}

// Consume frames src on '\n' and hands each line to HandleLine. A line
// longer than maxLineBytes is discarded through its terminator, counted as a
// parse error and framing continues with the next line. Returns ctx.Err() on
// cancellation, nil on EOF, or the read error.
func (s *IngestService) Consume(ctx context.Context, src io.Reader) error {
	br := bufio.NewReaderSize(src, maxLineBytes)

	frames := make(chan frame)
	readErr := make(chan error, 1)

	// The blocking read runs on its own goroutine so cancellation is not
	// held up by a silent device.
	go func() {
		defer close(frames)
		for {
			f, err := readFrame(br)
			if f.line != "" || f.dropped > 0 {
				select {
				case frames <- f:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-frames:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if f.dropped > 0 {
				s.rejectOverlong(f.dropped)
				continue
			}
			s.HandleLine(f.line)
		}
	}
}

// readFrame reads up to and including the next '\n'. When the line does not
// fit the reader's buffer the rest of it is skipped and only its size is
// reported. A final unterminated line is returned together with io.EOF.
func readFrame(br *bufio.Reader) (frame, error) {
	b, err := br.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return frame{line: string(b)}, err
	}

	n := len(b)
	for errors.Is(err, bufio.ErrBufferFull) {
		b, err = br.ReadSlice('\n')
		n += len(b)
	}
	return frame{dropped: n}, err
}

// logLine trims raw and cuts it to maxLoggedLine bytes for logging.
func logLine(raw string) string {
	txt := trimLine(raw)
	if len(txt) <= maxLoggedLine {
		return txt
	}
	return txt[:maxLoggedLine] + "..."
}
