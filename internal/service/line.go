package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"sensor_bridge/internal/models"
)

var (
	// ErrNotTelemetry marks a line without the outer-brace shape, such as
	// the "[RX] ..." diagnostics the board interleaves. Dropped silently.
	ErrNotTelemetry = errors.New("line is not shaped like a JSON object")
	// ErrMalformedLine marks a brace-shaped line that failed JSON parsing.
	ErrMalformedLine = errors.New("malformed telemetry line")
	// ErrLineTooLong marks a line that overran the framing buffer. The line
	// is discarded through its terminator and ingestion continues.
	ErrLineTooLong = fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedLine, maxLineBytes)
)

// trimLine strips surrounding whitespace and any byte order mark, which a
// board can emit right after reset.
func trimLine(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// ParseLine trims raw, checks that it starts with '{' and ends with '}' and
// then parses it as a JSON object. The shape check is only a first filter;
// "{not json}" passes it and fails in the parser with ErrMalformedLine.
//
// tilt, temp and humid are taken when they hold JSON numbers. Absent, null
// or non-numeric values leave the field nil; other keys are ignored.
func ParseLine(raw string) (models.Reading, error) {
	txt := trimLine(raw)
	if !strings.HasPrefix(txt, "{") || !strings.HasSuffix(txt, "}") {
		return models.Reading{}, ErrNotTelemetry
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(txt), &obj); err != nil {
		return models.Reading{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return models.Reading{
		Tilt:  numberField(obj, "tilt"),
		Temp:  numberField(obj, "temp"),
		Humid: numberField(obj, "humid"),
	}, nil
}

func numberField(obj map[string]json.RawMessage, key string) *float64 {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
