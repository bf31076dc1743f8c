package models

// Reading is the latest telemetry snapshot received from the serial device.
// A nil field means the value was absent (or null) in the source line and
// is serialised as JSON null.
//
// Readings are never mutated after construction, so copies may be handed
// to concurrent readers as-is.
type Reading struct {
	Tilt  *float64 `json:"tilt"`  // degrees
	Temp  *float64 `json:"temp"`  // °C
	Humid *float64 `json:"humid"` // %RH
}

// Float returns a pointer to v, for building Readings in code.
func Float(v float64) *float64 {
	return &v
}
