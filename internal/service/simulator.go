package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"sensor_bridge/internal/models"
)

// ----------- Simulation constants -----------
const (
	AmbientC      = 25.0 // starting temperature °C
	AmbientHumid  = 45.0 // starting relative humidity %
	MaxTiltDeg    = 30.0 // |tilt| is clamped to this
	TempStepC     = 0.3  // max temperature change per tick
	HumidStep     = 1.0  // max humidity change per tick
	TiltStepDeg   = 2.0  // max tilt change per tick
	NoiseEveryNth = 5    // every Nth tick also emits a diagnostic line
)

// SimulatorService emits lines shaped like the telemetry board's output:
// one JSON object per tick and, now and then, a diagnostic line the
// ingestor has to filter out.
type SimulatorService struct {
	rnd   *rand.Rand
	ticks int

	tilt  float64
	temp  float64
	humid float64
}

func NewSimulatorService(seed int64) *SimulatorService {
	return &SimulatorService{
		rnd:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		temp:  AmbientC,
		humid: AmbientHumid,
	}
}

// Run writes lines to w every tick until ctx is canceled or a write fails.
// w is closed on return so the reading side sees EOF.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration, w io.WriteCloser) {
	defer func() { _ = w.Close() }()

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, line := range s.next() {
				if _, err := io.WriteString(w, line+"\n"); err != nil {
					return
				}
			}
		}
	}
}

// next advances the random walk and returns the lines for one tick.
func (s *SimulatorService) next() []string {
	s.ticks++

	s.tilt = clamp(s.tilt+s.step(TiltStepDeg), -MaxTiltDeg, MaxTiltDeg)
	s.temp = clamp(s.temp+s.step(TempStepC), AmbientC-10, AmbientC+15)
	s.humid = clamp(s.humid+s.step(HumidStep), 0, 100)

	var out []string
	if s.ticks%NoiseEveryNth == 0 {
		out = append(out, fmt.Sprintf("[DHT] t=%.1f h=%.1f", s.temp, s.humid))
	}

	b, err := json.Marshal(models.Reading{
		Tilt:  models.Float(round1(s.tilt)),
		Temp:  models.Float(round1(s.temp)),
		Humid: models.Float(round1(s.humid)),
	})
	if err == nil {
		out = append(out, string(b))
	}
	return out
}

// step returns a value in [-span, span).
func (s *SimulatorService) step(span float64) float64 {
	return (s.rnd.Float64()*2 - 1) * span
}

// helpers
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
