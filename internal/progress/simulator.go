package progress

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Complete is the percentage at which a simulation stops.
const Complete = 100.0

// Increment returns the next step of a simulated download, in percent.
type Increment func() float64

// RandomIncrement returns steps drawn uniformly from [0, max).
func RandomIncrement(max float64) Increment {
	return func() float64 { return rand.Float64() * max }
}

// FixedIncrements cycles through steps; used to make runs deterministic.
// The cycle position is shared, so concurrent runs interleave steps.
func FixedIncrements(steps ...float64) Increment {
	var (
		mu sync.Mutex
		i  int
	)
	return func() float64 {
		if len(steps) == 0 {
			return 0
		}
		mu.Lock()
		defer mu.Unlock()
		v := steps[i%len(steps)]
		i++
		return v
	}
}

// Simulator drives a fake download meter.
type Simulator struct {
	Interval  time.Duration
	Increment Increment
}

// Run adds one increment per Interval and reports the running percentage,
// clamped to [0, 100]. It returns nil once 100 has been reported, or the
// context error if cancelled first.
func (s Simulator) Run(ctx context.Context, onProgress func(percent float64)) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	current := 0.0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		step := s.Increment()
		if step < 0 {
			step = 0
		}
		current += step
		if current >= Complete {
			onProgress(Complete)
			return nil
		}
		onProgress(current)
	}
}
