package progress

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestSimulatorReachesExactly100(t *testing.T) {
	sim := Simulator{Interval: time.Millisecond, Increment: FixedIncrements(30, 45, 40)}

	var got []float64
	if err := sim.Run(context.Background(), func(p float64) { got = append(got, p) }); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []float64{30, 75, 100}
	if len(got) != len(want) {
		t.Fatalf("progress = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSimulatorIsMonotonicAndBounded(t *testing.T) {
	sim := Simulator{Interval: time.Millisecond, Increment: RandomIncrement(15)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	last := 0.0
	err := sim.Run(ctx, func(p float64) {
		if p < last {
			t.Errorf("progress went backwards: %v -> %v", last, p)
		}
		if p > Complete {
			t.Errorf("progress exceeded 100: %v", p)
		}
		last = p
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if last != Complete {
		t.Errorf("final = %v, want 100", last)
	}
}

func TestSimulatorStopsOnCancel(t *testing.T) {
	sim := Simulator{Interval: time.Millisecond, Increment: FixedIncrements(0)}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := sim.Run(ctx, func(float64) {})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNegativeIncrementIgnored(t *testing.T) {
	sim := Simulator{Interval: time.Millisecond, Increment: FixedIncrements(-50, 100)}
	var got []float64
	sim.Run(context.Background(), func(p float64) { got = append(got, p) })
	if len(got) != 2 || got[0] != 0 || got[1] != 100 {
		t.Errorf("progress = %v, want [0 100]", got)
	}
}

func TestRandomIncrementRange(t *testing.T) {
	inc := RandomIncrement(15)
	for i := 0; i < 1000; i++ {
		v := inc()
		if v < 0 || v >= 15 {
			t.Fatalf("increment %v out of [0, 15)", v)
		}
	}
}

func TestFixedIncrementsConcurrentUse(t *testing.T) {
	inc := FixedIncrements(1, 2)

	const workers, calls = 4, 50
	sums := make([]float64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range calls {
				sums[w] += inc()
			}
		}()
	}
	wg.Wait()

	total := 0.0
	for _, s := range sums {
		total += s
	}
	// 200 calls cycle through (1, 2) exactly 100 times.
	if total != 300 {
		t.Errorf("total = %v, want 300", total)
	}
}

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Description: "Exporting site", Out: &buf}
	r.Start(3)
	r.Update(1, "index.html")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Exporting site: 3 items", "[1/3] index.html", "Exporting site: done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
