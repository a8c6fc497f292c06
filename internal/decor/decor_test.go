package decor

import (
	"math"
	"testing"
	"time"

	"proposal/internal/rng"
)

var confettiRanges = Ranges{
	SizeMin:     8,
	SizeMax:     16,
	DurationMin: 2 * time.Second,
	DurationMax: 4 * time.Second,
	DelayMax:    500 * time.Millisecond,
	DriftMax:    0.2,
	RotationMax: 360,
	Colors:      []string{"#ff6b9d", "#ffd166"},
	Glyphs:      []string{"💖", "🎉", "✨"},
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBurstAndCompletion(t *testing.T) {
	l := NewLayer(Confetti, rng.New(1))
	burst := l.SpawnBurst(12, confettiRanges)

	if len(burst) != 12 || l.Len() != 12 {
		t.Fatalf("after burst: returned %d, live %d, expected 12", len(burst), l.Len())
	}

	for _, p := range burst {
		if !l.Complete(p.ID) {
			t.Errorf("Complete(%d) = false on first signal", p.ID)
		}
	}
	if l.Len() != 0 {
		t.Errorf("%d particles left after every completion", l.Len())
	}

	if l.Complete(burst[0].ID) {
		t.Error("second completion of the same particle should report false")
	}
}

func TestParticleParametersWithinRanges(t *testing.T) {
	l := NewLayer(Confetti, rng.New(4))
	for _, p := range l.SpawnBurst(200, confettiRanges) {
		if p.Size < confettiRanges.SizeMin || p.Size >= confettiRanges.SizeMax {
			t.Fatalf("size %f out of range", p.Size)
		}
		if p.Duration < confettiRanges.DurationMin || p.Duration >= confettiRanges.DurationMax {
			t.Fatalf("duration %s out of range", p.Duration)
		}
		if p.Delay < 0 || p.Delay >= confettiRanges.DelayMax {
			t.Fatalf("delay %s out of range", p.Delay)
		}
		if p.X < 0 || p.X >= 1 {
			t.Fatalf("x %f outside unit field", p.X)
		}
		if p.Drift < -confettiRanges.DriftMax || p.Drift > confettiRanges.DriftMax {
			t.Fatalf("drift %f out of range", p.Drift)
		}
		if p.Glyph == "" || p.Color == "" {
			t.Fatalf("particle missing glyph or color: %+v", p)
		}
	}
}

func TestConfettiBurstClearsLeftovers(t *testing.T) {
	l := NewLayer(Confetti, rng.New(2))
	first := l.SpawnBurst(5, confettiRanges)
	second := l.SpawnBurst(3, confettiRanges)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, expected only the second burst", l.Len())
	}
	if l.Complete(first[0].ID) {
		t.Error("completion of a cleared particle should be ignored")
	}
	for _, p := range second {
		if p.ID <= first[len(first)-1].ID {
			t.Errorf("id %d reused after clear", p.ID)
		}
	}
}

func TestSparklesSpawnOnce(t *testing.T) {
	l := NewLayer(Sparkle, rng.New(3))
	ranges := Ranges{SizeMin: 12, SizeMax: 30, DurationMin: 2 * time.Second, DurationMax: 5 * time.Second, DelayMax: 4 * time.Second}

	if got := len(l.SpawnBurst(90, ranges)); got != 90 {
		t.Fatalf("first sparkle burst = %d, expected 90", got)
	}
	if again := l.SpawnBurst(90, ranges); again != nil {
		t.Errorf("second sparkle burst returned %d particles", len(again))
	}
	if l.Len() != 90 {
		t.Errorf("Len() = %d, expected 90", l.Len())
	}
	for _, p := range l.Particles() {
		if p.Y < 0 || p.Y >= 1 {
			t.Fatalf("sparkle y %f outside unit field", p.Y)
		}
	}
}

func TestSweep(t *testing.T) {
	start := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)
	l := NewLayer(Confetti, rng.New(5))
	l.SetClock(fixedClock(start))
	l.SpawnBurst(12, confettiRanges)

	if done := l.Sweep(start.Add(time.Second)); len(done) != 0 {
		t.Errorf("Sweep before any could finish removed %d", len(done))
	}
	done := l.Sweep(start.Add(5 * time.Second))
	if len(done) != 12 || l.Len() != 0 {
		t.Errorf("Sweep after max lifetime removed %d, %d left", len(done), l.Len())
	}
}

func TestProgressAndPosition(t *testing.T) {
	start := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)
	p := Particle{Kind: Confetti, X: 0.5, Drift: 0.1, Delay: time.Second, Duration: 2 * time.Second, Born: start}

	tests := []struct {
		name     string
		at       time.Duration
		progress float64
		done     bool
	}{
		{"during delay", 500 * time.Millisecond, 0, false},
		{"halfway", 2 * time.Second, 0.5, false},
		{"finished", 3 * time.Second, 1, true},
		{"long after", 10 * time.Second, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := start.Add(tt.at)
			if got := p.Progress(now); got != tt.progress {
				t.Errorf("Progress() = %f, expected %f", got, tt.progress)
			}
			if got := p.Done(now); got != tt.done {
				t.Errorf("Done() = %v, expected %v", got, tt.done)
			}
		})
	}

	x, y := p.Position(start.Add(2 * time.Second))
	if math.Abs(x-0.55) > 1e-9 || math.Abs(y-0.5) > 1e-9 {
		t.Errorf("Position() at halfway = (%f,%f), expected (0.55,0.5)", x, y)
	}

	s := Particle{Kind: Sparkle, Duration: 2 * time.Second, Born: start}
	if s.Done(start.Add(time.Hour)) {
		t.Error("sparkles never finish")
	}
	if got := s.Progress(start.Add(5 * time.Second)); got != 0.5 {
		t.Errorf("sparkle Progress() should wrap, got %f", got)
	}
	if got := s.Intensity(start.Add(time.Second)); got < 0.99 {
		t.Errorf("sparkle Intensity() at mid-cycle = %f, expected ~1", got)
	}
}
