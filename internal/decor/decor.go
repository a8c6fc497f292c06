// Package decor spawns the short-lived decorative particles: ambient
// sparkles behind the question and falling confetti on the success screen.
//
// Particles live in a Layer. Each one is removed exactly once, when the
// presentation layer reports its animation finished through Complete.
package decor

import (
	"math"
	"sort"
	"time"

	"proposal/internal/rng"
)

// Kind selects the particle behaviour.
type Kind int

const (
	// Sparkle particles twinkle in place forever. They are spawned once.
	Sparkle Kind = iota
	// Confetti falls top to bottom once and then completes.
	Confetti
)

func (k Kind) String() string {
	if k == Sparkle {
		return "sparkle"
	}
	return "confetti"
}

// Ranges bound the randomized particle parameters.
type Ranges struct {
	SizeMin, SizeMax         float64
	DurationMin, DurationMax time.Duration
	DelayMax                 time.Duration
	DriftMax                 float64
	RotationMax              float64
	Colors                   []string
	Glyphs                   []string
}

// Particle is one decorative element. X and Y are in a unit field.
type Particle struct {
	ID       int
	Kind     Kind
	X, Y     float64
	Size     float64
	Duration time.Duration
	Delay    time.Duration
	Drift    float64
	Rotation float64
	Glyph    string
	Color    string
	Born     time.Time
}

// Done reports whether a falling particle has finished at now. Sparkles
// never finish.
func (p Particle) Done(now time.Time) bool {
	if p.Kind == Sparkle {
		return false
	}
	return now.Sub(p.Born) >= p.Delay+p.Duration
}

// Progress is the animation position in [0, 1]. It stays 0 during the start
// delay. Sparkles wrap around each cycle.
func (p Particle) Progress(now time.Time) float64 {
	elapsed := now.Sub(p.Born) - p.Delay
	if elapsed <= 0 || p.Duration <= 0 {
		return 0
	}
	if p.Kind == Sparkle {
		elapsed %= p.Duration
	} else if elapsed >= p.Duration {
		return 1
	}
	return float64(elapsed) / float64(p.Duration)
}

// Position returns where the particle is drawn at now, in the unit field.
// Confetti starts just above the field and falls past the bottom.
func (p Particle) Position(now time.Time) (x, y float64) {
	if p.Kind == Sparkle {
		return p.X, p.Y
	}
	t := p.Progress(now)
	return p.X + p.Drift*t, -0.1 + 1.2*t
}

// Intensity is the sparkle's brightness at now: it fades in and out once per
// cycle. Confetti is always fully visible once its delay has passed.
func (p Particle) Intensity(now time.Time) float64 {
	if now.Sub(p.Born) < p.Delay {
		return 0
	}
	if p.Kind != Sparkle {
		return 1
	}
	return math.Sin(math.Pi * p.Progress(now))
}

// Layer owns the particles of one kind.
type Layer struct {
	kind    Kind
	src     rng.Source
	now     func() time.Time
	nextID  int
	spawned bool
	live    map[int]Particle
}

func NewLayer(kind Kind, src rng.Source) *Layer {
	return &Layer{
		kind: kind,
		src:  src,
		now:  time.Now,
		live: make(map[int]Particle),
	}
}

// SetClock replaces the time source used to stamp new particles.
func (l *Layer) SetClock(now func() time.Time) {
	l.now = now
}

func (l *Layer) Kind() Kind { return l.kind }

// SpawnBurst creates count particles and returns them. Confetti first drops
// whatever is left of the previous burst. A sparkle layer only ever spawns
// once; later calls return nil.
func (l *Layer) SpawnBurst(count int, r Ranges) []Particle {
	if l.kind == Sparkle && l.spawned {
		return nil
	}
	if l.kind == Confetti {
		l.Clear()
	}
	l.spawned = true

	born := l.now()
	out := make([]Particle, 0, max(count, 0))
	for i := 0; i < count; i++ {
		p := l.newParticle(r, born)
		l.live[p.ID] = p
		out = append(out, p)
	}
	return out
}

func (l *Layer) newParticle(r Ranges, born time.Time) Particle {
	l.nextID++
	p := Particle{
		ID:       l.nextID,
		Kind:     l.kind,
		X:        l.src.Float64(),
		Size:     rng.Range(l.src, r.SizeMin, r.SizeMax),
		Duration: time.Duration(rng.Range(l.src, float64(r.DurationMin), float64(r.DurationMax))),
		Delay:    time.Duration(rng.Range(l.src, 0, float64(r.DelayMax))),
		Color:    rng.Pick(l.src, r.Colors),
		Glyph:    rng.Pick(l.src, r.Glyphs),
		Born:     born,
	}
	if l.kind == Sparkle {
		p.Y = l.src.Float64()
	} else {
		p.Drift = rng.Range(l.src, -r.DriftMax, r.DriftMax)
		p.Rotation = rng.Range(l.src, -r.RotationMax, r.RotationMax)
	}
	return p
}

// Complete removes the particle with the given id. It reports false when
// the particle is already gone, so a late or repeated signal is harmless.
func (l *Layer) Complete(id int) bool {
	if _, ok := l.live[id]; !ok {
		return false
	}
	delete(l.live, id)
	return true
}

// Sweep completes every particle that is Done at now and returns their ids.
func (l *Layer) Sweep(now time.Time) []int {
	var done []int
	for id, p := range l.live {
		if p.Done(now) {
			done = append(done, id)
		}
	}
	sort.Ints(done)
	for _, id := range done {
		l.Complete(id)
	}
	return done
}

func (l *Layer) Len() int { return len(l.live) }

// Particles returns the live particles ordered by id.
func (l *Layer) Particles() []Particle {
	out := make([]Particle, 0, len(l.live))
	for _, p := range l.live {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clear drops every particle without waiting for animations. Ids are never
// reused, so completion signals for cleared particles are ignored.
func (l *Layer) Clear() {
	clear(l.live)
}
