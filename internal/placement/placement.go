// Package placement picks new positions for the evasive control.
//
// A placement is found by bounded rejection sampling: random integer
// candidates are drawn inside the padded container until one clears both the
// exclusion zone around the safe control and the minimum displacement from
// the current position. When the attempt budget runs out the last candidate
// is returned as is, so a call always terminates with a usable point.
package placement

import (
	"math"

	"proposal/internal/geom"
	"proposal/internal/rng"
)

const (
	DefaultEdgePadding = 12
	DefaultSafePadding = 30
	DefaultMaxAttempts = 25
)

// Constraints configure a single Sample call.
type Constraints struct {
	// Container is the playground. Only its size matters; placements are
	// relative to its top-left corner.
	Container       geom.Rect
	EdgePadding     float64
	Exclusion       geom.Rect
	MinDisplacement float64
	MaxAttempts     int
}

// ExclusionZone converts reference (absolute coordinates) into the
// container's frame, grows it by padding on every side and clamps it to the
// container.
func ExclusionZone(container, reference geom.Rect, padding float64) geom.Rect {
	padding = sanitize(padding)
	x := reference.Left - container.Left
	y := reference.Top - container.Top

	left := math.Max(0, math.Floor(x-padding))
	top := math.Max(0, math.Floor(y-padding))
	right := math.Min(math.Floor(container.Width), math.Ceil(x+reference.Width+padding))
	bottom := math.Min(math.Floor(container.Height), math.Ceil(y+reference.Height+padding))

	// A reference far outside the container leaves right < left; clamp the
	// corner back inside so the zone stays well formed.
	left = math.Min(left, math.Floor(container.Width))
	top = math.Min(top, math.Floor(container.Height))

	return geom.RectFromEdges(left, top, right, bottom)
}

// DefaultDisplacement is the minimum travel used when none is configured:
// the larger side of the moving box.
func DefaultDisplacement(moving geom.Size) float64 {
	return math.Max(moving.W, moving.H)
}

// Bounds returns the inclusive integer range of valid top-left corners for a
// box of size moving inside the padded container. The range collapses to the
// padding corner when the box does not fit.
func Bounds(container geom.Rect, moving geom.Size, edgePadding float64) (minX, minY, maxX, maxY int) {
	pad := sanitize(edgePadding)
	w := math.Ceil(sanitize(moving.W))
	h := math.Ceil(sanitize(moving.H))

	minX = int(math.Ceil(pad))
	minY = minX
	maxX = max(minX, floorInt(sanitize(container.Width)-w-pad))
	maxY = max(minY, floorInt(sanitize(container.Height)-h-pad))
	return minX, minY, maxX, maxY
}

// Sampler draws placements from an injected random source.
type Sampler struct {
	src rng.Source
}

func NewSampler(src rng.Source) *Sampler {
	return &Sampler{src: src}
}

// Sample returns a new top-left corner for a box of size moving currently at
// current. The boolean reports whether the point satisfies both the exclusion
// and displacement constraints; false means the budget ran out and the last
// candidate was returned.
func (s *Sampler) Sample(moving geom.Size, current geom.Point, c Constraints) (geom.Point, bool) {
	minX, minY, maxX, maxY := Bounds(c.Container, moving, c.EdgePadding)

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	minDist := sanitize(c.MinDisplacement)
	size := geom.Size{W: math.Ceil(sanitize(moving.W)), H: math.Ceil(sanitize(moving.H))}

	candidate := geom.Point{X: float64(minX), Y: float64(minY)}
	for i := 0; i < attempts; i++ {
		candidate = geom.Point{
			X: float64(minX + s.src.Intn(maxX-minX+1)),
			Y: float64(minY + s.src.Intn(maxY-minY+1)),
		}
		if Acceptable(candidate, size, current, c.Exclusion, minDist) {
			return candidate, true
		}
	}
	return candidate, false
}

// Acceptable reports whether a box of size moving at p stays clear of the
// exclusion zone and lies at least minDist away from current.
func Acceptable(p geom.Point, moving geom.Size, current geom.Point, exclusion geom.Rect, minDist float64) bool {
	if !exclusion.Empty() && geom.At(p, moving).Intersects(exclusion) {
		return false
	}
	return p.Dist(current) >= minDist
}

// DefaultPosition is where the evasive control rests before the first
// evasion: 62% across and down the container, clamped to the padded interior.
func DefaultPosition(container geom.Rect, moving geom.Size, edgePadding float64) geom.Point {
	pad := sanitize(edgePadding)
	x := math.Max(pad, math.Min(sanitize(container.Width)-moving.W-pad, sanitize(container.Width)*0.62))
	y := math.Max(pad, math.Min(sanitize(container.Height)-moving.H-pad, sanitize(container.Height)*0.62))
	return geom.Point{X: math.Floor(x), Y: math.Floor(y)}
}

func floorInt(v float64) int {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxInt32
	}
	return v
}
