package main

import (
	"math"
	"time"

	"proposal/internal/geom"
)

// glide tweens a point between two positions with an ease-out curve. A new
// target replaces the one in flight, starting from wherever the point is
// drawn at that moment.
type glide struct {
	from, to geom.Point
	start    time.Time
	dur      time.Duration
}

func (g glide) at(now time.Time) geom.Point {
	t := g.progress(now)
	if t >= 1 {
		return g.to
	}
	e := easeOut(t)
	return geom.Point{
		X: g.from.X + (g.to.X-g.from.X)*e,
		Y: g.from.Y + (g.to.Y-g.from.Y)*e,
	}
}

func (g glide) progress(now time.Time) float64 {
	if g.dur <= 0 {
		return 1
	}
	elapsed := now.Sub(g.start)
	if elapsed <= 0 {
		return 0
	}
	return math.Min(1, float64(elapsed)/float64(g.dur))
}

func (g glide) moving(now time.Time) bool {
	return g.progress(now) < 1
}

func (g glide) retarget(now time.Time, to geom.Point, dur time.Duration) glide {
	return glide{from: g.at(now), to: to, start: now, dur: dur}
}

func jump(to geom.Point) glide {
	return glide{from: to, to: to}
}

func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
