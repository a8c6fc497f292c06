package main

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"proposal/internal/decor"
)

// Confetti glyphs that read as a single stroke spin through these frames.
var spinFrames = []string{"|", "/", "─", "\\"}

// drawSparkles draws the ambient sparkles over the bare background. A
// sparkle fades between the background color and its own.
func drawSparkles(c *Canvas, area Box, sparkles []decor.Particle, now time.Time) {
	bg := mustHex(colorBackground)
	for _, p := range sparkles {
		level := p.Intensity(now)
		if level < 0.15 {
			continue
		}
		x, y := p.Position(now)
		col := area.X + int(x*float64(area.Width))
		row := area.Y + int(y*float64(area.Height))
		if !c.IsEmpty(col, row) {
			continue
		}
		st := cellStyle{
			fg:   bg.BlendLab(mustHex(p.Color), level).Clamped().Hex(),
			bg:   colorBackground,
			bold: p.Size >= 21,
		}
		c.Put(col, row, p.Glyph, st)
	}
}

// drawConfetti draws falling confetti into cells that hold no text.
func drawConfetti(c *Canvas, area Box, confetti []decor.Particle, now time.Time) {
	for _, p := range confetti {
		if p.Intensity(now) == 0 || p.Done(now) {
			continue
		}
		x, y := p.Position(now)
		if y < 0 || y >= 1 {
			continue
		}
		col := area.X + int(x*float64(area.Width))
		row := area.Y + int(y*float64(area.Height))
		if !c.IsEmpty(col, row) {
			continue
		}
		bg := colorBackground
		if row >= 0 && row < c.height && col >= 0 && col < c.width {
			bg = c.cells[row][col].style.bg
		}
		c.Put(col, row, confettiGlyph(p, now), cellStyle{fg: p.Color, bg: bg, bold: p.Size >= 2})
	}
}

func confettiGlyph(p decor.Particle, now time.Time) string {
	if textWidth(p.Glyph) > 1 || p.Rotation == 0 {
		return p.Glyph
	}
	// Rotation is signed, so the angle is folded into [0, 360).
	angle := math.Mod(math.Mod(p.Rotation*p.Progress(now), 360)+360, 360)
	return spinFrames[int(angle/90)%len(spinFrames)]
}

// mustHex parses a #rrggbb color, falling back to white.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
