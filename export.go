package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"proposal/internal/config"
	"proposal/internal/decor"
)

// keepsake is the success card as it is saved to a PNG.
type keepsake struct {
	cols, rows int
	lines      []keepsakeLine
	confetti   []decor.Particle
	now        time.Time
}

type keepsakeLine struct {
	row   int
	text  string
	color string
}

func (m *model) saveKeepsake() {
	filename := fmt.Sprintf("proposal-%s.png", m.now().Format(keepsakeTimeFormat))
	path, err := m.cfg.GetSavePath(filename)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}

	l := m.layout()
	k := keepsake{
		cols: l.card.Width,
		rows: l.card.Height,
		lines: []keepsakeLine{
			{row: l.headline - l.card.Y - 2, text: m.cfg.Question, color: colorMuted},
			{row: l.headline - l.card.Y, text: m.cfg.Celebration, color: colorText},
			{row: l.hint - l.card.Y + 1, text: m.cfg.YesLabel, color: colorYes},
		},
		confetti: m.session.Confetti(),
		now:      m.now(),
	}
	if err := k.exportPNG(path, m.cfg.Cell); err != nil {
		log.Printf("keepsake: %v", err)
		m.errorMessage = fmt.Sprintf("Save failed: %v", err)
		return
	}
	m.successMessage = "Saved " + path
}

func (k keepsake) exportPNG(filename string, cell config.CellConfig) error {
	if k.cols <= 0 || k.rows <= 0 {
		return fmt.Errorf("nothing to export")
	}

	charWidth, charHeight := cell.Width, cell.Height
	padding := 2.0
	imageWidth := int((float64(k.cols) + 2*padding) * charWidth)
	imageHeight := int((float64(k.rows) + 2*padding) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(mustHex(colorBackground))
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    charHeight * 0.8,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	cardX, cardY := padding*charWidth, padding*charHeight
	cardW, cardH := float64(k.cols)*charWidth, float64(k.rows)*charHeight
	dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, charWidth)
	dc.SetColor(mustHex(colorCard))
	dc.FillPreserve()
	dc.SetLineWidth(2)
	dc.SetColor(mustHex(colorMuted))
	dc.Stroke()

	for _, p := range k.confetti {
		if p.Intensity(k.now) == 0 {
			continue
		}
		x, y := p.Position(k.now)
		if y < 0 || y >= 1 {
			continue
		}
		dc.DrawCircle(cardX+x*cardW, cardY+y*cardH, charWidth*0.25*(1+p.Size))
		dc.SetColor(mustHex(p.Color))
		dc.Fill()
	}

	for _, line := range k.lines {
		if line.row < 0 || line.row >= k.rows {
			continue
		}
		col := float64(k.cols-textWidth(line.text)) / 2
		k.drawLine(dc, line, cardX+col*charWidth, cardY+float64(line.row+1)*charHeight, charWidth, charHeight)
	}

	return dc.SavePNG(filename)
}

// drawLine draws text one grapheme per cell. The bundled font has no emoji,
// so wide graphemes become a dot in the line's color.
func (k keepsake) drawLine(dc *gg.Context, line keepsakeLine, x, baseline, charWidth, charHeight float64) {
	dc.SetColor(mustHex(line.color))
	state := -1
	rest := line.text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		switch {
		case w == 0:
			continue
		case w > 1:
			dc.DrawCircle(x+float64(w)*charWidth/2, baseline-charHeight/3, charHeight/3)
			dc.Fill()
		default:
			dc.DrawString(cluster, x, baseline)
		}
		x += float64(w) * charWidth
	}
}
