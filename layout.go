package main

import (
	"math"

	"proposal/internal/config"
	"proposal/internal/geom"
	"proposal/internal/placement"
	"proposal/internal/session"
	"proposal/internal/view"
)

// sceneLayout places every element of a frame in terminal cells. The evasive
// button only has a size here: its position comes from the model.
type sceneLayout struct {
	scene  Box
	status int

	card       Box
	question   int
	tease      int
	playground Box
	yes        Box
	noSize     Box
	again      Box
	headline   int
	hint       int
	notice     int
}

func buttonBox(label string) Box {
	return Box{Width: textWidth(label) + 2*buttonPadding, Height: buttonHeight}
}

func computeLayout(cfg *config.Config, width, height int, active view.View, minHeight int) sceneLayout {
	width = max(width, 1)
	height = max(height, 2)

	l := sceneLayout{
		scene:  Box{Width: width, Height: height - 1},
		status: height - 1,
		noSize: buttonBox(cfg.NoLabel),
	}

	cw := min(max(width-4, 10), maxCardWidth)
	natural := l.scene.Height - 2
	switch active {
	case view.Success:
		natural = successMinHeight
	case view.Fallback:
		natural = fallbackHeight
	}
	ch := min(max(natural, minHeight, 3), l.scene.Height)
	l.card = Box{X: (width - cw) / 2, Y: (l.scene.Height - ch) / 2, Width: cw, Height: ch}

	// Question
	l.question = l.card.Y + 2
	l.tease = l.card.Y + 4
	l.playground = Box{
		X:      l.card.X + 1,
		Y:      l.card.Y + playgroundOffset,
		Width:  l.card.Width - 2,
		Height: max(l.card.Height-playgroundOffset-1, buttonHeight),
	}
	rest := cellPoint(cfg, placement.DefaultPosition(
		unitRect(cfg, Box{Width: l.playground.Width, Height: l.playground.Height}),
		unitSize(cfg, l.noSize), cfg.NoButton.EdgePadding))
	l.yes = buttonBox(cfg.YesLabel)
	l.yes.X = max(l.playground.X+1, l.playground.X+rest.X-l.yes.Width-4)
	l.yes.Y = l.playground.Y + rest.Y

	// Success
	mid := l.card.Y + l.card.Height/2
	l.headline = mid - 3
	l.hint = mid - 1
	l.again = buttonBox(cfg.AgainLabel)
	l.again.X = l.card.X + (l.card.Width-l.again.Width)/2
	l.again.Y = mid + 1

	// Fallback
	l.notice = mid

	return l
}

// sessionLayout converts the frame geometry to the layout units the session
// works in. evasive is the button's drawn position relative to the
// playground.
func (l sceneLayout) sessionLayout(cfg *config.Config, evasive geom.Point) session.Layout {
	pg := unitRect(cfg, l.playground)
	size := unitSize(cfg, l.noSize)
	return session.Layout{
		Container:  pg,
		Safe:       unitRect(cfg, l.yes),
		Evasive:    geom.At(geom.Point{X: pg.Left + evasive.X, Y: pg.Top + evasive.Y}, size),
		ViewHeight: l.card.Height,
	}
}

// noBox is the evasive button's cell box for a position relative to the
// playground, given in layout units.
func (l sceneLayout) noBox(cfg *config.Config, p geom.Point) Box {
	c := cellPoint(cfg, p)
	b := l.noSize
	b.X = l.playground.X + c.X
	b.Y = l.playground.Y + c.Y
	return b
}

func unitRect(cfg *config.Config, b Box) geom.Rect {
	return geom.NewRect(
		float64(b.X)*cfg.Cell.Width, float64(b.Y)*cfg.Cell.Height,
		float64(b.Width)*cfg.Cell.Width, float64(b.Height)*cfg.Cell.Height)
}

func unitSize(cfg *config.Config, b Box) geom.Size {
	return geom.NewSize(float64(b.Width)*cfg.Cell.Width, float64(b.Height)*cfg.Cell.Height)
}

func cellPoint(cfg *config.Config, p geom.Point) point {
	return point{
		X: int(math.Round(p.X / cfg.Cell.Width)),
		Y: int(math.Round(p.Y / cfg.Cell.Height)),
	}
}

type point struct {
	X, Y int
}
