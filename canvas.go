package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type cellStyle struct {
	fg, bg string
	bold   bool
	italic bool
}

func (s cellStyle) toLipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.bold).Italic(s.italic)
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	return st
}

// cell holds one grapheme. A wide grapheme occupies its cell and marks the
// next one as a continuation.
type cell struct {
	ch    string
	style cellStyle
	cont  bool
	empty bool
}

// Box is a bordered element with a single centered label.
type Box struct {
	X, Y          int
	Width, Height int
}

func (b Box) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b Box) inflate(d int) Box {
	return Box{X: b.X - d, Y: b.Y - d, Width: b.Width + 2*d, Height: b.Height + 2*d}
}

// Canvas is the character grid a frame is drawn into. It also records the
// named attachment points of the current layout.
type Canvas struct {
	width    int
	height   int
	cells    [][]cell
	elements map[string]Box
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:    width,
		height:   height,
		cells:    make([][]cell, height),
		elements: make(map[string]Box),
	}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: " ", empty: true}
		}
	}
	return c
}

// Register names an attachment point.
func (c *Canvas) Register(name string, b Box) {
	c.elements[name] = b
}

// Has reports whether the attachment point exists.
func (c *Canvas) Has(name string) bool {
	_, ok := c.elements[name]
	return ok
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

// IsEmpty reports whether nothing has been drawn at (x, y).
func (c *Canvas) IsEmpty(x, y int) bool {
	return c.isValidPos(x, y) && c.cells[y][x].empty
}

// set writes one grapheme of the given display width at (x, y), repairing
// any wide grapheme it cuts in half.
func (c *Canvas) set(x, y int, ch string, width int, st cellStyle) {
	if !c.isValidPos(x, y) || width > 1 && x+1 >= c.width {
		return
	}
	row := c.cells[y]
	if row[x].cont && x > 0 {
		row[x-1] = cell{ch: " ", style: row[x-1].style}
	}
	if x+1 < c.width && row[x+1].cont {
		row[x+1] = cell{ch: " ", style: row[x+1].style}
	}
	row[x] = cell{ch: ch, style: st}
	if width > 1 {
		if x+2 < c.width && row[x+2].cont {
			row[x+2] = cell{ch: " ", style: row[x+2].style}
		}
		row[x+1] = cell{style: st, cont: true}
	}
}

// Put draws a single glyph and returns its display width.
func (c *Canvas) Put(x, y int, glyph string, st cellStyle) int {
	w := runewidth.StringWidth(glyph)
	if w < 1 {
		w = 1
	}
	c.set(x, y, glyph, w, st)
	return w
}

// DrawText draws text starting at (x, y) and returns the columns used.
func (c *Canvas) DrawText(x, y int, text string, st cellStyle) int {
	col := x
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		c.set(col, y, cluster, w, st)
		col += w
	}
	return col - x
}

// DrawCentered draws text horizontally centered on row y, truncated to fit.
func (c *Canvas) DrawCentered(y int, text string, st cellStyle) {
	text = runewidth.Truncate(text, c.width, "…")
	x := (c.width - textWidth(text)) / 2
	c.DrawText(max(x, 0), y, text, st)
}

// Fill paints the background of a region.
func (c *Canvas) Fill(b Box, st cellStyle) {
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			if c.isValidPos(x, y) {
				c.cells[y][x] = cell{ch: " ", style: st, empty: true}
			}
		}
	}
}

// DrawFrame draws a box border and leaves the interior untouched.
// Highlighted boxes use a heavy border.
func (c *Canvas) DrawFrame(b Box, st cellStyle, highlighted bool) {
	tl, tr, bl, br, h, v := "╭", "╮", "╰", "╯", "─", "│"
	if highlighted {
		tl, tr, bl, br, h, v = "┏", "┓", "┗", "┛", "━", "┃"
	}

	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			top, bottom := y == b.Y, y == b.Y+b.Height-1
			left, right := x == b.X, x == b.X+b.Width-1
			switch {
			case top && left:
				c.set(x, y, tl, 1, st)
			case top && right:
				c.set(x, y, tr, 1, st)
			case bottom && left:
				c.set(x, y, bl, 1, st)
			case bottom && right:
				c.set(x, y, br, 1, st)
			case top || bottom:
				c.set(x, y, h, 1, st)
			case left || right:
				c.set(x, y, v, 1, st)
			}
		}
	}
}

// DrawBox draws a solid bordered box with label centered on its middle row.
func (c *Canvas) DrawBox(b Box, label string, st cellStyle, highlighted bool) {
	for y := b.Y + 1; y < b.Y+b.Height-1; y++ {
		for x := b.X + 1; x < b.X+b.Width-1; x++ {
			c.set(x, y, " ", 1, st)
		}
	}
	c.DrawFrame(b, st, highlighted)

	inner := b.Width - 2
	if inner <= 0 || b.Height < 3 {
		return
	}
	label = runewidth.Truncate(label, inner, "")
	lx := b.X + 1 + (inner-textWidth(label))/2
	c.DrawText(lx, b.Y+b.Height/2, label, st)
}

// Lines renders the grid, grouping runs of equal style.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var line, run strings.Builder
		runStyle := row[0].style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == (cellStyle{}) {
				line.WriteString(run.String())
			} else {
				line.WriteString(runStyle.toLipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteString(cl.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

// Plain renders the grid without styling.
func (c *Canvas) Plain() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.cont {
				b.WriteString(cl.ch)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func textWidth(s string) int {
	return uniseg.StringWidth(s)
}
