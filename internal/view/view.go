// Package view tracks which of the three screens is showing and keeps the
// incoming screen at least as tall as the one it replaced.
package view

import (
	"errors"
	"fmt"
)

// View identifies a screen.
type View int

const (
	Fallback View = iota
	Question
	Success
)

// All lists every view in display order.
var All = []View{Fallback, Question, Success}

func (v View) String() string {
	switch v {
	case Fallback:
		return "fallback"
	case Question:
		return "question"
	case Success:
		return "success"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ErrInvalidTransition is returned for a move the state machine does not
// allow, such as jumping from Fallback straight to Success.
var ErrInvalidTransition = errors.New("invalid view transition")

// Controller owns the active view and the per-view minimum heights.
type Controller struct {
	active    View
	minHeight map[View]int
}

// NewController starts on initial.
func NewController(initial View) *Controller {
	return &Controller{
		active:    initial,
		minHeight: make(map[View]int, len(All)),
	}
}

func (c *Controller) Active() View { return c.active }
func (c *Controller) IsActive(v View) bool { return c.active == v }

// MinHeight is the height floor applied to v, or 0 when none is set.
func (c *Controller) MinHeight(v View) int {
	return c.minHeight[v]
}

// CanTransition reports whether moving from the active view to to is allowed.
func (c *Controller) CanTransition(to View) bool {
	switch to {
	case Fallback:
		return true
	case Question:
		return c.active == Success || c.active == Fallback || c.active == Question
	case Success:
		return c.active == Question
	}
	return false
}

// Transition switches to to. outgoingHeight is the rendered height of the
// current view measured just before it is hidden; it becomes the incoming
// view's minimum height until Reset. Re-entering the active view is a no-op.
func (c *Controller) Transition(to View, outgoingHeight int) error {
	if !c.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.active, to)
	}
	if to == c.active {
		return nil
	}
	if outgoingHeight > 0 {
		c.minHeight[to] = outgoingHeight
	}
	c.active = to
	return nil
}

// Reset clears every height floor and returns to Question. From Fallback the
// view is left alone; only the capability gate may leave it.
func (c *Controller) Reset() {
	clear(c.minHeight)
	if c.active != Fallback {
		c.active = Question
	}
}
