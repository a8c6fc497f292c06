// Package capability decides whether the interactive game can run or the
// static fallback should be shown instead.
package capability

import (
	"fmt"
	"strings"
)

// Mode names a gating policy.
type Mode string

const (
	// Strict requires hover, a fine pointer and a minimum width.
	Strict Mode = "strict"
	// Landscape accepts hover with a fine pointer, or any landscape viewport.
	Landscape Mode = "landscape"
)

// ParseMode accepts a policy name, case-insensitively. An empty name is
// Strict.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Strict:
		return Strict, nil
	case Landscape:
		return Landscape, nil
	}
	return "", fmt.Errorf("unknown capability policy %q", s)
}

// Signals are the environment facts the policy looks at.
type Signals struct {
	HasHover    bool
	FinePointer bool
	Width       int
	Height      int
}

// Policy is a configured gate.
type Policy struct {
	Mode     Mode
	MinWidth int
}

// Interactive reports whether the interactive experience should run.
func (p Policy) Interactive(s Signals) bool {
	pointer := s.HasHover && s.FinePointer
	switch p.Mode {
	case Landscape:
		return pointer || (s.Width > 0 && s.Width >= s.Height)
	default:
		return pointer && s.Width >= p.MinWidth
	}
}
