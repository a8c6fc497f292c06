// Package tease rotates the taunting lines shown each time the evasive
// control gets away.
package tease

import "proposal/internal/rng"

const historySize = 2

// Pools is the text a Selector draws from.
type Pools struct {
	Primary []string
	Extra   []string
	// ExtraAfter is the hover count from which Extra joins the random draw.
	// Zero lets Extra in from the first random draw.
	ExtraAfter int
}

// Selector hands out one line per evasion. The first len(Primary) calls
// walk Primary in order; later calls draw at random while skipping the two
// most recent lines.
type Selector struct {
	pools Pools
	src   rng.Source

	hoverCount int
	recent     []string
}

func NewSelector(pools Pools, src rng.Source) *Selector {
	return &Selector{
		pools:  pools,
		src:    src,
		recent: make([]string, 0, historySize),
	}
}

// Next records one more evasion and returns the line to show. It returns ""
// only when both pools are empty.
func (s *Selector) Next() string {
	s.hoverCount++

	var line string
	if s.hoverCount <= len(s.pools.Primary) {
		line = s.pools.Primary[s.hoverCount-1]
	} else {
		line = s.draw(s.candidates())
	}
	s.remember(line)
	return line
}

func (s *Selector) HoverCount() int { return s.hoverCount }

// Recent returns the last selections, oldest first.
func (s *Selector) Recent() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Reset forgets the hover count and history.
func (s *Selector) Reset() {
	s.hoverCount = 0
	s.recent = s.recent[:0]
}

func (s *Selector) candidates() []string {
	pool := s.pools.Primary
	if s.hoverCount >= s.pools.ExtraAfter {
		pool = append(append([]string(nil), s.pools.Primary...), s.pools.Extra...)
	}
	return unique(pool)
}

// draw excludes the full history first, then only the latest line, then
// nothing, so small pools repeat instead of starving.
func (s *Selector) draw(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	for keep := len(s.recent); keep >= 0; keep-- {
		avoid := s.recent[len(s.recent)-keep:]
		if options := without(pool, avoid); len(options) > 0 {
			return rng.Pick(s.src, options)
		}
	}
	return rng.Pick(s.src, pool)
}

func (s *Selector) remember(line string) {
	if line == "" {
		return
	}
	if len(s.recent) == historySize {
		copy(s.recent, s.recent[1:])
		s.recent = s.recent[:historySize-1]
	}
	s.recent = append(s.recent, line)
}

func without(pool, avoid []string) []string {
	out := make([]string, 0, len(pool))
	for _, line := range pool {
		skip := false
		for _, a := range avoid {
			if line == a {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, line)
		}
	}
	return out
}

func unique(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}
