// Package session is the game's state machine. It owns every piece of
// transient state (active view, hover count, tease history, evasive control
// position, particles) and turns input events into effects for the
// presentation layer to apply. Nothing here draws or touches a terminal.
package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"proposal/internal/capability"
	"proposal/internal/config"
	"proposal/internal/decor"
	"proposal/internal/geom"
	"proposal/internal/placement"
	"proposal/internal/rng"
	"proposal/internal/tease"
	"proposal/internal/view"
)

// Event is one of the inputs the session reacts to.
type Event int

const (
	EvasiveProximity Event = iota
	AffirmativeSelected
	ResetRequested
	ViewportChanged
	ParticleAnimationComplete
)

func (e Event) String() string {
	switch e {
	case EvasiveProximity:
		return "evasive-proximity"
	case AffirmativeSelected:
		return "affirmative-selected"
	case ResetRequested:
		return "reset-requested"
	case ViewportChanged:
		return "viewport-changed"
	case ParticleAnimationComplete:
		return "particle-animation-complete"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Attachment points the presentation surface must expose.
const (
	ElemFallbackView = "view-fallback"
	ElemQuestionView = "view-question"
	ElemSuccessView  = "view-success"
	ElemPlayground   = "playground"
	ElemYes          = "btn-yes"
	ElemNo           = "btn-no"
	ElemAgain        = "btn-again"
	ElemTease        = "tease"
	ElemSparkles     = "sparkles"
	ElemConfetti     = "confetti"
)

// Required lists every attachment point New checks for.
var Required = []string{
	ElemFallbackView, ElemQuestionView, ElemSuccessView,
	ElemPlayground, ElemYes, ElemNo, ElemAgain, ElemTease,
	ElemSparkles, ElemConfetti,
}

// ErrMissingElement means the surface lacks a required attachment point and
// the interactive game must not start.
var ErrMissingElement = errors.New("missing required element")

// Structure reports which attachment points exist.
type Structure interface {
	Has(name string) bool
}

// Layout is the geometry read from the surface when an event fires. Every
// box is in absolute coordinates.
type Layout struct {
	Container geom.Rect
	Safe      geom.Rect
	Evasive   geom.Rect
	// ViewHeight is the rendered height of the view currently showing.
	ViewHeight int
}

// Input is an event plus the surface state at the time it fired.
type Input struct {
	Event      Event
	Layout     Layout
	Signals    capability.Signals
	Kind       decor.Kind
	ParticleID int
}

// Move repositions the evasive control, relative to the container.
type Move struct {
	To         geom.Point
	Transition time.Duration
	// Accepted is false when the sampler ran out of attempts.
	Accepted bool
}

// Effects describe what the surface has to change after an event.
type Effects struct {
	View        view.View
	ViewChanged bool
	Move        *Move
	// ResetEvasive drops in-flight transition styling before Move applies.
	ResetEvasive bool
	Tease        string
	TeaseChanged bool
	Burst        []decor.Particle
	Removed      bool
}

type Session struct {
	cfg     *config.Config
	policy  capability.Policy
	views   *view.Controller
	tease   *tease.Selector
	sampler *placement.Sampler

	sparkles *decor.Layer
	confetti *decor.Layer

	teaseText string
	position  geom.Point
	relocated bool
	started   bool
}

// New checks the surface and builds a session. It returns an error wrapping
// ErrMissingElement when any Required attachment point is absent.
func New(cfg *config.Config, structure Structure, src rng.Source) (*Session, error) {
	if structure == nil {
		return nil, fmt.Errorf("%w: no surface", ErrMissingElement)
	}
	for _, name := range Required {
		if !structure.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingElement, name)
		}
	}

	return &Session{
		cfg:      cfg,
		policy:   cfg.Policy(),
		views:    view.NewController(view.Question),
		tease:    tease.NewSelector(cfg.Pools(), src),
		sampler:  placement.NewSampler(src),
		sparkles: decor.NewLayer(decor.Sparkle, src),
		confetti: decor.NewLayer(decor.Confetti, src),
	}, nil
}

// SetClock sets the time source used to stamp particles.
func (s *Session) SetClock(now func() time.Time) {
	s.sparkles.SetClock(now)
	s.confetti.SetClock(now)
}

// Start runs the load-time work: ambient sparkles, the capability gate and
// the evasive control's resting position. Later calls behave like
// ViewportChanged.
func (s *Session) Start(in Input) Effects {
	if s.started {
		in.Event = ViewportChanged
		return s.Handle(in)
	}
	s.started = true

	eff := Effects{View: s.views.Active()}
	eff.Burst = s.sparkles.SpawnBurst(s.cfg.Sparkles.Count, s.cfg.Sparkles.Ranges())
	if !s.policy.Interactive(in.Signals) {
		s.transition(&eff, view.Fallback, in.Layout.ViewHeight)
		return eff
	}
	s.restEvasive(&eff, in.Layout)
	return eff
}

// Handle applies one event. Events that do not apply to the active view are
// ignored and yield empty effects.
func (s *Session) Handle(in Input) Effects {
	eff := Effects{View: s.views.Active()}

	switch in.Event {
	case EvasiveProximity:
		if !s.views.IsActive(view.Question) {
			return eff
		}
		s.teaseText = s.tease.Next()
		eff.Tease, eff.TeaseChanged = s.teaseText, true
		eff.Move = s.relocate(in.Layout)

	case AffirmativeSelected:
		if !s.views.IsActive(view.Question) {
			return eff
		}
		s.transition(&eff, view.Success, in.Layout.ViewHeight)
		eff.Burst = s.confetti.SpawnBurst(s.cfg.Confetti.Count, s.cfg.Confetti.Ranges())

	case ResetRequested:
		s.reset(&eff, in.Layout)

	case ViewportChanged:
		s.viewportChanged(&eff, in)

	case ParticleAnimationComplete:
		eff.Removed = s.layer(in.Kind).Complete(in.ParticleID)

	default:
		log.Printf("session: ignoring unknown event %s", in.Event)
	}
	return eff
}

func (s *Session) relocate(l Layout) *Move {
	moving := l.Evasive.Size()
	current := s.position
	if !s.relocated {
		current = l.Evasive.Translate(-l.Container.Left, -l.Container.Top).Origin()
	}

	minDist := s.cfg.NoButton.MinDisplacement
	if minDist <= 0 {
		minDist = placement.DefaultDisplacement(moving)
	}
	c := placement.Constraints{
		Container:       l.Container,
		EdgePadding:     s.cfg.NoButton.EdgePadding,
		Exclusion:       placement.ExclusionZone(l.Container, l.Safe, s.cfg.NoButton.SafePadding),
		MinDisplacement: minDist,
		MaxAttempts:     s.cfg.NoButton.MaxTries,
	}

	p, ok := s.sampler.Sample(moving, current, c)
	if !ok {
		log.Printf("session: no clean placement in %d tries, using %v", c.MaxAttempts, p)
	}
	s.position = p
	s.relocated = true
	return &Move{To: p, Transition: s.cfg.NoButton.Transition, Accepted: ok}
}

func (s *Session) reset(eff *Effects, l Layout) {
	s.tease.Reset()
	s.teaseText = ""
	eff.Tease, eff.TeaseChanged = "", true

	s.confetti.Clear()

	before := s.views.Active()
	s.views.Reset()
	eff.View = s.views.Active()
	eff.ViewChanged = before != eff.View

	s.restEvasive(eff, l)
}

// restEvasive puts the evasive control back on its resting spot with no
// transition.
func (s *Session) restEvasive(eff *Effects, l Layout) {
	s.relocated = false
	s.position = placement.DefaultPosition(l.Container, l.Evasive.Size(), s.cfg.NoButton.EdgePadding)
	eff.ResetEvasive = true
	eff.Move = &Move{To: s.position, Accepted: true}
}

func (s *Session) viewportChanged(eff *Effects, in Input) {
	if !s.policy.Interactive(in.Signals) {
		s.transition(eff, view.Fallback, in.Layout.ViewHeight)
		return
	}

	switch s.views.Active() {
	case view.Fallback:
		s.transition(eff, view.Question, in.Layout.ViewHeight)
		s.tease.Reset()
		s.teaseText = ""
		eff.Tease, eff.TeaseChanged = "", true
		s.restEvasive(eff, in.Layout)
	case view.Question:
		if s.relocated {
			eff.Move = s.relocate(in.Layout)
		} else {
			s.restEvasive(eff, in.Layout)
		}
	}
}

func (s *Session) transition(eff *Effects, to view.View, height int) {
	if s.views.IsActive(to) {
		return
	}
	if err := s.views.Transition(to, height); err != nil {
		log.Printf("session: %v", err)
		return
	}
	eff.View = to
	eff.ViewChanged = true
}

// Sweep drops confetti whose fall has finished at now and reports how many
// went. It backs up the per-particle completion signal.
func (s *Session) Sweep(now time.Time) int {
	return len(s.confetti.Sweep(now))
}

func (s *Session) layer(k decor.Kind) *decor.Layer {
	if k == decor.Sparkle {
		return s.sparkles
	}
	return s.confetti
}

func (s *Session) View() view.View { return s.views.Active() }

// MinHeight is the height floor for v carried over from the last transition.
func (s *Session) MinHeight(v view.View) int { return s.views.MinHeight(v) }

func (s *Session) TeaseText() string { return s.teaseText }
func (s *Session) HoverCount() int { return s.tease.HoverCount() }

// Position is the evasive control's target position relative to the
// container, and whether it has left its resting spot.
func (s *Session) Position() (geom.Point, bool) { return s.position, s.relocated }

func (s *Session) Sparkles() []decor.Particle { return s.sparkles.Particles() }
func (s *Session) Confetti() []decor.Particle { return s.confetti.Particles() }
