package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"proposal/internal/capability"
	"proposal/internal/config"
	"proposal/internal/decor"
	"proposal/internal/geom"
	"proposal/internal/rng"
	"proposal/internal/session"
	"proposal/internal/view"
)

func initialModel(cfg *config.Config, src rng.Source, mouse bool) model {
	m := model{
		cfg:   cfg,
		now:   time.Now,
		mouse: mouse,
	}

	// The scene registers every attachment point whatever its size.
	structure := m.render(computeLayout(cfg, 80, 24, view.Question, 0), time.Time{})
	s, err := session.New(cfg, structure, src)
	if err != nil {
		log.Printf("interactive mode disabled: %v", err)
		m.static = true
		return m
	}
	m.session = s
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.static {
			return m, nil
		}
		in := m.input(session.ViewportChanged)
		if !m.started {
			m.started = true
			return m.apply(m.session.Start(in))
		}
		return m.apply(m.session.Handle(in))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if m.session != nil {
			if n := m.session.Sweep(m.now()); n > 0 {
				log.Printf("swept %d finished confetti", n)
			}
		}
		if !m.animating() {
			m.ticking = false
			return m, nil
		}
		return m, m.tick()

	case particleDoneMsg:
		if m.static {
			return m, nil
		}
		in := m.input(session.ParticleAnimationComplete)
		in.Kind, in.ParticleID = msg.kind, msg.id
		return m.apply(m.session.Handle(in))
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.static || !m.started {
		return m, nil
	}

	m.successMessage, m.errorMessage = "", ""
	switch msg.String() {
	case "y", "enter":
		return m.fire(session.AffirmativeSelected)
	case "n":
		return m.fire(session.EvasiveProximity)
	case "r":
		return m.fire(session.ResetRequested)
	case "s":
		if m.session.View() == view.Success {
			m.saveKeepsake()
		}
	case "c":
		if m.session.View() == view.Success {
			m.copyMessage()
		}
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.static || !m.started {
		return m, nil
	}
	l := m.layout()
	no := l.noBox(m.cfg, m.evasivePosition())

	switch m.session.View() {
	case view.Question:
		switch msg.Type {
		case tea.MouseMotion:
			if no.inflate(proximityCells).contains(msg.X, msg.Y) {
				return m.fire(session.EvasiveProximity)
			}
		case tea.MouseLeft:
			if l.yes.contains(msg.X, msg.Y) {
				return m.fire(session.AffirmativeSelected)
			}
			if no.inflate(proximityCells).contains(msg.X, msg.Y) {
				return m.fire(session.EvasiveProximity)
			}
		}
	case view.Success:
		if msg.Type == tea.MouseLeft && l.again.contains(msg.X, msg.Y) {
			return m.fire(session.ResetRequested)
		}
	}
	return m, nil
}

func (m model) fire(e session.Event) (tea.Model, tea.Cmd) {
	return m.apply(m.session.Handle(m.input(e)))
}

func (m model) layout() sceneLayout {
	active := view.Question
	minHeight := 0
	if m.session != nil {
		active = m.session.View()
		minHeight = m.session.MinHeight(active)
	}
	return computeLayout(m.cfg, m.width, m.height, active, minHeight)
}

func (m model) input(e session.Event) session.Input {
	return session.Input{
		Event:   e,
		Layout:  m.layout().sessionLayout(m.cfg, m.evasivePosition()),
		Signals: m.signals(),
	}
}

// signals describes the terminal to the capability gate. Mouse motion
// reporting stands in for hover and a fine pointer.
func (m model) signals() capability.Signals {
	return capability.Signals{
		HasHover:    m.mouse,
		FinePointer: m.mouse,
		Width:       int(float64(m.width) * m.cfg.Cell.Width),
		Height:      int(float64(m.height) * m.cfg.Cell.Height),
	}
}

// apply carries out the effects of one event and schedules the follow-up
// messages they need.
func (m model) apply(eff session.Effects) (tea.Model, tea.Cmd) {
	now := m.now()
	var cmds []tea.Cmd

	if eff.ViewChanged {
		log.Printf("view: %s", eff.View)
	}
	if eff.TeaseChanged {
		m.teaseText = eff.Tease
	}
	if mv := eff.Move; mv != nil {
		switch {
		case eff.ResetEvasive || mv.Transition <= 0:
			m.glide = jump(mv.To)
		default:
			m.glide = m.glide.retarget(now, mv.To, mv.Transition)
		}
	}
	for _, p := range eff.Burst {
		if p.Kind == decor.Sparkle {
			continue
		}
		cmds = append(cmds, particleDone(p))
	}

	if !m.ticking && m.animating() {
		m.ticking = true
		cmds = append(cmds, m.tick())
	}
	return m, tea.Batch(cmds...)
}

func (m model) animating() bool {
	if m.session == nil {
		return false
	}
	return m.glide.moving(m.now()) || len(m.session.Sparkles()) > 0 || len(m.session.Confetti()) > 0
}

func (m model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func particleDone(p decor.Particle) tea.Cmd {
	return tea.Tick(p.Delay+p.Duration, func(time.Time) tea.Msg {
		return particleDoneMsg{kind: p.Kind, id: p.ID}
	})
}

// evasivePosition is where the evasive button is drawn now, relative to the
// playground in layout units.
func (m model) evasivePosition() geom.Point {
	return m.glide.at(m.now())
}
