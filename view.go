package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"proposal/internal/session"
	"proposal/internal/view"
)

var (
	backgroundStyle = cellStyle{bg: colorBackground}
	cardStyle       = cellStyle{fg: colorMuted, bg: colorCard}
	questionStyle   = cellStyle{fg: colorText, bg: colorCard, bold: true}
	teaseStyle      = cellStyle{fg: colorMuted, bg: colorCard, italic: true}
	yesStyle        = cellStyle{fg: colorYes, bg: colorCard, bold: true}
	noStyle         = cellStyle{fg: colorNo, bg: colorCard}
	againStyle      = cellStyle{fg: colorAgain, bg: colorCard, bold: true}

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorStatus))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorYes))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()
	lines := m.render(l, m.now()).Lines()
	lines = append(lines, m.statusLine(l.scene.Width))
	return strings.Join(lines, "\n")
}

// render draws one frame and registers the attachment points the session
// looks for.
func (m model) render(l sceneLayout, now time.Time) *Canvas {
	c := NewCanvas(l.scene.Width, l.scene.Height)
	c.Fill(l.scene, backgroundStyle)
	c.Register(session.ElemSparkles, l.scene)
	c.Register(session.ElemConfetti, l.scene)

	active := view.Question
	if m.session != nil {
		active = m.session.View()
		drawSparkles(c, l.scene, m.session.Sparkles(), now)
	}

	c.Fill(l.card, cellStyle{bg: colorCard})
	c.DrawFrame(l.card, cardStyle, false)
	for _, name := range []string{session.ElemQuestionView, session.ElemSuccessView, session.ElemFallbackView} {
		c.Register(name, l.card)
	}

	no := l.noSize
	if m.session != nil {
		no = l.noBox(m.cfg, m.evasivePosition())
	} else {
		no.X, no.Y = l.yes.X+l.yes.Width+4, l.yes.Y
	}
	c.Register(session.ElemPlayground, l.playground)
	c.Register(session.ElemYes, l.yes)
	c.Register(session.ElemNo, no)
	c.Register(session.ElemAgain, l.again)
	c.Register(session.ElemTease, Box{X: l.card.X + 1, Y: l.tease, Width: l.card.Width - 2, Height: 1})

	switch active {
	case view.Question:
		c.DrawCentered(l.question, m.cfg.Question, questionStyle)
		tease := m.teaseText
		if tease == "" {
			tease = m.cfg.DefaultTease
		}
		c.DrawCentered(l.tease, tease, teaseStyle)
		c.DrawBox(l.yes, m.cfg.YesLabel, yesStyle, true)
		c.DrawBox(no, m.cfg.NoLabel, noStyle, false)

	case view.Success:
		c.DrawCentered(l.headline, m.cfg.Celebration, questionStyle)
		c.DrawCentered(l.hint, "s save keepsake · c copy message", teaseStyle)
		c.DrawBox(l.again, m.cfg.AgainLabel, againStyle, true)

	case view.Fallback:
		c.DrawCentered(l.notice, m.cfg.FallbackMessage, questionStyle)
	}

	if m.session != nil {
		drawConfetti(c, l.scene, m.session.Confetti(), now)
	}
	return c
}

func (m model) statusLine(width int) string {
	var line string
	switch {
	case m.errorMessage != "":
		return errorStyle.Render(truncate(m.errorMessage, width))
	case m.successMessage != "":
		return okStyle.Render(truncate(m.successMessage, width))
	case m.static:
		line = "q quit"
	case m.session != nil && m.session.View() == view.Success:
		line = "r/click play again · s save · c copy · q quit"
	case m.session != nil && m.session.View() == view.Fallback:
		line = "q quit"
	default:
		line = "y/enter yes · n no · q quit"
	}
	return statusStyle.Render(truncate(line, width))
}
