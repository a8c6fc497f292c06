package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"proposal/internal/config"
	"proposal/internal/rng"
	"proposal/internal/session"
	"proposal/internal/view"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testModel(t *testing.T, cfg *config.Config, mouse bool, width, height int) (model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Unix(1700000000, 0)}
	m := initialModel(cfg, rng.New(7), mouse)
	if m.static {
		t.Fatal("initialModel() fell back to static mode")
	}
	m.now = clock.now
	m.session.SetClock(clock.now)
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: height}), clock
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartupGate(t *testing.T) {
	tests := []struct {
		name     string
		mouse    bool
		width    int
		expected view.View
	}{
		{"mouse and wide", true, 120, view.Question},
		{"no mouse", false, 120, view.Fallback},
		{"too narrow", true, 60, view.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t, config.Default(), tt.mouse, tt.width, 40)
			if got := m.session.View(); got != tt.expected {
				t.Errorf("view = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestResizeRegainsQuestion(t *testing.T) {
	m, _ := testModel(t, config.Default(), true, 60, 40)
	if m.session.View() != view.Fallback {
		t.Fatalf("view = %s", m.session.View())
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.session.View() != view.Question {
		t.Errorf("view after widening = %s", m.session.View())
	}
}

func TestEvasionByKey(t *testing.T) {
	m, clock := testModel(t, config.Default(), true, 120, 40)
	rest := m.evasivePosition()

	m = update(t, m, key("n"))
	target, relocated := m.session.Position()
	if !relocated {
		t.Fatal("evasive button did not move")
	}
	if m.glide.to != target {
		t.Errorf("glide target %+v, session target %+v", m.glide.to, target)
	}
	if m.evasivePosition() != rest {
		t.Errorf("button jumped instead of gliding")
	}
	if m.teaseText == "" || m.teaseText != m.session.TeaseText() {
		t.Errorf("teaseText = %q", m.teaseText)
	}

	clock.advance(time.Second)
	if m.evasivePosition() != target {
		t.Errorf("position after transition = %+v, expected %+v", m.evasivePosition(), target)
	}
}

func TestEvasionByHover(t *testing.T) {
	m, _ := testModel(t, config.Default(), true, 120, 40)
	no := m.layout().noBox(m.cfg, m.evasivePosition())

	// Far away: nothing happens.
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Type: tea.MouseMotion})
	if m.session.HoverCount() != 0 {
		t.Fatalf("distant motion counted as hover")
	}

	m = update(t, m, tea.MouseMsg{X: no.X - 1, Y: no.Y, Type: tea.MouseMotion})
	if m.session.HoverCount() != 1 {
		t.Errorf("HoverCount() = %d after approaching", m.session.HoverCount())
	}

	// Clicking where the button was also dodges.
	m = update(t, m, tea.MouseMsg{X: no.X + 1, Y: no.Y + 1, Type: tea.MouseLeft})
	if m.session.HoverCount() != 2 || m.session.View() != view.Question {
		t.Errorf("click on no: count %d view %s", m.session.HoverCount(), m.session.View())
	}
}

func TestYesAndPlayAgain(t *testing.T) {
	cfg := config.Default()
	cfg.Confetti.Count = 5
	m, clock := testModel(t, cfg, true, 120, 40)

	yes := m.layout().yes
	next, cmd := m.Update(tea.MouseMsg{X: yes.X + 1, Y: yes.Y + 1, Type: tea.MouseLeft})
	m = next.(model)
	if m.session.View() != view.Success {
		t.Fatalf("view after yes = %s", m.session.View())
	}
	if cmd == nil {
		t.Error("confetti scheduled no completion")
	}
	confetti := m.session.Confetti()
	if len(confetti) != 5 {
		t.Fatalf("live confetti = %d", len(confetti))
	}

	clock.advance(10 * time.Second)
	for _, p := range confetti {
		m = update(t, m, particleDoneMsg{kind: p.Kind, id: p.ID})
	}
	if n := len(m.session.Confetti()); n != 0 {
		t.Errorf("%d confetti left after completion", n)
	}

	again := m.layout().again
	m = update(t, m, tea.MouseMsg{X: again.X + 1, Y: again.Y + 1, Type: tea.MouseLeft})
	if m.session.View() != view.Question || m.teaseText != "" {
		t.Errorf("after play again: view %s tease %q", m.session.View(), m.teaseText)
	}
	if _, relocated := m.session.Position(); relocated {
		t.Error("play again left the button relocated")
	}
}

func TestSuccessScreenThroughConfettiLifetime(t *testing.T) {
	cfg := config.Default()
	m, clock := testModel(t, cfg, true, 120, 40)

	m = update(t, m, key("y"))
	if len(m.session.Confetti()) != cfg.Confetti.Count {
		t.Fatalf("live confetti = %d, expected %d", len(m.session.Confetti()), cfg.Confetti.Count)
	}

	end := cfg.Confetti.DelayMax + cfg.Confetti.DurMax + frameInterval
	for elapsed := time.Duration(0); elapsed <= end; elapsed += 50 * time.Millisecond {
		if out := m.View(); !strings.Contains(out, "Play again") {
			t.Fatalf("frame at %s lost the success card", elapsed)
		}
		m = update(t, m, frameMsg(clock.now()))
		clock.advance(50 * time.Millisecond)
	}

	// No completion messages were delivered: the frame loop cleared them.
	if n := len(m.session.Confetti()); n != 0 {
		t.Errorf("%d confetti left after the longest fall", n)
	}
}

func TestKeyboardFlow(t *testing.T) {
	m, _ := testModel(t, config.Default(), true, 120, 40)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.View() != view.Success {
		t.Fatalf("enter: view %s", m.session.View())
	}
	m = update(t, m, key("n"))
	if m.session.HoverCount() != 0 {
		t.Error("n counted as an evasion on the success view")
	}
	m = update(t, m, key("r"))
	if m.session.View() != view.Question {
		t.Errorf("r: view %s", m.session.View())
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestCopyMessage(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ := testModel(t, config.Default(), true, 120, 40)
	m = update(t, m, key("c"))
	if copied != "" {
		t.Error("copy worked outside the success view")
	}

	m = update(t, m, key("y"))
	m = update(t, m, key("c"))
	if !strings.Contains(copied, m.cfg.Celebration) || m.successMessage == "" {
		t.Errorf("copied %q, status %q", copied, m.successMessage)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, key("c"))
	if !strings.Contains(m.errorMessage, "no clipboard") {
		t.Errorf("errorMessage = %q", m.errorMessage)
	}
}

func TestSaveKeepsake(t *testing.T) {
	cfg := config.Default()
	cfg.SaveDirectory = t.TempDir()
	m, _ := testModel(t, cfg, true, 120, 40)

	m = update(t, m, key("y"))
	m = update(t, m, key("s"))
	if !strings.HasPrefix(m.successMessage, "Saved ") {
		t.Fatalf("status = %q, error = %q", m.successMessage, m.errorMessage)
	}
	if _, err := os.Stat(strings.TrimPrefix(m.successMessage, "Saved ")); err != nil {
		t.Errorf("keepsake missing: %v", err)
	}
}

func TestViewRendersScene(t *testing.T) {
	cfg := config.Default()
	m, _ := testModel(t, cfg, true, 120, 40)

	out := m.View()
	if lines := strings.Split(out, "\n"); len(lines) != 40 {
		t.Errorf("View() has %d lines, expected 40", len(lines))
	}
	for _, want := range []string{"Will you be my Valentine?", cfg.DefaultTease, "Yes", "No"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = update(t, m, key("y"))
	if out := m.View(); !strings.Contains(out, "Play again") {
		t.Error("success view missing the play again button")
	}
}

func TestFrameTicks(t *testing.T) {
	m, clock := testModel(t, config.Default(), true, 120, 40)
	if !m.ticking {
		t.Fatal("sparkles did not start the frame loop")
	}
	next, cmd := m.Update(frameMsg(clock.now()))
	if cmd == nil || !next.(model).ticking {
		t.Error("frame loop stopped while sparkles are live")
	}

	cfg := config.Default()
	cfg.Sparkles.Count = 0
	m, clock = testModel(t, cfg, true, 120, 40)
	clock.advance(time.Second)
	next, cmd = m.Update(frameMsg(clock.now()))
	if cmd != nil || next.(model).ticking {
		t.Error("frame loop kept running with nothing to animate")
	}
}

func TestStaticModeIgnoresInput(t *testing.T) {
	m := model{cfg: config.Default(), now: time.Now, static: true}
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, key("y"))
	if m.session != nil {
		t.Fatal("static model grew a session")
	}
	if out := m.View(); !strings.Contains(out, "Will you be my Valentine?") {
		t.Error("static view does not show the question")
	}
	if !m.render(m.layout(), time.Now()).Has(session.ElemNo) {
		t.Error("static scene lacks the no button")
	}
}
