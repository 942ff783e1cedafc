package tui

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	engine "github.com/vovakirdan/tilt2048/internal/games/t2048/core"
)

func newTestModel(t *testing.T) (Model, *t2048.Game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	game := t2048.New(t2048.ModeClassic, config.DefaultT2048Config())
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, cfg, logger)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game, &buf
}

func TestModelLogsModelChanges(t *testing.T) {
	_, _, buf := newTestModel(t)

	out := buf.String()
	for _, want := range []string{"game started", "board cleared", "tile added"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestModelStepsOnTick(t *testing.T) {
	m, game, _ := newTestModel(t)

	before := game.Snapshot().Tick
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.Snapshot().Tick != before+1 {
		t.Errorf("Tick = %d, want %d", game.Snapshot().Tick, before+1)
	}
	if next.(Model).inputFrame.Has(core.ActionLeft) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, game, _ := newTestModel(t)

	before := game.Model().Values()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	after := game.Model().Values()

	for i := range before {
		if !slices.Equal(before[i], after[i]) {
			t.Fatalf("resize changed row %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestModelQuit(t *testing.T) {
	m, _, buf := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Error("quit should be logged")
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "tilt up") {
		t.Errorf("View() should include the help footer:\n%s", view)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m, err := engine.NewModelFromValues([][]int{
		{2, 2},
		{0, 0},
	}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	m.Subscribe(LogObserver(logger))

	m.Tilt(engine.West)

	out := buf.String()
	if !strings.Contains(out, "board tilted") || !strings.Contains(out, "merges=1") {
		t.Errorf("unexpected log output:\n%s", out)
	}
}
