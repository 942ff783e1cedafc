package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
)

type fakeGame struct {
	id   string
	size int
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return strings.ToUpper(g.id) }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func fakeFactory(id string) Factory {
	return func(cfg config.T2048Config) Game {
		return &fakeGame{id: id, size: cfg.Board.Size}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", fakeFactory("test_b"))
	Register("test_a", fakeFactory("test_a"))

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() reports wrong registrations")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("Title = %q, want %q", info.Title, strings.ToUpper(info.ID))
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_a" || ids[1] != "test_b" {
		t.Errorf("List() ids = %v, want sorted [test_a test_b]", ids)
	}

	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 5
	g, err := Create("test_a", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := g.(*fakeGame).size; got != 5 {
		t.Errorf("factory saw board size %d, want 5", got)
	}

	if _, err := Create("test_missing", cfg); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", fakeFactory("test_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", fakeFactory("test_dup"))
}
