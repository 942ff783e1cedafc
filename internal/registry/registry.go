// Package registry keeps the playable 2048 variants. Variants add themselves
// from init(), and the CLI and TUI look them up by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
)

// Game is a playable variant. It holds no Bubble Tea state: the platform
// feeds it input frames on every tick and asks it to draw into a Screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh game. It is called on start and on restart.
	Reset(cfg core.RuntimeConfig)

	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a variant from the game configuration.
type Factory func(cfg config.T2048Config) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
)

func find(id string) (entry, bool) {
	i := slices.IndexFunc(entries, func(e entry) bool { return e.info.ID == id })
	if i < 0 {
		return entry{}, false
	}
	return entries[i], true
}

// Register adds a variant. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := find(id); dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	title := f(config.DefaultT2048Config()).Title()
	entries = append(entries, entry{info: GameInfo{ID: id, Title: title}, factory: f})
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.info.ID, b.info.ID) })
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create builds the variant registered under id.
func Create(id string, cfg config.T2048Config) (Game, error) {
	mu.RLock()
	e, ok := find(id)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := find(id)
	return ok
}
