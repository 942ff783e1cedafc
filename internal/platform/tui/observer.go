package tui

import (
	"github.com/charmbracelet/log"

	engine "github.com/vovakirdan/tilt2048/internal/games/t2048/core"
)

// observable is implemented by games that expose their model's change
// notifications.
type observable interface {
	Subscribe(o engine.Observer) (unsubscribe func())
}

// LogObserver returns an observer that logs every model change at debug
// level.
func LogObserver(logger *log.Logger) engine.Observer {
	return engine.ObserverFunc(func(m *engine.Model, ev engine.Event) {
		switch ev {
		case engine.EventTilt:
			merges := 0
			for _, mv := range m.LastMoves() {
				if mv.Merged {
					merges++
				}
			}
			logger.Debug("board tilted",
				"moved", len(m.LastMoves()),
				"merges", merges,
				"score", m.Score(),
				"max_tile", m.MaxTile(),
			)
		case engine.EventAddTile:
			logger.Debug("tile added", "empty", len(m.EmptyCells()), "max_tile", m.MaxTile())
		case engine.EventClear:
			logger.Debug("board cleared", "max_score", m.MaxScore())
		}
		if ev != engine.EventClear && !m.MovesExist() {
			logger.Info("no moves left", "score", m.Score(), "max_tile", m.MaxTile())
		}
	})
}
