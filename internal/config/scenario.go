package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted game: a starting board and the tilts to apply.
//
//	name: three in a row
//	board:
//	  - [0, 0, 0, 0]
//	  - [2, 0, 0, 0]
//	  - [2, 0, 0, 0]
//	  - [2, 0, 0, 0]
//	score: 0
//	moves: "n e s w"
type Scenario struct {
	Name     string  `yaml:"name"`
	Board    [][]int `yaml:"board"` // Top row first, 0 for empty
	Score    int     `yaml:"score"`
	MaxScore int     `yaml:"max_score"`
	WinTile  *int    `yaml:"win_tile,omitempty"` // Overrides the config when set
	Moves    string  `yaml:"moves"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and checks a scenario document.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, err
	}
	if len(sc.Board) == 0 {
		return Scenario{}, fmt.Errorf("config: scenario has no board")
	}
	for i, row := range sc.Board {
		if len(row) != len(sc.Board) {
			return Scenario{}, fmt.Errorf("config: scenario row %d has %d cells, want %d", i, len(row), len(sc.Board))
		}
	}
	return sc, nil
}

// MoveTokens splits Moves into individual move names. Tokens are separated
// by spaces or commas; a single unseparated word such as "nnes" is split
// into letters.
func (s Scenario) MoveTokens() []string {
	fields := strings.FieldsFunc(s.Moves, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 1 && isLetterRun(fields[0]) {
		tokens := make([]string, 0, len(fields[0]))
		for _, r := range fields[0] {
			tokens = append(tokens, string(r))
		}
		return tokens
	}
	return fields
}

// isLetterRun reports whether word is made only of side initials.
func isLetterRun(word string) bool {
	return strings.Trim(strings.ToLower(word), "nesw") == ""
}
