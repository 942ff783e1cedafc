package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	data := `
name: three in a row
board:
  - [0, 0, 0, 0]
  - [2, 0, 0, 0]
  - [2, 0, 0, 0]
  - [2, 0, 0, 0]
score: 12
win_tile: 0
moves: "n, e south"
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() failed: %v", err)
	}
	if sc.Name != "three in a row" || sc.Score != 12 {
		t.Errorf("scenario = %+v", sc)
	}
	if sc.WinTile == nil || *sc.WinTile != 0 {
		t.Errorf("WinTile = %v, want explicit 0", sc.WinTile)
	}
	if got := sc.MoveTokens(); !slices.Equal(got, []string{"n", "e", "south"}) {
		t.Errorf("MoveTokens() = %v", got)
	}
}

func TestMoveTokensLetterRun(t *testing.T) {
	sc := Scenario{Moves: "NnEw"}
	if got := sc.MoveTokens(); !slices.Equal(got, []string{"N", "n", "E", "w"}) {
		t.Errorf("MoveTokens() = %v", got)
	}

	sc = Scenario{Moves: "west"}
	if got := sc.MoveTokens(); !slices.Equal(got, []string{"west"}) {
		t.Errorf("MoveTokens() = %v", got)
	}
}

func TestParseScenarioRejectsBadBoards(t *testing.T) {
	tests := map[string]string{
		"no board": "moves: n\n",
		"ragged":   "board:\n  - [2, 0]\n  - [0]\n",
		"not yaml": "board: [",
	}
	for name, data := range tests {
		if _, err := ParseScenario([]byte(data)); err == nil {
			t.Errorf("%s: ParseScenario() should fail", name)
		}
	}
}
