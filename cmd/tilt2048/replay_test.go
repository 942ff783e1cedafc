package main

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/config"
)

func columnScenario(moves string) config.Scenario {
	return config.Scenario{
		Name: "column",
		Board: [][]int{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{2, 0, 0, 0},
			{2, 0, 0, 0},
		},
		Moves: moves,
	}
}

func TestReplay(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(io.Discard)

	err := replay(&out, logger, columnScenario("n"), config.DefaultT2048Config(), replayOptions{})
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	got := out.String()
	want := "\n> north\n" +
		"\n[\n" +
		"|   4|    |    |    |\n" +
		"|   2|    |    |    |\n" +
		"|    |    |    |    |\n" +
		"|    |    |    |    |\n" +
		"] 4 (max: 0) (game is not over) \n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("replay output =\n%s\nwant suffix\n%s", got, want)
	}
	if !strings.HasPrefix(got, "# column\n") {
		t.Errorf("replay output should start with the scenario name:\n%s", got)
	}
}

func TestReplayBadMove(t *testing.T) {
	err := replay(io.Discard, log.New(io.Discard), columnScenario("n x"), config.DefaultT2048Config(), replayOptions{})
	if err == nil || !strings.Contains(err.Error(), "move 2") {
		t.Errorf("replay() error = %v, want move 2 error", err)
	}
}

func TestReplayStopsAtGameOver(t *testing.T) {
	win := 4
	sc := columnScenario("n s")
	sc.WinTile = &win

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})

	var out bytes.Buffer
	if err := replay(&out, logger, sc, config.DefaultT2048Config(), replayOptions{}); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	if strings.Contains(out.String(), "> south") {
		t.Error("moves after the winning tile should be skipped")
	}
	if !strings.Contains(logs.String(), "remaining moves skipped") {
		t.Errorf("expected skip log, got:\n%s", logs.String())
	}
}

func TestReplaySpawn(t *testing.T) {
	var out bytes.Buffer
	opts := replayOptions{
		Rand:  rand.New(rand.NewSource(1)),
		Spawn: config.DefaultT2048Config().Spawn,
	}
	if err := replay(&out, log.New(io.Discard), columnScenario("n"), config.DefaultT2048Config(), opts); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	// The merged column keeps 2 tiles; the spawn adds a third.
	last := out.String()[strings.LastIndex(out.String(), "> north"):]
	if n := strings.Count(last, "|   2") + strings.Count(last, "|   4"); n != 3 {
		t.Errorf("expected a spawned tile after the tilt:\n%s", last)
	}
}
