package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered game variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tilt2048 play <id>' to play a variant.")
}
