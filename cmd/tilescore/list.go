package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilescore/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rule variants",
	Long:  `Shows the rule variants scores can be replayed under.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range variants {
		marker := ""
		if v.ID == cfg.Replay.Variant {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, v.ID, v.Title, marker)
	}
}
