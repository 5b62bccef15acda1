package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilescore/internal/core"
	"github.com/vovakirdan/tilescore/internal/platform/tui"
	"github.com/vovakirdan/tilescore/internal/registry"
)

var (
	flagWatch         bool
	flagTrace         bool
	flagReplayVariant string
)

var replayCmd = &cobra.Command{
	Use:   "replay <seed> <moves-hex> <count>",
	Short: "Show how a move log plays out",
	Long: `Replays the move log and prints a summary with the final board.

With --trace every step is printed. With --watch the replay opens in an
interactive viewer.

Viewer controls:
  Space/P     - Play/Pause
  Left/Right  - Step back/forward
  Home/End    - Jump to start/end
  +/-         - Change speed
  R           - Restart
  Q/Esc       - Quit
  Ctrl+S      - Save screenshot

Examples:
  tilescore replay 123456789 2281 7
  tilescore replay 123456789 2281 7 --trace
  tilescore replay 123456789 2281111111111a22c4bbbae8 47 --watch`,
	Args: cobra.ExactArgs(3),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Open the interactive viewer")
	replayCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print every step")
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", "", "Rule variant (default from config)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ra, err := parseReplayArgs(args)
	if err != nil {
		return err
	}

	variant, err := registry.Create(variantOr(flagReplayVariant))
	if err != nil {
		return err
	}

	frames := variant.Replay(ra.seed, ra.moves, ra.count)
	logger.Debug("replayed", "variant", variant.ID(), "frames", len(frames))

	if flagWatch {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.Run(variant.Title(), frames, core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			StepRate: cfg.Viewer.StepRate,
		})
	}

	out := cmd.OutOrStdout()
	if flagTrace {
		for _, f := range frames {
			fmt.Fprintln(out, traceLine(f))
		}
		fmt.Fprintln(out)
	}

	last := frames[len(frames)-1]
	applied := 0
	for _, f := range frames[1:] {
		if f.Applied {
			applied++
		}
	}

	fmt.Fprintf(out, "Variant:  %s\n", variant.Title())
	fmt.Fprintf(out, "Score:    %d\n", last.Score)
	fmt.Fprintf(out, "Moves:    %d consumed, %d applied\n", len(frames)-1, applied)
	fmt.Fprintf(out, "Max tile: %d\n", last.MaxTile)
	if last.Terminal {
		fmt.Fprintln(out, "Game over: yes")
	} else {
		fmt.Fprintln(out, "Game over: no")
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, formatBoard(last.Board))
	return nil
}

func traceLine(f core.Frame) string {
	if f.Step == 0 {
		return fmt.Sprintf("%5d  %-5s  score=%d max=%d", 0, "start", f.Score, f.MaxTile)
	}
	line := fmt.Sprintf("%5d  %-5s  score=%d max=%d", f.Step, f.Move, f.Score, f.MaxTile)
	if !f.Applied {
		line += "  no-op"
	}
	if f.Terminal {
		line += "  game over"
	}
	return line
}
