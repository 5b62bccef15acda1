// tilescore recomputes and verifies scores of the tile-merging game from a
// seed and a packed move log.
//
// Usage:
//
//	tilescore score <seed> <moves-hex> <count>            - Print the replayed score
//	tilescore verify <seed> <moves-hex> <count> <claimed> - Check a claimed score and record it
//	tilescore verify-batch <file>                          - Verify a YAML list of submissions
//	tilescore replay <seed> <moves-hex> <count>            - Show or watch a replay
//	tilescore decode <moves-hex> <count>                   - Print the decoded moves
//	tilescore encode <moves...>                            - Pack moves into hex
//	tilescore scores [variant]                             - Show verified high scores
//	tilescore stats                                        - Show per-variant statistics
//	tilescore history                                      - Show recent submissions
//	tilescore show <id>                                    - Show one recorded submission
//	tilescore list                                         - List rule variants
//	tilescore chess valid|mate                             - Chess position checks
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tilescore, ./configs)
//	--db <path>         - Database path (overrides config)
//	--log-level <level> - debug, info, warn, error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilescore/internal/config"
	"github.com/vovakirdan/tilescore/internal/registry"
	// Import variants to register them
	_ "github.com/vovakirdan/tilescore/internal/tiles"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilescore",
	Short: "Replay and verify tile game scores",
	Long: `tilescore recomputes the final score of a 2048-style game from the
random seed and the packed move log, so a claimed score can be checked
without trusting the player.

Moves are packed four per byte, most significant bits first:
  00 Left   01 Right   10 Up   11 Down

Examples:
  tilescore score 123456789 2281 7
  tilescore verify 123456789 2281 7 20 --player ann
  tilescore replay 123456789 2281 7 --watch
  tilescore encode L U L U U L L`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(verifyBatchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chessCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}

	if !registry.Exists(loaded.Replay.Variant) {
		return fmt.Errorf("config: unknown variant %q (see 'tilescore list')", loaded.Replay.Variant)
	}

	level, err := loaded.Log.ParseLevel()
	if err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: loaded.Log.Timestamps,
		Prefix:          "tilescore",
	})
	logger.SetLevel(level)

	cfg = loaded
	return nil
}
