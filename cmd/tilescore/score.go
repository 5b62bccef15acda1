package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilescore/internal/registry"
	"github.com/vovakirdan/tilescore/internal/tiles"
)

var flagScoreVariant string

var scoreCmd = &cobra.Command{
	Use:   "score <seed> <moves-hex> <count>",
	Short: "Replay a move log and print the score",
	Long: `Replays count moves from the packed log on a board seeded with seed
and prints the final score. Bytes past what count needs are ignored; a
count larger than the log is truncated to the moves present.

Examples:
  tilescore score 123456789 2281 7
  tilescore score 0x75bcd15 0x2281 7
  tilescore score 42 2281111111111a22c4bbbae8 47 --variant tiles_legacy`,
	Args: cobra.ExactArgs(3),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&flagScoreVariant, "variant", "", "Rule variant (default from config)")
}

func runScore(cmd *cobra.Command, args []string) error {
	ra, err := parseReplayArgs(args)
	if err != nil {
		return err
	}

	variant, err := registry.Create(variantOr(flagScoreVariant))
	if err != nil {
		return err
	}

	score := variant.Score(ra.seed, ra.moves, ra.count)
	logger.Debug("replayed", "variant", variant.ID(), "seed", ra.seed, "moves", ra.count, "score", score)
	fmt.Fprintln(cmd.OutOrStdout(), score)
	return nil
}

// variantOr returns id, or the configured default when id is empty.
func variantOr(id string) string {
	if id != "" {
		return id
	}
	return cfg.Replay.Variant
}

var decodeCmd = &cobra.Command{
	Use:   "decode <moves-hex> <count>",
	Short: "Print the moves packed in a log",
	Long: `Unpacks count moves from the log, four per byte starting at the most
significant bits, and prints them as letters (L, R, U, D).

Examples:
  tilescore decode 2281 7`,
	Args: cobra.ExactArgs(2),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := tiles.ParseMovesHex(args[0])
	if err != nil {
		return err
	}
	count, err := parseCount(args[1])
	if err != nil {
		return err
	}

	moves := tiles.DecodeMoves(data, count)
	if uint64(len(moves)) < count {
		logger.Warn("log shorter than count", "count", count, "decoded", len(moves))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tiles.FormatMoves(moves))
	return nil
}

var encodeCmd = &cobra.Command{
	Use:   "encode <moves...>",
	Short: "Pack moves into a hex log",
	Long: `Packs moves into the two-bit log format and prints the hex log and the
move count. Moves may be letters (L R U D), names (left, up...), codes
0-3, or runs of letters such as LULUULL.

Examples:
  tilescore encode LULUULL
  tilescore encode left up left up up left left`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	moves, err := tiles.ParseMoveList(args)
	if err != nil {
		return err
	}

	packed := tiles.EncodeMoves(moves)
	fmt.Fprintf(cmd.OutOrStdout(), "%x %d\n", packed, len(moves))
	return nil
}

// formatBoard prints board rows [y][x] as a right-aligned table.
func formatBoard(board [][]uint32) string {
	var sb strings.Builder
	for _, row := range board {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
			} else {
				fmt.Fprintf(&sb, "%5d", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
