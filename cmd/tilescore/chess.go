package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilescore/internal/chesscheck"
)

var chessCmd = &cobra.Command{
	Use:   "chess",
	Short: "Chess position checks",
	Long: `Checks chess positions given in FEN. A board-only FEN (the first field)
is treated as white to move with no castling or en passant.`,
}

var chessValidCmd = &cobra.Command{
	Use:   "valid <fen>",
	Short: "Report whether a position is plausible",
	Long: `Prints true when the position parses and could arise in a game: one
king per side, no pawns on the back ranks, and piece counts within what
promotions allow.

Example:
  tilescore chess valid "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), chesscheck.IsBoardValid(args[0]))
	},
}

var chessMateCmd = &cobra.Command{
	Use:   "mate <fen> <san>",
	Short: "Report whether a move delivers checkmate",
	Long: `Prints true when the move, in standard algebraic notation, is legal in
the position and delivers checkmate.

Example:
  tilescore chess mate "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4" Qxf7`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), chesscheck.IsCheckmate(args[0], args[1]))
	},
}

func init() {
	chessCmd.AddCommand(chessValidCmd)
	chessCmd.AddCommand(chessMateCmd)
}
