// Package chesscheck validates chess puzzle positions and mating moves.
// It ships alongside the tile verifier so puzzle submissions can be checked
// from the same CLI.
package chesscheck

import (
	"strings"

	"github.com/notnil/chess"
)

// IsBoardValid reports whether fen describes a legal position. A bare
// piece-placement field is accepted and completed as white to move with no
// castling rights.
func IsBoardValid(fen string) bool {
	_, ok := parse(fen)
	return ok
}

// IsCheckmate plays san on the position described by fen and reports
// whether it delivers checkmate. Any parse or legality failure yields false.
func IsCheckmate(fen, san string) bool {
	full, ok := parse(fen)
	if !ok {
		return false
	}
	opt, err := chess.FEN(full)
	if err != nil {
		return false
	}
	game := chess.NewGame(opt)
	if err := game.MoveStr(strings.TrimSpace(san)); err != nil {
		return false
	}
	return game.Method() == chess.Checkmate
}

// parse decodes fen without building a game, since move generation assumes
// one king per side. It returns the completed FEN and whether the position
// passed the material and setup checks.
func parse(fen string) (string, bool) {
	full := completeFEN(fen)
	if full == "" {
		return "", false
	}
	var pos chess.Position
	if err := pos.UnmarshalText([]byte(full)); err != nil {
		return "", false
	}
	board := pos.Board()
	if !plausible(board) {
		return "", false
	}

	fields := strings.Fields(full)
	turn := chess.White
	if fields[1] == "b" {
		turn = chess.Black
	}
	if opponentInCheck(board, turn) ||
		!castlingConsistent(board, fields[2]) ||
		!enPassantPossible(board, turn, fields[3]) {
		return "", false
	}
	return full, true
}

func completeFEN(fen string) string {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 1:
		fields = append(fields, "w", "-", "-", "0", "1")
	case 4:
		fields = append(fields, "0", "1")
	case 6:
	default:
		return ""
	}
	return strings.Join(fields, " ")
}

type sideCount struct {
	total  int
	byType map[chess.PieceType]int
}

// plausible applies the material checks the FEN parser leaves out.
func plausible(board *chess.Board) bool {
	counts := map[chess.Color]*sideCount{
		chess.White: {byType: map[chess.PieceType]int{}},
		chess.Black: {byType: map[chess.PieceType]int{}},
	}

	for sq, p := range board.SquareMap() {
		if p == chess.NoPiece {
			continue
		}
		if p.Type() == chess.Pawn && (sq.Rank() == chess.Rank1 || sq.Rank() == chess.Rank8) {
			return false
		}
		c := counts[p.Color()]
		if c == nil {
			return false
		}
		c.total++
		c.byType[p.Type()]++
	}

	for _, c := range counts {
		if c.byType[chess.King] != 1 || c.byType[chess.Pawn] > 8 || c.total > 16 {
			return false
		}
		promoted := surplus(c.byType[chess.Queen], 1) +
			surplus(c.byType[chess.Rook], 2) +
			surplus(c.byType[chess.Bishop], 2) +
			surplus(c.byType[chess.Knight], 2)
		if promoted > 8-c.byType[chess.Pawn] {
			return false
		}
	}
	return true
}

func surplus(n, base int) int {
	if n > base {
		return n - base
	}
	return 0
}
