package chesscheck

import "github.com/notnil/chess"

// pieceAt returns the piece on file f, rank r (both 0-7), or NoPiece when
// the coordinates are off the board.
func pieceAt(board *chess.Board, f, r int) chess.Piece {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return chess.NoPiece
	}
	return board.Piece(chess.NewSquare(chess.File(f), chess.Rank(r)))
}

func isPiece(p chess.Piece, c chess.Color, types ...chess.PieceType) bool {
	if p == chess.NoPiece || p.Color() != c {
		return false
	}
	for _, t := range types {
		if p.Type() == t {
			return true
		}
	}
	return false
}

var (
	knightSteps = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	straight    = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal    = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// attacked reports whether any piece of color by attacks file f, rank r.
func attacked(board *chess.Board, f, r int, by chess.Color) bool {
	// A white pawn attacks upwards, so it sits one rank below its target.
	pawnRank := r - 1
	if by == chess.Black {
		pawnRank = r + 1
	}
	if isPiece(pieceAt(board, f-1, pawnRank), by, chess.Pawn) || isPiece(pieceAt(board, f+1, pawnRank), by, chess.Pawn) {
		return true
	}

	for _, d := range knightSteps {
		if isPiece(pieceAt(board, f+d[0], r+d[1]), by, chess.Knight) {
			return true
		}
	}
	for _, d := range kingSteps {
		if isPiece(pieceAt(board, f+d[0], r+d[1]), by, chess.King) {
			return true
		}
	}

	slides := func(dirs [][2]int, types ...chess.PieceType) bool {
		for _, d := range dirs {
			for x, y := f+d[0], r+d[1]; x >= 0 && x <= 7 && y >= 0 && y <= 7; x, y = x+d[0], y+d[1] {
				p := pieceAt(board, x, y)
				if p == chess.NoPiece {
					continue
				}
				if isPiece(p, by, types...) {
					return true
				}
				break
			}
		}
		return false
	}
	return slides(straight, chess.Rook, chess.Queen) || slides(diagonal, chess.Bishop, chess.Queen)
}

// opponentInCheck reports whether the side that just moved left its own king
// attacked, which no legal game can reach.
func opponentInCheck(board *chess.Board, turn chess.Color) bool {
	waiting := turn.Other()
	for sq, p := range board.SquareMap() {
		if isPiece(p, waiting, chess.King) {
			return attacked(board, int(sq.File()), int(sq.Rank()), turn)
		}
	}
	return false
}

// castlingConsistent checks that every castling right in the FEN field has
// its king and rook on their starting squares.
func castlingConsistent(board *chess.Board, rights string) bool {
	if rights == "-" {
		return true
	}
	for _, c := range rights {
		color, rank, rookFile := chess.White, 0, 7
		switch c {
		case 'K':
		case 'Q':
			rookFile = 0
		case 'k':
			color, rank = chess.Black, 7
		case 'q':
			color, rank, rookFile = chess.Black, 7, 0
		default:
			return false
		}
		if !isPiece(pieceAt(board, 4, rank), color, chess.King) || !isPiece(pieceAt(board, rookFile, rank), color, chess.Rook) {
			return false
		}
	}
	return true
}

// enPassantPossible checks the FEN en passant field against the board: the
// target must be on the sixth rank from the mover's side, with the pawn that
// just advanced two squares in front of it and both squares it crossed empty.
func enPassantPossible(board *chess.Board, turn chess.Color, ep string) bool {
	if ep == "-" {
		return true
	}
	if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' {
		return false
	}
	f := int(ep[0] - 'a')
	r := int(ep[1] - '1')

	targetRank, pawnRank, fromRank := 5, 4, 6
	if turn == chess.Black {
		targetRank, pawnRank, fromRank = 2, 3, 1
	}
	if r != targetRank {
		return false
	}
	return pieceAt(board, f, r) == chess.NoPiece &&
		pieceAt(board, f, fromRank) == chess.NoPiece &&
		isPiece(pieceAt(board, f, pawnRank), turn.Other(), chess.Pawn)
}
