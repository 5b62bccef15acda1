package chesscheck

import "testing"

const (
	matePuzzle   = "rnbq1k1r/1p1p3p/5npb/2pQ1p2/p1B1P2P/8/PPP2PP1/RNB1K1NR w KQ - 2 11"
	tooManyRooks = "rrrq1k1r/1p1p3p/5npb/2pQ1p2/p1B1P2P/8/PPP2PP1/RNB1K1NR w KQ - 2 11"
	startBoard   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

func TestIsBoardValid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"puzzle position", matePuzzle, true},
		{"start board only", startBoard, true},
		{"start position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", true},
		{"promoted rooks exceed missing pawns", tooManyRooks, false},
		{"missing black king", "rnbq1b1r/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", false},
		{"two white kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKKBNR", false},
		{"pawn on back rank", "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR", false},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", false},
		{"side to move in check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", true},
		{"castling rights without rooks", "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", false},
		{"castling right with king moved", "r3k2r/8/8/8/8/8/8/R4K1R w K - 0 1", false},
		{"castling rights in place", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", false},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", false},
		{"en passant after double push", "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1", true},
		{"black en passant after double push", "4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1", true},
		{"garbage", "not a fen", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBoardValid(tc.fen); got != tc.want {
				t.Errorf("IsBoardValid(%q) = %v, expected %v", tc.fen, got, tc.want)
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want bool
	}{
		{"queen mates on f7", matePuzzle, "Qf7", true},
		{"quiet move", matePuzzle, "Qd4", false},
		{"opening move", startBoard, "e2e4", false},
		{"illegal move", matePuzzle, "Qa8", false},
		{"nonsense move", matePuzzle, "Zz9", false},
		{"invalid board", tooManyRooks, "Qf7", false},
		{"opponent already in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", "Re7", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCheckmate(tc.fen, tc.san); got != tc.want {
				t.Errorf("IsCheckmate(%q, %q) = %v, expected %v", tc.fen, tc.san, got, tc.want)
			}
		})
	}
}
