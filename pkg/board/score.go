package board

import "fmt"

// Score is signed move or position score in centi-pawns. Positive favors white. If all pawns
// become queens and the opponent has only the king left, the standard material advantage score
// is: 9*8 (p) + 9 (q) + 2*5 (r) + 2*3 (k) + 2*3 (b) = 103. Score must be within +/- 300.00. 16 bits.
type Score int16

const (
	MinScore Score = -30000
	MaxScore Score = 30000
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// pieceValue is the nominal value of a piece in centi-pawns. Mirrors pkg/eval's NominalValue
// table (in pawns, scaled by 100 here); the two must be kept in step, and live apart because
// board cannot import eval without a cycle. The King has no material value.
func pieceValue(p Piece) Score {
	switch p {
	case Pawn:
		return 100
	case Bishop, Knight:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// MaterialOf recomputes the material balance of pos from scratch, White-positive, in
// centi-pawns. Used to seed a new Board and to check the incrementally-maintained value for
// drift.
func MaterialOf(pos *Position) Score {
	var s Score
	for p := Pawn; p < NumPieces; p++ {
		count := pos.Piece(White, p).PopCount() - pos.Piece(Black, p).PopCount()
		s += Score(count) * pieceValue(p)
	}
	return s
}

// materialDelta is the change in White-positive material balance caused by m, made by turn.
// Captures remove the opponent's piece; promotions swap a pawn for the promoted piece. Both
// contribute with turn's sign, since removing an opponent's piece or upgrading your own always
// moves the balance in the mover's favor.
func materialDelta(turn Color, m Move) Score {
	var delta Score
	if m.IsCapture() {
		delta += pieceValue(m.Capture)
	}
	if m.IsPromotion() {
		delta += pieceValue(m.Promotion) - pieceValue(Pawn)
	}
	if turn == Black {
		delta = -delta
	}
	return delta
}
