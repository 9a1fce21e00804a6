package eval

import (
	"fmt"

	"github.com/mvpineda/negamax/pkg/board"
)

// Pawns is a position's static evaluation, in units where 1 represents the value of a pawn.
// Positive favors White.
type Pawns float64

// Score is a signed search score, in the same units as Pawns but also used to carry outcome
// sentinels (forced wins/losses) well outside any real evaluation. Positive favors White, as
// with Pawns.
type Score float64

const (
	ZeroScore Score = 0

	// MinScore/MaxScore bound every score the search can produce, including outcome sentinels.
	MinScore Score = -1000000
	MaxScore Score = 1000000

	NegInfScore = MinScore
	InfScore    = MaxScore
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s))
}

// Negate flips the score to the other side's perspective.
func (s Score) Negate() Score {
	return -s
}

// Less reports whether s is strictly worse than o, from the perspective both are expressed in.
func (s Score) Less(o Score) bool {
	return s < o
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
