package game

import (
	"math/bits"

	"github.com/pkg/errors"
)

// ErrIllegalMove is returned by TryApplyMove for a move the side may not play.
var ErrIllegalMove = errors.New("illegal move")

// Board is an 8x8 Othello position. It is a value: copying a Board yields an
// independent position.
type Board struct {
	occupied Bitboard // Cells holding any disc
	black    Bitboard // Cells holding a black disc, always a subset of occupied
}

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	b.place(White, 3, 3)
	b.place(Black, 4, 3)
	b.place(Black, 3, 4)
	b.place(White, 4, 4)
	return b
}

// Clone returns an independent copy used for hypothetical play.
func (b Board) Clone() Board {
	return Board{occupied: b.occupied, black: b.black}
}

func (b Board) IsOccupied(x, y int) bool {
	return onBoard(x, y) && b.occupied.has(x, y)
}

// OwnerIs reports whether (x, y) holds a disc of the given side.
func (b Board) OwnerIs(side Side, x, y int) bool {
	return b.IsOccupied(x, y) && b.black.has(x, y) == (side == Black)
}

func (b *Board) place(side Side, x, y int) {
	b.occupied |= bit(x, y)
	if side == Black {
		b.black |= bit(x, y)
	} else {
		b.black &^= bit(x, y)
	}
}

// HasAnyLegalMove reports whether side has at least one legal placement.
func (b Board) HasAnyLegalMove(side Side) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b.canPlace(x, y, side) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether neither side can move.
func (b Board) IsGameOver() bool {
	return !b.HasAnyLegalMove(Black) && !b.HasAnyLegalMove(White)
}

// IsLegalMove reports whether side may play m. Passing is legal only when
// side has no placement.
func (b Board) IsLegalMove(m Move, side Side) bool {
	if m.IsPass() {
		return !b.HasAnyLegalMove(side)
	}
	return b.canPlace(m.X, m.Y, side)
}

func (b Board) canPlace(x, y int, side Side) bool {
	if !onBoard(x, y) || b.occupied.has(x, y) {
		return false
	}
	for _, d := range directions {
		if b.run(x, y, d[0], d[1], side) > 0 {
			return true
		}
	}
	return false
}

// run returns the number of opponent discs sandwiched between (x, y) and an
// own disc along (dx, dy), or 0 when the scan does not end on an own disc.
func (b Board) run(x, y, dx, dy int, side Side) int {
	other := side.Opposite()
	n := 0
	x, y = x+dx, y+dy
	for onBoard(x, y) && b.OwnerIs(other, x, y) {
		n++
		x, y = x+dx, y+dy
	}
	if n > 0 && onBoard(x, y) && b.OwnerIs(side, x, y) {
		return n
	}
	return 0
}

// ApplyMove plays m for side. Passes and illegal moves leave the board
// unchanged.
func (b *Board) ApplyMove(m Move, side Side) {
	if m.IsPass() || !b.IsLegalMove(m, side) {
		return
	}
	for _, d := range directions {
		n := b.run(m.X, m.Y, d[0], d[1], side)
		x, y := m.X, m.Y
		for i := 0; i < n; i++ {
			x, y = x+d[0], y+d[1]
			b.place(side, x, y)
		}
	}
	b.place(side, m.X, m.Y)
}

// TryApplyMove is ApplyMove that reports illegal moves instead of ignoring
// them. The board is unchanged when an error is returned.
func (b *Board) TryApplyMove(m Move, side Side) error {
	if !b.IsLegalMove(m, side) {
		return errors.Wrapf(ErrIllegalMove, "%s for %s", m, side)
	}
	b.ApplyMove(m, side)
	return nil
}

// CountFor returns the number of discs owned by side.
func (b Board) CountFor(side Side) int {
	if side == Black {
		return bits.OnesCount64(uint64(b.black))
	}
	return bits.OnesCount64(uint64(b.occupied &^ b.black))
}

// Occupied returns the total number of discs on the board.
func (b Board) Occupied() int {
	return bits.OnesCount64(uint64(b.occupied))
}

// Winner returns the side with more discs. ok is false on a draw.
func (b Board) Winner() (winner Side, ok bool) {
	black, white := b.CountFor(Black), b.CountFor(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}
