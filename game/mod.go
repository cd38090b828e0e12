package game

// Size is the width and height of the board.
const Size = 8

// Cells is the number of cells on the board.
const Cells = Size * Size

// Side identifies one of the two players. Black always moves first.
type Side int

const (
	Black Side = iota
	White
)

func (s Side) Opposite() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// ParseSide maps "black"/"b" and "white"/"w" to a side.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "black", "b":
		return Black, true
	case "white", "w":
		return White, true
	}
	return Black, false
}

// Bitboard is a 64-cell membership set, bit x+8*y for cell (x, y).
type Bitboard uint64

func bit(x, y int) Bitboard {
	return Bitboard(1) << uint(x+Size*y)
}

func (b Bitboard) has(x, y int) bool {
	return b&bit(x, y) != 0
}

func onBoard(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size
}

// directions are the 8 compass steps scanned by the capture rule.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
