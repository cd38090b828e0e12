package game

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseLayout builds a board from a 64-cell description, one character per
// cell in index order (cell i is (i%8, i/8)). 'b' marks a black disc, 'w' a
// white disc and any other character an empty cell. Whitespace is ignored so
// fixtures can be written as eight rows.
func ParseLayout(layout string) (Board, error) {
	cells := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, layout)

	runes := []rune(cells)
	if len(runes) != Cells {
		return Board{}, errors.Errorf("layout has %d cells, want %d", len(runes), Cells)
	}

	var b Board
	for i, r := range runes {
		switch r {
		case 'b':
			b.place(Black, i%Size, i/Size)
		case 'w':
			b.place(White, i%Size, i/Size)
		}
	}
	return b, nil
}

// MustParseLayout is ParseLayout for fixtures; it panics on a malformed layout.
func MustParseLayout(layout string) Board {
	b, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the board as eight rows using the ParseLayout markers.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch {
			case b.OwnerIs(Black, x, y):
				sb.WriteByte('b')
			case b.OwnerIs(White, x, y):
				sb.WriteByte('w')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
