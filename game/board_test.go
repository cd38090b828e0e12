package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 4, b.Occupied(), "Opening should hold four discs")
	require.Equal(t, 2, b.CountFor(Black), "Black should start with two discs")
	require.Equal(t, 2, b.CountFor(White), "White should start with two discs")
	require.True(t, b.OwnerIs(Black, 4, 3), "Black should own (4,3)")
	require.True(t, b.OwnerIs(Black, 3, 4), "Black should own (3,4)")
	require.True(t, b.OwnerIs(White, 3, 3), "White should own (3,3)")
	require.True(t, b.OwnerIs(White, 4, 4), "White should own (4,4)")
	require.False(t, b.OwnerIs(Black, 0, 0), "Empty cells have no owner")
	require.False(t, b.OwnerIs(White, 0, 0), "Empty cells have no owner")
	require.False(t, b.IsGameOver(), "Opening is not finished")
}

func TestSideOpposite(t *testing.T) {
	require.Equal(t, White, Black.Opposite())
	require.Equal(t, Black, White.Opposite())
	require.Equal(t, Black, Black.Opposite().Opposite(), "Opposite should be involutive")
}

func TestIsLegalMove(t *testing.T) {
	t.Run("occupied target", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsLegalMove(NewMove(3, 3), Black), "Occupied cells are never legal")
	})

	t.Run("no sandwich", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsLegalMove(NewMove(0, 0), Black), "A move that captures nothing is illegal")
		require.False(t, b.IsLegalMove(NewMove(2, 2), Black), "Diagonal touch without own disc beyond is illegal")
	})

	t.Run("off board", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsLegalMove(NewMove(8, 3), Black))
	})

	t.Run("scan must end on an own disc on the board", func(t *testing.T) {
		b := MustParseLayout(`
			.wwwwwww
			........
			........
			........
			........
			........
			........
			........`)
		require.False(t, b.IsLegalMove(NewMove(0, 0), Black), "A run of opponent discs reaching the edge captures nothing")
	})

	t.Run("pass", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsLegalMove(Pass, Black), "Passing is illegal while a placement exists")

		stuck := MustParseLayout(`
			bbbbbbbb
			........
			........
			........
			........
			........
			........
			........`)
		require.True(t, stuck.IsLegalMove(Pass, Black), "Passing is legal without any placement")
		require.True(t, stuck.IsLegalMove(Pass, White), "Passing is legal without any placement")
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("single flip from the opening", func(t *testing.T) {
		b := NewBoard()
		b.ApplyMove(NewMove(2, 3), Black)

		require.Equal(t, 5, b.Occupied())
		require.Equal(t, 4, b.CountFor(Black))
		require.Equal(t, 1, b.CountFor(White))
		require.True(t, b.OwnerIs(Black, 2, 3), "Target should be placed")
		require.True(t, b.OwnerIs(Black, 3, 3), "Sandwiched disc should flip")
	})

	t.Run("flips every capturing direction", func(t *testing.T) {
		b := MustParseLayout(`
			b..b..b.
			.w.w.w..
			..www...
			bww.wwb.
			..www...
			.w.w.w..
			b..b..b.
			........`)
		b.ApplyMove(NewMove(3, 3), Black)

		require.Equal(t, 25, b.Occupied(), "Only the target should be added")
		require.Equal(t, 0, b.CountFor(White), "All 16 white discs lie on capturing lines")
		require.Equal(t, 25, b.CountFor(Black))
	})

	t.Run("directions that do not close are left alone", func(t *testing.T) {
		b := MustParseLayout(`
			........
			........
			........
			.bww.ww.
			........
			........
			........
			........`)
		b.ApplyMove(NewMove(4, 3), Black)

		require.True(t, b.OwnerIs(Black, 2, 3))
		require.True(t, b.OwnerIs(Black, 3, 3))
		require.True(t, b.OwnerIs(White, 5, 3), "Open run to the east should not flip")
		require.True(t, b.OwnerIs(White, 6, 3), "Open run to the east should not flip")
	})

	t.Run("illegal moves leave the board unchanged", func(t *testing.T) {
		b := NewBoard()
		before := b
		b.ApplyMove(NewMove(0, 0), Black)
		require.Equal(t, before, b)
		b.ApplyMove(NewMove(3, 3), White)
		require.Equal(t, before, b)
		b.ApplyMove(Pass, Black)
		require.Equal(t, before, b, "Passing never mutates")
	})
}

func TestTryApplyMove(t *testing.T) {
	b := NewBoard()
	before := b

	err := b.TryApplyMove(NewMove(0, 0), Black)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalMove), "Error should wrap ErrIllegalMove")
	require.Equal(t, before, b, "Board should not change on error")

	require.NoError(t, b.TryApplyMove(NewMove(3, 2), Black))
	require.True(t, b.OwnerIs(Black, 3, 3))
}

func TestClone(t *testing.T) {
	b := NewBoard()
	before := b
	clone := b.Clone()
	clone.ApplyMove(NewMove(2, 3), Black)

	require.Equal(t, before, b, "Mutating a clone should not touch the source")
	require.NotEqual(t, b, clone)
}

func TestIsGameOver(t *testing.T) {
	full := MustParseLayout(`
		bbbbbbbb
		bbbbbbbb
		bbbbbbbb
		bbbbbbbb
		wwwwwwww
		wwwwwwww
		wwwwwwww
		wwwwwwww`)
	require.True(t, full.IsGameOver(), "A full board is over")

	wiped := MustParseLayout(`
		........
		........
		...bb...
		...bb...
		........
		........
		........
		........`)
	require.True(t, wiped.IsGameOver(), "A board with only one colour is over before it is full")
	winner, ok := wiped.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)
}

func TestRandomGameInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		b := NewBoard()
		side := Black
		for !b.IsGameOver() {
			require.Equal(t, b.Occupied(), b.CountFor(Black)+b.CountFor(White), "Counts should add up")
			require.Equal(t, b.IsGameOver(), !b.HasAnyLegalMove(Black) && !b.HasAnyLegalMove(White))

			moves := LegalMoves(b, side)
			before := b.Occupied()
			if len(moves) == 0 {
				b.ApplyMove(Pass, side)
				require.Equal(t, before, b.Occupied(), "Passing adds no disc")
			} else {
				b.ApplyMove(moves[rng.Intn(len(moves))], side)
				require.Equal(t, before+1, b.Occupied(), "A legal placement adds exactly one disc")
			}
			side = side.Opposite()
		}
		require.Equal(t, b.Occupied(), b.CountFor(Black)+b.CountFor(White))
	}
}
