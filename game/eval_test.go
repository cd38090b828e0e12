package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierTablePartitionsBoard(t *testing.T) {
	counts := map[Tier]int{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			tier := TierOf(x, y)
			require.NotEqual(t, noTier, tier, "(%d,%d) should be classified", x, y)
			require.Equal(t, tier, TierOf(Size-1-x, y), "Tiers should be mirror symmetric")
			require.Equal(t, tier, TierOf(y, x), "Tiers should be diagonal symmetric")
			counts[tier]++
		}
	}
	require.Equal(t, map[Tier]int{
		TierCorner:  4,
		TierEdge:    16,
		TierInner:   8,
		TierMid:     8,
		TierRing:    16,
		TierBad:     8,
		TierVeryBad: 4,
	}, counts)
}

func TestTierScore(t *testing.T) {
	tests := []struct {
		move Move
		want int
	}{
		{NewMove(0, 0), 4},
		{NewMove(7, 7), 4},
		{NewMove(0, 3), 2},
		{NewMove(5, 7), 2},
		{NewMove(3, 3), 1},
		{NewMove(2, 5), 1},
		{NewMove(2, 3), 0},
		{NewMove(1, 4), -1},
		{NewMove(6, 2), -1},
		{NewMove(0, 1), -2},
		{NewMove(6, 7), -2},
		{NewMove(1, 1), -3},
		{NewMove(6, 6), -3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, TierScore(tt.move), "TierScore%s", tt.move)
	}

	require.Panics(t, func() { TierScore(NewMove(8, 0)) }, "Unclassified cells are an invariant violation")
	require.Panics(t, func() { TierScore(Pass) }, "Pass has no cell")
}

func TestPositionalScore(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 6, PositionalScore(b, Black), "Two centre discs are worth 3 each")
		require.Equal(t, 6, PositionalScore(b, White))
	})

	t.Run("one sided", func(t *testing.T) {
		b := MustParseLayout(`
			b......w
			.w......
			..b.....
			........
			........
			........
			........
			w.......`)
		require.Equal(t, 50+7, PositionalScore(b, Black))
		require.Equal(t, 50+50-15, PositionalScore(b, White))

		blackOnly := MustParseLayout(`
			b.......
			........
			..b.....
			........
			........
			........
			........
			........`)
		require.Equal(t, PositionalScore(blackOnly, Black), PositionalScore(b, Black), "Opponent discs should not be subtracted")
	})

	t.Run("weights", func(t *testing.T) {
		require.Equal(t, 2, PositionalScore(MustParseLayout(`
			........
			..b.....
			........
			........
			........
			........
			........
			........`), Black), "Ring next to a C-square is worth 2")
		require.Equal(t, 1, PositionalScore(MustParseLayout(`
			........
			...b....
			........
			........
			........
			........
			........
			........`), Black), "Rest of the ring is worth 1")
		require.Equal(t, 10-15, PositionalScore(MustParseLayout(`
			.b..b...
			........
			........
			........
			........
			........
			........
			........`), Black), "C-square -15, edge 10")
	})
}
