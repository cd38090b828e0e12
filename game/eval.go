package game

import (
	"fmt"
	"math/bits"
)

// Tier classifies a cell by how favourable it is to place a disc there.
type Tier int8

const (
	noTier      Tier = iota
	TierCorner       // The four corners
	TierEdge         // Edge cells at least two away from a corner
	TierInner        // Start block and the (2,2)-type diagonal cells
	TierMid          // Ring around the start block
	TierRing         // Second ring in from the edge, excluding X-squares
	TierBad          // C-squares, orthogonally next to a corner
	TierVeryBad      // X-squares, diagonally next to a corner
)

var tierNames = [...]string{"none", "corner", "edge", "inner", "mid", "ring", "bad", "very-bad"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int8(t))
	}
	return tierNames[t]
}

var tierScores = [...]int{
	TierCorner:  4,
	TierEdge:    2,
	TierInner:   1,
	TierMid:     0,
	TierRing:    -1,
	TierBad:     -2,
	TierVeryBad: -3,
}

// tiers is indexed [y][x].
var tiers = func() [Size][Size]Tier {
	const (
		c = TierCorner
		e = TierEdge
		i = TierInner
		m = TierMid
		r = TierRing
		b = TierBad
		v = TierVeryBad
	)
	return [Size][Size]Tier{
		{c, b, e, e, e, e, b, c},
		{b, v, r, r, r, r, v, b},
		{e, r, i, m, m, i, r, e},
		{e, r, m, i, i, m, r, e},
		{e, r, m, i, i, m, r, e},
		{e, r, i, m, m, i, r, e},
		{b, v, r, r, r, r, v, b},
		{c, b, e, e, e, e, b, c},
	}
}()

// positionalWeights is indexed [y][x]: corners 50, edges 10, the (2,2)-type
// diagonal 7, the centre 3, the ring next to the C-squares 2, the rest of that
// ring 1 and every cell touching a corner -15.
var positionalWeights = [Size][Size]int{
	{50, -15, 10, 10, 10, 10, -15, 50},
	{-15, -15, 2, 1, 1, 2, -15, -15},
	{10, 2, 7, 3, 3, 7, 2, 10},
	{10, 1, 3, 3, 3, 3, 1, 10},
	{10, 1, 3, 3, 3, 3, 1, 10},
	{10, 2, 7, 3, 3, 7, 2, 10},
	{-15, -15, 2, 1, 1, 2, -15, -15},
	{50, -15, 10, 10, 10, 10, -15, 50},
}

// TierOf returns the tier of (x, y).
func TierOf(x, y int) Tier {
	if !onBoard(x, y) {
		return noTier
	}
	return tiers[y][x]
}

// TierScore rates the target cell of m independently of any position.
// It panics for a move that does not address a classified cell.
func TierScore(m Move) int {
	t := TierOf(m.X, m.Y)
	if t == noTier {
		panic(fmt.Sprintf("cell %s is not a playable coordinate", m))
	}
	return tierScores[t]
}

// PositionalScore sums the positional weight of every disc owned by side.
// The opponent's discs are not subtracted; compare two sides by calling it
// once for each.
func PositionalScore(b Board, side Side) int {
	owned := b.black
	if side == White {
		owned = b.occupied &^ b.black
	}
	score := 0
	for owned != 0 {
		idx := bits.TrailingZeros64(uint64(owned))
		score += positionalWeights[idx/Size][idx%Size]
		owned &= owned - 1
	}
	return score
}
