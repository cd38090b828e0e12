package searcher

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent in
// experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Select(board game.Board, side game.Side) game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		return game.Pass
	}
	return moves[r.rng.Intn(len(moves))]
}

func (r *Random) Name() string {
	return RandomName
}

// MostFlips plays the legal move that flips the most discs, earliest in scan
// order on a tie.
type MostFlips struct{}

func (MostFlips) Select(board game.Board, side game.Side) game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		return game.Pass
	}
	best := moves[0]
	bestFlips := game.FlipCount(board, best, side)
	for _, m := range moves[1:] {
		if flips := game.FlipCount(board, m, side); flips > bestFlips {
			best, bestFlips = m, flips
		}
	}
	return best
}

func (MostFlips) Name() string {
	return MostFlipsName
}

// TierAndFlips rates moves by tier score plus flip count. The first legal
// move is rated by its tier score alone, which biases ties towards it.
type TierAndFlips struct{}

func (TierAndFlips) Select(board game.Board, side game.Side) game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		return game.Pass
	}
	best := moves[0]
	bestScore := game.TierScore(best)
	for _, m := range moves[1:] {
		if score := game.TierScore(m) + game.FlipCount(board, m, side); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

func (TierAndFlips) Name() string {
	return TierFlipsName
}
