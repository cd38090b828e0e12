package searcher

import "othello/game"

// candidateGroups lists the cells the greedy policy tries, strongest group
// first.
var candidateGroups = [][]game.Move{
	// Corners
	{{X: 0, Y: 0}, {X: 0, Y: 7}, {X: 7, Y: 0}, {X: 7, Y: 7}},
	// Edges, at least two cells away from a corner
	{
		{X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 7, Y: 2}, {X: 7, Y: 3}, {X: 7, Y: 4}, {X: 7, Y: 5},
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 7}, {X: 3, Y: 7}, {X: 4, Y: 7}, {X: 5, Y: 7},
	},
	// Good corners, two steps in along a corner diagonal
	{{X: 2, Y: 2}, {X: 2, Y: 5}, {X: 5, Y: 2}, {X: 5, Y: 5}},
	// Inner core around the start block
	{{X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}},
	// Near-corner ring next to the C-squares
	{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 2}, {X: 1, Y: 5}, {X: 2, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 6}},
	// Rest of that ring
	{{X: 1, Y: 3}, {X: 1, Y: 4}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 6, Y: 3}, {X: 6, Y: 4}, {X: 3, Y: 6}, {X: 4, Y: 6}},
	// C-squares
	{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 1}, {X: 0, Y: 6}, {X: 1, Y: 7}, {X: 6, Y: 7}, {X: 7, Y: 6}},
}

// Greedy plays the strongest group that holds a legal move, breaking ties
// inside a group by flip count.
type Greedy struct{}

func (Greedy) Select(board game.Board, side game.Side) game.Move {
	return SelectGreedy(board, side)
}

func (Greedy) Name() string {
	return GreedyName
}

// SelectGreedy walks candidateGroups in order. Within a group it takes the
// cell with the most flips (first listed wins a tie) and returns it if it is
// legal. When no group yields a move it falls back to the first legal move in
// scan order, and to game.Pass when there is none.
func SelectGreedy(board game.Board, side game.Side) game.Move {
	for _, group := range candidateGroups {
		best := group[0]
		bestFlips := game.FlipCount(board, best, side)
		for _, m := range group[1:] {
			if flips := game.FlipCount(board, m, side); flips > bestFlips {
				best, bestFlips = m, flips
			}
		}
		if board.IsLegalMove(best, side) {
			return best
		}
	}

	if m, ok := game.FirstLegalMove(board, side); ok {
		return m
	}
	return game.Pass
}
