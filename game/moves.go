package game

// LegalMoves returns every legal placement for side, scanning x in the outer
// loop and y in the inner loop.
func LegalMoves(b Board, side Side) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b.canPlace(x, y, side) {
				moves = append(moves, NewMove(x, y))
			}
		}
	}
	return moves
}

// FlipCount returns how many opponent discs m would flip, without playing it.
func FlipCount(b Board, m Move, side Side) int {
	if m.IsPass() || !b.IsLegalMove(m, side) {
		return 0
	}
	flips := 0
	for _, d := range directions {
		flips += b.run(m.X, m.Y, d[0], d[1], side)
	}
	return flips
}

// FirstLegalMove returns the first legal placement in LegalMoves order.
func FirstLegalMove(b Board, side Side) (Move, bool) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b.canPlace(x, y, side) {
				return NewMove(x, y), true
			}
		}
	}
	return Pass, false
}
