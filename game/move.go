package game

import "fmt"

// Move is a disc placement at (X, Y), or Pass.
type Move struct {
	X int
	Y int
}

// Pass is the move played by a side with no legal placement.
var Pass = Move{X: -1, Y: -1}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsPass() bool {
	return m == Pass
}

// OnBoard reports whether the move addresses a real cell.
func (m Move) OnBoard() bool {
	return onBoard(m.X, m.Y)
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
