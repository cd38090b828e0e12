package server

import (
	"othello/game"

	"github.com/pkg/errors"
)

// MoveDTO is a move on the wire. Pass is set for a pass, X and Y are then ignored.
type MoveDTO struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Pass bool `json:"pass"`
}

func FromMove(m game.Move) MoveDTO {
	if m.IsPass() {
		return MoveDTO{Pass: true}
	}
	return MoveDTO{X: m.X, Y: m.Y}
}

// Move converts the DTO back to a move. Without Pass the coordinates must
// address a cell, so the Pass sentinel cannot be smuggled in as (-1,-1).
func (d MoveDTO) Move() (game.Move, error) {
	if d.Pass {
		return game.Pass, nil
	}
	m := game.NewMove(d.X, d.Y)
	if !m.OnBoard() {
		return game.Pass, errors.Errorf("move %s is off the board", m)
	}
	return m, nil
}

type NewGameRequest struct {
	Side   string `json:"side"`   // "black" or "white"
	Policy string `json:"policy"` // Empty for the default policy
}

type NewGameResponse struct {
	ID string `json:"id"`
}

type MoveRequest struct {
	Opponent MoveDTO `json:"opponent"`
	MsLeft   int     `json:"ms_left"`
}

type MoveResponse struct {
	Move MoveDTO `json:"move"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
