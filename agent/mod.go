package agent

import (
	"time"

	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Unlimited is the msLeft value meaning no time budget.
const Unlimited = -1

type Option func(a *Agent)

// WithPolicy sets the move selection policy. The default is searcher.Greedy.
func WithPolicy(policy searcher.Policy) Option {
	return func(a *Agent) {
		if policy != nil {
			a.policy = policy
		}
	}
}

// Agent tracks the game from one side's point of view and picks its moves.
type Agent struct {
	side   game.Side
	board  game.Board
	policy searcher.Policy
}

func New(side game.Side, options ...Option) *Agent {
	a := &Agent{
		side:   side,
		board:  game.NewBoard(),
		policy: searcher.Greedy{},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Side() game.Side {
	return a.side
}

func (a *Agent) Policy() searcher.Policy {
	return a.policy
}

// Board returns a copy of the position the agent is tracking.
func (a *Agent) Board() game.Board {
	return a.board.Clone()
}

// SetBoard replaces the tracked position, for fixtures.
func (a *Agent) SetBoard(board game.Board) {
	a.board = board.Clone()
}

// ChooseMove applies the opponent's last move (game.Pass on the first turn or
// after a pass), then selects, applies and returns our move. It returns
// game.Pass without touching the board once the game is over, or when we have
// no legal move. msLeft is Unlimited or a budget in milliseconds; it is not
// enforced here.
func (a *Agent) ChooseMove(opponentMove game.Move, msLeft int) game.Move {
	if a.board.IsGameOver() {
		return game.Pass
	}
	a.board.ApplyMove(opponentMove, a.side.Opposite())

	start := time.Now()
	move := a.policy.Select(a.board, a.side)
	elapsed := time.Since(start)
	if msLeft != Unlimited && elapsed > time.Duration(msLeft)*time.Millisecond {
		log.Warn().
			Str("side", a.side.String()).
			Str("policy", a.policy.Name()).
			Dur("elapsed", elapsed).
			Int("ms_left", msLeft).
			Msg("move selection exceeded the time budget")
	}

	a.board.ApplyMove(move, a.side)
	return move
}
