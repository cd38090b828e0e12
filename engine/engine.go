package engine

import (
	"othello/agent"
	"othello/game"
	"othello/searcher"
)

// Player is one side of a game driven by an engine.
type Player interface {
	// ChooseMove receives the opponent's last move (game.Pass on the first turn
	// or after a pass) and the milliseconds left in this player's budget
	// (agent.Unlimited for none), and returns its own move.
	ChooseMove(opponentMove game.Move, msLeft int) (game.Move, error)
}

// AgentAdapter lets a local agent act as a Player.
type AgentAdapter struct {
	InternalAgent *agent.Agent
}

func (a AgentAdapter) ChooseMove(opponentMove game.Move, msLeft int) (game.Move, error) {
	return a.InternalAgent.ChooseMove(opponentMove, msLeft), nil
}

// SearchMetrics returns the metrics of the agent's last move, if its policy
// records any.
func (a AgentAdapter) SearchMetrics() (searcher.SearchMetrics, bool) {
	reporter, ok := a.InternalAgent.Policy().(searcher.MetricsReporter)
	if !ok {
		return searcher.SearchMetrics{}, false
	}
	return reporter.Metrics(), true
}

// searchReporter is implemented by players that expose search metrics.
type searchReporter interface {
	SearchMetrics() (searcher.SearchMetrics, bool)
}
