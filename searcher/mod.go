package searcher

import (
	"othello/game"

	"github.com/pkg/errors"
)

// Policy picks a move for side on board. It returns game.Pass when side has
// no legal move and never mutates board.
type Policy interface {
	Select(board game.Board, side game.Side) game.Move
	Name() string
}

// MetricsReporter is implemented by policies that record search metrics.
type MetricsReporter interface {
	Metrics() SearchMetrics
}

// Names of the policies accepted by PolicyByName.
const (
	GreedyName     = "greedy"
	LookaheadName  = "lookahead"
	RandomName     = "random"
	MostFlipsName  = "flips"
	TierFlipsName  = "tier"
	DefaultPolicy  = GreedyName
	defaultRngSeed = 1
)

// PolicyByName builds a fresh policy from its configuration name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case GreedyName, "":
		return Greedy{}, nil
	case LookaheadName:
		return NewLookahead(WithMetrics()), nil
	case RandomName:
		return NewRandom(defaultRngSeed), nil
	case MostFlipsName:
		return MostFlips{}, nil
	case TierFlipsName:
		return TierAndFlips{}, nil
	}
	return nil, errors.Errorf("unknown policy %q", name)
}
