package searcher

import (
	"othello/game"
)

type Option func(l *Lookahead)

// WithMetrics records search metrics for every Select call.
func WithMetrics() Option {
	return func(l *Lookahead) {
		l.metrics = NewMetricsCollector()
	}
}

// Lookahead scores each of our moves after one simulated greedy reply.
type Lookahead struct {
	metrics MetricsCollector
	last    SearchMetrics
}

func NewLookahead(options ...Option) *Lookahead {
	l := &Lookahead{
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Lookahead) Select(board game.Board, side game.Side) game.Move {
	l.metrics.Start()
	move := lookahead(board, side, side.Opposite(), l.metrics)
	l.last = l.metrics.Complete()
	return move
}

func (l *Lookahead) Name() string {
	return LookaheadName
}

// Metrics returns the metrics of the last Select call, zero unless the
// lookahead was built WithMetrics.
func (l *Lookahead) Metrics() SearchMetrics {
	return l.last
}

// SelectLookahead returns our move with the best positional differential
// after opp answers with its greedy reply. The first legal move is the initial
// incumbent and is scored even when opp has to pass; later moves that leave
// opp without a reply are not scored and cannot replace the incumbent.
func SelectLookahead(board game.Board, our, opp game.Side) game.Move {
	return lookahead(board, our, opp, NewNoMetricsCollector())
}

func lookahead(board game.Board, our, opp game.Side, metrics MetricsCollector) game.Move {
	if !board.HasAnyLegalMove(our) {
		return game.Pass
	}
	moves := game.LegalMoves(board, our)

	best := moves[0]
	bestScore := replyScore(board, best, our, opp, metrics)

	for _, move := range moves[1:] {
		metrics.AddCandidate()
		next := board.Clone()
		next.ApplyMove(move, our)
		// A candidate that leaves the opponent without a reply is skipped
		if !next.HasAnyLegalMove(opp) {
			continue
		}
		next.ApplyMove(SelectGreedy(next, opp), opp)
		metrics.AddReply()
		if score := differential(next, our, opp); score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}

// replyScore plays move and the greedy reply on a clone and scores the result.
func replyScore(board game.Board, move game.Move, our, opp game.Side, metrics MetricsCollector) int {
	metrics.AddCandidate()
	next := board.Clone()
	next.ApplyMove(move, our)
	reply := SelectGreedy(next, opp)
	if !reply.IsPass() {
		metrics.AddReply()
	}
	next.ApplyMove(reply, opp)
	return differential(next, our, opp)
}

func differential(board game.Board, our, opp game.Side) int {
	return game.PositionalScore(board, our) - game.PositionalScore(board, opp)
}
