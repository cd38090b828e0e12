package engine

import (
	"time"

	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithTimeBudget gives each player a total thinking budget for the game.
// A player that exceeds it forfeits.
func WithTimeBudget(budget time.Duration) Option {
	return func(e *Engine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Winner  game.Side
	Draw    bool
	Black   int // Final disc count
	White   int // Final disc count
	Turns   int
	Forfeit bool   // Winner won because the loser played illegally or ran out of time
	Reason  string // Why the game was forfeited
	Board   game.Board
}

func (r Result) WinnerName() string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String()
}

// Engine referees a game between two players, starting from the opening.
type Engine struct {
	players  [2]Player
	budget   time.Duration
	maxTurns int
	metrics  metrics.Collector
}

func NewLocalEngine(black, white Player, options ...Option) *Engine {
	if black == nil || white == nil {
		panic("both players are required")
	}
	e := &Engine{
		players:  [2]Player{black, white},
		maxTurns: meta.MaxTurns,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game until neither side can move or a player forfeits.
// Errors are reserved for players that fail to answer.
func (e *Engine) Run() (Result, error) {
	board := game.NewBoard()
	remaining := [2]time.Duration{e.budget, e.budget}
	last := game.Pass
	side := game.Black

	e.metrics.Start()
	log.Info().Msgf("%s is starting", side)

	turn := 0
	for !board.IsGameOver() {
		turn++
		if turn > e.maxTurns {
			return Result{}, errors.Errorf("game did not finish within %d turns", e.maxTurns)
		}

		msLeft := agent.Unlimited
		if e.budget > 0 {
			msLeft = int(remaining[side].Milliseconds())
		}

		start := time.Now()
		move, err := e.players[side].ChooseMove(last, msLeft)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, errors.Wrapf(err, "%s failed to choose a move on turn %d", side, turn)
		}

		if e.budget > 0 {
			remaining[side] -= elapsed
			if remaining[side] < 0 {
				return e.forfeit(board, side, turn, "time budget exhausted"), nil
			}
		}
		flips := game.FlipCount(board, move, side)
		err = board.TryApplyMove(move, side)
		if errors.Is(err, game.ErrIllegalMove) {
			log.Warn().Err(err).Msgf("%s played an illegal move on turn %d", side, turn)
			return e.forfeit(board, side, turn, "illegal move "+move.String()), nil
		}

		moveMetric := metrics.MoveMetric{
			Step:     turn,
			Player:   side.String(),
			Move:     move.String(),
			Flips:    flips,
			Duration: elapsed,
		}
		if reporter, ok := e.players[side].(searchReporter); ok {
			if search, ok := reporter.SearchMetrics(); ok {
				moveMetric.Candidates = search.Candidates
				moveMetric.Replies = search.Replies
			}
		}
		e.metrics.AddMove(moveMetric)
		log.Debug().Msgf("turn %d: %s played %s flipping %d", turn, side, move, flips)

		last = move
		side = side.Opposite()
	}

	winner, ok := board.Winner()
	result := Result{
		Winner: winner,
		Draw:   !ok,
		Black:  board.CountFor(game.Black),
		White:  board.CountFor(game.White),
		Turns:  turn,
		Board:  board,
	}
	log.Info().Msgf("game over after %d turns: black %d, white %d, winner %s", turn, result.Black, result.White, result.WinnerName())
	return result, nil
}

// Metrics returns the metrics of the last game, complete with its outcome.
func (e *Engine) Metrics(result Result) (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := e.metrics.Complete()
	gameMetric.Winner = result.WinnerName()
	gameMetric.Black = result.Black
	gameMetric.White = result.White
	gameMetric.Forfeit = result.Forfeit
	return gameMetric, e.metrics.Moves()
}

func (e *Engine) forfeit(board game.Board, loser game.Side, turn int, reason string) Result {
	log.Warn().Msgf("%s forfeits on turn %d: %s", loser, turn, reason)
	return Result{
		Winner:  loser.Opposite(),
		Black:   board.CountFor(game.Black),
		White:   board.CountFor(game.White),
		Turns:   turn,
		Forfeit: true,
		Reason:  reason,
		Board:   board,
	}
}
