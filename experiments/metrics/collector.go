package metrics

import (
	"time"
)

type MoveMetric struct {
	Step     int
	Player   string // Side that moved
	Move     string // "(x,y)" or "pass"
	Flips    int
	Duration time.Duration

	Candidates int // Own moves simulated by the search, 0 without search
	Replies    int // Opponent replies simulated by the search
}

type GameMetric struct {
	Winner     string // "black", "white" or "draw"
	Black      int    // Final disc count
	White      int    // Final disc count
	Forfeit    bool   // Decided by an illegal move or an exhausted budget
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddMove(metric MoveMetric)
	Moves() []MoveMetric
	Complete() GameMetric
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.moves = nil
}

func (m *collector) AddMove(metric MoveMetric) {
	m.moves = append(m.moves, metric)
}

func (m *collector) Moves() []MoveMetric {
	return m.moves
}

// Complete returns the timing of the game; the engine fills in the outcome.
func (m *collector) Complete() GameMetric {
	end := time.Now()
	return GameMetric{
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
		TotalMoves: len(m.moves),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                    {}
func (m *dummyCollector) AddMove(metric MoveMetric) {}
func (m *dummyCollector) Moves() []MoveMetric       { return nil }
func (m *dummyCollector) Complete() GameMetric      { return GameMetric{} }
