package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Candidates int // Our moves simulated
	Replies    int // Opponent replies simulated
}

type MetricsCollector interface {
	Start()
	AddCandidate()
	AddReply()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	candidates int
	replies    int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.candidates = 0
	m.replies = 0
}

func (m *metricsCollector) AddCandidate() {
	m.candidates++
}

func (m *metricsCollector) AddReply() {
	m.replies++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Replies:    m.replies,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddCandidate()           {}
func (noMetricsCollector) AddReply()               {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
