package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search call.
type SearchMetric struct {
	Nodes    int // positions evaluated, including the root
	Cutoffs  int // alpha-beta cutoffs taken
	MaxDepth int // deepest recursion level reached
	Duration time.Duration
}

// MoveMetric pairs a search metric with its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one complete game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // "draw" when nobody won
	StartTime      time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates counters during a single search. The counter
// methods (AddNode, AddCutoff, ObserveDepth) must be safe for concurrent
// use so a search can fan out across goroutines; Start and Complete
// bracket one search and are called by its owner only.
type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	maxDepth  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.cutoffs.Store(0)
	c.maxDepth.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) ObserveDepth(depth int) {
	for {
		current := c.maxDepth.Load()
		if int64(depth) <= current {
			return
		}
		if c.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Nodes:    int(c.nodes.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
		MaxDepth: int(c.maxDepth.Load()),
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for callers that do not
// want to pay for metric collection.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()               {}
func (dummyCollector) AddNode()             {}
func (dummyCollector) AddCutoff()           {}
func (dummyCollector) ObserveDepth(int)     {}
func (dummyCollector) Complete() SearchMetric {
	return SearchMetric{}
}
