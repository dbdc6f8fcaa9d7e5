package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"arcade/agent"
	"arcade/game"
	"arcade/metrics"
)

// MaxMoves guards against boards that never reach a terminal state.
const MaxMoves = 10000

// Update records one played move.
type Update struct {
	Step   int
	Player game.Player
	Move   game.Move
	Metric metrics.SearchMetric
}

type Option func(e *Local)

// WithDelay pauses before each move. This exists purely for presentation
// pacing when a human is watching; it has no effect on move selection.
func WithDelay(d time.Duration) Option {
	return func(e *Local) {
		if d > 0 {
			e.delay = d
		}
	}
}

func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// Local runs a game between two agents on a single board, start to
// finish, in process.
type Local struct {
	board    game.Board
	agents   map[game.Player]agent.Agent
	delay    time.Duration
	maxMoves int
	updates  []Update
}

// NewLocal pairs first (playing as game.P1) against second (game.P2) on
// the given board.
func NewLocal(board game.Board, first, second agent.Agent, options ...Option) *Local {
	e := &Local{
		board: board,
		agents: map[game.Player]agent.Agent{
			game.P1: first,
			game.P2: second,
		},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates the two agents until the board is terminal and returns
// the final outcome. game.P1 moves first.
func (e *Local) Run() (game.Outcome, error) {
	toMove := game.P1
	for step := 1; ; step++ {
		outcome := e.board.Outcome()
		if outcome.Terminal() {
			log.Debug().Stringer("outcome", outcome).Int("moves", len(e.updates)).Msg("game over")
			return outcome, nil
		}
		if step > e.maxMoves {
			return outcome, fmt.Errorf("no terminal state after %d moves", e.maxMoves)
		}

		if e.delay > 0 {
			time.Sleep(e.delay)
		}

		a := e.agents[toMove]
		move, metric, err := a.FindMove(e.board, toMove)
		if err != nil {
			return outcome, fmt.Errorf("agent %s (%s): %w", a.Name(), toMove, err)
		}
		if err := e.board.Apply(move, toMove); err != nil {
			return outcome, fmt.Errorf("agent %s (%s) chose move %d: %w", a.Name(), toMove, move, err)
		}

		log.Debug().
			Stringer("player", toMove).
			Int("move", int(move)).
			Int("step", step).
			Msg("move played")

		e.updates = append(e.updates, Update{
			Step:   step,
			Player: toMove,
			Move:   move,
			Metric: metric,
		})
		toMove = toMove.Opponent()
	}
}

// Updates returns the moves played so far, in order.
func (e *Local) Updates() []Update {
	return e.updates
}
