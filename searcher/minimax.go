package searcher

import (
	"fmt"
	"math"

	"arcade/game"
	"arcade/metrics"
)

// Score values for terminal positions, from the searching player's
// perspective. Lines that win in fewer moves are not preferred: every
// forced win scores Win regardless of depth, and ties are broken by
// enumeration order.
const (
	Win  = 1.0
	Loss = -Win
	Draw = 0.0
)

// Result is the outcome of a search: the chosen move, if any legal move
// exists, and the predicted score under optimal play by both sides.
type Result struct {
	Move    game.Move
	HasMove bool
	Score   float64
}

type Option func(m *Minimax)

// WithAlphaBeta enables alpha-beta pruning. Pruning never changes the
// returned move or score, it only skips subtrees that cannot affect them.
func WithAlphaBeta() Option {
	return func(m *Minimax) {
		m.prune = true
	}
}

// WithMetrics makes the searcher report node, cutoff, and depth counters
// with every search.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// WithCollector supplies an external collector, e.g. one shared with an
// experiment harness.
func WithCollector(c metrics.Collector) Option {
	return func(m *Minimax) {
		if c != nil {
			m.metrics = c
		}
	}
}

// Minimax searches a two-player, zero-sum, fully-observable game
// exhaustively: no iterative deepening, no time budget, no early
// termination. It is only appropriate for state spaces small enough to
// enumerate fully. A Minimax holds no state between calls.
type Minimax struct {
	prune   bool
	metrics metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search computes the game-theoretically optimal move for player on the
// given board, assuming the opponent also plays optimally. The returned
// score is from player's perspective: Win if player forces a win, Loss if
// the opponent does, Draw otherwise.
//
// The board is mutated and restored many times during the call and is
// returned to its original state before Search returns. On a terminal
// board the result carries no move and the score of the terminal outcome.
//
// When multiple moves share the best score, the first in the board's
// enumeration order is returned, which makes move selection deterministic
// for a given position.
func (m *Minimax) Search(b game.Board, player game.Player) (Result, metrics.SearchMetric, error) {
	if player != game.P1 && player != game.P2 {
		return Result{}, metrics.SearchMetric{}, fmt.Errorf("cannot search for %s", player)
	}

	m.metrics.Start()
	m.metrics.AddNode()

	outcome := b.Outcome()
	moves := b.LegalMoves()
	if outcome.Terminal() {
		if len(moves) > 0 {
			return Result{}, m.metrics.Complete(),
				fmt.Errorf("%w: outcome is %v but %d moves are legal", game.ErrInvalidState, outcome, len(moves))
		}
		return Result{Score: terminalScore(outcome, player)}, m.metrics.Complete(), nil
	}
	if len(moves) == 0 {
		return Result{}, m.metrics.Complete(),
			fmt.Errorf("%w: outcome is ongoing but no moves are legal", game.ErrInvalidState)
	}

	// The root always maximizes: the searching player is to move.
	best := Result{}
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, move := range moves {
		score, err := m.explore(b, move, player, player, 1, alpha, beta)
		if err != nil {
			return Result{}, m.metrics.Complete(), err
		}
		if !best.HasMove || score > best.Score {
			best = Result{Move: move, HasMove: true, Score: score}
		}
		if m.prune && best.Score > alpha {
			alpha = best.Score
		}
	}

	return best, m.metrics.Complete(), nil
}

// explore applies move for toMove, scores the resulting position from
// root's perspective, and undoes the move before returning.
func (m *Minimax) explore(b game.Board, move game.Move, toMove, root game.Player, depth int, alpha, beta float64) (float64, error) {
	if err := b.Apply(move, toMove); err != nil {
		return 0, fmt.Errorf("applying move %d for %s: %w", move, toMove, err)
	}
	score, err := m.value(b, toMove.Opponent(), root, depth, alpha, beta)
	if undoErr := b.Undo(move); undoErr != nil {
		return 0, fmt.Errorf("undoing move %d: %w", move, undoErr)
	}
	return score, err
}

// value is the minimax value of the current position from root's
// perspective, with toMove to play.
func (m *Minimax) value(b game.Board, toMove, root game.Player, depth int, alpha, beta float64) (float64, error) {
	m.metrics.AddNode()
	m.metrics.ObserveDepth(depth)

	outcome := b.Outcome()
	if outcome.Terminal() {
		return terminalScore(outcome, root), nil
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: outcome is ongoing but no moves are legal", game.ErrInvalidState)
	}

	maximizing := toMove == root
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}

	for _, move := range moves {
		score, err := m.explore(b, move, toMove, root, depth+1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if maximizing {
			if score > best {
				best = score
			}
			if m.prune {
				if best > alpha {
					alpha = best
				}
				if alpha >= beta {
					m.metrics.AddCutoff()
					break
				}
			}
		} else {
			if score < best {
				best = score
			}
			if m.prune {
				if best < beta {
					beta = best
				}
				if alpha >= beta {
					m.metrics.AddCutoff()
					break
				}
			}
		}
	}

	return best, nil
}

func terminalScore(outcome game.Outcome, root game.Player) float64 {
	switch outcome.Status {
	case game.StatusWon:
		if outcome.Winner == root {
			return Win
		}
		return Loss
	default:
		return Draw
	}
}
