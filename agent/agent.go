package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"arcade/game"
	"arcade/metrics"
	"arcade/searcher"
)

// Agent picks one move for a player on a board. Implementations must not
// leave the board modified.
type Agent interface {
	Name() string
	FindMove(b game.Board, p game.Player) (game.Move, metrics.SearchMetric, error)
}

// Difficulty selects one of the built-in agent tiers.
type Difficulty string

const (
	Easy   Difficulty = "easy"   // uniformly random
	Medium Difficulty = "medium" // win if possible, block if necessary, else random
	Hard   Difficulty = "hard"   // exhaustive minimax
)

// New builds the agent for a difficulty tier. The seed only affects the
// random tiers; the hard tier is deterministic.
func New(difficulty Difficulty, seed uint64) (Agent, error) {
	switch difficulty {
	case Easy:
		return NewRandom(seed), nil
	case Medium:
		return NewReactive(seed), nil
	case Hard:
		return NewOptimal(), nil
	default:
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}
}

// Random plays uniformly at random among legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) Name() string {
	return string(Easy)
}

func (a *Random) FindMove(b game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, game.ErrGameOver
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

// Reactive is the rule-priority tier: if a winning move exists play it,
// else if the opponent has a winning move block it, else play uniformly
// at random among legal moves.
type Reactive struct {
	rng *rand.Rand
}

func NewReactive(seed uint64) *Reactive {
	return &Reactive{rng: rand.New(rand.NewSource(seed))}
}

func (a *Reactive) Name() string {
	return string(Medium)
}

func (a *Reactive) FindMove(b game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, game.ErrGameOver
	}

	if move, ok, err := winningMove(b, moves, p); err != nil {
		return 0, metrics.SearchMetric{}, err
	} else if ok {
		return move, metrics.SearchMetric{}, nil
	}

	// A move that wins for the opponent is the one to block.
	if move, ok, err := winningMove(b, moves, p.Opponent()); err != nil {
		return 0, metrics.SearchMetric{}, err
	} else if ok {
		return move, metrics.SearchMetric{}, nil
	}

	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

// winningMove probes each candidate and reports the first that ends the
// game in p's favor. The board is restored after every probe.
func winningMove(b game.Board, moves []game.Move, p game.Player) (game.Move, bool, error) {
	for _, move := range moves {
		if err := b.Apply(move, p); err != nil {
			return 0, false, fmt.Errorf("probing move %d for %s: %w", move, p, err)
		}
		outcome := b.Outcome()
		if err := b.Undo(move); err != nil {
			return 0, false, fmt.Errorf("undoing probe %d: %w", move, err)
		}
		if outcome.Status == game.StatusWon && outcome.Winner == p {
			return move, true, nil
		}
	}
	return 0, false, nil
}

// Optimal plays the game-theoretically best move via exhaustive search.
type Optimal struct {
	search *searcher.Minimax
}

// NewOptimal collects search metrics by default; callers can still swap
// the collector (or disable it) through the usual searcher options.
func NewOptimal(options ...searcher.Option) *Optimal {
	options = append([]searcher.Option{searcher.WithMetrics()}, options...)
	return &Optimal{search: searcher.NewMinimax(options...)}
}

func (a *Optimal) Name() string {
	return string(Hard)
}

func (a *Optimal) FindMove(b game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	result, metric, err := a.search.Search(b, p)
	if err != nil {
		return 0, metric, err
	}
	if !result.HasMove {
		return 0, metric, game.ErrGameOver
	}
	return result.Move, metric, nil
}
