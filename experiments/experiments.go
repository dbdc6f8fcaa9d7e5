package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"arcade/agent"
	"arcade/engine"
	"arcade/game"
	"arcade/metrics"
	"arcade/tictactoe"
)

// Config describes one self-play experiment: the two agent tiers, how
// many games to run, and where to put the CSV records.
type Config struct {
	First  agent.Difficulty
	Second agent.Difficulty
	Games  int
	Seed   uint64
	Delay  time.Duration
	OutDir string // empty disables record files
}

// Summary tallies a finished experiment.
type Summary struct {
	Games      int
	Draws      int
	FirstWins  int
	SecondWins int
	RecordDir  string
}

// RunSelfPlay plays Config.Games rounds of tic-tac-toe between the two
// configured tiers, alternating nothing: First always opens. Each round
// gets a fresh board and freshly seeded agents so rounds are independent
// but the experiment as a whole is reproducible from Config.Seed.
func RunSelfPlay(cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}

	var matches []metrics.MatchRecord
	var moves []metrics.MoveRecord
	outcomes := make([]game.Outcome, 0, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		// Distinct per-game seeds keep the random tiers from replaying
		// the same game N times.
		first, err := agent.New(cfg.First, cfg.Seed+uint64(i)*2)
		if err != nil {
			return Summary{}, err
		}
		second, err := agent.New(cfg.Second, cfg.Seed+uint64(i)*2+1)
		if err != nil {
			return Summary{}, err
		}

		board := tictactoe.New()
		e := engine.NewLocal(board, first, second, engine.WithDelay(cfg.Delay))

		start := time.Now()
		outcome, err := e.Run()
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		outcomes = append(outcomes, outcome)

		updates := e.Updates()
		matches = append(matches, metrics.MatchRecord{
			Game:   i + 1,
			First:  first.Name(),
			Second: second.Name(),
			GameMetric: metrics.GameMetric{
				StartingPlayer: game.P1.String(),
				Winner:         winnerLabel(outcome),
				StartTime:      start,
				Duration:       time.Since(start),
				TotalMoves:     len(updates),
			},
		})
		moves = append(moves, lo.Map(updates, func(u engine.Update, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{
				Game: i + 1,
				MoveMetric: metrics.MoveMetric{
					Step:         u.Step,
					Player:       u.Player.String(),
					SearchMetric: u.Metric,
				},
			}
		})...)

		log.Info().
			Int("game", i+1).
			Stringer("outcome", outcome).
			Int("moves", len(updates)).
			Msg("game finished")
	}

	summary := Summary{
		Games: cfg.Games,
		Draws: lo.CountBy(outcomes, func(o game.Outcome) bool {
			return o.Status == game.StatusDraw
		}),
		FirstWins: lo.CountBy(outcomes, func(o game.Outcome) bool {
			return o.Status == game.StatusWon && o.Winner == game.P1
		}),
		SecondWins: lo.CountBy(outcomes, func(o game.Outcome) bool {
			return o.Status == game.StatusWon && o.Winner == game.P2
		}),
	}

	if cfg.OutDir != "" {
		writer, err := metrics.NewWriter(cfg.OutDir)
		if err != nil {
			return summary, err
		}
		if err := writer.WriteMatchRecords(matches); err != nil {
			return summary, err
		}
		if err := writer.WriteMoveRecords(moves); err != nil {
			return summary, err
		}
		summary.RecordDir = writer.Dir()
	}

	return summary, nil
}

func winnerLabel(o game.Outcome) string {
	if o.Status == game.StatusWon {
		return o.Winner.String()
	}
	return "draw"
}
