package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"arcade/agent"
	"arcade/config"
	"arcade/experiments"
	"arcade/game"
	"arcade/snake"
	"arcade/tictactoe"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)

	switch cfg.Mode {
	case "selfplay":
		err = runSelfPlay(cfg)
	case "play":
		err = runInteractive(cfg)
	case "snake":
		err = runSnake(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runSelfPlay(cfg *config.Config) error {
	summary, err := experiments.RunSelfPlay(experiments.Config{
		First:  cfg.Difficulty,
		Second: cfg.Opponent,
		Games:  cfg.Games,
		Seed:   cfg.Seed,
		Delay:  cfg.Delay,
		OutDir: cfg.OutDir,
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("games", summary.Games).
		Int("draws", summary.Draws).
		Int("first_wins", summary.FirstWins).
		Int("second_wins", summary.SecondWins).
		Str("records", summary.RecordDir).
		Msg("selfplay finished")
	return nil
}

// runInteractive plays one round against the configured tier on
// stdin/stdout. The human opens as X; cells are indexed 0-8 row-major.
func runInteractive(cfg *config.Config) error {
	computer, err := agent.New(cfg.Difficulty, cfg.Seed)
	if err != nil {
		return err
	}

	board := tictactoe.New()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("You are X. Enter a cell index 0-8.\n\n%s\n", board)

	for !board.Outcome().Terminal() {
		move, err := readMove(scanner, board)
		if err != nil {
			return err
		}
		if err := board.Apply(move, game.P1); err != nil {
			return err
		}
		if board.Outcome().Terminal() {
			break
		}

		// Deliberate pause so the reply does not land mid-keystroke.
		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
		reply, _, err := computer.FindMove(board, game.P2)
		if err != nil {
			return err
		}
		if err := board.Apply(reply, game.P2); err != nil {
			return err
		}
		fmt.Printf("\nComputer plays %d.\n%s\n", reply, board)
	}

	fmt.Printf("\n%s\n%v\n", board, board.Outcome())
	return nil
}

func readMove(scanner *bufio.Scanner, board *tictactoe.Board) (game.Move, error) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("input closed")
		}
		i, err := strconv.Atoi(scanner.Text())
		if err != nil || i < 0 || i > 8 || board.Cell(i) != tictactoe.Empty {
			fmt.Println("pick an empty cell, 0-8")
			continue
		}
		return game.Move(i), nil
	}
}

// runSnake drives a headless round with a simple food-chasing policy and
// logs the final snapshot. It exercises the snake core end to end without
// any terminal UI.
func runSnake(cfg *config.Config) error {
	snakeCfg := snake.DefaultConfig()
	snakeCfg.Seed = cfg.Seed

	var options []snake.Option
	if cfg.PowerUps {
		options = append(options, snake.WithPowerUps())
	}
	g, err := snake.New(snakeCfg, options...)
	if err != nil {
		return err
	}

	const maxTicks = 100000
	for !g.Over() && g.Tick() < maxTicks {
		g.SetDirection(chase(g))
		g.Step()
	}

	s := g.Snapshot()
	log.Info().
		Uint64("ticks", s.Tick).
		Int("score", s.Score).
		Int("length", s.Length).
		Bool("won", s.Won).
		Msg("snake run finished")
	return nil
}

// chase heads toward the food one axis at a time, preferring whichever
// turn is not an immediate reversal.
func chase(g *snake.Game) snake.Direction {
	head, food := g.Head(), g.Food()
	switch {
	case food.X > head.X:
		return snake.Right
	case food.X < head.X:
		return snake.Left
	case food.Y > head.Y:
		return snake.Down
	default:
		return snake.Up
	}
}
