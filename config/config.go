package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"arcade/agent"
)

// Config is the runner configuration. Every flag can also be set through
// the environment with an ARCADE_ prefix, e.g. ARCADE_DIFFICULTY=hard.
type Config struct {
	Mode       string // selfplay, play, or snake
	Difficulty agent.Difficulty
	Opponent   agent.Difficulty // second agent in selfplay mode
	Games      int
	Seed       uint64
	Delay      time.Duration
	OutDir     string
	PowerUps   bool
	Debug      bool
}

// Load parses args (without the program name) and the environment.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("arcade", pflag.ContinueOnError)
	fs.String("mode", "selfplay", "what to run: selfplay, play, or snake")
	fs.String("difficulty", "hard", "agent tier: easy, medium, or hard")
	fs.String("opponent", "hard", "second agent tier in selfplay mode")
	fs.Int("games", 10, "number of games in selfplay mode")
	fs.Uint64("seed", 1, "seed for the random agent tiers and snake spawning")
	fs.Duration("delay", 0, "pause before each computer move (presentation pacing)")
	fs.String("out-dir", "", "directory for experiment CSV records (empty disables)")
	fs.Bool("power-ups", false, "enable the extended snake variant")
	fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("ARCADE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Mode:       v.GetString("mode"),
		Difficulty: agent.Difficulty(v.GetString("difficulty")),
		Opponent:   agent.Difficulty(v.GetString("opponent")),
		Games:      v.GetInt("games"),
		Seed:       v.GetUint64("seed"),
		Delay:      v.GetDuration("delay"),
		OutDir:     v.GetString("out-dir"),
		PowerUps:   v.GetBool("power-ups"),
		Debug:      v.GetBool("debug"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case "selfplay", "play", "snake":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	for _, d := range []agent.Difficulty{c.Difficulty, c.Opponent} {
		switch d {
		case agent.Easy, agent.Medium, agent.Hard:
		default:
			return fmt.Errorf("unknown difficulty %q", d)
		}
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}
