package snake

import (
	"fmt"

	"golang.org/x/exp/rand"

	"arcade/utils"
)

// Direction is a heading on the grid. Up decreases Y, Down increases Y
// (screen coordinates).
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// Coord is a cell position on the grid.
type Coord struct {
	X, Y int
}

// Config sets up the play field. A zero seed does not mean "random": the
// caller decides where entropy comes from.
type Config struct {
	Width, Height int
	MoveEvery     int // simulation ticks per cell of movement
	Seed          uint64
}

// DefaultConfig matches the classic small-field setup.
func DefaultConfig() Config {
	return Config{
		Width:     20,
		Height:    15,
		MoveEvery: 4,
	}
}

const (
	initialLength = 3
	foodPoints    = 10
)

type Option func(g *Game)

// Game is a single-player snake round: a tick-driven state machine over a
// rectangular grid. It performs no rendering and reads no input devices;
// the host calls SetDirection and Step and draws whatever it likes from
// the accessors.
type Game struct {
	cfg     Config
	rng     *rand.Rand
	body    []Coord // head first
	dir     Direction
	nextDir Direction
	food    Coord
	score   int
	tick    uint64
	growth  int
	over    bool
	won     bool
	power   *powerUps // nil unless WithPowerUps was given
}

// New creates a game with the snake centered, heading right. It fails on
// fields too small to hold the initial snake and a food cell.
func New(cfg Config, options ...Option) (*Game, error) {
	if cfg.Width < initialLength+2 || cfg.Height < 3 {
		return nil, fmt.Errorf("field %dx%d is too small", cfg.Width, cfg.Height)
	}
	if cfg.MoveEvery < 1 {
		cfg.MoveEvery = 1
	}

	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		dir:     Right,
		nextDir: Right,
	}

	// Head at center, tail trailing to the left.
	head := Coord{X: cfg.Width / 2, Y: cfg.Height / 2}
	for i := 0; i < initialLength; i++ {
		g.body = append(g.body, Coord{X: head.X - i, Y: head.Y})
	}

	for _, option := range options {
		option(g)
	}

	g.food = Coord{X: -1, Y: -1}
	g.food = g.spawnFree()
	return g, nil
}

// SetDirection queues a heading change for the next movement tick.
// Reversing straight into the body is ignored.
func (g *Game) SetDirection(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// Step advances the simulation by one tick. Movement happens every
// MoveEvery ticks (modified by active power-ups); the ticks in between
// only age timers.
func (g *Game) Step() {
	if g.over {
		return
	}
	g.tick++

	if g.power != nil {
		g.power.tickDown(g)
	}

	if g.tick%uint64(g.moveEvery()) != 0 {
		return
	}

	g.dir = g.nextDir
	dx, dy := g.dir.Delta()
	head := g.body[0]
	next := Coord{X: head.X + dx, Y: head.Y + dy}

	if next.X < 0 || next.X >= g.cfg.Width || next.Y < 0 || next.Y >= g.cfg.Height {
		g.over = true
		return
	}

	// The tail cell vacates this tick unless the snake is growing.
	obstacle := g.body
	if g.growth == 0 {
		obstacle = g.body[:len(g.body)-1]
	}
	if utils.FindIndex(obstacle, next) >= 0 {
		g.over = true
		return
	}

	g.body = append([]Coord{next}, g.body...)
	if g.growth > 0 {
		g.growth--
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	if next == g.food {
		points := foodPoints
		if g.power != nil && g.power.isActive(DoubleScore) {
			points *= 2
		}
		g.score += points
		g.growth++
		g.food = g.spawnFree()
		if g.over {
			return
		}
	}

	if g.power != nil {
		g.power.collectAt(g, next)
	}
}

// moveEvery is the effective movement period, after active power-ups.
func (g *Game) moveEvery() int {
	period := g.cfg.MoveEvery
	if g.power != nil {
		if g.power.isActive(SpeedBoost) && period > 1 {
			period /= 2
			if period < 1 {
				period = 1
			}
		}
		if g.power.isActive(SlowDown) {
			period *= 2
		}
	}
	return period
}

// spawnFree picks a uniformly random free cell. If the snake has filled
// the field, the round is won and the game ends.
func (g *Game) spawnFree() Coord {
	free := g.freeCells()
	if len(free) == 0 {
		g.over = true
		g.won = true
		return Coord{X: -1, Y: -1}
	}
	return free[g.rng.Intn(len(free))]
}

func (g *Game) freeCells() []Coord {
	var free []Coord
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			c := Coord{X: x, Y: y}
			if utils.FindIndex(g.body, c) >= 0 {
				continue
			}
			if c == g.food {
				continue
			}
			if g.power != nil && g.power.onBoard != nil && g.power.onBoard.Pos == c {
				continue
			}
			free = append(free, c)
		}
	}
	return free
}

func (g *Game) Over() bool  { return g.over }
func (g *Game) Won() bool   { return g.won }
func (g *Game) Score() int  { return g.score }
func (g *Game) Tick() uint64 { return g.tick }
func (g *Game) Head() Coord { return g.body[0] }
func (g *Game) Food() Coord { return g.food }

// Body returns a copy of the snake, head first.
func (g *Game) Body() []Coord {
	body := make([]Coord, len(g.body))
	copy(body, g.body)
	return body
}

// Snapshot captures the observable state for determinism checks and
// replay comparison.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	Head      Coord
	Dir       Direction
	Food      Coord
	MoveEvery int
	Over      bool
	Won       bool
	Active    []Kind
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Length:    len(g.body),
		Head:      g.body[0],
		Dir:       g.dir,
		Food:      g.food,
		MoveEvery: g.moveEvery(),
		Over:      g.over,
		Won:       g.won,
	}
	if g.power != nil {
		s.Active = g.power.activeKinds()
	}
	return s
}
