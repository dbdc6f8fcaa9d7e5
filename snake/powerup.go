package snake

import "sort"

// Kind is a power-up variety from the extended game.
type Kind uint8

const (
	SpeedBoost Kind = iota
	SlowDown
	DoubleScore
	Shrink
	numKinds
)

func (k Kind) String() string {
	switch k {
	case SpeedBoost:
		return "speed-boost"
	case SlowDown:
		return "slow-down"
	case DoubleScore:
		return "double-score"
	case Shrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// timed reports whether collecting the power-up starts an effect timer.
// Shrink acts once, at collection.
func (k Kind) timed() bool {
	return k != Shrink
}

// PowerUp is a collectible on the board. An uncollected power-up
// disappears at DespawnAt.
type PowerUp struct {
	Kind      Kind
	Pos       Coord
	DespawnAt uint64
}

// Timer defaults, in simulation ticks.
const (
	defaultSpawnEvery = 40
	defaultLifetime   = 80
	defaultDuration   = 60
	shrinkBy          = 2
)

// powerUps is the timed power-up state machine of the extended variant:
// a spawn timer while the board is empty, a despawn timer per collectible,
// and an expiry timer per active effect.
type powerUps struct {
	spawnEvery uint64
	lifetime   uint64
	duration   uint64
	onBoard    *PowerUp
	active     map[Kind]uint64 // kind -> expiry tick
}

// WithPowerUps enables the extended variant with default timers.
func WithPowerUps() Option {
	return func(g *Game) {
		g.power = &powerUps{
			spawnEvery: defaultSpawnEvery,
			lifetime:   defaultLifetime,
			duration:   defaultDuration,
			active:     make(map[Kind]uint64),
		}
	}
}

// WithPowerUpTiming overrides the spawn cadence, board lifetime, and
// effect duration. It implies WithPowerUps. Zero values keep the
// corresponding default.
func WithPowerUpTiming(spawnEvery, lifetime, duration uint64) Option {
	return func(g *Game) {
		p := &powerUps{
			spawnEvery: defaultSpawnEvery,
			lifetime:   defaultLifetime,
			duration:   defaultDuration,
			active:     make(map[Kind]uint64),
		}
		if spawnEvery > 0 {
			p.spawnEvery = spawnEvery
		}
		if lifetime > 0 {
			p.lifetime = lifetime
		}
		if duration > 0 {
			p.duration = duration
		}
		g.power = p
	}
}

// tickDown runs the per-tick bookkeeping: expire finished effects, remove
// a stale collectible, and spawn a new one on the cadence tick.
func (p *powerUps) tickDown(g *Game) {
	for kind, expiresAt := range p.active {
		if g.tick >= expiresAt {
			delete(p.active, kind)
		}
	}

	if p.onBoard != nil && g.tick >= p.onBoard.DespawnAt {
		p.onBoard = nil
	}

	if p.onBoard == nil && g.tick%p.spawnEvery == 0 {
		p.spawn(g)
	}
}

func (p *powerUps) spawn(g *Game) {
	free := g.freeCells()
	if len(free) == 0 {
		return
	}
	p.onBoard = &PowerUp{
		Kind:      Kind(g.rng.Intn(int(numKinds))),
		Pos:       free[g.rng.Intn(len(free))],
		DespawnAt: g.tick + p.lifetime,
	}
}

// collectAt picks up the board power-up if the head landed on it.
func (p *powerUps) collectAt(g *Game, head Coord) {
	if p.onBoard == nil || p.onBoard.Pos != head {
		return
	}
	kind := p.onBoard.Kind
	p.onBoard = nil

	if kind.timed() {
		p.active[kind] = g.tick + p.duration
		return
	}

	// Shrink trims the tail immediately, never below the starting length.
	keep := len(g.body) - shrinkBy
	if keep < initialLength {
		keep = initialLength
	}
	g.body = g.body[:keep]
}

func (p *powerUps) isActive(kind Kind) bool {
	_, ok := p.active[kind]
	return ok
}

func (p *powerUps) activeKinds() []Kind {
	kinds := make([]Kind, 0, len(p.active))
	for kind := range p.active {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// OnBoard returns the uncollected power-up currently spawned, if any.
func (g *Game) OnBoard() *PowerUp {
	if g.power == nil || g.power.onBoard == nil {
		return nil
	}
	p := *g.power.onBoard
	return &p
}

// Active reports whether an effect of the given kind is running.
func (g *Game) Active(kind Kind) bool {
	return g.power != nil && g.power.isActive(kind)
}
