package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// idleConfig keeps the snake parked so only the power-up timers run.
func idleConfig() Config {
	cfg := DefaultConfig()
	cfg.MoveEvery = 1000
	return cfg
}

func TestPowerUpSpawning(t *testing.T) {
	t.Run("spawns on the cadence tick", func(t *testing.T) {
		g, err := New(idleConfig(), WithPowerUpTiming(7, 10, 5))
		require.NoError(t, err)

		for g.Tick() < 6 {
			g.Step()
			require.Nil(t, g.OnBoard())
		}
		g.Step()

		p := g.OnBoard()
		require.NotNil(t, p)
		require.Equal(t, uint64(17), p.DespawnAt)
		require.NotContains(t, g.Body(), p.Pos)
		require.NotEqual(t, g.Food(), p.Pos)
	})

	t.Run("zero timing values fall back to defaults", func(t *testing.T) {
		g, err := New(idleConfig(), WithPowerUpTiming(0, 0, 0))
		require.NoError(t, err)

		// A zero cadence must not divide by zero on the first tick.
		g.Step()

		require.Equal(t, uint64(defaultSpawnEvery), g.power.spawnEvery)
		require.Equal(t, uint64(defaultLifetime), g.power.lifetime)
		require.Equal(t, uint64(defaultDuration), g.power.duration)
	})

	t.Run("despawns uncollected after its lifetime", func(t *testing.T) {
		g, err := New(idleConfig(), WithPowerUpTiming(7, 10, 5))
		require.NoError(t, err)

		for g.Tick() < 16 {
			g.Step()
		}
		require.NotNil(t, g.OnBoard())

		g.Step()

		require.Nil(t, g.OnBoard(), "Lifetime over at tick 17, next cadence tick is 21")
	})
}

func TestPowerUpCollection(t *testing.T) {
	place := func(t *testing.T, kind Kind) *Game {
		t.Helper()
		g, err := New(testConfig(), WithPowerUpTiming(1000, 1000, 6))
		require.NoError(t, err)
		parkFood(g)
		g.power.onBoard = &PowerUp{Kind: kind, Pos: Coord{X: 11, Y: 7}, DespawnAt: 1000}
		return g
	}

	t.Run("a timed effect becomes active on pickup", func(t *testing.T) {
		g := place(t, SpeedBoost)

		g.Step()

		require.True(t, g.Active(SpeedBoost))
		require.Nil(t, g.OnBoard())
		require.Equal(t, []Kind{SpeedBoost}, g.Snapshot().Active)
	})

	t.Run("the effect expires after its duration", func(t *testing.T) {
		g := place(t, SpeedBoost)
		g.Step() // picked up at tick 1, expires at tick 7

		for g.Tick() < 6 {
			g.Step()
			require.True(t, g.Active(SpeedBoost))
		}
		g.SetDirection(Down) // steer clear of the wall
		g.Step()

		require.False(t, g.Active(SpeedBoost))
	})

	t.Run("shrink acts once and is never active", func(t *testing.T) {
		g := place(t, Shrink)
		g.body = []Coord{{10, 7}, {9, 7}, {8, 7}, {7, 7}, {6, 7}, {5, 7}}

		g.Step()

		require.False(t, g.Active(Shrink))
		require.Len(t, g.Body(), 4)
	})

	t.Run("shrink never cuts below the starting length", func(t *testing.T) {
		g := place(t, Shrink)

		g.Step()

		require.Len(t, g.Body(), 3)
	})
}

func TestPowerUpEffects(t *testing.T) {
	t.Run("speed boost halves the movement period", func(t *testing.T) {
		cfg := testConfig()
		cfg.MoveEvery = 4
		g, err := New(cfg, WithPowerUps())
		require.NoError(t, err)
		g.power.active[SpeedBoost] = 1000

		require.Equal(t, 2, g.Snapshot().MoveEvery)
	})

	t.Run("speed boost never drops the period below one tick", func(t *testing.T) {
		g, err := New(testConfig(), WithPowerUps())
		require.NoError(t, err)
		g.power.active[SpeedBoost] = 1000

		require.Equal(t, 1, g.Snapshot().MoveEvery)
	})

	t.Run("slow down doubles the movement period", func(t *testing.T) {
		cfg := testConfig()
		cfg.MoveEvery = 4
		g, err := New(cfg, WithPowerUps())
		require.NoError(t, err)
		g.power.active[SlowDown] = 1000

		require.Equal(t, 8, g.Snapshot().MoveEvery)
	})

	t.Run("double score doubles food points", func(t *testing.T) {
		g, err := New(testConfig(), WithPowerUps())
		require.NoError(t, err)
		g.power.active[DoubleScore] = 1000
		g.food = Coord{X: 11, Y: 7}

		g.Step()

		require.Equal(t, 2*foodPoints, g.Score())
	})
}
