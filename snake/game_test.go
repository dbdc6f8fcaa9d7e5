package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testConfig moves the snake every tick to keep step counts readable.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MoveEvery = 1
	return cfg
}

// parkFood moves the food out of the snake's path so a test can script
// movement without accidental eating.
func parkFood(g *Game) {
	g.food = Coord{X: 0, Y: 0}
}

func TestNew(t *testing.T) {
	t.Run("snake starts centered heading right", func(t *testing.T) {
		g, err := New(testConfig())

		require.NoError(t, err)
		require.Equal(t, []Coord{{10, 7}, {9, 7}, {8, 7}}, g.Body())
		require.False(t, g.Over())
	})

	t.Run("food spawns on a free cell", func(t *testing.T) {
		g, err := New(testConfig())

		require.NoError(t, err)
		require.NotContains(t, g.Body(), g.Food())
		require.GreaterOrEqual(t, g.Food().X, 0)
		require.Less(t, g.Food().X, g.cfg.Width)
	})

	t.Run("rejects a field too small for the snake", func(t *testing.T) {
		_, err := New(Config{Width: 4, Height: 3})
		require.Error(t, err)
	})
}

func TestStepMovement(t *testing.T) {
	t.Run("moves one cell per movement tick", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		parkFood(g)

		g.Step()

		require.Equal(t, Coord{11, 7}, g.Head())
		require.Len(t, g.Body(), 3)
	})

	t.Run("waits MoveEvery ticks between moves", func(t *testing.T) {
		cfg := DefaultConfig() // MoveEvery 4
		g, err := New(cfg)
		require.NoError(t, err)
		parkFood(g)

		for i := 0; i < 3; i++ {
			g.Step()
			require.Equal(t, Coord{10, 7}, g.Head(), "No movement before the period elapses")
		}
		g.Step()
		require.Equal(t, Coord{11, 7}, g.Head())
	})

	t.Run("turns on the next movement tick", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		parkFood(g)

		g.SetDirection(Down)
		g.Step()

		require.Equal(t, Coord{10, 8}, g.Head())
	})

	t.Run("ignores reversing into the body", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		parkFood(g)

		g.SetDirection(Left)
		g.Step()

		require.Equal(t, Coord{11, 7}, g.Head(), "A reversal must be dropped, not fatal")
		require.False(t, g.Over())
	})

	t.Run("does nothing once the game is over", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		g.over = true

		g.Step()

		require.Zero(t, g.Tick())
	})
}

func TestStepWallCollision(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	parkFood(g)

	// From x=10 on a width-20 field, the ninth step reaches the edge and
	// the tenth is fatal.
	for i := 0; i < 9; i++ {
		g.Step()
		require.False(t, g.Over())
	}
	require.Equal(t, Coord{19, 7}, g.Head())

	g.Step()

	require.True(t, g.Over())
	require.False(t, g.Won())
	require.Equal(t, Coord{19, 7}, g.Head(), "The fatal move is not carried out")
}

func TestStepSelfCollision(t *testing.T) {
	t.Run("running into the body ends the game", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		parkFood(g)
		// A hook shape: heading down from (5,5) hits (5,6), which is
		// still occupied because the tail is elsewhere.
		g.body = []Coord{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
		g.dir = Down
		g.nextDir = Down

		g.Step()

		require.True(t, g.Over())
	})

	t.Run("moving into the vacating tail cell is legal", func(t *testing.T) {
		g, err := New(testConfig())
		require.NoError(t, err)
		parkFood(g)
		// A closed loop: the head re-enters the cell the tail leaves
		// this very tick.
		g.body = []Coord{{5, 5}, {5, 6}, {4, 6}, {4, 5}}
		g.dir = Left
		g.nextDir = Left

		g.Step()

		require.False(t, g.Over())
		require.Equal(t, Coord{4, 5}, g.Head())
		require.Len(t, g.Body(), 4)
	})
}

func TestStepFood(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	g.food = Coord{X: 11, Y: 7}

	g.Step()

	require.Equal(t, foodPoints, g.Score())
	require.Len(t, g.Body(), 3, "Growth takes effect on the following move")
	require.NotEqual(t, Coord{11, 7}, g.Food(), "Food must respawn elsewhere")
	require.NotContains(t, g.Body(), g.Food())

	if g.Food() == (Coord{12, 7}) {
		// Keep the scripted path clear of the respawned food.
		parkFood(g)
	}
	g.Step()

	require.Len(t, g.Body(), 4)
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 99

	a, err := New(cfg, WithPowerUps())
	require.NoError(t, err)
	b, err := New(cfg, WithPowerUps())
	require.NoError(t, err)

	script := []struct {
		tick uint64
		dir  Direction
	}{
		{3, Down}, {6, Left}, {9, Up},
	}

	for i := 0; i < 12; i++ {
		for _, s := range script {
			if a.Tick() == s.tick {
				a.SetDirection(s.dir)
				b.SetDirection(s.dir)
			}
		}
		a.Step()
		b.Step()
		require.Equal(t, a.Snapshot(), b.Snapshot(), "tick %d", a.Tick())
		require.Equal(t, a.Body(), b.Body())
	}
}
