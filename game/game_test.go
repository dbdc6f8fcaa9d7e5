package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, P2, P1.Opponent())
	require.Equal(t, P1, P2.Opponent())
	require.Equal(t, None, None.Opponent())
}

func TestOutcome(t *testing.T) {
	t.Run("terminal classification", func(t *testing.T) {
		require.False(t, Ongoing().Terminal())
		require.True(t, Draw().Terminal())
		require.True(t, WonBy(P1).Terminal())
	})

	t.Run("winner is carried only on a win", func(t *testing.T) {
		require.Equal(t, P2, WonBy(P2).Winner)
		require.Equal(t, None, Draw().Winner)
		require.Equal(t, None, Ongoing().Winner)
	})

	t.Run("string forms", func(t *testing.T) {
		require.Equal(t, "ongoing", Ongoing().String())
		require.Equal(t, "draw", Draw().String())
		require.Equal(t, "won by player1", WonBy(P1).String())
	})
}
