package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("accumulates counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddCutoff()
		c.ObserveDepth(3)
		c.ObserveDepth(7)
		c.ObserveDepth(5)

		metric := c.Complete()
		require.Equal(t, 5, metric.Nodes)
		require.Equal(t, 1, metric.Cutoffs)
		require.Equal(t, 7, metric.MaxDepth, "Only the deepest observation counts")
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("resets on Start", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.ObserveDepth(9)

		c.Start()

		metric := c.Complete()
		require.Zero(t, metric.Nodes)
		require.Zero(t, metric.MaxDepth)
	})

	t.Run("is safe under concurrent use", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(depth int) {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					c.AddNode()
				}
				c.ObserveDepth(depth)
			}(i + 1)
		}
		wg.Wait()

		metric := c.Complete()
		require.Equal(t, 8000, metric.Nodes)
		require.Equal(t, 8, metric.MaxDepth)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddNode()
	c.AddCutoff()
	c.ObserveDepth(4)

	require.Equal(t, SearchMetric{}, c.Complete())
}
