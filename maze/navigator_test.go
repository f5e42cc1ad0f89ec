package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNavigator(t *testing.T) {
	g := mustParse(t, "XA ", "  B")

	t.Run("Marks start visited", func(t *testing.T) {
		nav, err := NewNavigator(g, Coordinate{2, 1})
		require.NoError(t, err)
		assert.Equal(t, Coordinate{2, 1}, nav.Cursor())
		assert.True(t, nav.Current().Visited())
		assert.Empty(t, nav.MoveLog())
		assert.Zero(t, nav.Forks())
	})

	t.Run("Rejects a wall start", func(t *testing.T) {
		_, err := NewNavigator(g, Coordinate{1, 1})
		assert.ErrorIs(t, err, ErrInvalidStart)
	})

	t.Run("Rejects an out of range start", func(t *testing.T) {
		_, err := NewNavigator(g, Coordinate{4, 1})
		assert.ErrorIs(t, err, ErrInvalidStart)
	})
}

func TestPeek(t *testing.T) {
	g := mustParse(t, "XA ", "  B")
	nav, err := NewNavigator(g, Coordinate{2, 1})
	require.NoError(t, err)

	assert.True(t, nav.Peek(North).IsWall(), "above the grid is a wall")
	assert.Equal(t, Open, nav.Peek(East).Classification())
	assert.Equal(t, Open, nav.Peek(South).Classification())
	assert.True(t, nav.Peek(West).IsWall())

	assert.Equal(t, Coordinate{2, 1}, nav.Cursor())
	assert.False(t, g.Lookup(Coordinate{3, 1}).Visited())
	assert.Empty(t, nav.MoveLog())
}

func TestMove(t *testing.T) {
	t.Run("Commits a step", func(t *testing.T) {
		g := mustParse(t, "XA ", "  B")
		nav, err := NewNavigator(g, Coordinate{2, 1})
		require.NoError(t, err)

		require.NoError(t, nav.Move(East))
		assert.Equal(t, Coordinate{3, 1}, nav.Cursor())
		assert.True(t, g.Lookup(Coordinate{3, 1}).Visited())
		assert.Equal(t, "E", nav.MoveLog())

		require.NoError(t, nav.Move(South))
		assert.True(t, nav.Current().IsGoal())
		assert.Equal(t, "ES", nav.MoveLog())
	})

	t.Run("Refuses a wall and keeps state", func(t *testing.T) {
		g := mustParse(t, "XA ", "  B")
		nav, err := NewNavigator(g, Coordinate{2, 1})
		require.NoError(t, err)

		err = nav.Move(West)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, Coordinate{2, 1}, nav.Cursor())
		assert.Empty(t, nav.MoveLog())

		err = nav.Move(North)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, Coordinate{2, 1}, nav.Cursor())
	})
}

func TestRemainingPaths(t *testing.T) {
	t.Run("Fixed priority order", func(t *testing.T) {
		g := mustParse(t, "   ", " A ", "  B")
		nav, err := NewNavigator(g, Coordinate{2, 2})
		require.NoError(t, err)

		assert.Equal(t, []Direction{East, South, West, North}, nav.RemainingPaths())
	})

	t.Run("Skips visited cells", func(t *testing.T) {
		g := mustParse(t, "   ", " A ", "  B")
		nav, err := NewNavigator(g, Coordinate{2, 2})
		require.NoError(t, err)

		require.NoError(t, nav.Move(East))
		require.NoError(t, nav.Move(West))
		assert.Equal(t, []Direction{South, West, North}, nav.RemainingPaths())
	})

	t.Run("Dead end is empty", func(t *testing.T) {
		g := mustParse(t, "XXX", "XAX", "XBX", "XXX")
		g2 := mustParse(t, "XXX", "XAX", "XXX")
		nav, err := NewNavigator(g2, Coordinate{2, 2})
		require.NoError(t, err)
		assert.Empty(t, nav.RemainingPaths())

		nav, err = NewNavigator(g, Coordinate{2, 2})
		require.NoError(t, err)
		assert.Equal(t, []Direction{South}, nav.RemainingPaths())
	})
}

func TestRevertToLastFork(t *testing.T) {
	t.Run("Empty stack is unsolvable", func(t *testing.T) {
		g := mustParse(t, "A B")
		nav, err := NewNavigator(g, Coordinate{1, 1})
		require.NoError(t, err)

		_, err = nav.RevertToLastFork()
		assert.ErrorIs(t, err, ErrUnsolvable)
		assert.Equal(t, Coordinate{1, 1}, nav.Cursor())
	})

	t.Run("Truncates the log to the fork length", func(t *testing.T) {
		g := mustParse(t, "A  ", "   ", "  B")
		nav, err := NewNavigator(g, Coordinate{1, 1})
		require.NoError(t, err)

		require.NoError(t, nav.Move(East))
		nav.LogFork()
		require.NoError(t, nav.Move(East))
		require.NoError(t, nav.Move(South))
		assert.Equal(t, "EES", nav.MoveLog())

		fork, err := nav.RevertToLastFork()
		require.NoError(t, err)
		assert.Equal(t, Fork{Coordinate: Coordinate{2, 1}, Steps: 1}, fork)
		assert.Equal(t, fork.Steps, nav.Steps())
		assert.Equal(t, "E", nav.MoveLog())
		assert.Equal(t, Coordinate{2, 1}, nav.Cursor())
		assert.Zero(t, nav.Forks())

		assert.True(t, g.Lookup(Coordinate{3, 1}).Visited(), "abandoned branch stays visited")
		assert.True(t, g.Lookup(Coordinate{3, 2}).Visited(), "abandoned branch stays visited")
		assert.Equal(t, []Direction{South}, nav.RemainingPaths())
	})

	t.Run("Pops forks last in first out", func(t *testing.T) {
		g := mustParse(t, "A   B")
		nav, err := NewNavigator(g, Coordinate{1, 1})
		require.NoError(t, err)

		nav.LogFork()
		require.NoError(t, nav.Move(East))
		nav.LogFork()
		require.NoError(t, nav.Move(East))

		fork, err := nav.RevertToLastFork()
		require.NoError(t, err)
		assert.Equal(t, Coordinate{2, 1}, fork.Coordinate)

		fork, err = nav.RevertToLastFork()
		require.NoError(t, err)
		assert.Equal(t, Coordinate{1, 1}, fork.Coordinate)
		assert.Empty(t, nav.MoveLog())
	})
}

func TestMoveLogTruncatePanicsOutOfRange(t *testing.T) {
	var l MoveLog
	l.Append(North)
	assert.Panics(t, func() { l.Truncate(2) })
	assert.Panics(t, func() { l.Truncate(-1) })
	assert.NotPanics(t, func() { l.Truncate(1) })
	assert.Equal(t, []Direction{North}, l.Directions())
}
