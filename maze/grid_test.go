package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(lines, DefaultSymbols)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	t.Run("Builds from mazebot rows", func(t *testing.T) {
		g, err := NewGrid([][]string{
			{"X", "A", " "},
			{" ", " ", "B"},
		}, DefaultSymbols)
		require.NoError(t, err)

		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 2, g.Height())
		assert.Equal(t, Wall, g.Lookup(Coordinate{1, 1}).Classification())
		assert.Equal(t, Start, g.Lookup(Coordinate{2, 1}).Classification())
		assert.Equal(t, Open, g.Lookup(Coordinate{3, 1}).Classification())
		assert.Equal(t, Goal, g.Lookup(Coordinate{3, 2}).Classification())
	})

	t.Run("No cell starts visited", func(t *testing.T) {
		g := mustParse(t, " A ", "  B")
		for y := 1; y <= g.Height(); y++ {
			for x := 1; x <= g.Width(); x++ {
				assert.False(t, g.Lookup(Coordinate{x, y}).Visited())
			}
		}
	})

	tests := []struct {
		name string
		rows [][]string
		err  error
	}{
		{name: "nil rows", rows: nil, err: ErrEmptyGrid},
		{name: "empty first row", rows: [][]string{{}}, err: ErrEmptyGrid},
		{name: "ragged rows", rows: [][]string{{"A", " "}, {"B"}}, err: ErrRaggedGrid},
		{name: "unknown symbol", rows: [][]string{{"A", "?", "B"}}, err: ErrUnknownSymbol},
		{name: "multi symbol cell", rows: [][]string{{"A", "XX", "B"}}, err: ErrUnknownSymbol},
		{name: "empty cell", rows: [][]string{{"A", "", "B"}}, err: ErrUnknownSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows, DefaultSymbols)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseGridCustomSymbols(t *testing.T) {
	symbols := Symbols{Wall: '#', Open: '.', Start: 'S', Goal: 'G'}
	g, err := ParseGrid([]string{"S.#", "#.G"}, symbols)
	require.NoError(t, err)

	start, ok := g.Find(Start)
	require.True(t, ok)
	assert.Equal(t, Coordinate{1, 1}, start)
	assert.Equal(t, []string{"S.#", "#.G"}, g.Rows(symbols))
	assert.Equal(t, []string{"A X", "X B"}, g.Rows(DefaultSymbols))
}

func TestLookupOutOfRange(t *testing.T) {
	g := mustParse(t, "A  ", "   ", "  B")

	outside := []Coordinate{
		{0, 1}, {1, 0}, {0, 0}, {-3, -7},
		{4, 1}, {1, 4}, {4, 4}, {100, 2}, {2, 100},
	}
	for _, c := range outside {
		t.Run(c.String(), func(t *testing.T) {
			cell := g.Lookup(c)
			assert.True(t, cell.IsWall())
			assert.False(t, cell.Visited())
			assert.False(t, g.InBound(c))
		})
	}

	t.Run("Marking outside is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			g.MarkVisited(Coordinate{4, 1})
			g.MarkVisited(Coordinate{0, 0})
		})
		assert.False(t, g.Lookup(Coordinate{4, 1}).Visited())
	})
}

func TestMarkVisited(t *testing.T) {
	g := mustParse(t, "A B")
	c := Coordinate{2, 1}

	g.MarkVisited(c)
	assert.True(t, g.Lookup(c).Visited())
	assert.Equal(t, Open, g.Lookup(c).Classification())

	g.MarkVisited(c)
	assert.True(t, g.Lookup(c).Visited())
}

func TestFind(t *testing.T) {
	g := mustParse(t, "X X", " AB")

	start, ok := g.Find(Start)
	assert.True(t, ok)
	assert.Equal(t, Coordinate{2, 2}, start)

	goal, ok := g.Find(Goal)
	assert.True(t, ok)
	assert.Equal(t, Coordinate{3, 2}, goal)

	g = mustParse(t, "X X")
	_, ok = g.Find(Start)
	assert.False(t, ok)
}

func TestCoordinate(t *testing.T) {
	c := FromZeroIndexed(1, 0)
	assert.Equal(t, Coordinate{2, 1}, c)

	x, y := c.ZeroIndexed()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)

	assert.Equal(t, Coordinate{2, 0}, c.Neighbor(North))
	assert.Equal(t, Coordinate{3, 1}, c.Neighbor(East))
	assert.Equal(t, Coordinate{2, 2}, c.Neighbor(South))
	assert.Equal(t, Coordinate{1, 1}, c.Neighbor(West))
	assert.Equal(t, Coordinate{2, 1}, c, "neighbor must not alter the receiver")
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		parsed, err := ParseDirection(rune(d.Symbol()))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDirection('x')
	assert.ErrorIs(t, err, ErrUnknownDirection)
}
