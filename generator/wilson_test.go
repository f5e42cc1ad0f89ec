package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/beka-birhanu/mazebot-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidDimensions(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {1, 1}, {MaxDimension + 1, 2}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			_, err := New(dims[0], dims[1], rnd)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestGeneratedMazeIsPerfect(t *testing.T) {
	for _, dims := range [][2]int{{2, 1}, {1, 7}, {5, 5}, {12, 7}, {20, 20}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			m, err := New(dims[0], dims[1], rand.New(rand.NewPCG(7, 11)))
			require.NoError(t, err)

			passages := 0
			for r := range m.cells {
				for _, c := range m.cells[r] {
					if !c.east {
						passages++
					}
					if !c.south {
						passages++
					}
				}
			}
			assert.Equal(t, m.Width*m.Height-1, passages, "a spanning tree has exactly n-1 edges")
		})
	}
}

func TestRowsAreSolvable(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		m, err := New(9, 6, rand.New(rand.NewPCG(seed, seed+1)))
		require.NoError(t, err)

		lines := m.Rows(maze.DefaultSymbols)
		require.Len(t, lines, 2*6+1)
		for _, line := range lines {
			require.Len(t, line, 2*9+1)
		}

		grid, err := maze.ParseGrid(lines, maze.DefaultSymbols)
		require.NoError(t, err)
		start, ok := grid.Find(maze.Start)
		require.True(t, ok)

		s, err := maze.NewSolver(grid, start)
		require.NoError(t, err)
		solution, err := s.Solve()
		require.NoError(t, err, "seed %d", seed)

		check, err := maze.ParseGrid(lines, maze.DefaultSymbols)
		require.NoError(t, err)
		assert.NoError(t, maze.Verify(check, start, solution.Moves), "seed %d", seed)
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	a, err := New(15, 10, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)
	b, err := New(15, 10, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)

	assert.Equal(t, a.Rows(maze.DefaultSymbols), b.Rows(maze.DefaultSymbols))
	assert.Equal(t, a.String(), b.String())
}

func TestProblem(t *testing.T) {
	m, err := New(4, 3, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	p := m.Problem("local")
	assert.Equal(t, "local", p.Name)
	require.NotNil(t, p.Start)
	require.NotNil(t, p.End)
	assert.Equal(t, "A", p.Rows[p.Start[1]][p.Start[0]])
	assert.Equal(t, "B", p.Rows[p.End[1]][p.End[0]])
	assert.Equal(t, strings.Join(m.Rows(maze.DefaultSymbols), ""), strings.Join(flatten(p.Rows), ""))
}

func flatten(rows [][]string) []string {
	var out []string
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
