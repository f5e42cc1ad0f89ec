package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var winding = []string{
	"A X      ",
	" XX XXXX ",
	"    X  X ",
	"XXX X XX ",
	"  X   X  ",
	" XXXXXX  ",
	"       XB",
}

func solveLines(t *testing.T, lines []string, opts ...Option) (*Solver, *Solution, error) {
	t.Helper()
	g := mustParse(t, lines...)
	start, ok := g.Find(Start)
	require.True(t, ok, "grid has no start symbol")

	s, err := NewSolver(g, start, opts...)
	require.NoError(t, err)

	solution, err := s.Solve()
	return s, solution, err
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		moves      string
		steps      int
		forks      int
		backtracks int
	}{
		{
			name:  "Open three by three",
			lines: []string{" A ", "   ", "B  "},
			moves: "ESSWW",
			steps: 5,
			forks: 3,
		},
		{
			name:       "Dead end then backtrack",
			lines:      []string{"A  ", " XX", "  B"},
			moves:      "SSEE",
			steps:      6,
			forks:      1,
			backtracks: 1,
		},
		{
			name:  "Corridor",
			lines: []string{"A   B"},
			moves: "EEEE",
			steps: 4,
		},
		{
			name:  "Goal above",
			lines: []string{"B", " ", "A"},
			moves: "NN",
			steps: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, solution, err := solveLines(t, tt.lines)
			require.NoError(t, err)

			assert.Equal(t, Done, s.State())
			assert.Equal(t, tt.moves, solution.Moves)
			assert.Equal(t, tt.steps, solution.Steps)
			assert.Equal(t, tt.forks, solution.Forks)
			assert.Equal(t, tt.backtracks, solution.Backtracks)
			assert.True(t, s.Navigator().Current().IsGoal())
		})
	}
}

func TestSolveFailures(t *testing.T) {
	t.Run("Walled in start", func(t *testing.T) {
		s, solution, err := solveLines(t, []string{"XXXX", "XAXB", "XXXX"})
		assert.ErrorIs(t, err, ErrUnsolvable)
		assert.Nil(t, solution)
		assert.Equal(t, Failed, s.State())
		assert.ErrorIs(t, s.Err(), ErrUnsolvable)
		assert.Empty(t, s.Navigator().MoveLog())
	})

	t.Run("Unreachable goal after exploring forks", func(t *testing.T) {
		s, _, err := solveLines(t, []string{"A X ", "  XB"})
		assert.ErrorIs(t, err, ErrUnsolvable)
		assert.Equal(t, Failed, s.State())
		assert.Empty(t, s.Navigator().MoveLog())
	})

	t.Run("Move limit", func(t *testing.T) {
		s, _, err := solveLines(t, []string{"A    B"}, WithMoveLimit(3))
		assert.ErrorIs(t, err, ErrMoveLimitExceeded)
		assert.Equal(t, Failed, s.State())
		assert.Equal(t, "EEE", s.Navigator().MoveLog())
	})

	t.Run("Disabled move limit", func(t *testing.T) {
		_, solution, err := solveLines(t, []string{"A    B"}, WithMoveLimit(0))
		require.NoError(t, err)
		assert.Equal(t, "EEEEE", solution.Moves)
	})

	t.Run("Step after failure keeps failing", func(t *testing.T) {
		s, _, err := solveLines(t, []string{"XAX", "XXB"})
		require.ErrorIs(t, err, ErrUnsolvable)

		done, err := s.Step()
		assert.True(t, done)
		assert.ErrorIs(t, err, ErrUnsolvable)
	})
}

func TestSolveStartOnGoal(t *testing.T) {
	g := mustParse(t, "AB ")
	s, err := NewSolver(g, FromZeroIndexed(1, 0))
	require.NoError(t, err)

	solution, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Done, s.State())
	assert.Empty(t, solution.Moves)
	assert.Zero(t, solution.Steps)
}

func TestSolveReplaysOntoGoal(t *testing.T) {
	mazes := [][]string{
		{" A ", "   ", "B  "},
		{"A  ", " XX", "  B"},
		winding,
		{
			"     ",
			"  A  ",
			"     ",
			"    B",
		},
	}

	for i, lines := range mazes {
		_, solution, err := solveLines(t, lines)
		require.NoError(t, err, "maze %d", i)

		fresh := mustParse(t, lines...)
		start, _ := fresh.Find(Start)
		end, err := Replay(fresh, start, solution.Moves)
		require.NoError(t, err, "maze %d", i)

		goal, _ := fresh.Find(Goal)
		assert.Equal(t, goal, end, "maze %d", i)
		assert.NoError(t, Verify(fresh, start, solution.Moves), "maze %d", i)
	}
}

func TestSolveDeterministic(t *testing.T) {
	lines := winding

	_, first, err := solveLines(t, lines)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, again, err := solveLines(t, lines)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStepHookSeesConsistentState(t *testing.T) {
	lines := winding
	g := mustParse(t, lines...)
	start, _ := g.Find(Start)

	visited := map[Coordinate]bool{}
	var forkSteps []int
	iterations := 0

	hook := func(s *Solver) {
		iterations++
		nav := s.Navigator()

		for c := range visited {
			assert.True(t, g.Lookup(c).Visited(), "%s lost its visited flag", c)
		}
		for y := 1; y <= g.Height(); y++ {
			for x := 1; x <= g.Width(); x++ {
				c := Coordinate{x, y}
				if g.Lookup(c).Visited() {
					visited[c] = true
				}
			}
		}

		end, err := Replay(g, start, nav.MoveLog())
		assert.NoError(t, err)
		assert.Equal(t, nav.Cursor(), end, "move log must replay onto the cursor")

		switch {
		case nav.Forks() > len(forkSteps):
			forkSteps = append(forkSteps, nav.Steps()-1)
		case s.State() == Backtracking:
			last := forkSteps[len(forkSteps)-1]
			forkSteps = forkSteps[:len(forkSteps)-1]
			assert.Equal(t, last, nav.Steps(), "backtrack must truncate to the fork length")
		}
	}

	s, err := NewSolver(g, start, WithStepHook(hook))
	require.NoError(t, err)

	_, err = s.Solve()
	require.NoError(t, err)
	assert.Greater(t, iterations, 0)
}
