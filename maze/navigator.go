package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move request")
	ErrInvalidStart = errors.New("invalid start position")
)

// Navigator holds the cursor over a grid together with the move log and the fork
// stack needed to walk back from dead ends.
type Navigator struct {
	grid   *Grid
	cursor Coordinate
	log    MoveLog
	forks  ForkStack
}

// NewNavigator places the cursor on start and marks that cell visited.
func NewNavigator(grid *Grid, start Coordinate) (*Navigator, error) {
	if !grid.InBound(start) {
		return nil, fmt.Errorf("%w: %s is outside a %dx%d grid", ErrInvalidStart, start, grid.Width(), grid.Height())
	}
	if grid.Lookup(start).IsWall() {
		return nil, fmt.Errorf("%w: %s is a wall", ErrInvalidStart, start)
	}

	grid.MarkVisited(start)
	return &Navigator{grid: grid, cursor: start}, nil
}

// Grid returns the grid the navigator walks on.
func (n *Navigator) Grid() *Grid {
	return n.grid
}

// Cursor returns the current coordinate.
func (n *Navigator) Cursor() Coordinate {
	return n.cursor
}

// Current returns the cell under the cursor.
func (n *Navigator) Current() Cell {
	return n.grid.Lookup(n.cursor)
}

// MoveLog returns the moves taken so far as N/E/S/W symbols.
func (n *Navigator) MoveLog() string {
	return n.log.String()
}

// Steps returns the current move log length.
func (n *Navigator) Steps() int {
	return n.log.Len()
}

// Forks returns the number of pending forks.
func (n *Navigator) Forks() int {
	return n.forks.Len()
}

// Peek looks at the neighbor in direction d without moving.
func (n *Navigator) Peek(d Direction) Cell {
	return n.grid.Lookup(n.cursor.Neighbor(d))
}

// Move commits one step in direction d. The target is validated before anything is
// changed, so a refused move leaves the cursor and the log untouched.
func (n *Navigator) Move(d Direction) error {
	next := n.cursor.Neighbor(d)
	if n.grid.Lookup(next).IsWall() {
		return fmt.Errorf("%w: %s from %s hits a wall", ErrInvalidMove, d, n.cursor)
	}

	n.cursor = next
	n.grid.MarkVisited(next)
	n.log.Append(d)
	return nil
}

// RemainingPaths returns, in Priority order, the directions leading to cells that are
// neither walls nor visited.
func (n *Navigator) RemainingPaths() []Direction {
	paths := make([]Direction, 0, len(Priority))
	for _, d := range Priority {
		cell := n.Peek(d)
		if !cell.IsWall() && !cell.Visited() {
			paths = append(paths, d)
		}
	}
	return paths
}

// LogFork records the cursor position and the move log length as a crossroad.
func (n *Navigator) LogFork() {
	n.forks.Push(Fork{Coordinate: n.cursor, Steps: n.log.Len()})
}

// RevertToLastFork moves the cursor back to the most recent fork and drops the moves
// made since. Visited flags are kept, which is what steers the next query away from
// the branch just abandoned.
func (n *Navigator) RevertToLastFork() (Fork, error) {
	fork, ok := n.forks.Pop()
	if !ok {
		return Fork{}, ErrUnsolvable
	}

	n.cursor = fork.Coordinate
	n.log.Truncate(fork.Steps)
	return fork, nil
}
