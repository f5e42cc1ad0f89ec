package maze

import (
	"errors"
	"fmt"
)

// ErrGoalNotReached is returned by Verify when a move log ends off the goal.
var ErrGoalNotReached = errors.New("moves do not end on the goal")

// Replay walks moves from start over grid and returns the final coordinate. It fails
// on unknown symbols and on any step into a wall. Visited flags are not consulted.
func Replay(grid *Grid, start Coordinate, moves string) (Coordinate, error) {
	cur := start
	for i, symbol := range moves {
		d, err := ParseDirection(symbol)
		if err != nil {
			return cur, fmt.Errorf("move %d: %w", i, err)
		}
		next := cur.Neighbor(d)
		if grid.Lookup(next).IsWall() {
			return cur, fmt.Errorf("move %d: %w: %s from %s hits a wall", i, ErrInvalidMove, d, cur)
		}
		cur = next
	}
	return cur, nil
}

// Verify replays moves and checks that they end on a goal cell.
func Verify(grid *Grid, start Coordinate, moves string) error {
	end, err := Replay(grid, start, moves)
	if err != nil {
		return err
	}
	if !grid.Lookup(end).IsGoal() {
		return fmt.Errorf("%w: stopped at %s", ErrGoalNotReached, end)
	}
	return nil
}
