package maze

import "fmt"

// Classification is the passability class of a cell.
type Classification int

const (
	Wall Classification = iota
	Open
	Start
	Goal
)

// String returns the human readable name of the classification.
func (c Classification) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Symbols maps the raw maze symbols onto classifications.
type Symbols struct {
	Wall  rune
	Open  rune
	Start rune
	Goal  rune
}

// DefaultSymbols is the symbol table used by the mazebot API.
var DefaultSymbols = Symbols{Wall: 'X', Open: ' ', Start: 'A', Goal: 'B'}

// Classify parses a raw symbol into its classification.
func (s Symbols) Classify(r rune) (Classification, error) {
	switch r {
	case s.Wall:
		return Wall, nil
	case s.Open:
		return Open, nil
	case s.Start:
		return Start, nil
	case s.Goal:
		return Goal, nil
	}
	return Wall, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// Symbol returns the raw symbol of a classification.
func (s Symbols) Symbol(c Classification) rune {
	switch c {
	case Open:
		return s.Open
	case Start:
		return s.Start
	case Goal:
		return s.Goal
	default:
		return s.Wall
	}
}

// Cell represents a single grid position.
type Cell struct {
	class   Classification
	visited bool
}

// wallSentinel is what lookups outside the grid resolve to.
func wallSentinel() Cell {
	return Cell{class: Wall}
}

// Classification returns the passability class of the cell.
func (c Cell) Classification() Classification {
	return c.class
}

// Visited reports whether the cell has been stepped on during the run.
func (c Cell) Visited() bool {
	return c.visited
}

// IsWall reports whether the cell is impassable.
func (c Cell) IsWall() bool {
	return c.class == Wall
}

// IsGoal reports whether the cell is the exit of the maze.
func (c Cell) IsGoal() bool {
	return c.class == Goal
}

func (c Cell) String() string {
	return fmt.Sprintf("(%s, %t)", c.class, c.visited)
}
