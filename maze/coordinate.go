package maze

import "fmt"

// Direction is one of the four cardinal unit moves.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Priority is the order in which RemainingPaths reports directions.
// It is a tie-break, changing it changes every produced move log.
var Priority = [...]Direction{East, South, West, North}

// Symbol returns the move log symbol of the direction.
func (d Direction) Symbol() byte {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	default:
		return '?'
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// delta returns the coordinate offset of a single step in the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection maps a move log symbol back to its direction.
func ParseDirection(symbol rune) (Direction, error) {
	switch symbol {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownDirection, symbol)
}

// Coordinate is a 1-indexed (x, y) grid position; (1, 1) is the top-left cell.
type Coordinate struct {
	X int
	Y int
}

// FromZeroIndexed converts a 0-indexed position into a Coordinate.
func FromZeroIndexed(x, y int) Coordinate {
	return Coordinate{X: x + 1, Y: y + 1}
}

// ZeroIndexed returns the 0-indexed (x, y) pair of the coordinate.
func (c Coordinate) ZeroIndexed() (int, int) {
	return c.X - 1, c.Y - 1
}

// Neighbor returns the adjacent coordinate in the given direction.
func (c Coordinate) Neighbor(d Direction) Coordinate {
	dx, dy := d.delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
