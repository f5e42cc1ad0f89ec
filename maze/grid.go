/*
Package maze implements a depth-first maze walker with explicit backtracking.

A Grid holds the cells of a rectangular maze, a Navigator moves a cursor over it while
recording the moves it commits, and a Solver drives the navigator until the goal is
reached. Backtracking relies on forks (coordinate plus move log length) so dead ends can
be undone without keeping the full path history.
*/
package maze

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrEmptyGrid        = errors.New("grid has no cells")
	ErrRaggedGrid       = errors.New("grid rows have different lengths")
	ErrUnknownSymbol    = errors.New("unknown maze symbol")
	ErrUnknownDirection = errors.New("unknown direction symbol")
)

// Grid is the cell store of a maze. After construction the only mutation allowed is
// marking cells visited.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid builds a grid from rows of single-symbol strings, the shape used by the
// mazebot API.
func NewGrid(rows [][]string, symbols Symbols) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		cells[y] = make([]Cell, width)
		for x, raw := range row {
			r, size := utf8.DecodeRuneInString(raw)
			if size == 0 || size != len(raw) {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrUnknownSymbol, raw, x+1, y+1)
			}
			class, err := symbols.Classify(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", x+1, y+1, err)
			}
			cells[y][x] = Cell{class: class}
		}
	}

	return &Grid{width: width, height: len(rows), cells: cells}, nil
}

// ParseGrid builds a grid from one string per row.
func ParseGrid(lines []string, symbols Symbols) (*Grid, error) {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		for _, r := range line {
			rows[i] = append(rows[i], string(r))
		}
	}
	return NewGrid(rows, symbols)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether c addresses a real cell.
func (g *Grid) InBound(c Coordinate) bool {
	return c.X >= 1 && c.Y >= 1 && c.X <= g.width && c.Y <= g.height
}

// Lookup returns a copy of the cell at c, or a wall sentinel when c lies outside the
// grid on any side.
func (g *Grid) Lookup(c Coordinate) Cell {
	if !g.InBound(c) {
		return wallSentinel()
	}
	return g.cells[c.Y-1][c.X-1]
}

// MarkVisited flags the cell at c as stepped on. Out of range coordinates are ignored.
func (g *Grid) MarkVisited(c Coordinate) {
	if !g.InBound(c) {
		return
	}
	g.cells[c.Y-1][c.X-1].visited = true
}

// Find returns the first cell of the given class in row-major order.
func (g *Grid) Find(class Classification) (Coordinate, bool) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].class == class {
				return Coordinate{X: x + 1, Y: y + 1}, true
			}
		}
	}
	return Coordinate{}, false
}

// Rows renders the grid back into its raw symbols.
func (g *Grid) Rows(symbols Symbols) []string {
	lines := make([]string, g.height)
	for y := range g.cells {
		buf := make([]rune, g.width)
		for x := range g.cells[y] {
			buf[x] = symbols.Symbol(g.cells[y][x].class)
		}
		lines[y] = string(buf)
	}
	return lines
}
