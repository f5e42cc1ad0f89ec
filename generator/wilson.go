/*
Package generator builds perfect mazes with Wilson's loop-erased random walk.

Mazes are produced as rectangular cells with a wall on each side and can be rendered
into the block grid consumed by the maze package, where every cell and every opened
wall becomes one passable symbol.
*/
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/maze"
)

// MaxDimension bounds the width and height of generated mazes.
const MaxDimension = 50

var ErrInvalidDimension = errors.New("invalid maze dimensions")

// position addresses a cell by row and column, both 0-indexed.
type position struct {
	row int
	col int
}

// exit is the step a random walk last took out of a cell.
type exit struct {
	from position
	to   position
	dir  maze.Direction
}

// cell holds the walls of one maze cell.
type cell struct {
	north bool
	south bool
	east  bool
	west  bool
}

// Maze is a perfect maze: every pair of cells is joined by exactly one path.
type Maze struct {
	Width  int
	Height int
	cells  [][]cell
	rnd    *rand.Rand
}

// New generates a maze of the given dimensions using rnd as the only source of
// randomness, so equal seeds give equal mazes.
func New(width, height int, rnd *rand.Rand) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > MaxDimension || width*height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([][]cell, height)
	for r := range cells {
		cells[r] = make([]cell, width)
		for c := range cells[r] {
			cells[r][c] = cell{north: true, south: true, east: true, west: true}
		}
	}

	m := &Maze{Width: width, Height: height, cells: cells, rnd: rnd}
	m.generate()
	return m, nil
}

func (m *Maze) randomPosition() position {
	return position{row: m.rnd.IntN(m.Height), col: m.rnd.IntN(m.Width)}
}

func (m *Maze) randomUnvisitedPosition(visited map[position]struct{}) position {
	for {
		pos := m.randomPosition()
		if _, seen := visited[pos]; !seen {
			return pos
		}
	}
}

func (m *Maze) inBound(p position) bool {
	return p.row >= 0 && p.row < m.Height && p.col >= 0 && p.col < m.Width
}

// neighbors lists the in-bound steps from pos in a fixed order.
func (m *Maze) neighbors(pos position) []exit {
	result := make([]exit, 0, 4)
	for _, d := range maze.Priority {
		c := maze.Coordinate{X: pos.col, Y: pos.row}.Neighbor(d)
		next := position{row: c.Y, col: c.X}
		if m.inBound(next) {
			result = append(result, exit{from: pos, to: next, dir: d})
		}
	}
	return result
}

// openWall removes the wall shared by the two cells of e.
func (m *Maze) openWall(e exit) {
	from, to := &m.cells[e.from.row][e.from.col], &m.cells[e.to.row][e.to.col]
	switch e.dir {
	case maze.North:
		from.north, to.south = false, false
	case maze.South:
		from.south, to.north = false, false
	case maze.East:
		from.east, to.west = false, false
	case maze.West:
		from.west, to.east = false, false
	}
}

// randomWalk wanders from an unvisited cell until it hits the visited set. Only the
// last exit of each cell is kept, which erases the loops of the walk.
func (m *Maze) randomWalk(visited map[position]struct{}) map[position]exit {
	cur := m.randomUnvisitedPosition(visited)
	exits := make(map[position]exit)

	for {
		options := m.neighbors(cur)
		step := options[m.rnd.IntN(len(options))]
		exits[cur] = step
		if _, done := visited[step.to]; done {
			break
		}
		cur = step.to
	}

	return exits
}

func (m *Maze) generate() {
	visited := map[position]struct{}{m.randomPosition(): {}}

	for len(visited) < m.Width*m.Height {
		for pos, step := range m.randomWalk(visited) {
			m.openWall(step)
			visited[pos] = struct{}{}
		}
	}
}

// Rows renders the maze as a (2*Width+1) x (2*Height+1) block grid with the start in
// the top-left cell and the goal in the bottom-right one.
func (m *Maze) Rows(symbols maze.Symbols) []string {
	blocks := make([][]rune, 2*m.Height+1)
	for y := range blocks {
		blocks[y] = []rune(strings.Repeat(string(symbols.Wall), 2*m.Width+1))
	}

	for r := range m.cells {
		for c, cl := range m.cells[r] {
			y, x := 2*r+1, 2*c+1
			blocks[y][x] = symbols.Open
			if !cl.east {
				blocks[y][x+1] = symbols.Open
			}
			if !cl.south {
				blocks[y+1][x] = symbols.Open
			}
		}
	}
	blocks[1][1] = symbols.Start
	blocks[2*m.Height-1][2*m.Width-1] = symbols.Goal

	lines := make([]string, len(blocks))
	for y := range blocks {
		lines[y] = string(blocks[y])
	}
	return lines
}

// Problem wraps the block grid into a solver problem.
func (m *Maze) Problem(name string) *domain.Problem {
	lines := m.Rows(maze.DefaultSymbols)
	rows := make([][]string, len(lines))
	for y, line := range lines {
		rows[y] = make([]string, 0, len(line))
		for _, r := range line {
			rows[y] = append(rows[y], string(r))
		}
	}

	start := domain.Position{1, 1}
	end := domain.Position{2*m.Width - 1, 2*m.Height - 1}
	return &domain.Problem{
		Name:  name,
		Rows:  rows,
		Start: &start,
		End:   &end,
	}
}

// String draws the maze with box characters, one cell per three columns.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")
	for r := 0; r < m.Height; r++ {
		b.WriteString("|")
		for c := 0; c < m.Width; c++ {
			if m.cells[r][c].east {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n+")
		for c := 0; c < m.Width; c++ {
			if m.cells[r][c].south {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
