// Package render draws grids and solver progress to terminals.
package render

import (
	"strings"

	"github.com/beka-birhanu/mazebot-solver/config"
	"github.com/beka-birhanu/mazebot-solver/maze"
)

// Glyphs used by every renderer.
const (
	GlyphWall    = 'X'
	GlyphOpen    = 'O'
	GlyphStart   = 'A'
	GlyphGoal    = 'B'
	GlyphVisited = '.'
	GlyphCursor  = '@'
)

type glyph int

const (
	glyphWall glyph = iota
	glyphOpen
	glyphStart
	glyphGoal
	glyphVisited
	glyphCursor
)

var runes = [...]rune{GlyphWall, GlyphOpen, GlyphStart, GlyphGoal, GlyphVisited, GlyphCursor}

var ansi = [...]string{
	config.ColorRed,
	config.ColorWhite,
	config.ColorBlue,
	config.ColorGreen,
	config.ColorCyan,
	config.ColorMagenta,
}

// classify picks the glyph of the cell at c. The cursor wins over everything, then
// the endpoints, then walls and visited cells.
func classify(grid *maze.Grid, c, cursor maze.Coordinate) glyph {
	if c == cursor {
		return glyphCursor
	}
	cell := grid.Lookup(c)
	switch cell.Classification() {
	case maze.Start:
		return glyphStart
	case maze.Goal:
		return glyphGoal
	case maze.Wall:
		return glyphWall
	}
	if cell.Visited() {
		return glyphVisited
	}
	return glyphOpen
}

// Text renders grid as ANSI colored lines, one per row, marking cursor.
func Text(grid *maze.Grid, cursor maze.Coordinate) string {
	var b strings.Builder
	for y := 1; y <= grid.Height(); y++ {
		for x := 1; x <= grid.Width(); x++ {
			g := classify(grid, maze.Coordinate{X: x, Y: y}, cursor)
			b.WriteString(ansi[g])
			b.WriteRune(runes[g])
		}
		b.WriteString(config.ColorReset)
		b.WriteByte('\n')
	}
	return b.String()
}
