package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/mazebot-solver/maze"
	"github.com/gdamore/tcell/v2"
)

var ErrQuit = errors.New("quit by user")

var styles = [...]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorRed),
	tcell.StyleDefault.Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	tcell.StyleDefault.Foreground(tcell.ColorDarkCyan),
	tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

// Screen draws a navigator onto an initialized tcell screen.
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps s. The caller owns Init and Fini.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Draw paints the grid of nav, its cursor and a status line below the grid.
func (s *Screen) Draw(nav *maze.Navigator, status string) {
	grid := nav.Grid()
	cursor := nav.Cursor()

	s.screen.Clear()
	for y := 1; y <= grid.Height(); y++ {
		for x := 1; x <= grid.Width(); x++ {
			g := classify(grid, maze.Coordinate{X: x, Y: y}, cursor)
			s.screen.SetContent(x-1, y-1, runes[g], nil, styles[g])
		}
	}
	for i, r := range []rune(status) {
		s.screen.SetContent(i, grid.Height(), r, nil, statusStyle)
	}
	s.screen.Show()
}

// Animate solves grid from start, redrawing after every iteration and pausing delay
// between frames.
func (s *Screen) Animate(grid *maze.Grid, start maze.Coordinate, delay time.Duration, opts ...maze.Option) (*maze.Solution, error) {
	hook := maze.WithStepHook(func(solver *maze.Solver) {
		nav := solver.Navigator()
		s.Draw(nav, fmt.Sprintf("%s  moves=%d forks=%d", solver.State(), nav.Steps(), nav.Forks()))
		if delay > 0 {
			time.Sleep(delay)
		}
	})

	solver, err := maze.NewSolver(grid, start, append(opts, hook)...)
	if err != nil {
		return nil, err
	}
	s.Draw(solver.Navigator(), solver.State().String())
	return solver.Solve()
}

// Play lets the user walk nav with the arrow keys, hjkl or wasd until the goal is
// reached. Moves into walls are refused. q, Esc and Ctrl-C return ErrQuit.
func (s *Screen) Play(nav *maze.Navigator) (string, error) {
	status := "arrows/hjkl/wasd to move, q to quit"
	s.Draw(nav, status)

	for {
		if nav.Current().IsGoal() {
			s.Draw(nav, fmt.Sprintf("solved in %d moves: %s", nav.Steps(), nav.MoveLog()))
			return nav.MoveLog(), nil
		}

		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nav.MoveLog(), ErrQuit
		case *tcell.EventResize:
			s.screen.Sync()
			s.Draw(nav, status)
		case *tcell.EventKey:
			if quits(ev) {
				return nav.MoveLog(), ErrQuit
			}
			dir, ok := keyDirection(ev)
			if !ok {
				continue
			}
			if nav.Peek(dir).IsWall() {
				status = fmt.Sprintf("%s is blocked", dir)
			} else {
				if err := nav.Move(dir); err != nil {
					return nav.MoveLog(), err
				}
				status = nav.MoveLog()
			}
			s.Draw(nav, status)
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func keyDirection(ev *tcell.EventKey) (maze.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return maze.North, true
	case tcell.KeyRight:
		return maze.East, true
	case tcell.KeyDown:
		return maze.South, true
	case tcell.KeyLeft:
		return maze.West, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return maze.North, true
		case 'l', 'd':
			return maze.East, true
		case 'j', 's':
			return maze.South, true
		case 'h', 'a':
			return maze.West, true
		}
	}
	return 0, false
}
