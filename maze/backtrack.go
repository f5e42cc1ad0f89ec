package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsolvable is returned when a dead end is reached with no fork left to return to.
var ErrUnsolvable = errors.New("maze has no solution from the explored state")

// MoveLog is the ordered sequence of directions taken from the start.
type MoveLog struct {
	moves []Direction
}

// Append records one committed move.
func (l *MoveLog) Append(d Direction) {
	l.moves = append(l.moves, d)
}

// Len returns the number of recorded moves.
func (l *MoveLog) Len() int {
	return len(l.moves)
}

// Truncate discards every move after the first n.
func (l *MoveLog) Truncate(n int) {
	if n < 0 || n > len(l.moves) {
		panic(fmt.Sprintf("maze: truncate move log of length %d to %d", len(l.moves), n))
	}
	l.moves = l.moves[:n]
}

// Directions returns a copy of the recorded moves.
func (l *MoveLog) Directions() []Direction {
	return append([]Direction(nil), l.moves...)
}

// String returns the move log as N/E/S/W symbols.
func (l *MoveLog) String() string {
	var b strings.Builder
	b.Grow(len(l.moves))
	for _, d := range l.moves {
		b.WriteByte(d.Symbol())
	}
	return b.String()
}

// Fork is a crossroad the solver may come back to.
type Fork struct {
	Coordinate Coordinate // Cursor position at the crossroad
	Steps      int        // Move log length when the fork was logged
}

func (f Fork) String() string {
	return fmt.Sprintf("(%s, %d)", f.Coordinate, f.Steps)
}

// ForkStack is a LIFO of forks.
type ForkStack struct {
	forks []Fork
}

// Push adds a fork on top of the stack.
func (s *ForkStack) Push(f Fork) {
	s.forks = append(s.forks, f)
}

// Pop removes and returns the most recent fork.
func (s *ForkStack) Pop() (Fork, bool) {
	if len(s.forks) == 0 {
		return Fork{}, false
	}
	last := len(s.forks) - 1
	f := s.forks[last]
	s.forks = s.forks[:last]
	return f, true
}

// Peek returns the most recent fork without removing it.
func (s *ForkStack) Peek() (Fork, bool) {
	if len(s.forks) == 0 {
		return Fork{}, false
	}
	return s.forks[len(s.forks)-1], true
}

// Len returns the number of pending forks.
func (s *ForkStack) Len() int {
	return len(s.forks)
}
