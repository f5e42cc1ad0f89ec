package maze

import (
	"errors"
	"fmt"
)

// DefaultMoveLimitFactor multiplied by the grid area gives the default move ceiling.
const DefaultMoveLimitFactor = 4

// ErrMoveLimitExceeded is returned when a solve commits more moves than allowed.
var ErrMoveLimitExceeded = errors.New("move limit exceeded")

// State is the phase of the solver state machine.
type State int

const (
	Exploring State = iota
	Forking
	Backtracking
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Exploring:
		return "Exploring"
	case Forking:
		return "Forking"
	case Backtracking:
		return "Backtracking"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further step can be taken.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

// Solution is the outcome of a successful solve.
type Solution struct {
	Moves      string // Move log from start to goal
	Steps      int    // Committed moves, including the ones later backtracked
	Forks      int    // Forks logged
	Backtracks int    // Reverts to a fork
}

// Option configures a Solver.
type Option func(*Solver)

// WithMoveLimit caps the number of committed moves. Values <= 0 disable the cap.
func WithMoveLimit(limit int) Option {
	return func(s *Solver) {
		s.moveLimit = limit
	}
}

// WithStepHook registers a function called after every iteration of the loop.
func WithStepHook(hook func(*Solver)) Option {
	return func(s *Solver) {
		s.hook = hook
	}
}

// Solver drives a Navigator depth-first until it stands on the goal.
type Solver struct {
	nav        *Navigator
	state      State
	moveLimit  int
	hook       func(*Solver)
	steps      int
	forks      int
	backtracks int
	err        error
}

// NewSolver creates a solver positioned on start.
func NewSolver(grid *Grid, start Coordinate, opts ...Option) (*Solver, error) {
	nav, err := NewNavigator(grid, start)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		nav:       nav,
		state:     Exploring,
		moveLimit: DefaultMoveLimitFactor * grid.Width() * grid.Height(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Navigator exposes the underlying navigator for read-only introspection.
func (s *Solver) Navigator() *Navigator {
	return s.nav
}

// State returns the current state.
func (s *Solver) State() State {
	return s.state
}

// Err returns the error that moved the solver into Failed, if any.
func (s *Solver) Err() error {
	return s.err
}

// Step runs one iteration of the loop. It reports whether the solver reached a
// terminal state.
func (s *Solver) Step() (bool, error) {
	if s.state.Terminal() {
		return true, s.err
	}
	defer s.notify()

	if s.nav.Current().IsGoal() {
		s.state = Done
		return true, nil
	}

	paths := s.nav.RemainingPaths()
	switch {
	case len(paths) == 0:
		s.state = Backtracking
		if _, err := s.nav.RevertToLastFork(); err != nil {
			return true, s.fail(err)
		}
		s.backtracks++
		return false, nil
	case len(paths) > 1:
		s.state = Forking
		s.nav.LogFork()
		s.forks++
	}

	if s.moveLimit > 0 && s.steps >= s.moveLimit {
		return true, s.fail(fmt.Errorf("%w: %d moves on a %dx%d grid", ErrMoveLimitExceeded, s.steps, s.nav.grid.Width(), s.nav.grid.Height()))
	}
	if err := s.nav.Move(paths[0]); err != nil {
		return true, s.fail(err)
	}
	s.steps++
	s.state = Exploring

	if s.nav.Current().IsGoal() {
		s.state = Done
		return true, nil
	}
	return false, nil
}

// Solve runs the loop to completion.
func (s *Solver) Solve() (*Solution, error) {
	for {
		done, err := s.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return s.Snapshot(), nil
		}
	}
}

// Snapshot returns the current move log and counters. After a failure it describes
// how far the solver got.
func (s *Solver) Snapshot() *Solution {
	return &Solution{
		Moves:      s.nav.MoveLog(),
		Steps:      s.steps,
		Forks:      s.forks,
		Backtracks: s.backtracks,
	}
}

func (s *Solver) fail(err error) error {
	s.state = Failed
	s.err = err
	return err
}

func (s *Solver) notify() {
	if s.hook != nil {
		s.hook(s)
	}
}
