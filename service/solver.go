package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/maze"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	reasonUnsolvable = "unsolvable"
	reasonMoveLimit  = "move limit exceeded"
)

var (
	ErrInvalidProblem = errors.New("invalid maze problem")
	ErrNoStart        = errors.New("maze has no start cell")
	ErrNoSource       = errors.New("no maze source configured")
	ErrNoFactory      = errors.New("no maze factory configured")
	ErrSource         = errors.New("maze source unavailable")
	ErrSubmit         = errors.New("submitting solution failed")
	ErrMissingDep     = errors.New("missing dependency")
)

// MazeFactory builds a local maze problem of the given cell dimensions.
type MazeFactory func(width, height int) (*dmn.Problem, error)

// SolverConfig wires the dependencies of a SolverService. Solutions and Logger are
// required, everything else is optional.
type SolverConfig struct {
	Source          i.MazeSource
	Solutions       i.SolutionRepo
	Users           i.UserRepo
	Cache           i.SolutionCache
	MazeFactory     MazeFactory
	Logger          i.Logger
	MoveLimitFactor int
}

// SolverService runs the depth-first solver for API clients and keeps the results.
type SolverService struct {
	source          i.MazeSource
	solutions       i.SolutionRepo
	users           i.UserRepo
	cache           i.SolutionCache
	mazeFactory     MazeFactory
	logger          i.Logger
	moveLimitFactor int
	now             func() time.Time
}

// NewSolverService creates a SolverService from c.
func NewSolverService(c *SolverConfig) (*SolverService, error) {
	if c == nil || c.Solutions == nil {
		return nil, fmt.Errorf("%w: solution repository", ErrMissingDep)
	}
	if c.Logger == nil {
		return nil, fmt.Errorf("%w: logger", ErrMissingDep)
	}

	factor := c.MoveLimitFactor
	if factor <= 0 {
		factor = maze.DefaultMoveLimitFactor
	}

	return &SolverService{
		source:          c.Source,
		solutions:       c.Solutions,
		users:           c.Users,
		cache:           c.Cache,
		mazeFactory:     c.MazeFactory,
		logger:          c.Logger,
		moveLimitFactor: factor,
		now:             time.Now,
	}, nil
}

// Solve solves problem on behalf of solverID and stores the attempt. Unsolvable mazes
// are not errors: they come back with Solved set to false and a reason.
func (s *SolverService) Solve(ctx context.Context, solverID uuid.UUID, problem *dmn.Problem) (*dmn.Solution, error) {
	grid, err := maze.NewGrid(problem.Rows, maze.DefaultSymbols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	start, err := resolveStart(grid, problem)
	if err != nil {
		return nil, err
	}

	fingerprint := problem.Fingerprint()
	if cached := s.cached(ctx, fingerprint); cached != nil {
		s.logger.Debug(fmt.Sprintf("Solution cache hit: fingerprint=%s", fingerprint))
		return s.record(s.reissue(cached, solverID, problem))
	}

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, fingerprint)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Solving without lock: fingerprint=%s: %s", fingerprint, err))
		} else {
			defer func() {
				if err := unlock(context.Background()); err != nil {
					s.logger.Warning(fmt.Sprintf("Releasing solve lock: fingerprint=%s: %s", fingerprint, err))
				}
			}()
			if cached := s.cached(ctx, fingerprint); cached != nil {
				return s.record(s.reissue(cached, solverID, problem))
			}
		}
	}

	solution, err := s.compute(grid, start)
	if err != nil {
		return nil, err
	}
	solution.ID = uuid.New()
	solution.SolverID = solverID
	solution.Fingerprint = fingerprint
	solution.Name = problem.Name
	solution.MazePath = problem.MazePath
	solution.SolvedAt = s.now()

	s.logger.Info(fmt.Sprintf("Solved maze: fingerprint=%s size=%dx%d solved=%t moves=%d forks=%d backtracks=%d",
		fingerprint, solution.Width, solution.Height, solution.Solved, solution.Moves, solution.Forks, solution.Backtracks))

	if s.cache != nil {
		if err := s.cache.Set(ctx, solution); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching solution %s: %s", solution.ID, err))
		}
	}

	return s.record(solution)
}

// SolveRandom fetches a maze from the configured source, solves it and, when submit
// is set and a path was found, submits the directions and stores the verdict.
func (s *SolverService) SolveRandom(ctx context.Context, solverID uuid.UUID, minSize, maxSize int, submit bool) (*dmn.Solution, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	problem, err := s.source.Random(ctx, minSize, maxSize)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Fetching random maze: %s", err))
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	solution, err := s.Solve(ctx, solverID, problem)
	if err != nil {
		return nil, err
	}

	if !submit || !solution.Solved || problem.MazePath == "" {
		return solution, nil
	}

	verdict, err := s.source.Submit(ctx, problem.MazePath, solution.Directions)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Submitting solution %s: %s", solution.ID, err))
		return solution, fmt.Errorf("%w: %w", ErrSubmit, err)
	}

	solution.Verdict = verdict
	s.logger.Info(fmt.Sprintf("Submitted solution %s: result=%s length=%d shortest=%d",
		solution.ID, verdict.Result, verdict.YourSolutionLength, verdict.ShortestSolutionLength))
	if err := s.solutions.Save(solution); err != nil {
		return solution, err
	}
	return solution, nil
}

// Generate builds a local maze with the configured factory.
func (s *SolverService) Generate(width, height int) (*dmn.Problem, error) {
	if s.mazeFactory == nil {
		return nil, ErrNoFactory
	}
	problem, err := s.mazeFactory(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return problem, nil
}

// Solution returns a stored solution.
func (s *SolverService) Solution(id uuid.UUID) (*dmn.Solution, error) {
	return s.solutions.ByID(id)
}

// History returns the latest solutions of a solver. limit is clamped to
// [1, maxHistoryLimit], with non-positive values meaning the default.
func (s *SolverService) History(solverID uuid.UUID, limit int64) ([]*dmn.Solution, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	return s.solutions.BySolver(solverID, limit)
}

func (s *SolverService) compute(grid *maze.Grid, start maze.Coordinate) (*dmn.Solution, error) {
	limit := s.moveLimitFactor * grid.Width() * grid.Height()
	solver, err := maze.NewSolver(grid, start, maze.WithMoveLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	_, err = solver.Solve()
	snapshot := solver.Snapshot()
	x, y := start.ZeroIndexed()
	solution := &dmn.Solution{
		Width:      grid.Width(),
		Height:     grid.Height(),
		Start:      dmn.Position{x, y},
		Moves:      snapshot.Steps,
		Forks:      snapshot.Forks,
		Backtracks: snapshot.Backtracks,
	}

	switch {
	case err == nil:
		solution.Solved = true
		solution.Directions = snapshot.Moves
	case errors.Is(err, maze.ErrUnsolvable):
		solution.Reason = reasonUnsolvable
	case errors.Is(err, maze.ErrMoveLimitExceeded):
		solution.Reason = reasonMoveLimit
	default:
		s.logger.Error(fmt.Sprintf("Solver aborted: %s", err))
		return nil, err
	}
	return solution, nil
}

// reissue copies a cached result into a new attempt owned by solverID.
func (s *SolverService) reissue(cached *dmn.Solution, solverID uuid.UUID, problem *dmn.Problem) *dmn.Solution {
	solution := *cached
	solution.ID = uuid.New()
	solution.SolverID = solverID
	solution.Name = problem.Name
	solution.MazePath = problem.MazePath
	solution.SolvedAt = s.now()
	solution.Verdict = nil
	return &solution
}

func (s *SolverService) cached(ctx context.Context, fingerprint string) *dmn.Solution {
	if s.cache == nil {
		return nil
	}
	solution, err := s.cache.Get(ctx, fingerprint)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("Reading solution cache: %s", err))
		}
		return nil
	}
	return solution
}

func (s *SolverService) record(solution *dmn.Solution) (*dmn.Solution, error) {
	if err := s.solutions.Save(solution); err != nil {
		s.logger.Error(fmt.Sprintf("Saving solution %s: %s", solution.ID, err))
		return nil, err
	}

	if solution.Solved && s.users != nil {
		if err := s.users.IncrementSolved(solution.SolverID); err != nil {
			s.logger.Warning(fmt.Sprintf("Counting solve for %s: %s", solution.SolverID, err))
		}
	}
	return solution, nil
}

// resolveStart returns the explicit start of problem, or the first start symbol of
// the grid.
func resolveStart(grid *maze.Grid, problem *dmn.Problem) (maze.Coordinate, error) {
	if problem.Start != nil {
		return maze.FromZeroIndexed(problem.Start[0], problem.Start[1]), nil
	}
	start, ok := grid.Find(maze.Start)
	if !ok {
		return maze.Coordinate{}, ErrNoStart
	}
	return start, nil
}
