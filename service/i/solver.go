package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/google/uuid"
)

// Solver solves, generates and looks up mazes on behalf of a solver account.
type Solver interface {
	Solve(ctx context.Context, solverID uuid.UUID, problem *dmn.Problem) (*dmn.Solution, error)
	SolveRandom(ctx context.Context, solverID uuid.UUID, minSize, maxSize int, submit bool) (*dmn.Solution, error)
	Generate(width, height int) (*dmn.Problem, error)
	Solution(id uuid.UUID) (*dmn.Solution, error)
	History(solverID uuid.UUID, limit int64) ([]*dmn.Solution, error)
}
