package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
)

// MazeSource hands out mazes to solve and grades submitted solutions.
type MazeSource interface {
	// Random fetches a maze whose side lies between minSize and maxSize.
	Random(ctx context.Context, minSize, maxSize int) (*dmn.Problem, error)

	// Submit sends the directions solving the maze found at mazePath.
	Submit(ctx context.Context, mazePath, directions string) (*dmn.Verdict, error)
}
