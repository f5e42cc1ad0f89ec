package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
)

// ErrCacheMiss is returned by SolutionCache.Get when nothing is stored.
var ErrCacheMiss = errors.New("solution not cached")

// SolutionCache keeps recently computed solutions keyed by problem fingerprint.
type SolutionCache interface {
	// Get returns the cached solution, or ErrCacheMiss wrapped when absent.
	Get(ctx context.Context, fingerprint string) (*dmn.Solution, error)

	// Set stores a solution under its fingerprint.
	Set(ctx context.Context, solution *dmn.Solution) error

	// Lock serializes solves of the same fingerprint across instances. The returned
	// function releases the lock.
	Lock(ctx context.Context, fingerprint string) (func(context.Context) error, error)
}
