package i

import (
	"errors"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)

	// IncrementSolved adds one to the solved counter of a user.
	IncrementSolved(id uuid.UUID) error
}

// SolutionRepo defines the interface for solution persistence operations.
type SolutionRepo interface {
	// Save inserts or updates a solution.
	Save(solution *dmn.Solution) error

	// ByID retrieves a solution by its ID.
	ByID(id uuid.UUID) (*dmn.Solution, error)

	// BySolver lists the latest solutions of a solver, newest first.
	BySolver(solverID uuid.UUID, limit int64) ([]*dmn.Solution, error)
}
