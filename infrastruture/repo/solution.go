package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SolutionRepo stores solve attempts.
type SolutionRepo struct {
	collection *mongo.Collection
}

func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	return &SolutionRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index backing BySolver.
func (s *SolutionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "solverId", Value: 1}, {Key: "solvedAt", Value: -1}},
	})
	return err
}

// Save upserts the whole solution document.
func (s *SolutionRepo) Save(solution *dmn.Solution) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": solution.ID}, solution, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

func (s *SolutionRepo) ByID(id uuid.UUID) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var solution dmn.Solution
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&solution); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &solution, nil
}

// BySolver lists the latest solutions of a solver, newest first.
func (s *SolutionRepo) BySolver(solverID uuid.UUID, limit int64) ([]*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "solvedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.collection.Find(ctx, bson.M{"solverId": solverID}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	solutions := make([]*dmn.Solution, 0)
	if err := cursor.All(ctx, &solutions); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return solutions, nil
}
