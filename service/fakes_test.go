package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memSolutions struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]dmn.Solution
	saves     int
	lastLimit int64
	saveErr   error
}

func newMemSolutions() *memSolutions {
	return &memSolutions{byID: make(map[uuid.UUID]dmn.Solution)}
}

func (m *memSolutions) Save(s *dmn.Solution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.byID[s.ID] = *s
	return nil
}

func (m *memSolutions) ByID(id uuid.UUID) (*dmn.Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return &s, nil
}

func (m *memSolutions) BySolver(solverID uuid.UUID, limit int64) ([]*dmn.Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	var out []*dmn.Solution
	for _, s := range m.byID {
		if s.SolverID == solverID {
			s := s
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].SolvedAt.After(out[b].SolvedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memUsers struct {
	mu     sync.Mutex
	users  map[uuid.UUID]dmn.User
	solved map[uuid.UUID]int
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[uuid.UUID]dmn.User), solved: make(map[uuid.UUID]int)}
}

func (m *memUsers) Save(u *dmn.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.users {
		if existing.Username == u.Username && id != u.ID {
			return errors.New("username conflict")
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUsers) ByID(id uuid.UUID) (*dmn.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) ByUsername(username string) (*dmn.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, i.ErrNotFound
}

func (m *memUsers) IncrementSolved(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.solved[id]++
	return nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[string]dmn.Solution
	locks   int
	unlocks int
	lockErr error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]dmn.Solution)}
}

func (c *memCache) Get(_ context.Context, fingerprint string) (*dmn.Solution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[fingerprint]
	if !ok {
		return nil, fmt.Errorf("%w: %s", i.ErrCacheMiss, fingerprint)
	}
	return &s, nil
}

func (c *memCache) Set(_ context.Context, s *dmn.Solution) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[s.Fingerprint] = *s
	return nil
}

func (c *memCache) Lock(_ context.Context, _ string) (func(context.Context) error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func(context.Context) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unlocks++
		return nil
	}, nil
}

type stubSource struct {
	problem    *dmn.Problem
	verdict    *dmn.Verdict
	randomErr  error
	submitErr  error
	submitted  []string
	lastBounds [2]int
}

func (s *stubSource) Random(_ context.Context, minSize, maxSize int) (*dmn.Problem, error) {
	s.lastBounds = [2]int{minSize, maxSize}
	if s.randomErr != nil {
		return nil, s.randomErr
	}
	return s.problem, nil
}

func (s *stubSource) Submit(_ context.Context, mazePath, directions string) (*dmn.Verdict, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submitted = append(s.submitted, mazePath+":"+directions)
	return s.verdict, nil
}

type stubTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (t *stubTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	t.claims = claims
	t.exp = exp
	return "token-" + claims["username"].(string), nil
}

func (t *stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if !strings.HasPrefix(token, "token-") {
		return nil, errors.New("invalid token")
	}
	return map[string]interface{}{"username": strings.TrimPrefix(token, "token-")}, nil
}

// problemOf splits each line into single-symbol cells.
func problemOf(lines ...string) *dmn.Problem {
	rows := make([][]string, len(lines))
	for y, line := range lines {
		for _, r := range line {
			rows[y] = append(rows[y], string(r))
		}
	}
	return &dmn.Problem{Name: "test maze", Rows: rows}
}
