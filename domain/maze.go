// Package domain holds the entities shared by the services, stores and transports.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Position is a 0-indexed [x, y] pair as sent by the mazebot API.
type Position [2]int

// Problem is a maze waiting to be solved.
type Problem struct {
	Name     string     // Display name given by the source
	MazePath string     // Source path to submit solutions to, empty for local mazes
	Rows     [][]string // One single-symbol string per cell
	Start    *Position  // Explicit start; nil means scan the grid for the start symbol
	End      *Position  // Goal as reported by the source, informational
}

// Width returns the number of columns of the problem grid.
func (p *Problem) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the number of rows of the problem grid.
func (p *Problem) Height() int {
	return len(p.Rows)
}

// Fingerprint identifies the grid and start of a problem. Equal fingerprints always
// produce equal solutions.
func (p *Problem) Fingerprint() string {
	h := sha256.New()
	for _, row := range p.Rows {
		h.Write([]byte(strings.Join(row, "")))
		h.Write([]byte{'\n'})
	}
	if p.Start != nil {
		h.Write([]byte(strconv.Itoa(p.Start[0]) + "," + strconv.Itoa(p.Start[1])))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Verdict is the mazebot response to a submitted solution.
type Verdict struct {
	Result                 string `bson:"result" json:"result"`
	Message                string `bson:"message" json:"message"`
	ShortestSolutionLength int    `bson:"shortestSolutionLength" json:"shortest_solution_length"`
	YourSolutionLength     int    `bson:"yourSolutionLength" json:"your_solution_length"`
	Elapsed                int64  `bson:"elapsed" json:"elapsed"`
}

// Solution is a stored solve attempt.
type Solution struct {
	ID          uuid.UUID `bson:"_id" json:"id"`
	SolverID    uuid.UUID `bson:"solverId" json:"solver_id"`
	Fingerprint string    `bson:"fingerprint" json:"fingerprint"`
	Name        string    `bson:"name" json:"name"`
	MazePath    string    `bson:"mazePath" json:"maze_path,omitempty"`
	Width       int       `bson:"width" json:"width"`
	Height      int       `bson:"height" json:"height"`
	Start       Position  `bson:"start" json:"start"`
	Directions  string    `bson:"directions" json:"directions"`
	Solved      bool      `bson:"solved" json:"solved"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Moves       int       `bson:"moves" json:"moves"`
	Forks       int       `bson:"forks" json:"forks"`
	Backtracks  int       `bson:"backtracks" json:"backtracks"`
	SolvedAt    time.Time `bson:"solvedAt" json:"solved_at"`
	Verdict     *Verdict  `bson:"verdict,omitempty" json:"verdict,omitempty"`
}
