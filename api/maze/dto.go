// Package mazeapi exposes the solver over HTTP.
package mazeapi

import dmn "github.com/beka-birhanu/mazebot-solver/domain"

// SolveRequest carries a maze in the mazebot wire shape.
type SolveRequest struct {
	Name             string     `json:"name"`
	Map              [][]string `json:"map" binding:"required"`
	StartingPosition []int      `json:"startingPosition"`
}

// ProblemResponse describes a generated maze in the mazebot wire shape.
type ProblemResponse struct {
	Name             string     `json:"name"`
	Map              [][]string `json:"map"`
	StartingPosition []int      `json:"startingPosition,omitempty"`
	EndingPosition   []int      `json:"endingPosition,omitempty"`
}

func newProblemResponse(p *dmn.Problem) *ProblemResponse {
	res := &ProblemResponse{Name: p.Name, Map: p.Rows}
	if p.Start != nil {
		res.StartingPosition = []int{p.Start[0], p.Start[1]}
	}
	if p.End != nil {
		res.EndingPosition = []int{p.End[0], p.End[1]}
	}
	return res
}
