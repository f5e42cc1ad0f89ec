// Package mazebot talks to the noops mazebot challenge API.
package mazebot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"resty.dev/v3"
)

const (
	randomPath     = "/mazebot/random"
	defaultTimeout = 10 * time.Second
)

var (
	ErrBadStatus = errors.New("unexpected mazebot status")
	ErrBadMaze   = errors.New("malformed mazebot maze")
)

type mazeResponse struct {
	Name             string     `json:"name"`
	MazePath         string     `json:"mazePath"`
	StartingPosition []int      `json:"startingPosition"`
	EndingPosition   []int      `json:"endingPosition"`
	Map              [][]string `json:"map"`
}

type solutionRequest struct {
	Directions string `json:"directions"`
}

type solutionResponse struct {
	Result                 string `json:"result"`
	Message                string `json:"message"`
	ShortestSolutionLength int    `json:"shortestSolutionLength"`
	YourSolutionLength     int    `json:"yourSolutionLength"`
	Elapsed                int64  `json:"elapsed"`
}

// Config holds the parameters of a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches random mazes and submits solutions.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client for the API at c.BaseURL.
func NewClient(c Config) (*Client, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, errors.New("mazebot base URL is required")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(c.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: http}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Random fetches a maze with sides between minSize and maxSize.
func (c *Client) Random(ctx context.Context, minSize, maxSize int) (*dmn.Problem, error) {
	var body mazeResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"minSize": strconv.Itoa(minSize),
			"maxSize": strconv.Itoa(maxSize),
		}).
		SetResult(&body).
		Get(randomPath)
	if err != nil {
		return nil, fmt.Errorf("requesting random maze: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %d %s", ErrBadStatus, res.StatusCode(), strings.TrimSpace(res.String()))
	}

	return body.problem()
}

// Submit posts directions to the maze at mazePath and returns the grading.
func (c *Client) Submit(ctx context.Context, mazePath, directions string) (*dmn.Verdict, error) {
	var body solutionResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(solutionRequest{Directions: directions}).
		SetResult(&body).
		Post(mazePath)
	if err != nil {
		return nil, fmt.Errorf("submitting solution: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %d %s", ErrBadStatus, res.StatusCode(), strings.TrimSpace(res.String()))
	}

	return &dmn.Verdict{
		Result:                 body.Result,
		Message:                body.Message,
		ShortestSolutionLength: body.ShortestSolutionLength,
		YourSolutionLength:     body.YourSolutionLength,
		Elapsed:                body.Elapsed,
	}, nil
}

func (m *mazeResponse) problem() (*dmn.Problem, error) {
	if len(m.Map) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrBadMaze)
	}

	problem := &dmn.Problem{
		Name:     m.Name,
		MazePath: m.MazePath,
		Rows:     m.Map,
	}
	if start, ok := position(m.StartingPosition); ok {
		problem.Start = start
	}
	if end, ok := position(m.EndingPosition); ok {
		problem.End = end
	}
	return problem, nil
}

func position(xy []int) (*dmn.Position, bool) {
	if len(xy) != 2 {
		return nil, false
	}
	return &dmn.Position{xy[0], xy[1]}, true
}
