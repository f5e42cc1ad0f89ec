package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beka-birhanu/mazebot-solver/config"
	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/generator"
	"github.com/beka-birhanu/mazebot-solver/infrastruture/mazebot"
	"github.com/beka-birhanu/mazebot-solver/maze"
	"github.com/beka-birhanu/mazebot-solver/render"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

const (
	defaultDelay  = 30 * time.Millisecond
	submitTimeout = 15 * time.Second
)

func runSolve(cmd *cobra.Command, cfg config.Config) error {
	problem, client, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	grid, start, err := prepare(problem)
	if err != nil {
		return err
	}

	animate, err := cmd.Flags().GetBool("animate")
	if err != nil {
		return err
	}
	delay, err := cmd.Flags().GetDuration("delay")
	if err != nil {
		return err
	}

	limit := maze.WithMoveLimit(cfg.MoveLimitFactor * grid.Width() * grid.Height())
	var solution *maze.Solution
	var cursor maze.Coordinate
	if animate {
		err = withScreen(func(s *render.Screen) error {
			var err error
			solution, err = s.Animate(grid, start, delay, limit)
			return err
		})
		if err == nil {
			cursor, err = maze.Replay(grid, start, solution.Moves)
		}
	} else {
		var solver *maze.Solver
		solver, err = maze.NewSolver(grid, start, limit)
		if err != nil {
			return err
		}
		solution, err = solver.Solve()
		cursor = solver.Navigator().Cursor()
	}
	if err != nil {
		errorf(cmd, "%s: %s", problem.Name, err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Text(grid, cursor))
	fmt.Fprintf(out, "%s\n", solution.Moves)
	fmt.Fprintf(out, "moves=%d forks=%d backtracks=%d length=%d\n",
		solution.Steps, solution.Forks, solution.Backtracks, len(solution.Moves))

	return maybeSubmit(cmd, client, problem, solution.Moves)
}

func runPlay(cmd *cobra.Command, cfg config.Config) error {
	problem, client, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	grid, start, err := prepare(problem)
	if err != nil {
		return err
	}
	nav, err := maze.NewNavigator(grid, start)
	if err != nil {
		return err
	}

	var moves string
	err = withScreen(func(s *render.Screen) error {
		var err error
		moves, err = s.Play(nav)
		return err
	})
	if errors.Is(err, render.ErrQuit) {
		fmt.Fprintf(cmd.OutOrStdout(), "gave up after %d moves\n", len(moves))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\nlength=%d\n", moves, len(moves))
	return maybeSubmit(cmd, client, problem, moves)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(args[0])
	if err != nil {
		return err
	}
	m, err := newGenerated(cmd, width, height)
	if err != nil {
		return err
	}

	for _, line := range m.Rows(maze.DefaultSymbols) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// loadProblem resolves the maze named by the flags. The mazebot client is returned
// only when the maze came from the API.
func loadProblem(cmd *cobra.Command) (*dmn.Problem, *mazebot.Client, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, nil, err
	}
	if file != "" {
		problem, err := readProblem(file)
		return problem, nil, err
	}

	size, err := cmd.Flags().GetString("generate")
	if err != nil {
		return nil, nil, err
	}
	if size != "" {
		width, height, err := parseSize(size)
		if err != nil {
			return nil, nil, err
		}
		m, err := newGenerated(cmd, width, height)
		if err != nil {
			return nil, nil, err
		}
		return m.Problem(fmt.Sprintf("Generated %dx%d", width, height)), nil, nil
	}

	url, err := cmd.Flags().GetString("url")
	if err != nil {
		return nil, nil, err
	}
	minSize, err := cmd.Flags().GetInt("min-size")
	if err != nil {
		return nil, nil, err
	}
	maxSize, err := cmd.Flags().GetInt("max-size")
	if err != nil {
		return nil, nil, err
	}

	client, err := mazebot.NewClient(mazebot.Config{BaseURL: url})
	if err != nil {
		return nil, nil, err
	}
	problem, err := client.Random(cmd.Context(), minSize, maxSize)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", problem.Name)
	return problem, client, nil
}

func newGenerated(cmd *cobra.Command, width, height int) (*generator.Maze, error) {
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return generator.New(width, height, rand.New(rand.NewPCG(seed, seed)))
}

func prepare(problem *dmn.Problem) (*maze.Grid, maze.Coordinate, error) {
	grid, err := maze.NewGrid(problem.Rows, maze.DefaultSymbols)
	if err != nil {
		return nil, maze.Coordinate{}, err
	}
	if problem.Start != nil {
		return grid, maze.FromZeroIndexed(problem.Start[0], problem.Start[1]), nil
	}
	start, ok := grid.Find(maze.Start)
	if !ok {
		return nil, maze.Coordinate{}, errors.New("maze has no start cell")
	}
	return grid, start, nil
}

func maybeSubmit(cmd *cobra.Command, client *mazebot.Client, problem *dmn.Problem, moves string) error {
	submit, err := cmd.Flags().GetBool("submit")
	if err != nil || !submit {
		return err
	}
	if client == nil || problem.MazePath == "" {
		return errors.New("--submit needs a maze fetched from mazebot")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), submitTimeout)
	defer cancel()
	verdict, err := client.Submit(ctx, problem.MazePath, moves)
	if err != nil {
		errorf(cmd, "submit: %s", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (yours %d, shortest %d)\n",
		verdict.Result, verdict.Message, verdict.YourSolutionLength, verdict.ShortestSolutionLength)
	return nil
}

// withScreen runs fn on a fresh terminal screen and restores the terminal afterwards.
func withScreen(fn func(*render.Screen) error) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return fn(render.NewScreen(screen))
}
