package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
)

// parseSize reads a "WxH" dimension pair.
func parseSize(raw string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(raw)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q must look like WxH", raw)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad width: %w", raw, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad height: %w", raw, err)
	}
	return width, height, nil
}

// readProblem loads a maze stored one row per line. Trailing carriage returns are
// dropped; every other character is a cell.
func readProblem(path string) (*dmn.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		row := make([]string, 0, len(line))
		for _, r := range line {
			row = append(row, string(r))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &dmn.Problem{Name: filepath.Base(path), Rows: rows}, nil
}
