// SPDX-License-Identifier: MIT
// Package: divelim/standings
//
// reader.go - whitespace table reader producing a Model.

package standings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fixedColumns is the number of columns before the against_* block:
// name, wins, losses, remaining.
const fixedColumns = 4

// Read parses the division table format and returns a validated Model.
//
// The first line is a header (usually the competitor count) and is discarded.
// Every following non-blank line is
//
//	<name> <wins> <losses> <remaining> <against_0> ... <against_{N-1}>
//
// and its position among the data rows becomes the competitor id.
//
// Errors:
//   - *ParseError wrapping ErrMalformedRow for rows that do not parse.
//   - ErrInvalidModel from New for structurally invalid tables.
//   - I/O errors from r, wrapped.
func Read(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		competitors []Competitor
		line        int
	)
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		c, err := parseRow(len(competitors), fields)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		competitors = append(competitors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("standings: read: %w", err)
	}

	return New(competitors)
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("standings: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseRow converts one split row into a Competitor with the given id.
func parseRow(id int, fields []string) (Competitor, error) {
	if len(fields) < fixedColumns {
		return Competitor{}, fmt.Errorf("%w: want at least %d columns, got %d", ErrMalformedRow, fixedColumns, len(fields))
	}
	nums := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Competitor{}, fmt.Errorf("%w: column %d: %w", ErrMalformedRow, i+2, err)
		}
		nums[i] = v
	}

	return Competitor{
		ID:        id,
		Name:      fields[0],
		Wins:      nums[0],
		Losses:    nums[1],
		Remaining: nums[2],
		Against:   nums[3:],
	}, nil
}
