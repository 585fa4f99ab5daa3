package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a rectangular block of digit lines into a CostGrid.
// Each line is one row and each character one cell cost.
// Surrounding whitespace (including a trailing CR) is trimmed from every line,
// and blank lines before or after the grid are ignored.
//
// Returns ErrEmptyGrid if no rows are read, ErrNonRectangular if line lengths
// differ, ErrBadDigit (wrapped with 1-based line and column) for any
// character outside '0'..'9', or the reader's own error.
func Parse(r io.Reader) (*CostGrid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		costs   []Cost
		width   int
		height  int
		pending int // blank lines seen since the last row
	)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && height > 0 {
			return nil, fmt.Errorf("%w: blank line inside grid before line %d", ErrNonRectangular, line)
		}
		pending = 0
		if height == 0 {
			width = len(text)
		} else if len(text) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(text), width)
		}
		for col := 0; col < len(text); col++ {
			ch := text[col]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadDigit, ch, line, col+1)
			}
			costs = append(costs, Cost(ch-'0'))
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: read input: %w", err)
	}
	if height == 0 {
		return nil, ErrEmptyGrid
	}

	return &CostGrid{height: height, width: width, costs: costs}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*CostGrid, error) {
	return Parse(strings.NewReader(s))
}
