package dto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned for a range outside {1M, 6M, 1Y, 5Y}.
var ErrInvalidRange = errors.New("invalid range")

// Range selects the window of a historical chart.
type Range string

const (
	Range1M Range = "1M"
	Range6M Range = "6M"
	Range1Y Range = "1Y"
	Range5Y Range = "5Y"
)

// DefaultRange is used when no range is given.
const DefaultRange = Range1M

// Ranges lists every valid range, shortest first.
var Ranges = []Range{Range1M, Range6M, Range1Y, Range5Y}

// Valid reports whether r is one of the four known ranges.
func (r Range) Valid() bool {
	switch r {
	case Range1M, Range6M, Range1Y, Range5Y:
		return true
	}
	return false
}

// Next returns the range after r, wrapping around.
func (r Range) Next() Range {
	for i, candidate := range Ranges {
		if candidate == r {
			return Ranges[(i+1)%len(Ranges)]
		}
	}
	return DefaultRange
}

func (r Range) String() string {
	return string(r)
}

// ParseRange parses s case-insensitively. An empty string yields DefaultRange.
func ParseRange(s string) (Range, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultRange, nil
	}
	r := Range(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return r, nil
}
