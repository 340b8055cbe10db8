package sorting

import (
	"strings"

	"github.com/Ultro163/city-guide/internal/shared/apperr"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc or desc in any case.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(raw)) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", apperr.Validation("invalid value for sortDirection: %q. Allowed values: 'asc' or 'desc'", raw)
}

// Ordered compares two keys. It returns a negative number when a sorts first.
func Ordered(a, b float64, dir Direction) int {
	switch {
	case a == b:
		return 0
	case (a < b) == (dir == Asc):
		return -1
	default:
		return 1
	}
}

// NullsOrdered compares keys that may be absent. Absent keys sort first for
// Asc and last for Desc, matching NULLS FIRST / NULLS LAST.
func NullsOrdered(a float64, aOK bool, b float64, bOK bool, dir Direction) int {
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		if dir == Asc {
			return -1
		}
		return 1
	case !bOK:
		if dir == Asc {
			return 1
		}
		return -1
	}
	return Ordered(a, b, dir)
}
