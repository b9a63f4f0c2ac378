package board

import (
	"strconv"
	"strings"
)

// Placement assigns one column per row: Placement[r] is the column of the queen in row r.
// Values are not checked; duplicates and out-of-range columns are drawn as-is.
type Placement []int

// SamplePlacement is a solution for the 8×8 board.
var SamplePlacement = Placement{0, 4, 7, 5, 2, 6, 1, 3}

// String renders the vector as comma-separated columns.
func (p Placement) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// Clone returns an independent copy.
func (p Placement) Clone() Placement {
	if p == nil {
		return nil
	}
	out := make(Placement, len(p))
	copy(out, p)
	return out
}
