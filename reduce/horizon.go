package reduce

import (
	"errors"
	"fmt"
	"sort"
)

// Horizon is an ordered set of strictly positive step offsets relative to
// the cutoff, the last observed time point at fit time.
type Horizon struct {
	offsets []int
}

// NewHorizon creates a horizon from step offsets. Offsets are sorted and
// deduplicated; every offset must be at least 1, since only out-of-sample
// predictions are supported.
func NewHorizon(offsets ...int) (*Horizon, error) {
	if len(offsets) == 0 {
		return nil, errors.New("horizon requires at least one offset")
	}
	sorted := make([]int, len(offsets))
	copy(sorted, offsets)
	sort.Ints(sorted)

	uniq := sorted[:1]
	for _, o := range sorted[1:] {
		if o != uniq[len(uniq)-1] {
			uniq = append(uniq, o)
		}
	}
	if uniq[0] < 1 {
		return nil, fmt.Errorf("%w: offset %d is not strictly in the future", ErrInSample, uniq[0])
	}
	return &Horizon{offsets: uniq}, nil
}

// Offsets returns the sorted offsets.
func (h *Horizon) Offsets() []int {
	out := make([]int, len(h.offsets))
	copy(out, h.offsets)
	return out
}

// Len returns the number of offsets.
func (h *Horizon) Len() int {
	return len(h.offsets)
}

// Max returns the furthest offset.
func (h *Horizon) Max() int {
	return h.offsets[len(h.offsets)-1]
}

// Equal reports whether two horizons request the same offsets.
func (h *Horizon) Equal(other *Horizon) bool {
	if other == nil || len(h.offsets) != len(other.offsets) {
		return false
	}
	for i, o := range h.offsets {
		if other.offsets[i] != o {
			return false
		}
	}
	return true
}

func (h *Horizon) String() string {
	return fmt.Sprintf("%v", h.offsets)
}
