package names

import (
	"fmt"
	"math/rand"
	"sync"
)

// ListSource hands out names from a fixed list of entries. Like SQLSource,
// it marks every name it hands out as drawn, whatever gender was asked for,
// and does not draw a name again before every other suitable name has been
// drawn. Once all suitable names are drawn, their marks are cleared.
// ListSource is safe for concurrent use.
type ListSource struct {
	sync.Mutex
	entries []Entry
	rnd     *rand.Rand
	drawn   []bool // parallel to entries
}

// NewListSource creates a source for a list of entries. rnd may be nil, in
// which case a time-seeded generator is used.
func NewListSource(entries []Entry, rnd *rand.Rand) *ListSource {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &ListSource{
		entries: entries,
		rnd:     rnd,
		drawn:   make([]bool, len(entries)),
	}
}

// Next draws the next name of gender g.
func (ls *ListSource) Next(g Gender) (string, error) {
	ls.Lock()
	defer ls.Unlock()
	undrawn := ls.undrawn(g)
	if len(undrawn) == 0 {
		n := 0
		for i, e := range ls.entries {
			if e.Gender.Matches(g) {
				ls.drawn[i] = false
				n++
			}
		}
		if n == 0 {
			return "", fmt.Errorf("%w: gender %q", ErrNoNames, g)
		}
		T().Debugf("all %d names of gender %q drawn, starting over", n, g)
		undrawn = ls.undrawn(g)
	}
	i := undrawn[ls.rnd.Intn(len(undrawn))]
	ls.drawn[i] = true
	return ls.entries[i].Name, nil
}

// undrawn returns the indices of entries suitable for g not drawn yet.
func (ls *ListSource) undrawn(g Gender) []int {
	idx := make([]int, 0, len(ls.entries))
	for i, e := range ls.entries {
		if !ls.drawn[i] && e.Gender.Matches(g) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Len returns the number of entries of the source.
func (ls *ListSource) Len() int {
	return len(ls.entries)
}
