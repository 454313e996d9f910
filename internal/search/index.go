package search

import (
	"pharmatool/internal/match"
	"pharmatool/internal/store"
)

// Index holds the active medicines with a trigram posting list so a query
// only scores names it shares at least one trigram with.
type Index struct {
	items []store.Medicine
	norms []string
	inv   map[string][]int // trigram -> item positions
}

func NewIndex(meds []store.Medicine) *Index {
	idx := &Index{
		items: meds,
		norms: make([]string, len(meds)),
		inv:   make(map[string][]int),
	}
	for i, m := range meds {
		nn := match.Normalize(m.Name)
		idx.norms[i] = nn
		for g := range trigrams(nn) {
			idx.inv[g] = append(idx.inv[g], i)
		}
	}
	return idx
}

// trigrams returns the set of character trigrams of s after padding both
// ends with a space. Names shorter than one trigram are padded out so they
// still land a single key in the posting list.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	if s == "" {
		return set
	}
	r := []rune(" " + s + " ")
	for len(r) < 3 {
		r = append(r, ' ')
	}
	for end := 3; end <= len(r); end++ {
		set[string(r[end-3:end])] = struct{}{}
	}
	return set
}

func (idx *Index) candidates(norm string) []int {
	if norm == "" {
		return nil
	}
	seen := make(map[int]struct{})
	for g := range trigrams(norm) {
		for _, i := range idx.inv[g] {
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	return out
}
