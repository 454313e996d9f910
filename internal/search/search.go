// Package search ranks medicines against a free-text query using the
// layered similarity scorer, plus two query-level boosts: a query that is
// contained in a name, or whose words are all present in it, is almost
// certainly what the user meant even when the character ratio disagrees.
package search

import (
	"sort"
	"strings"

	"pharmatool/internal/match"
	"pharmatool/internal/store"
)

const (
	// query text contained in the candidate name
	subsetScore = 0.8
	// every query word present in the candidate's word set
	wordSubsetScore = 0.9
)

type Options struct {
	Threshold float64
	Limit     int
	Params    match.Params
}

func DefaultOptions() Options {
	return Options{Threshold: 0.3, Limit: 5, Params: match.DefaultParams()}
}

type Result struct {
	Medicine store.Medicine `json:"medicine"`
	Score    float64        `json:"score"`
}

// Search returns the medicines most similar to query, best first, capped at
// opt.Limit and filtered by opt.Threshold. An empty query matches nothing.
func (idx *Index) Search(query string, opt Options) []Result {
	qn := match.Normalize(query)
	if qn == "" {
		return nil
	}
	if opt.Limit <= 0 {
		opt.Limit = DefaultOptions().Limit
	}
	scorer := match.NewScorer(opt.Params)
	qWords := strings.Fields(qn)

	var out []Result
	for _, i := range idx.candidates(qn) {
		nn := idx.norms[i]
		score := scorer.Score(qn, nn)
		if strings.Contains(nn, qn) && score < subsetScore {
			score = subsetScore
		}
		if wordsSubset(qWords, nn) && score < wordSubsetScore {
			score = wordSubsetScore
		}
		if score < opt.Threshold {
			continue
		}
		out = append(out, Result{Medicine: idx.items[i], Score: score})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Medicine.Name < out[b].Medicine.Name
	})
	if len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out
}

func wordsSubset(qWords []string, name string) bool {
	if len(qWords) == 0 {
		return false
	}
	set := make(map[string]struct{})
	for _, w := range strings.Fields(name) {
		set[w] = struct{}{}
	}
	for _, w := range qWords {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
