// Layered similarity scoring for medicine names. A generic sequence ratio
// under-scores the partial matches common in inventory data ("med 99" vs
// "med_99", shared dosage numbers), so a cascade of boost rules raises the
// base score for each known failure mode. Boosts only ever raise the score.
package match

import "strings"

// Params holds the boost thresholds. They are hand-tuned against real
// search traffic, not derived; tune per deployment if needed.
type Params struct {
	WordOverlapMin     float64 // minimum word-set overlap for the overlap boost
	WordOverlapBaseMax float64 // overlap boost only fires below this base score
	WordOverlapWeight  float64 // overlap boost = overlap * weight
	NumericTokenScore  float64 // floor when both share an all-digit token
	SubstringWeight    float64 // substring boost = shorter/longer * weight
	KeywordScore       float64 // floor for "med" names sharing a digit run
}

func DefaultParams() Params {
	return Params{
		WordOverlapMin:     0.5,
		WordOverlapBaseMax: 0.6,
		WordOverlapWeight:  0.85,
		NumericTokenScore:  0.8,
		SubstringWeight:    0.75,
		KeywordScore:       0.7,
	}
}

// pair is the normalized input every rule sees.
type pair struct {
	a, b           string
	aWords, bWords map[string]struct{}
}

// rule may raise the running score, never lower it.
type rule func(p Params, in pair, score float64) float64

var rules = []rule{
	wordOverlapRule,
	numericTokenRule,
	substringRule,
	keywordDigitsRule,
}

type Scorer struct {
	params Params
}

func NewScorer(p Params) *Scorer { return &Scorer{params: p} }

var defaultScorer = NewScorer(DefaultParams())

// Similarity scores a and b with the default parameters.
func Similarity(a, b string) float64 { return defaultScorer.Score(a, b) }

// Score returns a similarity estimate in [0, 1]: 1 means identical after
// normalization, 0 means unrelated. Pure and symmetric; empty input is fine.
func (s *Scorer) Score(a, b string) float64 {
	in := pair{a: Normalize(a), b: Normalize(b)}
	in.aWords = wordSet(in.a)
	in.bWords = wordSet(in.b)

	score := lcsRatio(in.a, in.b)
	for _, r := range rules {
		if v := r(s.params, in, score); v > score {
			score = v
		}
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Word overlap catches separator and ordering differences the character
// ratio misses. Gated on a low base score so near-exact matches keep their
// higher ratio.
func wordOverlapRule(p Params, in pair, score float64) float64 {
	if len(in.aWords) == 0 || len(in.bWords) == 0 {
		return score
	}
	common := 0
	for w := range in.aWords {
		if _, ok := in.bWords[w]; ok {
			common++
		}
	}
	overlap := float64(common) / float64(max(len(in.aWords), len(in.bWords)))
	if overlap >= p.WordOverlapMin && score < p.WordOverlapBaseMax {
		if v := overlap * p.WordOverlapWeight; v > score {
			return v
		}
	}
	return score
}

// A shared standalone number (dose, batch, variant) is a strong signal.
func numericTokenRule(p Params, in pair, score float64) float64 {
	if score >= p.NumericTokenScore {
		return score
	}
	for w := range in.aWords {
		if !allDigits(w) {
			continue
		}
		if _, ok := in.bWords[w]; ok {
			return p.NumericTokenScore
		}
	}
	return score
}

// One name containing the other, weighted by how much of the longer name
// is covered ("med" inside "medicine 99" scores lower than "medicine"
// inside "medicine 99").
func substringRule(p Params, in pair, score float64) float64 {
	if in.a == "" || in.b == "" {
		return score
	}
	if !strings.Contains(in.a, in.b) && !strings.Contains(in.b, in.a) {
		return score
	}
	shorter, longer := len([]rune(in.a)), len([]rune(in.b))
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if v := float64(shorter) / float64(longer) * p.SubstringWeight; v > score {
		return v
	}
	return score
}

// Placeholder-style names ("med 99", "medicine 99") match on the shared
// number once both sides look like medicine entries at all.
func keywordDigitsRule(p Params, in pair, score float64) float64 {
	if score >= p.KeywordScore {
		return score
	}
	if !strings.Contains(in.a, "med") || !strings.Contains(in.b, "med") {
		return score
	}
	runsB := digitRuns(in.b)
	if len(runsB) == 0 {
		return score
	}
	seen := make(map[string]struct{}, len(runsB))
	for _, r := range runsB {
		seen[r] = struct{}{}
	}
	for _, r := range digitRuns(in.a) {
		if _, ok := seen[r]; ok {
			return p.KeywordScore
		}
	}
	return score
}
