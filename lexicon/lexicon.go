// Package lexicon scores text against a static weighted keyword dictionary.
// Categories cover the emotional-risk taxonomy used for care-doll monitoring.
package lexicon

import (
	"sort"
	"strings"
)

const columnPrefix = "keyword_score_"

// defaultLexicon is a fixed policy, not a runtime-editable taxonomy.
var defaultLexicon = map[string]map[string]float64{
	"positive": {
		"고마워": 1.0,
		"좋아":  0.8,
		"행복":  1.0,
	},
	"negative": {
		"싫어": 1.0,
		"우울": 1.2,
		"짜증": 0.9,
	},
	"danger": {
		"죽고 싶":  2.0,
		"끝내고 싶": 2.0,
	},
}

type Scorer struct {
	lexicon map[string]map[string]float64
	columns []string
}

// NewScorer returns a scorer over the built-in care-doll lexicon.
func NewScorer() *Scorer {
	cols := make([]string, 0, len(defaultLexicon))
	for category := range defaultLexicon {
		cols = append(cols, columnPrefix+category)
	}
	sort.Strings(cols)
	return &Scorer{lexicon: defaultLexicon, columns: cols}
}

// Columns returns the score column names in lexicographic order.
func (s *Scorer) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Score counts each keyword as a literal substring (non-overlapping,
// left to right) and sums count*weight per category. Every category is
// always present in the result, 0 when nothing matched.
func (s *Scorer) Score(text string) map[string]float64 {
	scores := make(map[string]float64, len(s.lexicon))
	for category, keywords := range s.lexicon {
		score := 0.0
		for word, weight := range keywords {
			score += float64(strings.Count(text, word)) * weight
		}
		scores[columnPrefix+category] = score
	}
	return scores
}
