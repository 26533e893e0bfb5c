package preprocess

import (
	"regexp"
	"strings"
	"unicode"
)

// noiseMarkerRe matches transcriber annotations like [소음], [잡음 심함],
// [noise ...], [inaudible], (웃음): the marker keyword plus anything up to
// the closing bracket.
var noiseMarkerRe = regexp.MustCompile(`(?i)\[(?:소음|잡음|무음|noise|inaudible)[^\]]*\]|\((?:웃음|laughter)[^)]*\)`)

// laughter syllables collapsed to at most two in a row (pass b).
var laughterRunes = map[rune]bool{'ㅋ': true, 'ㅎ': true, 'ㅠ': true, 'ㅜ': true}

// fillerWords are discourse markers removed when they stand alone as a
// whitespace-delimited token. Fixed policy.
var fillerWords = map[string]bool{
	"음":   true,
	"어":   true,
	"그":   true,
	"저기":  true,
	"막":   true,
	"뭐지":  true,
	"그니까": true,
}

// Clean normalizes one sentence. Passes run in a fixed order; each pass
// sees the output of the previous one. Clean is idempotent.
func Clean(s string) string {
	// to a fixed point: removing a marker can expose a nested one
	for {
		next := noiseMarkerRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	s = collapseRuns(s, 2, 2, func(r rune) bool { return laughterRunes[r] })
	s = collapseRuns(s, 3, 1, unicode.IsLetter)
	s = dropFillers(s)
	return strings.Join(strings.Fields(s), " ")
}

// collapseRuns reduces any run of identical runes satisfying match, with
// length >= min, down to keep occurrences. Shorter runs pass through.
func collapseRuns(s string, min, keep int, match func(rune) bool) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		n := j - i
		if match(runes[i]) && n >= min {
			n = keep
		}
		for k := 0; k < n; k++ {
			b.WriteRune(runes[i])
		}
		i = j
	}
	return b.String()
}

func dropFillers(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if fillerWords[f] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
