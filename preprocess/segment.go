package preprocess

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultMaxWindows caps how many windows a segmentation pass handles.
const DefaultMaxWindows = 30

// SplitFunc is the external sentence-boundary capability. A nil SplitFunc
// means the regex fallback is always used.
type SplitFunc func(ctx context.Context, text string) ([]string, error)

// Segmenter turns windows into cleaned sentence records.
type Segmenter struct {
	split      SplitFunc
	maxWindows int
	log        logrus.FieldLogger
	fallbacks  int
}

func NewSegmenter(split SplitFunc, maxWindows int, log logrus.FieldLogger) *Segmenter {
	if maxWindows <= 0 {
		maxWindows = DefaultMaxWindows
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Segmenter{split: split, maxWindows: maxWindows, log: log}
}

// Fallbacks reports how often the regex fallback replaced the external
// segmenter during the last Segment call.
func (s *Segmenter) Fallbacks() int { return s.fallbacks }

// Segment splits each window's joined text into cleaned sentences. Only the
// first maxWindows windows are processed. Empty candidates are discarded and
// do not consume an index; Index is dense 0..Count-1 per window in emission
// order.
func (s *Segmenter) Segment(ctx context.Context, windows []Window) []Sentence {
	s.fallbacks = 0
	if len(windows) > s.maxWindows {
		windows = windows[:s.maxWindows]
	}

	var out []Sentence
	for _, w := range windows {
		cleaned := s.sentences(ctx, w.JoinedText)
		for i, text := range cleaned {
			out = append(out, Sentence{
				SpeakerID: w.SpeakerID,
				WindowID:  w.WindowID,
				Index:     i,
				Count:     len(cleaned),
				Text:      text,
			})
		}
	}
	return out
}

// sentences splits and cleans one joined text. A blank input yields no
// sentences, not an error.
func (s *Segmenter) sentences(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var raw []string
	if s.split != nil {
		split, err := s.split(ctx, text)
		if err != nil {
			s.fallbacks++
			s.log.WithError(err).Warn("sentence segmenter failed, using regex fallback")
			raw = fallbackSplit(text)
		} else {
			raw = split
		}
	} else {
		raw = fallbackSplit(text)
	}

	var cleaned []string
	for _, r := range raw {
		c := Clean(strings.TrimSpace(r))
		if c == "" {
			continue
		}
		cleaned = append(cleaned, c)
	}
	return cleaned
}

// fallbackSplit breaks text after a run of sentence-terminal punctuation
// followed by whitespace. Terminal punctuation with no trailing whitespace
// stays attached to its sentence. Pieces come back trimmed, empties dropped.
func fallbackSplit(text string) []string {
	runes := []rune(text)
	var out []string
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		j := i
		for j+1 < len(runes) && isTerminal(runes[j+1]) {
			j++
		}
		if j+1 < len(runes) && isSpace(runes[j+1]) {
			emit(string(runes[start : j+1]))
			start = j + 1
		}
		i = j
	}
	if start < len(runes) {
		emit(string(runes[start:]))
	}
	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }
func isSpace(r rune) bool    { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }
