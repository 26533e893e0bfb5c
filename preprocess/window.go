package preprocess

import (
	"sort"
	"strings"
	"time"
)

// DefaultGap is the silence threshold that ends a conversational turn.
const DefaultGap = 5 * time.Minute

// BuildWindows groups utterances into conversation windows per speaker.
// Records with a missing field are dropped. Within a speaker the sort by
// timestamp is stable, so equal timestamps keep their ingest order and the
// joined text is deterministic. A new window starts when the gap between
// consecutive utterances is strictly greater than gap.
func BuildWindows(records []Utterance, gap time.Duration) []Window {
	if gap <= 0 {
		gap = DefaultGap
	}

	bySpeaker := make(map[string][]Utterance)
	var speakers []string
	for _, r := range records {
		if r.SpeakerID == "" || r.UtteredAt.IsZero() || r.Text == "" {
			continue
		}
		if _, seen := bySpeaker[r.SpeakerID]; !seen {
			speakers = append(speakers, r.SpeakerID)
		}
		bySpeaker[r.SpeakerID] = append(bySpeaker[r.SpeakerID], r)
	}
	sort.Strings(speakers)

	var out []Window
	for _, sp := range speakers {
		utts := bySpeaker[sp]
		sort.SliceStable(utts, func(i, j int) bool { return utts[i].UtteredAt.Before(utts[j].UtteredAt) })

		windowID := 0
		texts := []string{utts[0].Text}
		for i := 1; i < len(utts); i++ {
			if utts[i].UtteredAt.Sub(utts[i-1].UtteredAt) > gap {
				out = append(out, Window{SpeakerID: sp, WindowID: windowID, JoinedText: strings.Join(texts, " ")})
				windowID++
				texts = texts[:0]
			}
			texts = append(texts, utts[i].Text)
		}
		out = append(out, Window{SpeakerID: sp, WindowID: windowID, JoinedText: strings.Join(texts, " ")})
	}
	return out
}
