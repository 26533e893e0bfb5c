package preprocess

import "time"

// Utterance is one raw transcript record from a companion doll.
type Utterance struct {
	SpeakerID string
	UtteredAt time.Time
	Text      string
}

// Window is a conversational turn: same speaker, utterances no more than
// the gap threshold apart, texts joined in chronological order.
type Window struct {
	SpeakerID  string
	WindowID   int // 0-based per speaker
	JoinedText string
}

// Sentence is one cleaned sentence from a window.
type Sentence struct {
	SpeakerID string
	WindowID  int
	Index     int // dense 0-based ordinal within the window
	Count     int // total sentences emitted for the window
	Text      string
}
