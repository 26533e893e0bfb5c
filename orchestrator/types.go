package orchestrator

import "time"

// RunManifest summarizes one pipeline run; written next to the run outputs.
type RunManifest struct {
	RunID       string    `json:"run_id"`
	Kind        string    `json:"kind"` // "score" or "sentences"
	SourcePath  string    `json:"source_path"`
	GeneratedAt time.Time `json:"generated_at"`
	InputRows   int       `json:"input_rows"`
	OutputRows  int       `json:"output_rows"`
	DroppedRows int       `json:"dropped_rows,omitempty"`
	Windows     int       `json:"windows,omitempty"`
	Fallbacks   int       `json:"segmenter_fallbacks,omitempty"`
}
