package orchestrator

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/silvercare-lab/doll-pipeline/clients"
	cfg "github.com/silvercare-lab/doll-pipeline/config"
	"github.com/silvercare-lab/doll-pipeline/lexicon"
	"github.com/silvercare-lab/doll-pipeline/preprocess"
	"github.com/silvercare-lab/doll-pipeline/report"
	"github.com/silvercare-lab/doll-pipeline/scoring"
)

type Pipeline struct {
	cfg  *cfg.Root
	http *clients.HTTP
	lex  *lexicon.Scorer
	log  logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{cfg: c, http: clients.NewHTTP(), lex: lexicon.NewScorer(), log: log}
}

// RunScore reads a CSV with a text column, scores every row with the
// external sentiment classifier and the keyword lexicon, and persists the
// merged report. A classifier failure aborts the run.
func (p *Pipeline) RunScore(ctx context.Context, csvPath string) error {
	src, err := readTable(csvPath)
	if err != nil {
		return err
	}

	textCol := p.cfg.Scoring.TextColumn
	texts, err := src.ColumnValues(textCol)
	if err != nil {
		return fmt.Errorf("%s: %w", csvPath, err)
	}

	adapter := scoring.NewAdapter(func(ctx context.Context, batch []string) ([]clients.Classification, error) {
		return p.http.Classify(ctx, p.cfg.Services.Sentiment.URL, batch)
	}, p.cfg.Scoring.BatchSize)

	sentiments, err := adapter.Scores(ctx, texts)
	if err != nil {
		return err
	}

	keywords := make([]map[string]float64, len(texts))
	for i, t := range texts {
		keywords[i] = p.lex.Score(t)
	}

	merged, err := report.Assemble(src, textCol, sentiments, keywords, p.lex.Columns())
	if err != nil {
		return err
	}

	dir, err := persist(p.cfg.Paths.Outputs, RunManifest{
		Kind:        "score",
		SourcePath:  csvPath,
		GeneratedAt: time.Now(),
		InputRows:   len(src.Rows),
		OutputRows:  len(merged.Rows),
	}, "report.csv", merged)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"rows": len(merged.Rows), "dir": dir}).Info("score report written")
	return nil
}

// RunSentences reads a CSV of raw utterances, windows them per speaker,
// segments each window into cleaned sentences, and persists the
// sentence-level table.
func (p *Pipeline) RunSentences(ctx context.Context, csvPath string) error {
	src, err := readTable(csvPath)
	if err != nil {
		return err
	}

	records, dropped, err := parseUtterances(src, p.cfg.Windowing)
	if err != nil {
		return fmt.Errorf("%s: %w", csvPath, err)
	}

	windows := preprocess.BuildWindows(records, p.cfg.Windowing.Gap())
	p.log.WithFields(logrus.Fields{"records": len(records), "dropped": dropped, "windows": len(windows)}).
		Info("windows built")

	var split preprocess.SplitFunc
	if url := p.cfg.Services.Segmenter.URL; url != "" {
		split = func(ctx context.Context, text string) ([]string, error) {
			return p.http.Split(ctx, url, text)
		}
	}
	seg := preprocess.NewSegmenter(split, p.cfg.Windowing.MaxWindowsToSegment, p.log)
	sentences := seg.Segment(ctx, windows)
	if seg.Fallbacks() > 0 {
		p.log.WithField("fallbacks", seg.Fallbacks()).Warn("regex fallback used for some windows")
	}

	dir, err := persist(p.cfg.Paths.Outputs, RunManifest{
		Kind:        "sentences",
		SourcePath:  csvPath,
		GeneratedAt: time.Now(),
		InputRows:   len(src.Rows),
		OutputRows:  len(sentences),
		DroppedRows: dropped,
		Windows:     len(windows),
		Fallbacks:   seg.Fallbacks(),
	}, "sentences.csv", sentenceTable(sentences))
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"rows": len(sentences), "dir": dir}).Info("sentence table written")
	return nil
}

func readTable(path string) (report.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Table{}, err
	}
	defer f.Close()
	t, err := report.ReadCSV(f)
	if err != nil {
		return report.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// timeLayouts accepted for the uttered_at column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseUtterances converts table rows into records. Rows with a missing or
// unparseable required field are dropped, not substituted.
func parseUtterances(src report.Table, w cfg.Windowing) ([]preprocess.Utterance, int, error) {
	spkIdx, ok := src.Column(w.SpeakerColumn)
	if !ok {
		return nil, 0, fmt.Errorf("missing column %q", w.SpeakerColumn)
	}
	timeIdx, ok := src.Column(w.TimeColumn)
	if !ok {
		return nil, 0, fmt.Errorf("missing column %q", w.TimeColumn)
	}
	textIdx, ok := src.Column(w.TextColumn)
	if !ok {
		return nil, 0, fmt.Errorf("missing column %q", w.TextColumn)
	}

	var records []preprocess.Utterance
	dropped := 0
	for _, row := range src.Rows {
		ts, ok := parseTime(row[timeIdx])
		if !ok || row[spkIdx] == "" || row[textIdx] == "" {
			dropped++
			continue
		}
		records = append(records, preprocess.Utterance{
			SpeakerID: row[spkIdx],
			UtteredAt: ts,
			Text:      row[textIdx],
		})
	}
	return records, dropped, nil
}

func sentenceTable(sentences []preprocess.Sentence) report.Table {
	t := report.Table{
		Columns: []string{"speaker_id", "window_id", "sentence_index", "sentence_count", "sentence_text"},
	}
	for _, s := range sentences {
		t.Rows = append(t.Rows, []string{
			s.SpeakerID,
			strconv.Itoa(s.WindowID),
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Count),
			s.Text,
		})
	}
	return t
}
