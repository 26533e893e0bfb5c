// Package scoring normalizes external binary-sentiment output into
// complementary positive/negative scores.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/silvercare-lab/doll-pipeline/clients"
)

// Record holds the two-sided sentiment for one text. SentimentPos and
// SentimentNeg always sum to 1.
type Record struct {
	Text         string
	SentimentPos float64
	SentimentNeg float64
}

// ClassifyFunc is the external classifier capability: order-preserving,
// one result per input text.
type ClassifyFunc func(ctx context.Context, texts []string) ([]clients.Classification, error)

// DefaultBatchSize bounds one classifier round-trip.
const DefaultBatchSize = 32

// Adapter batches texts to the classifier. Batching is throughput only:
// results are identical regardless of where batch boundaries fall.
type Adapter struct {
	classify  ClassifyFunc
	batchSize int
}

func NewAdapter(classify ClassifyFunc, batchSize int) *Adapter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Adapter{classify: classify, batchSize: batchSize}
}

// Scores returns one Record per input text, in input order. A classifier
// error fails the whole call; there is no partial result.
func (a *Adapter) Scores(ctx context.Context, texts []string) ([]Record, error) {
	out := make([]Record, 0, len(texts))
	for start := 0; start < len(texts); start += a.batchSize {
		end := start + a.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]
		results, err := a.classify(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("classify batch %d..%d: %w", start, end, err)
		}
		if len(results) != len(batch) {
			return nil, fmt.Errorf("classify batch %d..%d: got %d results for %d texts", start, end, len(results), len(batch))
		}
		for i, r := range results {
			out = append(out, normalize(batch[i], r))
		}
	}
	return out, nil
}

// normalize maps a dominant label + confidence onto the two-sided pair.
func normalize(text string, c clients.Classification) Record {
	if strings.EqualFold(c.Label, "positive") {
		return Record{Text: text, SentimentPos: c.Score, SentimentNeg: 1 - c.Score}
	}
	return Record{Text: text, SentimentPos: 1 - c.Score, SentimentNeg: c.Score}
}
