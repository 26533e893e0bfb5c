package scoring

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/silvercare-lab/doll-pipeline/clients"
)

// fakeClassify labels texts containing 좋 as positive, everything else
// negative, with a confidence derived from text length. Deterministic per
// text so batch boundaries cannot matter.
func fakeClassify(ctx context.Context, texts []string) ([]clients.Classification, error) {
	out := make([]clients.Classification, len(texts))
	for i, t := range texts {
		label := "negative"
		if strings.Contains(t, "좋") {
			label = "positive"
		}
		out[i] = clients.Classification{Label: label, Score: 0.5 + float64(len(t)%5)/10}
	}
	return out, nil
}

func TestScoresNormalization(t *testing.T) {
	a := NewAdapter(func(ctx context.Context, texts []string) ([]clients.Classification, error) {
		return []clients.Classification{
			{Label: "positive", Score: 0.9},
			{Label: "negative", Score: 0.7},
			{Label: "NEGATIVE", Score: 0.6},
		}, nil
	}, DefaultBatchSize)

	got, err := a.Scores(context.Background(), []string{"좋아", "싫어", "우울해"})
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("records=%d want 3", len(got))
	}

	if got[0].SentimentPos != 0.9 || math.Abs(got[0].SentimentNeg-0.1) > 1e-9 {
		t.Fatalf("positive record = %+v", got[0])
	}
	if got[1].SentimentNeg != 0.7 || math.Abs(got[1].SentimentPos-0.3) > 1e-9 {
		t.Fatalf("negative record = %+v", got[1])
	}
	if got[2].SentimentNeg != 0.6 {
		t.Fatalf("label match must be case-insensitive: %+v", got[2])
	}

	for i, r := range got {
		if sum := r.SentimentPos + r.SentimentNeg; math.Abs(sum-1) > 1e-9 {
			t.Fatalf("record %d: pos+neg=%v want 1", i, sum)
		}
		if r.SentimentPos < 0 || r.SentimentPos > 1 || r.SentimentNeg < 0 || r.SentimentNeg > 1 {
			t.Fatalf("record %d out of range: %+v", i, r)
		}
	}
}

func TestScoresKeepsInputOrderAndText(t *testing.T) {
	texts := []string{"좋아", "싫어", "행복해", "짜증나", "그냥 그래"}
	a := NewAdapter(fakeClassify, 2)

	got, err := a.Scores(context.Background(), texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	for i, r := range got {
		if r.Text != texts[i] {
			t.Fatalf("record %d text=%q want %q", i, r.Text, texts[i])
		}
	}
}

func TestScoresIndependentOfBatchSize(t *testing.T) {
	texts := []string{"좋아", "싫어", "행복해", "짜증나", "그냥 그래", "고마워"}

	want, err := NewAdapter(fakeClassify, len(texts)).Scores(context.Background(), texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	for _, size := range []int{1, 2, 4, 100} {
		got, err := NewAdapter(fakeClassify, size).Scores(context.Background(), texts)
		if err != nil {
			t.Fatalf("batch=%d: %v", size, err)
		}
		if len(got) != len(want) {
			t.Fatalf("batch=%d: len=%d want %d", size, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("batch=%d record %d = %+v want %+v", size, i, got[i], want[i])
			}
		}
	}
}

func TestScoresClassifierErrorPropagates(t *testing.T) {
	boom := errors.New("model unavailable")
	a := NewAdapter(func(ctx context.Context, texts []string) ([]clients.Classification, error) {
		return nil, boom
	}, DefaultBatchSize)

	if _, err := a.Scores(context.Background(), []string{"좋아"}); !errors.Is(err, boom) {
		t.Fatalf("err=%v want wrapped %v", err, boom)
	}
}

func TestScoresLengthMismatchIsError(t *testing.T) {
	a := NewAdapter(func(ctx context.Context, texts []string) ([]clients.Classification, error) {
		return []clients.Classification{{Label: "positive", Score: 1}}, nil
	}, DefaultBatchSize)

	if _, err := a.Scores(context.Background(), []string{"하나", "둘"}); err == nil {
		t.Fatal("want error on result length mismatch")
	}
}

func TestScoresEmptyInput(t *testing.T) {
	got, err := NewAdapter(fakeClassify, DefaultBatchSize).Scores(context.Background(), nil)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("records=%+v want none", got)
	}
}
