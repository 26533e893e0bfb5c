package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Sentiment (/classify) ---
type ClassifyReq struct {
	Texts []string `json:"texts"`
}
type Classification struct {
	Label string  `json:"label"` // "positive" or "negative"
	Score float64 `json:"score"` // confidence of the dominant label, 0..1
}
type ClassifyResp struct {
	Results []Classification `json:"results"`
}

// Classify sends one batch of texts to the sentiment service. The response
// is 1:1 with the input, same order.
func (h *HTTP) Classify(ctx context.Context, url string, texts []string) ([]Classification, error) {
	b, _ := json.Marshal(ClassifyReq{Texts: texts})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/classify", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sentiment %s: %s", resp.Status, string(body))
	}

	var out ClassifyResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sentiment decode: %w", err)
	}
	if len(out.Results) != len(texts) {
		return nil, fmt.Errorf("sentiment: got %d results for %d texts", len(out.Results), len(texts))
	}
	return out.Results, nil
}
