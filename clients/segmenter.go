package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Sentence segmenter (/split) ---
type SplitReq struct {
	Text string `json:"text"`
}
type SplitResp struct {
	Sentences []string `json:"sentences"`
}

// Split asks the linguistic segmentation service for sentence boundaries.
// Callers treat any error as a cue to fall back to regex splitting.
func (h *HTTP) Split(ctx context.Context, url, text string) ([]string, error) {
	b, _ := json.Marshal(SplitReq{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/split", bytes.NewReader(b))
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
		return nil, fmt.Errorf("segmenter %s: %s", resp.Status, string(body))
	}

	var out SplitResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("segmenter decode: %w", err)
	}
	return out.Sentences, nil
}
