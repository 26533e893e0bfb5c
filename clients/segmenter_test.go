package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSplitSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/split" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req SplitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(SplitResp{Sentences: []string{"나는 좋아.", "정말 좋아!!"}})
	}))
	defer ts.Close()

	got, err := NewHTTP().Split(context.Background(), ts.URL, "나는 좋아. 정말 좋아!!")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(got) != 2 || got[0] != "나는 좋아." {
		t.Fatalf("sentences=%q", got)
	}
}

func TestSplitServerErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tokenizer crashed", http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := NewHTTP().Split(context.Background(), ts.URL, "아무 말"); err == nil {
		t.Fatal("want error on 500 so the caller can fall back")
	}
}

func TestSplitUnreachableServiceSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	if _, err := NewHTTP().Split(context.Background(), ts.URL, "아무 말"); err == nil {
		t.Fatal("want transport error on closed server")
	}
}
