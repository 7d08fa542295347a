package analyzer

import (
	"math"
	"testing"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

// TestContentKeywordExtraction verifies tokenization: lowercasing,
// punctuation stripping and the length filter.
func TestContentKeywordExtraction(t *testing.T) {
	content := Content(samplePosts())

	for _, word := range []string{"such", "lovely", "morning", "walk"} {
		if content.Keywords[word] != 1 {
			t.Errorf("Expected keyword %q with count 1, got %d", word, content.Keywords[word])
		}
	}
	// "a" is dropped by the length filter; "such" survives it and is left
	// for the stop-word display filter.
	if _, ok := content.Keywords["a"]; ok {
		t.Errorf("Expected %q to be filtered out", "a")
	}
	if len(content.Keywords) != 4 {
		t.Errorf("Expected 4 keywords, got %v", content.Keywords)
	}
}

// TestContentStripsPunctuationAndCase verifies captions are normalized
// before counting.
func TestContentStripsPunctuationAndCase(t *testing.T) {
	posts := []model.Post{{
		ID:            "p1",
		OwnerUsername: "alice",
		Caption:       "AMAZING sunset!!! #wow... amazing",
		Timestamp:     "2024-04-20T10:45:00Z",
	}}

	content := Content(posts)
	if content.Keywords["amazing"] != 2 {
		t.Errorf("Expected %q count 2, got %d", "amazing", content.Keywords["amazing"])
	}
	if content.Keywords["sunset"] != 1 {
		t.Errorf("Expected %q count 1, got %d", "sunset", content.Keywords["sunset"])
	}
}

// TestContentPostingFrequency verifies per-influencer post counts.
func TestContentPostingFrequency(t *testing.T) {
	posts := append(samplePosts(), model.Post{
		ID:            "p2",
		OwnerUsername: "alice",
		Timestamp:     "2024-05-01T09:00:00Z",
	}, model.Post{
		ID:            "p3",
		OwnerUsername: "carol",
		Timestamp:     "2024-05-02T09:00:00Z",
	})

	content := Content(posts)
	if content.PostingFrequency["alice"] != 2 {
		t.Errorf("Expected alice with 2 posts, got %d", content.PostingFrequency["alice"])
	}
	if content.PostingFrequency["carol"] != 1 {
		t.Errorf("Expected carol with 1 post, got %d", content.PostingFrequency["carol"])
	}
	if content.TotalPosts != 3 {
		t.Errorf("Expected totalPosts 3, got %d", content.TotalPosts)
	}
}

// TestContentPercentageClosure verifies keyword percentages sum to 100
// within floating-point tolerance.
func TestContentPercentageClosure(t *testing.T) {
	posts := []model.Post{
		{ID: "p1", OwnerUsername: "alice", Caption: "golden hour beach vibes today", Timestamp: "2024-04-20T10:45:00Z"},
		{ID: "p2", OwnerUsername: "bob", Caption: "beach beach beach forever", Timestamp: "2024-05-02T12:00:00Z"},
	}

	content := Content(posts)
	sum := 0.0
	for _, pct := range content.KeywordsPercentage {
		sum += pct
	}
	if math.Abs(sum-100) > 1e-9*100 {
		t.Errorf("Expected percentages to sum to 100, got %v", sum)
	}
}

// TestContentKeywordsOverTimeKey verifies the year-month bucket key format
// (month not zero-padded).
func TestContentKeywordsOverTimeKey(t *testing.T) {
	content := Content(samplePosts())

	bucket, ok := content.KeywordsOverTime["2024-4"]
	if !ok {
		t.Fatalf("Expected bucket 2024-4, got %v", content.KeywordsOverTime)
	}
	if bucket["morning"] != 1 {
		t.Errorf("Expected %q count 1 in 2024-4, got %d", "morning", bucket["morning"])
	}
}

// TestContentSkipsEmptyCaptions verifies captionless posts still count
// toward posting frequency but contribute no keywords.
func TestContentSkipsEmptyCaptions(t *testing.T) {
	posts := []model.Post{{ID: "p1", OwnerUsername: "alice", Timestamp: "2024-04-20T10:45:00Z"}}

	content := Content(posts)
	if len(content.Keywords) != 0 {
		t.Errorf("Expected no keywords, got %v", content.Keywords)
	}
	if content.PostingFrequency["alice"] != 1 {
		t.Errorf("Expected alice counted once, got %d", content.PostingFrequency["alice"])
	}
}

// TestTopKeywordsFiltersStopWords verifies the display ranking excludes
// common function words the aggregator itself counts.
func TestTopKeywordsFiltersStopWords(t *testing.T) {
	posts := []model.Post{{
		ID:            "p1",
		OwnerUsername: "alice",
		Caption:       "this sunset over there is just stunning stunning",
		Timestamp:     "2024-04-20T10:45:00Z",
	}}

	content := Content(posts)
	if content.Keywords["this"] != 1 {
		t.Fatalf("Aggregator should count stop words, got %v", content.Keywords)
	}

	top := TopKeywords(content, 10)
	for _, kw := range top {
		if stopWords[kw.Word] {
			t.Errorf("Stop word %q leaked into top keywords", kw.Word)
		}
	}
	if top[0].Word != "stunning" || top[0].Count != 2 {
		t.Errorf("Expected stunning(2) ranked first, got %+v", top[0])
	}
}

// TestTopKeywordsLimit verifies the limit is honored.
func TestTopKeywordsLimit(t *testing.T) {
	content := Content(samplePosts())
	top := TopKeywords(content, 2)
	if len(top) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(top))
	}
	if got := TopKeywords(nil, 5); got != nil {
		t.Errorf("Expected nil for nil analysis, got %v", got)
	}
}
