package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/AutoNateAI/insta-matrix-insights-flow/analyzer"
	"github.com/AutoNateAI/insta-matrix-insights-flow/metrics"
	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

// DataStore owns the loaded post corpus and its derived analytics. Load and
// Clear are the only mutators; every derived view is recomputed in full on
// each successful load and discarded on clear. A failed load never touches
// the previous corpus.
type DataStore struct {
	mu sync.RWMutex

	posts      []model.Post
	loading    bool
	timing     *model.TimingAnalysis
	content    *model.ContentAnalysis
	engagement []model.EngagementRecord
	hashtags   *model.HashtagAnalysis
	network    *model.NetworkData
}

func New() *DataStore {
	return &DataStore{}
}

// Load parses a raw JSON export and, on success, replaces the corpus and
// recomputes all analytics synchronously. Returns the number of posts
// loaded, or a *ParseError / *SchemaError leaving prior state untouched.
func (s *DataStore) Load(raw []byte) (int, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	var probe interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		log.Printf("[ERROR] Failed to parse uploaded data: %v", err)
		return 0, &ParseError{Err: err}
	}
	if _, ok := probe.([]interface{}); !ok {
		log.Printf("[ERROR] Uploaded data is not an array")
		return 0, &SchemaError{Reason: "data is not an array"}
	}

	var posts []model.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		log.Printf("[ERROR] Uploaded array does not match the post schema: %v", err)
		return 0, &SchemaError{Reason: err.Error()}
	}

	start := time.Now()
	timing := analyzer.Timing(posts)
	observeAnalysis("timing", start)

	stepStart := time.Now()
	content := analyzer.Content(posts)
	observeAnalysis("content", stepStart)

	stepStart = time.Now()
	engagement := analyzer.Engagement(posts)
	observeAnalysis("engagement", stepStart)

	stepStart = time.Now()
	hashtags := analyzer.Hashtags(posts)
	observeAnalysis("hashtag", stepStart)

	stepStart = time.Now()
	network := analyzer.Network(posts)
	observeAnalysis("network", stepStart)

	s.mu.Lock()
	s.posts = posts
	s.timing = timing
	s.content = content
	s.engagement = engagement
	s.hashtags = hashtags
	s.network = network
	s.mu.Unlock()

	metrics.DatasetsLoaded.Inc()
	metrics.LoadedPosts.Set(float64(len(posts)))
	log.Printf("[INFO] Loaded %d posts and recomputed all analytics in %s", len(posts), time.Since(start))
	return len(posts), nil
}

func observeAnalysis(name string, start time.Time) {
	metrics.AnalysisDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// Clear resets the corpus and every derived view to the empty state.
func (s *DataStore) Clear() {
	s.mu.Lock()
	s.posts = nil
	s.timing = nil
	s.content = nil
	s.engagement = nil
	s.hashtags = nil
	s.network = nil
	s.mu.Unlock()

	metrics.LoadedPosts.Set(0)
	log.Printf("[INFO] All data cleared")
}

// HasData reports whether a non-empty corpus is loaded.
func (s *DataStore) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts) > 0
}

// IsLoading reports whether a Load call is in flight.
func (s *DataStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *DataStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

func (s *DataStore) Timing() *model.TimingAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timing
}

func (s *DataStore) Content() *model.ContentAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

func (s *DataStore) Engagement() []model.EngagementRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engagement
}

func (s *DataStore) Hashtags() *model.HashtagAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hashtags
}

func (s *DataStore) Network() *model.NetworkData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

// Summary computes the dashboard metrics for the current corpus.
func (s *DataStore) Summary() model.SummaryMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analyzer.Summary(s.posts)
}

// Report assembles the full export snapshot. A non-nil overrideEngagement
// substitutes a filtered engagement slice; the other aggregates are passed
// through as-is.
func (s *DataStore) Report(overrideEngagement []model.EngagementRecord) model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	engagement := s.engagement
	if overrideEngagement != nil {
		engagement = overrideEngagement
	}
	return model.Report{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Timing:     s.timing,
		Content:    s.content,
		Engagement: engagement,
		Hashtags:   s.hashtags,
		Network:    s.network,
	}
}

// PartialReport wraps a caller-chosen slice in the partial export envelope.
func PartialReport(dataType string, data interface{}) model.PartialExport {
	return model.PartialExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		DataType:   dataType,
		Data:       data,
	}
}
