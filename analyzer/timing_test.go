package analyzer

import (
	"reflect"
	"testing"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

func samplePosts() []model.Post {
	return []model.Post{
		{
			ID:            "p1",
			ShortCode:     "AbC123",
			OwnerUsername: "alice",
			Caption:       "such a lovely morning walk",
			Hashtags:      []string{"sunrise", "walk"},
			Timestamp:     "2024-04-20T10:45:00Z",
			LikesCount:    40,
			CommentsCount: 1,
			LatestComments: []model.Comment{
				{
					ID:            "c1",
					Text:          "nice!",
					OwnerUsername: "bob",
					Timestamp:     "2024-04-20T11:00:00Z",
					LikesCount:    2,
				},
			},
		},
	}
}

// TestTimingMergesPostAndCommentActivity verifies that post publish times
// and comment arrival times land in the same histograms.
func TestTimingMergesPostAndCommentActivity(t *testing.T) {
	timing := Timing(samplePosts())

	if len(timing.HourlyActivity) != 2 {
		t.Fatalf("Expected 2 hourly buckets, got %d: %v", len(timing.HourlyActivity), timing.HourlyActivity)
	}
	if timing.HourlyActivity["10"] != 1 {
		t.Errorf("Expected 1 event at hour 10, got %d", timing.HourlyActivity["10"])
	}
	if timing.HourlyActivity["11"] != 1 {
		t.Errorf("Expected 1 event at hour 11, got %d", timing.HourlyActivity["11"])
	}

	// 2024-04-20 is a Saturday; both events fall on it.
	if len(timing.BestDaysToPost) != 1 {
		t.Fatalf("Expected 1 day bucket, got %d", len(timing.BestDaysToPost))
	}
	if timing.BestDaysToPost[0].Day != "Saturday" || timing.BestDaysToPost[0].Count != 2 {
		t.Errorf("Expected Saturday with count 2, got %+v", timing.BestDaysToPost[0])
	}
}

// TestTimingBestHoursSortedDescending verifies the materialized hour list
// is ordered by count.
func TestTimingBestHoursSortedDescending(t *testing.T) {
	posts := samplePosts()
	posts = append(posts, model.Post{
		ID:            "p2",
		OwnerUsername: "alice",
		Timestamp:     "2024-04-21T11:30:00Z",
	})

	timing := Timing(posts)
	if timing.BestHoursToPost[0].Hour != "11" || timing.BestHoursToPost[0].Count != 2 {
		t.Errorf("Expected hour 11 with count 2 first, got %+v", timing.BestHoursToPost[0])
	}
	for i := 1; i < len(timing.BestHoursToPost); i++ {
		if timing.BestHoursToPost[i].Count > timing.BestHoursToPost[i-1].Count {
			t.Errorf("BestHoursToPost not sorted descending at %d: %+v", i, timing.BestHoursToPost)
		}
	}
}

// TestTimingSkipsUnparseableTimestamps verifies malformed timestamps do not
// produce garbage buckets.
func TestTimingSkipsUnparseableTimestamps(t *testing.T) {
	posts := []model.Post{
		{ID: "p1", OwnerUsername: "alice", Timestamp: "not-a-timestamp"},
		{ID: "p2", OwnerUsername: "alice", Timestamp: "2024-04-20T10:45:00Z"},
	}

	timing := Timing(posts)
	if len(timing.HourlyActivity) != 1 {
		t.Errorf("Expected 1 hourly bucket, got %v", timing.HourlyActivity)
	}
}

// TestTimingIsIdempotent verifies repeated computation over the same corpus
// yields identical output.
func TestTimingIsIdempotent(t *testing.T) {
	posts := samplePosts()
	first := Timing(posts)
	second := Timing(posts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Timing is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestTimingEmptyCorpus verifies an empty corpus yields empty histograms.
func TestTimingEmptyCorpus(t *testing.T) {
	timing := Timing(nil)
	if len(timing.HourlyActivity) != 0 || len(timing.BestDaysToPost) != 0 || len(timing.BestHoursToPost) != 0 {
		t.Errorf("Expected empty analysis, got %+v", timing)
	}
}
