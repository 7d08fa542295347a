package analyzer

import "github.com/AutoNateAI/insta-matrix-insights-flow/model"

// Hashtags derives hashtag frequencies and their month-by-month breakdown.
// Tags are counted verbatim: no case-folding and no length filter. Posts
// without hashtags contribute nothing.
func Hashtags(posts []model.Post) *model.HashtagAnalysis {
	hashtags := make(map[string]int)
	overTime := make(map[string]map[string]int)

	for _, post := range posts {
		if len(post.Hashtags) == 0 {
			continue
		}

		yearMonth, hasMonth := yearMonthKey(post.Timestamp)
		for _, tag := range post.Hashtags {
			hashtags[tag]++
			if !hasMonth {
				continue
			}
			if overTime[yearMonth] == nil {
				overTime[yearMonth] = make(map[string]int)
			}
			overTime[yearMonth][tag]++
		}
	}

	total := 0
	for _, count := range hashtags {
		total += count
	}
	percentage := make(map[string]float64, len(hashtags))
	for tag, count := range hashtags {
		percentage[tag] = float64(count) / float64(total) * 100
	}

	return &model.HashtagAnalysis{
		Hashtags:           hashtags,
		HashtagsOverTime:   overTime,
		HashtagsPercentage: percentage,
	}
}
