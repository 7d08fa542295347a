package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// tokenizeCaption lowercases a caption, strips punctuation and splits it
// into words, discarding tokens of length <= 3.
func tokenizeCaption(caption string) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(caption), "")
	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 3 {
			words = append(words, word)
		}
	}
	return words
}

// yearMonthKey buckets a timestamp as "YYYY-M" (month not zero-padded).
func yearMonthKey(ts string) (string, bool) {
	t, ok := parseTimestamp(ts)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month())), true
}

// Content derives caption keyword frequencies, their month-by-month
// breakdown and per-influencer posting counts. Stop words are not filtered
// here; ranking for display goes through TopKeywords.
func Content(posts []model.Post) *model.ContentAnalysis {
	keywords := make(map[string]int)
	overTime := make(map[string]map[string]int)
	frequency := make(map[string]int)

	for _, post := range posts {
		frequency[post.OwnerUsername]++

		if post.Caption == "" {
			continue
		}

		yearMonth, hasMonth := yearMonthKey(post.Timestamp)
		for _, word := range tokenizeCaption(post.Caption) {
			keywords[word]++
			if !hasMonth {
				continue
			}
			if overTime[yearMonth] == nil {
				overTime[yearMonth] = make(map[string]int)
			}
			overTime[yearMonth][word]++
		}
	}

	total := 0
	for _, count := range keywords {
		total += count
	}
	percentage := make(map[string]float64, len(keywords))
	for word, count := range keywords {
		percentage[word] = float64(count) / float64(total) * 100
	}

	return &model.ContentAnalysis{
		Keywords:           keywords,
		KeywordsOverTime:   overTime,
		KeywordsPercentage: percentage,
		PostingFrequency:   frequency,
		TotalPosts:         len(posts),
	}
}
