package analyzer

import (
	"sort"
	"strconv"
	"time"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

// parseTimestamp parses the RFC 3339 timestamps carried by scrape exports.
// The zero time and false are returned for anything unparseable.
func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Timing derives hour-of-day and weekday activity histograms from post and
// comment timestamps. Posts and comments share the same buckets. Hours and
// weekdays are taken in each timestamp's own UTC offset, so the result does
// not depend on the host timezone. Records with unparseable timestamps are
// skipped.
func Timing(posts []model.Post) *model.TimingAnalysis {
	hourly := make(map[string]int)
	daily := make(map[string]int)

	bump := func(ts string) {
		t, ok := parseTimestamp(ts)
		if !ok {
			return
		}
		hourly[strconv.Itoa(t.Hour())]++
		daily[t.Weekday().String()]++
	}

	for _, post := range posts {
		bump(post.Timestamp)
		for _, comment := range post.LatestComments {
			bump(comment.Timestamp)
		}
	}

	bestDays := make([]model.DayCount, 0, len(daily))
	for day, count := range daily {
		bestDays = append(bestDays, model.DayCount{Day: day, Count: count})
	}
	// Map iteration order is random; key order keeps ties deterministic.
	sort.Slice(bestDays, func(i, j int) bool {
		if bestDays[i].Count != bestDays[j].Count {
			return bestDays[i].Count > bestDays[j].Count
		}
		return bestDays[i].Day < bestDays[j].Day
	})

	bestHours := make([]model.HourCount, 0, len(hourly))
	for hour, count := range hourly {
		bestHours = append(bestHours, model.HourCount{Hour: hour, Count: count})
	}
	sort.Slice(bestHours, func(i, j int) bool {
		if bestHours[i].Count != bestHours[j].Count {
			return bestHours[i].Count > bestHours[j].Count
		}
		return bestHours[i].Hour < bestHours[j].Hour
	})

	return &model.TimingAnalysis{
		HourlyActivity:  hourly,
		BestDaysToPost:  bestDays,
		BestHoursToPost: bestHours,
	}
}
