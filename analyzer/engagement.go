package analyzer

import (
	"sort"
	"strings"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

const datetimeLayout = "1/2/2006, 3:04:05 PM"

// Engagement flattens every (post, comment) pair into one record, most
// recent comment first. A commenter active on N posts yields N records.
func Engagement(posts []model.Post) []model.EngagementRecord {
	var records []model.EngagementRecord

	for _, post := range posts {
		for _, comment := range post.LatestComments {
			postedAt, _ := parseTimestamp(comment.Timestamp)
			records = append(records, model.EngagementRecord{
				ID:          comment.ID,
				Username:    comment.OwnerUsername,
				PostCaption: post.Caption,
				Datetime:    postedAt.Format(datetimeLayout),
				Influencer:  post.OwnerUsername,
				CommentText: comment.Text,
				LikesCount:  comment.LikesCount,
				PostedAt:    postedAt,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PostedAt.After(records[j].PostedAt)
	})
	return records
}

// FilterEngagement keeps records whose commenter, influencer or comment
// text contains the query, case-insensitively. An empty query returns the
// slice unchanged.
func FilterEngagement(records []model.EngagementRecord, query string) []model.EngagementRecord {
	if query == "" {
		return records
	}
	needle := strings.ToLower(query)

	filtered := make([]model.EngagementRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Username), needle) ||
			strings.Contains(strings.ToLower(record.Influencer), needle) ||
			strings.Contains(strings.ToLower(record.CommentText), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SummarizeEngagement ranks the top commenters and most commented posts
// over an engagement slice, five of each.
func SummarizeEngagement(records []model.EngagementRecord) model.EngagementSummary {
	const topN = 5

	commenters := make(map[string]int)
	postKeys := make(map[string]int)
	for _, record := range records {
		commenters[record.Username]++
		postKeys[postKey(record)]++
	}

	topCommenters := make([]model.CommenterCount, 0, len(commenters))
	for username, count := range commenters {
		topCommenters = append(topCommenters, model.CommenterCount{Username: username, Count: count})
	}
	sort.Slice(topCommenters, func(i, j int) bool {
		if topCommenters[i].Count != topCommenters[j].Count {
			return topCommenters[i].Count > topCommenters[j].Count
		}
		return topCommenters[i].Username < topCommenters[j].Username
	})
	if len(topCommenters) > topN {
		topCommenters = topCommenters[:topN]
	}

	mostCommented := make([]model.PostComments, 0, len(postKeys))
	for key, count := range postKeys {
		mostCommented = append(mostCommented, model.PostComments{Post: key, Count: count})
	}
	sort.Slice(mostCommented, func(i, j int) bool {
		if mostCommented[i].Count != mostCommented[j].Count {
			return mostCommented[i].Count > mostCommented[j].Count
		}
		return mostCommented[i].Post < mostCommented[j].Post
	})
	if len(mostCommented) > topN {
		mostCommented = mostCommented[:topN]
	}

	return model.EngagementSummary{
		TopCommenters:      topCommenters,
		MostCommentedPosts: mostCommented,
	}
}

// postKey labels a post for ranking as "influencer: truncated caption".
func postKey(record model.EngagementRecord) string {
	caption := record.PostCaption
	if len(caption) > 30 {
		caption = caption[:30] + "..."
	}
	return record.Influencer + ": " + caption
}
