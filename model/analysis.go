package model

import "time"

// TimingAnalysis holds the merged post/comment activity histograms. Post
// publish times and comment arrival times land in the same buckets: the
// feature targets engagement windows, not publish windows.
type TimingAnalysis struct {
	HourlyActivity  map[string]int `json:"hourlyActivity"`
	BestDaysToPost  []DayCount     `json:"bestDaysToPost"`
	BestHoursToPost []HourCount    `json:"bestHoursToPost"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// ContentAnalysis aggregates caption keywords and per-influencer posting
// counts.
type ContentAnalysis struct {
	Keywords           map[string]int            `json:"keywords"`
	KeywordsOverTime   map[string]map[string]int `json:"keywordsOverTime"`
	KeywordsPercentage map[string]float64        `json:"keywordsPercentage"`
	PostingFrequency   map[string]int            `json:"postingFrequency"`
	TotalPosts         int                       `json:"totalPosts"`
}

// HashtagAnalysis mirrors ContentAnalysis but is keyed by hashtag.
type HashtagAnalysis struct {
	Hashtags           map[string]int            `json:"hashtags"`
	HashtagsOverTime   map[string]map[string]int `json:"hashtagsOverTime"`
	HashtagsPercentage map[string]float64        `json:"hashtagsPercentage"`
}

// EngagementRecord is one flattened (post, comment) pair.
type EngagementRecord struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	PostCaption string    `json:"postCaption"`
	Datetime    string    `json:"datetime"`
	Influencer  string    `json:"influencer"`
	CommentText string    `json:"commentText"`
	LikesCount  int       `json:"likesCount"`
	PostedAt    time.Time `json:"-"`
}

type NetworkNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Node type values used in NetworkNode.Type and namespaced node ids.
const (
	NodeInfluencer = "influencer"
	NodePost       = "post"
	NodeCommenter  = "commenter"
)

type NetworkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

type NetworkData struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// SummaryMetrics holds the dashboard headline numbers.
type SummaryMetrics struct {
	TotalPosts             int     `json:"totalPosts"`
	TotalComments          int     `json:"totalComments"`
	TotalLikes             int     `json:"totalLikes"`
	AverageCommentsPerPost float64 `json:"averageCommentsPerPost"`
	AverageLikesPerPost    float64 `json:"averageLikesPerPost"`
	UniqueInfluencers      int     `json:"uniqueInfluencers"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EngagementSummary ranks commenters and posts over an engagement slice.
type EngagementSummary struct {
	TopCommenters      []CommenterCount `json:"topCommenters"`
	MostCommentedPosts []PostComments   `json:"mostCommentedPosts"`
}

type CommenterCount struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

type PostComments struct {
	Post  string `json:"post"`
	Count int    `json:"count"`
}
