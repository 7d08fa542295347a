package analyzer

import "github.com/AutoNateAI/insta-matrix-insights-flow/model"

// Summary computes the dashboard headline metrics for a corpus.
func Summary(posts []model.Post) model.SummaryMetrics {
	metrics := model.SummaryMetrics{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return metrics
	}

	influencers := make(map[string]bool)
	for _, post := range posts {
		metrics.TotalComments += post.CommentsCount
		metrics.TotalLikes += post.LikesCount
		influencers[post.OwnerUsername] = true
	}

	metrics.AverageCommentsPerPost = float64(metrics.TotalComments) / float64(metrics.TotalPosts)
	metrics.AverageLikesPerPost = float64(metrics.TotalLikes) / float64(metrics.TotalPosts)
	metrics.UniqueInfluencers = len(influencers)
	return metrics
}
