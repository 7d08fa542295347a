package analyzer

import "github.com/AutoNateAI/insta-matrix-insights-flow/model"

// Network builds the influencer -> post <- commenter interaction graph.
// Node ids are namespaced ("influencer-<user>", "post-<id>",
// "commenter-<user>") so usernames are deduplicated across posts while
// every post gets its own node. The seen set is local to the build and
// never escapes it.
func Network(posts []model.Post) *model.NetworkData {
	var nodes []model.NetworkNode
	var links []model.NetworkLink
	seen := make(map[string]bool)

	for _, post := range posts {
		influencerID := model.NodeInfluencer + "-" + post.OwnerUsername
		if !seen[influencerID] {
			nodes = append(nodes, model.NetworkNode{
				ID:    influencerID,
				Label: post.OwnerUsername,
				Type:  model.NodeInfluencer,
			})
			seen[influencerID] = true
		}

		postID := model.NodePost + "-" + post.ID
		nodes = append(nodes, model.NetworkNode{
			ID:    postID,
			Label: post.ShortCode,
			Type:  model.NodePost,
		})
		links = append(links, model.NetworkLink{
			Source: influencerID,
			Target: postID,
			Value:  1,
		})

		for _, comment := range post.LatestComments {
			commenterID := model.NodeCommenter + "-" + comment.OwnerUsername
			if !seen[commenterID] {
				nodes = append(nodes, model.NetworkNode{
					ID:    commenterID,
					Label: comment.OwnerUsername,
					Type:  model.NodeCommenter,
				})
				seen[commenterID] = true
			}
			links = append(links, model.NetworkLink{
				Source: commenterID,
				Target: postID,
				Value:  1,
			})
		}
	}

	return &model.NetworkData{Nodes: nodes, Links: links}
}
