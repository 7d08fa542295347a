package model

// Post represents a single post from an uploaded scrape export.
type Post struct {
	ID             string    `json:"id"`
	Type           string    `json:"type,omitempty"`
	ShortCode      string    `json:"shortCode"`
	Caption        string    `json:"caption"`
	Hashtags       []string  `json:"hashtags"`
	Mentions       []string  `json:"mentions,omitempty"`
	URL            string    `json:"url"`
	InputURL       string    `json:"inputUrl,omitempty"`
	CommentsCount  int       `json:"commentsCount"`
	FirstComment   string    `json:"firstComment,omitempty"`
	LatestComments []Comment `json:"latestComments"`
	LikesCount     int       `json:"likesCount"`
	Timestamp      string    `json:"timestamp"`
	OwnerFullName  string    `json:"ownerFullName,omitempty"`
	OwnerUsername  string    `json:"ownerUsername"`
	OwnerID        string    `json:"ownerId,omitempty"`
	IsSponsored    bool      `json:"isSponsored,omitempty"`
}

// Comment is a comment nested under a post. Comments have no lifecycle of
// their own; they live and die with their parent post.
type Comment struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	OwnerUsername string    `json:"ownerUsername"`
	Timestamp     string    `json:"timestamp"`
	RepliesCount  int       `json:"repliesCount,omitempty"`
	Replies       []Comment `json:"replies,omitempty"`
	LikesCount    int       `json:"likesCount"`
}
