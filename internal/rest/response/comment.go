package response

import "github.com/Guyuepp/forum-api/domain"

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	LikeCount int64   `json:"likeCount"`
	Replies   []Reply `json:"replies"`
}

type Reply struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.CommentDetail) Comment {
	replies := make([]Reply, len(c.Replies))
	for i, r := range c.Replies {
		replies[i] = Reply{
			ID:       r.ID,
			Username: r.Username,
			Date:     formatDate(r.Date),
			Content:  r.Content,
		}
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      formatDate(c.Date),
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
