package response

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

// DateTimeFormat is ISO 8601 with milliseconds, always in UTC
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatDate(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadFromDomain: Domain -> Response
func NewThreadFromDomain(t *domain.ThreadDetail) Thread {
	comments := make([]Comment, len(t.Comments))
	for i := range t.Comments {
		comments[i] = NewCommentFromDomain(&t.Comments[i])
	}
	return Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     formatDate(t.Date),
		Username: t.Username,
		Comments: comments,
	}
}
