package request

import "github.com/Guyuepp/forum-api/domain"

// Content is the body of a new comment or reply. Types are checked by the use case.
type Content struct {
	Content any `json:"content"`
}

// ToDomain: Request -> Domain
func (r *Content) ToDomain() domain.ContentPayload {
	return domain.ContentPayload{Content: r.Content}
}
