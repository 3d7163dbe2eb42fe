package request

import "github.com/Guyuepp/forum-api/domain"

type Thread struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

// ToDomain: Request -> Domain
func (r *Thread) ToDomain() domain.ThreadPayload {
	return domain.ThreadPayload{Title: r.Title, Body: r.Body}
}
