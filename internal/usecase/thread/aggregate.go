package thread

import "github.com/Guyuepp/forum-api/domain"

// assembleThread builds the nested view of a thread. Comments and replies keep the
// order they were fetched in; deleted ones get placeholder content.
func assembleThread(t domain.Thread, comments []domain.Comment, replies []domain.Reply, likes []domain.CommentLikeCount) domain.ThreadDetail {
	likeMap := make(map[string]int64, len(likes))
	for _, l := range likes {
		likeMap[l.CommentID] = l.Counts
	}

	replyMap := make(map[string][]domain.ReplyDetail)
	for _, r := range replies {
		replyMap[r.CommentID] = append(replyMap[r.CommentID], newReplyDetail(r))
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		list, ok := replyMap[c.ID]
		if !ok {
			list = []domain.ReplyDetail{}
		}
		details = append(details, domain.CommentDetail{
			ID:        c.ID,
			Username:  c.OwnerUsername,
			Date:      c.Timestamp,
			Content:   commentContent(c),
			LikeCount: likeMap[c.ID],
			Replies:   list,
		})
	}

	return domain.ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Timestamp,
		Username: t.OwnerUsername,
		Comments: details,
	}
}

func newReplyDetail(r domain.Reply) domain.ReplyDetail {
	return domain.ReplyDetail{
		ID:       r.ID,
		Username: r.OwnerUsername,
		Date:     r.Timestamp,
		Content:  replyContent(r),
	}
}

func commentContent(c domain.Comment) string {
	if c.IsDeleted {
		return domain.DeletedCommentContent
	}
	return c.Content
}

func replyContent(r domain.Reply) string {
	if r.IsDeleted {
		return domain.DeletedReplyContent
	}
	return r.Content
}
