package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft-deleted reply when rendered
const DeletedReplyContent = "**balasan telah dihapus**"

// Reply is a second-level answer to a comment
type Reply struct {
	ID            string
	CommentID     string
	Content       string
	OwnerUsername string
	Timestamp     time.Time
	IsDeleted     bool
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// ReplyDetail is a reply as rendered inside a CommentDetail
type ReplyDetail struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, cred Credential, threadID, commentID string, payload ContentPayload) (AddedReply, error)
	DeleteReply(ctx context.Context, cred Credential, threadID, commentID, replyID string) (bool, error)
}

type ReplyRepository interface {
	// AddReply backfills ID and Timestamp upon success
	AddReply(ctx context.Context, r *Reply) error
	// GetReplyByID returns ErrReplyNotFound if absent
	GetReplyByID(ctx context.Context, id string) (Reply, error)
	// GetRepliesByCommentIDs returns the replies of all given comments in one batch, oldest first
	GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]Reply, error)
	// DeleteReplyByID soft deletes a reply and returns the updated row
	DeleteReplyByID(ctx context.Context, id string) (Reply, error)
}
