package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment when rendered
const DeletedCommentContent = "**komentar telah dihapus**"

// Comment domain model
type Comment struct {
	ID            string
	ThreadID      string
	Content       string
	OwnerUsername string
	Timestamp     time.Time
	IsDeleted     bool
}

// CommentLike is one like of a comment by a user
type CommentLike struct {
	CommentID string
	Username  string
}

// CommentLikeCount is the number of likes of a comment that has at least one
type CommentLikeCount struct {
	CommentID string
	Counts    int64
}

// ContentPayload is the decoded request body of a new comment or reply
type ContentPayload struct {
	Content any `json:"content"`
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentDetail is a comment as rendered inside a ThreadDetail
type CommentDetail struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	LikeCount int64
	Replies   []ReplyDetail
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	AddComment(ctx context.Context, cred Credential, threadID string, payload ContentPayload) (AddedComment, error)
	DeleteComment(ctx context.Context, cred Credential, threadID, commentID string) (bool, error)
}

// LikeUsecase flips the like state of a comment for the calling user
type LikeUsecase interface {
	ToggleLike(ctx context.Context, cred Credential, threadID, commentID string) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// AddComment backfills ID and Timestamp upon success
	AddComment(ctx context.Context, c *Comment) error
	// GetCommentByID returns ErrCommentNotFound if absent
	GetCommentByID(ctx context.Context, id string) (Comment, error)
	// GetCommentsByThreadID returns the comments of a thread, oldest first
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)
	// DeleteCommentByID soft deletes a comment and returns the updated row
	DeleteCommentByID(ctx context.Context, id string) (Comment, error)
	// IsCommentAvailable returns ErrCommentNotFound if absent
	IsCommentAvailable(ctx context.Context, id string) error

	AddCommentLike(ctx context.Context, like CommentLike) error
	// GetCommentsLikes counts likes per comment, omitting comments without likes
	GetCommentsLikes(ctx context.Context, commentIDs []string) ([]CommentLikeCount, error)
	IsCommentLikedByUser(ctx context.Context, like CommentLike) (bool, error)
	DeleteCommentLike(ctx context.Context, like CommentLike) error
}
