package like

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
	}
}

// ToggleLike likes the comment if the caller has not liked it yet, and unlikes it otherwise.
// The check and the write are separate statements; two concurrent toggles by the
// same user can both see "not liked" and insert twice.
func (s *service) ToggleLike(ctx context.Context, cred domain.Credential, threadID, commentID string) error {
	if err := s.threadRepo.IsThreadAvailable(ctx, threadID); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.IsDeleted {
		return domain.ErrLikedCommentDeleted
	}

	like := domain.CommentLike{
		CommentID: commentID,
		Username:  cred.Username,
	}
	liked, err := s.commentRepo.IsCommentLikedByUser(ctx, like)
	if err != nil {
		return err
	}
	if liked {
		return s.commentRepo.DeleteCommentLike(ctx, like)
	}
	return s.commentRepo.AddCommentLike(ctx, like)
}
