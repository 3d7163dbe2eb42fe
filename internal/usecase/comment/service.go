package comment

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/usecase/payload"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

func (s *service) AddComment(ctx context.Context, cred domain.Credential, threadID string, p domain.ContentPayload) (domain.AddedComment, error) {
	if !payload.Present(p.Content) {
		return domain.AddedComment{}, domain.ErrCommentNoContent
	}
	fields, ok := payload.Strings(p.Content)
	if !ok {
		return domain.AddedComment{}, domain.ErrCommentPayloadType
	}

	if err := s.threadRepo.IsThreadAvailable(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	comment := domain.Comment{
		ThreadID:      threadID,
		Content:       fields[0],
		OwnerUsername: cred.Username,
	}
	if err := s.commentRepo.AddComment(ctx, &comment); err != nil {
		return domain.AddedComment{}, err
	}

	return domain.AddedComment{
		ID:      comment.ID,
		Content: comment.Content,
		Owner:   cred.ID,
	}, nil
}

// DeleteComment soft deletes a comment owned by the caller.
// Ownership is checked before the deleted flag.
func (s *service) DeleteComment(ctx context.Context, cred domain.Credential, threadID, commentID string) (bool, error) {
	if err := s.threadRepo.IsThreadAvailable(ctx, threadID); err != nil {
		return false, err
	}

	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment.OwnerUsername != cred.Username {
		return false, domain.ErrNotCommentOwner
	}
	if comment.IsDeleted {
		return false, domain.ErrCommentDeleted
	}

	deleted, err := s.commentRepo.DeleteCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	return deleted.IsDeleted, nil
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}
