package reply

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/usecase/payload"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

// mustExist probes the thread, then the comment
func (s *service) mustExist(ctx context.Context, threadID, commentID string) error {
	if err := s.threadRepo.IsThreadAvailable(ctx, threadID); err != nil {
		return err
	}
	return s.commentRepo.IsCommentAvailable(ctx, commentID)
}

func (s *service) AddReply(ctx context.Context, cred domain.Credential, threadID, commentID string, p domain.ContentPayload) (domain.AddedReply, error) {
	if !payload.Present(p.Content) {
		return domain.AddedReply{}, domain.ErrReplyNoContent
	}
	fields, ok := payload.Strings(p.Content)
	if !ok {
		return domain.AddedReply{}, domain.ErrReplyPayloadType
	}

	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return domain.AddedReply{}, err
	}

	reply := domain.Reply{
		CommentID:     commentID,
		Content:       fields[0],
		OwnerUsername: cred.Username,
	}
	if err := s.replyRepo.AddReply(ctx, &reply); err != nil {
		return domain.AddedReply{}, err
	}

	return domain.AddedReply{
		ID:      reply.ID,
		Content: reply.Content,
		Owner:   cred.ID,
	}, nil
}

func (s *service) DeleteReply(ctx context.Context, cred domain.Credential, threadID, commentID, replyID string) (bool, error) {
	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return false, err
	}

	reply, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return false, err
	}
	if reply.OwnerUsername != cred.Username {
		return false, domain.ErrNotReplyOwner
	}
	if reply.IsDeleted {
		return false, domain.ErrReplyDeleted
	}

	deleted, err := s.replyRepo.DeleteReplyByID(ctx, replyID)
	if err != nil {
		return false, err
	}
	return deleted.IsDeleted, nil
}
