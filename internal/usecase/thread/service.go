package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/usecase/payload"
)

// bloomInitBatch is the page size used when loading thread ids into the bloom filter
const bloomInitBatch = 1000

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object. bloomRepo may be nil.
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, b domain.BloomRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		bloomRepo:   b,
	}
}

func (s *Service) AddThread(ctx context.Context, cred domain.Credential, p domain.ThreadPayload) (domain.AddedThread, error) {
	if !payload.Present(p.Title, p.Body) {
		return domain.AddedThread{}, domain.ErrThreadPayloadInvalid
	}
	fields, ok := payload.Strings(p.Title, p.Body)
	if !ok {
		return domain.AddedThread{}, domain.ErrThreadPayloadType
	}

	thread := domain.Thread{
		Title:         fields[0],
		Body:          fields[1],
		OwnerUsername: cred.Username,
	}
	if err := s.threadRepo.AddThread(ctx, &thread); err != nil {
		return domain.AddedThread{}, err
	}

	return domain.AddedThread{
		ID:    thread.ID,
		Title: thread.Title,
		Owner: cred.ID,
	}, nil
}

// GetThread assembles a thread with its comments, replies and like counts.
// Likes and replies are each loaded in a single batch keyed by every comment id.
func (s *Service) GetThread(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	var (
		likes   []domain.CommentLikeCount
		replies []domain.Reply
	)
	if len(comments) > 0 {
		commentIDs := make([]string, len(comments))
		for i := range comments {
			commentIDs[i] = comments[i].ID
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			likes, err = s.commentRepo.GetCommentsLikes(gctx, commentIDs)
			return err
		})
		g.Go(func() error {
			var err error
			replies, err = s.replyRepo.GetRepliesByCommentIDs(gctx, commentIDs)
			return err
		})
		if err := g.Wait(); err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	return assembleThread(thread, comments, replies, likes), nil
}

// InitBloomFilter loads every stored thread id into the bloom filter
func (s *Service) InitBloomFilter(ctx context.Context) error {
	if s.bloomRepo == nil {
		return nil
	}

	var (
		cursor string
		total  int
	)
	for {
		ids, err := s.threadRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomInitBatch {
			break
		}
	}

	logrus.Infof("bloom filter initialized with %d threads", total)
	return nil
}
