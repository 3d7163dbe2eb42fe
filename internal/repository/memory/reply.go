package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type ReplyRepository struct {
	mu      sync.RWMutex
	replies []domain.Reply
	genID   domain.IDGenerator
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)

func NewReplyRepository(genID domain.IDGenerator) *ReplyRepository {
	if genID == nil {
		genID = domain.DefaultIDGenerator
	}
	return &ReplyRepository{genID: genID}
}

// Put stores a reply as-is
func (m *ReplyRepository) Put(r domain.Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

func (m *ReplyRepository) AddReply(ctx context.Context, r *domain.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = domain.NewID("reply", m.genID)
	r.Timestamp = time.Now()
	r.IsDeleted = false
	m.replies = append(m.replies, *r)
	return nil
}

func (m *ReplyRepository) GetReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.replies {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Reply{}, domain.ErrReplyNotFound
}

func (m *ReplyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	m.mu.RLock()
	res := make([]domain.Reply, 0)
	for _, r := range m.replies {
		if slices.Contains(commentIDs, r.CommentID) {
			res = append(res, r)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Timestamp.Before(res[j].Timestamp)
	})
	return res, nil
}

func (m *ReplyRepository) DeleteReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.replies {
		if m.replies[i].ID == id {
			m.replies[i].IsDeleted = true
			return m.replies[i], nil
		}
	}
	return domain.Reply{}, domain.ErrReplyNotFound
}
