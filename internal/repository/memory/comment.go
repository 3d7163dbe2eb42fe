package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type CommentRepository struct {
	mu       sync.RWMutex
	comments []domain.Comment
	likes    []domain.CommentLike
	genID    domain.IDGenerator
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(genID domain.IDGenerator) *CommentRepository {
	if genID == nil {
		genID = domain.DefaultIDGenerator
	}
	return &CommentRepository{genID: genID}
}

// Put stores a comment as-is
func (m *CommentRepository) Put(c domain.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, c)
}

// PutLike stores a like row without any duplicate check, as the table does
func (m *CommentRepository) PutLike(l domain.CommentLike) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.likes = append(m.likes, l)
}

// LikeRows returns how many like rows exist for the pair
func (m *CommentRepository) LikeRows(l domain.CommentLike) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, row := range m.likes {
		if row == l {
			n++
		}
	}
	return n
}

func (m *CommentRepository) AddComment(ctx context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = domain.NewID("comment", m.genID)
	c.Timestamp = time.Now()
	c.IsDeleted = false
	m.comments = append(m.comments, *c)
	return nil
}

func (m *CommentRepository) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Comment{}, domain.ErrCommentNotFound
}

func (m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	m.mu.RLock()
	res := make([]domain.Comment, 0)
	for _, c := range m.comments {
		if c.ThreadID == threadID {
			res = append(res, c)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Timestamp.Before(res[j].Timestamp)
	})
	return res, nil
}

func (m *CommentRepository) DeleteCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.comments {
		if m.comments[i].ID == id {
			m.comments[i].IsDeleted = true
			return m.comments[i], nil
		}
	}
	return domain.Comment{}, domain.ErrCommentNotFound
}

func (m *CommentRepository) IsCommentAvailable(ctx context.Context, id string) error {
	_, err := m.GetCommentByID(ctx, id)
	return err
}

func (m *CommentRepository) AddCommentLike(ctx context.Context, like domain.CommentLike) error {
	m.PutLike(like)
	return nil
}

func (m *CommentRepository) GetCommentsLikes(ctx context.Context, commentIDs []string) ([]domain.CommentLikeCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]domain.CommentLikeCount, 0)
	for _, id := range commentIDs {
		var n int64
		for _, row := range m.likes {
			if row.CommentID == id {
				n++
			}
		}
		if n > 0 {
			res = append(res, domain.CommentLikeCount{CommentID: id, Counts: n})
		}
	}
	return res, nil
}

func (m *CommentRepository) IsCommentLikedByUser(ctx context.Context, like domain.CommentLike) (bool, error) {
	return m.LikeRows(like) > 0, nil
}

func (m *CommentRepository) DeleteCommentLike(ctx context.Context, like domain.CommentLike) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.likes[:0]
	for _, row := range m.likes {
		if row != like {
			kept = append(kept, row)
		}
	}
	m.likes = kept
	return nil
}
