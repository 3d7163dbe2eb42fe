// Package memory holds in-memory implementations of the repository contracts.
// They keep rows in insertion order and are safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type ThreadRepository struct {
	mu      sync.RWMutex
	threads []domain.Thread
	genID   domain.IDGenerator
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)

func NewThreadRepository(genID domain.IDGenerator) *ThreadRepository {
	if genID == nil {
		genID = domain.DefaultIDGenerator
	}
	return &ThreadRepository{genID: genID}
}

// Put stores a thread as-is, mirroring a table test helper
func (m *ThreadRepository) Put(t domain.Thread) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threads = append(m.threads, t)
}

func (m *ThreadRepository) AddThread(ctx context.Context, t *domain.Thread) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = domain.NewID("thread", m.genID)
	t.Timestamp = time.Now()
	m.threads = append(m.threads, *t)
	return nil
}

func (m *ThreadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.threads {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Thread{}, domain.ErrThreadNotFound
}

func (m *ThreadRepository) IsThreadAvailable(ctx context.Context, id string) error {
	_, err := m.GetThreadByID(ctx, id)
	return err
}

func (m *ThreadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.threads))
	for _, t := range m.threads {
		if t.ID > cursor {
			ids = append(ids, t.ID)
		}
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}
