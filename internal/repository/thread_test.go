package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/memory"
)

type stubBloom struct {
	ids       map[string]bool
	existsErr error
	addErr    error
}

func newStubBloom() *stubBloom {
	return &stubBloom{ids: map[string]bool{}}
}

func (s *stubBloom) Add(_ context.Context, id string) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.ids[id] = true
	return nil
}

func (s *stubBloom) Exists(_ context.Context, id string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.ids[id], nil
}

func (s *stubBloom) BulkAdd(ctx context.Context, ids []string) error {
	for _, id := range ids {
		_ = s.Add(ctx, id)
	}
	return nil
}

type countingThreads struct {
	*memory.ThreadRepository
	lookups int
}

func (c *countingThreads) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	c.lookups++
	return c.ThreadRepository.GetThreadByID(ctx, id)
}

func (c *countingThreads) IsThreadAvailable(ctx context.Context, id string) error {
	c.lookups++
	return c.ThreadRepository.IsThreadAvailable(ctx, id)
}

func TestThreadRepository_AddThreadIndexesBloom(t *testing.T) {
	ctx := context.Background()
	bloom := newStubBloom()
	repo := NewThreadRepository(memory.NewThreadRepository(nil), bloom)

	thread := &domain.Thread{Title: "t", Body: "b", OwnerUsername: "dicoding"}
	require.NoError(t, repo.AddThread(ctx, thread))

	assert.True(t, bloom.ids[thread.ID])
	assert.NoError(t, repo.IsThreadAvailable(ctx, thread.ID))
}

func TestThreadRepository_AddThreadBloomFailure(t *testing.T) {
	bloom := newStubBloom()
	bloom.addErr = errors.New("redis down")
	repo := NewThreadRepository(memory.NewThreadRepository(nil), bloom)

	err := repo.AddThread(context.Background(), &domain.Thread{Title: "t", Body: "b"})

	assert.ErrorIs(t, err, bloom.addErr)
}

func TestThreadRepository_MissingFilterFallsBackToDB(t *testing.T) {
	ctx := context.Background()
	db := memory.NewThreadRepository(nil)
	db.Put(domain.Thread{ID: "thread-123", Title: "title"})
	bloom := newStubBloom()
	bloom.existsErr = domain.ErrBloomFilterMissing
	repo := NewThreadRepository(db, bloom)

	assert.NoError(t, repo.IsThreadAvailable(ctx, "thread-123"))
	thread, err := repo.GetThreadByID(ctx, "thread-123")
	require.NoError(t, err)
	assert.Equal(t, "title", thread.Title)

	assert.ErrorIs(t, repo.IsThreadAvailable(ctx, "thread-xxx"), domain.ErrThreadNotFound)
}

func TestThreadRepository_BloomNegativeSkipsDB(t *testing.T) {
	ctx := context.Background()
	db := &countingThreads{ThreadRepository: memory.NewThreadRepository(nil)}
	repo := NewThreadRepository(db, newStubBloom())

	assert.ErrorIs(t, repo.IsThreadAvailable(ctx, "thread-xxx"), domain.ErrThreadNotFound)
	_, err := repo.GetThreadByID(ctx, "thread-xxx")
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	assert.Zero(t, db.lookups)
}

func TestThreadRepository_FalsePositiveFallsThroughToDB(t *testing.T) {
	bloom := newStubBloom()
	bloom.ids["thread-ghost"] = true
	repo := NewThreadRepository(memory.NewThreadRepository(nil), bloom)

	err := repo.IsThreadAvailable(context.Background(), "thread-ghost")

	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
}

func TestThreadRepository_BloomErrorFallsBackToDB(t *testing.T) {
	ctx := context.Background()
	db := memory.NewThreadRepository(nil)
	db.Put(domain.Thread{ID: "thread-123", Title: "title"})
	bloom := newStubBloom()
	bloom.existsErr = errors.New("redis down")
	repo := NewThreadRepository(db, bloom)

	thread, err := repo.GetThreadByID(ctx, "thread-123")

	require.NoError(t, err)
	assert.Equal(t, "title", thread.Title)
}

func TestThreadRepository_NilBloom(t *testing.T) {
	ctx := context.Background()
	db := memory.NewThreadRepository(nil)
	db.Put(domain.Thread{ID: "thread-123"})
	repo := NewThreadRepository(db, nil)

	assert.NoError(t, repo.IsThreadAvailable(ctx, "thread-123"))
	assert.ErrorIs(t, repo.IsThreadAvailable(ctx, "thread-xxx"), domain.ErrNotFound)
	require.NoError(t, repo.AddThread(ctx, &domain.Thread{Title: "t"}))
}
