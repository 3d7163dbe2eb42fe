package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

// threadRepository 协调层，布隆过滤器挡在数据库前面
type threadRepository struct {
	db    domain.ThreadRepository
	bloom domain.BloomRepository
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository wraps the database repository with a bloom filter.
// A nil bloom filter disables the pre-check.
func NewThreadRepository(db domain.ThreadRepository, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		bloom: bloom,
	}
}

// mustExist reports ErrThreadNotFound only when the filter is certain the id was never stored.
// Filter failures are logged and the caller falls back to the database.
func (r *threadRepository) mustExist(ctx context.Context, id string) error {
	if r.bloom == nil {
		return nil
	}
	exists, err := r.bloom.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter unavailable for thread %s: %v", id, err)
		return nil
	}
	if !exists {
		logrus.Debugf("bloom filter says thread %s does not exist", id)
		return domain.ErrThreadNotFound
	}
	return nil
}

func (r *threadRepository) AddThread(ctx context.Context, t *domain.Thread) error {
	if err := r.db.AddThread(ctx, t); err != nil {
		return err
	}
	if r.bloom == nil {
		return nil
	}
	// a thread missing from the filter would be reported as not found
	if err := r.bloom.Add(ctx, t.ID); err != nil {
		logrus.Errorf("failed to add thread %s to bloom filter: %v", t.ID, err)
		return fmt.Errorf("add thread %s to bloom filter: %w", t.ID, err)
	}
	return nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	if err := r.mustExist(ctx, id); err != nil {
		return domain.Thread{}, err
	}
	return r.db.GetThreadByID(ctx, id)
}

func (r *threadRepository) IsThreadAvailable(ctx context.Context, id string) error {
	if err := r.mustExist(ctx, id); err != nil {
		return err
	}
	return r.db.IsThreadAvailable(ctx, id)
}

func (r *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}
