package rdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/rdb/model"
)

type threadRepository struct {
	DB    *gorm.DB
	genID domain.IDGenerator
}

// rdb层只负责数据库操作
var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create a gorm-backed thread repository
func NewThreadRepository(db *gorm.DB, genID domain.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		genID: genID,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, t *domain.Thread) error {
	threadModel := model.NewThreadFromDomain(t)
	threadModel.ID = domain.NewID("thread", m.genID)
	threadModel.Timestamp = time.Now()

	if err := m.DB.WithContext(ctx).Create(threadModel).Error; err != nil {
		return err
	}
	t.ID = threadModel.ID
	t.Timestamp = threadModel.Timestamp
	return nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	var thread model.Thread
	err := m.DB.WithContext(ctx).First(&thread, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	if err != nil {
		return domain.Thread{}, err
	}
	return thread.ToDomain(), nil
}

func (m *threadRepository) IsThreadAvailable(ctx context.Context, id string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
