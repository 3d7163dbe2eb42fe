package rdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/rdb/model"
)

type replyRepository struct {
	DB    *gorm.DB
	genID domain.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, genID domain.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		genID: genID,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, reply *domain.Reply) error {
	replyModel := model.NewReplyFromDomain(reply)
	replyModel.ID = domain.NewID("reply", r.genID)
	replyModel.Timestamp = time.Now()
	replyModel.IsDeleted = false

	if err := r.DB.WithContext(ctx).Create(replyModel).Error; err != nil {
		return err
	}
	reply.ID = replyModel.ID
	reply.Timestamp = replyModel.Timestamp
	reply.IsDeleted = false
	return nil
}

func (r *replyRepository) GetReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	var reply model.Reply
	err := r.DB.WithContext(ctx).First(&reply, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Reply{}, domain.ErrReplyNotFound
	}
	if err != nil {
		return domain.Reply{}, err
	}
	return reply.ToDomain(), nil
}

// GetRepliesByCommentIDs 获取指定评论ID列表的所有回复
func (r *replyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	if len(commentIDs) == 0 {
		return []domain.Reply{}, nil
	}

	var replies []model.Reply
	err := r.DB.WithContext(ctx).
		Where("comment_id IN ?", commentIDs).
		Order(oldestFirst).
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(replies))
	for i := range replies {
		res[i] = replies[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
	if err != nil {
		return domain.Reply{}, err
	}
	return r.GetReplyByID(ctx, id)
}
