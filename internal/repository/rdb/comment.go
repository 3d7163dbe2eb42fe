package rdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/rdb/model"
)

// oldestFirst orders rows by their creation timestamp
var oldestFirst = clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}

type commentRepository struct {
	DB    *gorm.DB
	genID domain.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, genID domain.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		genID: genID,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	commentModel.ID = domain.NewID("comment", c.genID)
	commentModel.Timestamp = time.Now()
	commentModel.IsDeleted = false

	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.Timestamp = commentModel.Timestamp
	comment.IsDeleted = false
	return nil
}

func (c *commentRepository) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order(oldestFirst).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) DeleteCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
	if err != nil {
		return domain.Comment{}, err
	}
	return c.GetCommentByID(ctx, id)
}

func (c *commentRepository) IsCommentAvailable(ctx context.Context, id string) error {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) AddCommentLike(ctx context.Context, like domain.CommentLike) error {
	likeModel := model.NewCommentLikeFromDomain(like)
	return c.DB.WithContext(ctx).Create(&likeModel).Error
}

func (c *commentRepository) GetCommentsLikes(ctx context.Context, commentIDs []string) ([]domain.CommentLikeCount, error) {
	if len(commentIDs) == 0 {
		return []domain.CommentLikeCount{}, nil
	}

	var rows []model.CommentLikeCount
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(comment_id) AS counts").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentLikeCount, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) IsCommentLikedByUser(ctx context.Context, like domain.CommentLike) (bool, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ? AND username = ?", like.CommentID, like.Username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *commentRepository) DeleteCommentLike(ctx context.Context, like domain.CommentLike) error {
	return c.DB.WithContext(ctx).
		Where("comment_id = ? AND username = ?", like.CommentID, like.Username).
		Delete(&model.CommentLike{}).Error
}
