package model

import (
	"github.com/Guyuepp/forum-api/domain"
)

// CommentLike has no unique (comment_id, username) constraint; the like use case keeps pairs unique
type CommentLike struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CommentID string `gorm:"column:comment_id;type:varchar(64);not null"`
	Username  string `gorm:"column:username;type:text;not null"`
}

func (CommentLike) TableName() string {
	return "comments_likes"
}

func NewCommentLikeFromDomain(l domain.CommentLike) CommentLike {
	return CommentLike{
		CommentID: l.CommentID,
		Username:  l.Username,
	}
}

// CommentLikeCount is the row shape of the grouped like count query
type CommentLikeCount struct {
	CommentID string
	Counts    int64
}

func (m CommentLikeCount) ToDomain() domain.CommentLikeCount {
	return domain.CommentLikeCount{
		CommentID: m.CommentID,
		Counts:    m.Counts,
	}
}
