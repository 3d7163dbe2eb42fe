package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Reply struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)"`
	Timestamp     time.Time `gorm:"column:timestamp;uniqueIndex;not null"`
	Content       string    `gorm:"type:text;not null"`
	CommentID     string    `gorm:"column:comment_id;type:varchar(64);not null"`
	OwnerUsername string    `gorm:"column:owner_username;type:text;not null"`
	IsDeleted     bool      `gorm:"column:is_deleted;not null;default:false"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:            r.ID,
		Timestamp:     r.Timestamp,
		Content:       r.Content,
		CommentID:     r.CommentID,
		OwnerUsername: r.OwnerUsername,
		IsDeleted:     r.IsDeleted,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:            m.ID,
		CommentID:     m.CommentID,
		Content:       m.Content,
		OwnerUsername: m.OwnerUsername,
		Timestamp:     m.Timestamp,
		IsDeleted:     m.IsDeleted,
	}
}
