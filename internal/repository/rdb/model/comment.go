package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Comment struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)"`
	Timestamp     time.Time `gorm:"column:timestamp;uniqueIndex;not null"`
	Content       string    `gorm:"type:text;not null"`
	ThreadID      string    `gorm:"column:thread_id;type:varchar(64);not null"`
	OwnerUsername string    `gorm:"column:owner_username;type:text;not null"`
	IsDeleted     bool      `gorm:"column:is_deleted;not null;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:            c.ID,
		Timestamp:     c.Timestamp,
		Content:       c.Content,
		ThreadID:      c.ThreadID,
		OwnerUsername: c.OwnerUsername,
		IsDeleted:     c.IsDeleted,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            m.ID,
		ThreadID:      m.ThreadID,
		Content:       m.Content,
		OwnerUsername: m.OwnerUsername,
		Timestamp:     m.Timestamp,
		IsDeleted:     m.IsDeleted,
	}
}
