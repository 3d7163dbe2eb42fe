package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Thread struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)"`
	Timestamp     time.Time `gorm:"column:timestamp;uniqueIndex;not null"`
	Title         string    `gorm:"type:text;not null"`
	Body          string    `gorm:"type:text;not null"`
	OwnerUsername string    `gorm:"column:owner_username;type:text;not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t *domain.Thread) *Thread {
	return &Thread{
		ID:            t.ID,
		Timestamp:     t.Timestamp,
		Title:         t.Title,
		Body:          t.Body,
		OwnerUsername: t.OwnerUsername,
	}
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:            m.ID,
		Title:         m.Title,
		Body:          m.Body,
		OwnerUsername: m.OwnerUsername,
		Timestamp:     m.Timestamp,
	}
}
