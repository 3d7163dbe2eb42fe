package rdb_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/rdb"
)

var replyColumns = []string{"id", "timestamp", "content", "comment_id", "owner_username", "is_deleted"}

func TestReplyRepository_AddReply(t *testing.T) {
	db, mock := newMockDB(t)
	repo := rdb.NewReplyRepository(db, fixedIDGenerator)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `replies`")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	reply := &domain.Reply{
		CommentID:     "comment-123",
		Content:       faker.Sentence(),
		OwnerUsername: faker.Username(),
	}
	err := repo.AddReply(context.Background(), reply)

	require.NoError(t, err)
	assert.Equal(t, "reply-123", reply.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_GetReplyByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := rdb.NewReplyRepository(db, fixedIDGenerator)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `replies` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(replyColumns))

	_, err := repo.GetReplyByID(context.Background(), "reply-xxx")

	assert.ErrorIs(t, err, domain.ErrReplyNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplyRepository_GetRepliesByCommentIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := rdb.NewReplyRepository(db, fixedIDGenerator)

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `replies` WHERE comment_id IN (?,?) ORDER BY `timestamp`")).
		WillReturnRows(sqlmock.NewRows(replyColumns).
			AddRow("reply-1", ts, "r1", "comment-2", "a", false).
			AddRow("reply-2", ts.Add(time.Second), "r2", "comment-1", "b", true))

	replies, err := repo.GetRepliesByCommentIDs(context.Background(), []string{"comment-1", "comment-2"})

	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "comment-2", replies[0].CommentID)
	assert.True(t, replies[1].IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_DeleteReplyByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := rdb.NewReplyRepository(db, fixedIDGenerator)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `replies` SET `is_deleted`=? WHERE id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `replies` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(replyColumns).
			AddRow("reply-123", time.Now(), "hi", "comment-123", "dicoding", true))

	reply, err := repo.DeleteReplyByID(context.Background(), "reply-123")

	require.NoError(t, err)
	assert.True(t, reply.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
