package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/memory"
)

const testBitSize = 1 << 20

func TestRedisBloomRepo_Offsets(t *testing.T) {
	repo := NewRedisBloomRepo(nil, testBitSize)

	a := repo.getOffset("thread-123")
	b := repo.getOffset("thread-123")

	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	for _, off := range a {
		assert.Less(t, off, uint64(testBitSize))
	}
	assert.NotEqual(t, a, repo.getOffset("thread-456"))
}

func TestRedisBloomRepo_Add(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisBloomRepo(client, testBitSize)

	for _, off := range repo.getOffset("thread-123") {
		mock.ExpectSetBit(KeyThreadBloom, int64(off), 1).SetVal(0)
	}

	require.NoError(t, repo.Add(context.Background(), "thread-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisBloomRepo_Exists(t *testing.T) {
	t.Run("all bits set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, testBitSize)

		mock.ExpectExists(KeyThreadBloom).SetVal(1)
		for _, off := range repo.getOffset("thread-123") {
			mock.ExpectGetBit(KeyThreadBloom, int64(off)).SetVal(1)
		}

		ok, err := repo.Exists(context.Background(), "thread-123")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one bit missing", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, testBitSize)

		offsets := repo.getOffset("thread-123")
		mock.ExpectExists(KeyThreadBloom).SetVal(1)
		mock.ExpectGetBit(KeyThreadBloom, int64(offsets[0])).SetVal(1)
		mock.ExpectGetBit(KeyThreadBloom, int64(offsets[1])).SetVal(0)
		mock.ExpectGetBit(KeyThreadBloom, int64(offsets[2])).SetVal(1)

		ok, err := repo.Exists(context.Background(), "thread-123")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("filter key missing", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, testBitSize)

		mock.ExpectExists(KeyThreadBloom).SetVal(0)
		for _, off := range repo.getOffset("thread-123") {
			mock.ExpectGetBit(KeyThreadBloom, int64(off)).SetVal(0)
		}

		_, err := repo.Exists(context.Background(), "thread-123")

		assert.ErrorIs(t, err, domain.ErrBloomFilterMissing)
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, testBitSize)

		mock.ExpectExists(KeyThreadBloom).SetErr(errors.New("connection refused"))

		_, err := repo.Exists(context.Background(), "thread-123")

		assert.Error(t, err)
	})
}

func TestRedisBloomRepo_ZeroBitSizeUsesDefault(t *testing.T) {
	repo := NewRedisBloomRepo(nil, 0)

	assert.Equal(t, DefaultBitSize, repo.BloomBitSize)
	assert.NotPanics(t, func() {
		for _, off := range repo.getOffset("thread-1") {
			assert.Less(t, off, DefaultBitSize)
		}
	})
}

// A flushed or evicted filter must not hide threads that are stored in the database.
func TestRedisBloomRepo_LostFilterFallsBackToDatabase(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	bloom := NewRedisBloomRepo(client, testBitSize)

	db := memory.NewThreadRepository(nil)
	db.Put(domain.Thread{ID: "thread-123", Title: "sebuah thread"})
	threads := repository.NewThreadRepository(db, bloom)

	mock.ExpectExists(KeyThreadBloom).SetVal(0)
	for _, off := range bloom.getOffset("thread-123") {
		mock.ExpectGetBit(KeyThreadBloom, int64(off)).SetVal(0)
	}

	thread, err := threads.GetThreadByID(ctx, "thread-123")

	require.NoError(t, err)
	assert.Equal(t, "sebuah thread", thread.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisBloomRepo_BulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisBloomRepo(client, testBitSize)

	assert.NoError(t, repo.BulkAdd(context.Background(), nil))

	ids := []string{"thread-1", "thread-2"}
	for _, id := range ids {
		for _, off := range repo.getOffset(id) {
			mock.ExpectSetBit(KeyThreadBloom, int64(off), 1).SetVal(0)
		}
	}

	require.NoError(t, repo.BulkAdd(context.Background(), ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}
