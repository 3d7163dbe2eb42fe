package domain

import (
	"context"
	"time"
)

// Thread is a top-level discussion post. Threads are never updated or deleted.
type Thread struct {
	ID            string    // "thread-" prefixed identifier
	Title         string    // Thread title
	Body          string    // Thread body
	OwnerUsername string    // Username of the author
	Timestamp     time.Time // Creation timestamp, unique per table
}

// ThreadPayload is the decoded request body of a new thread.
// Fields are untyped so the use case can tell a missing field from a mistyped one.
type ThreadPayload struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

// AddedThread is returned after a thread is created.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadDetail is a thread with its comments, replies and like counts assembled.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []CommentDetail
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread stores a new thread.
	// Backfills ID and Timestamp in the provided Thread upon success.
	AddThread(ctx context.Context, t *Thread) error

	// GetThreadByID retrieves a single thread.
	// Returns ErrThreadNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, id string) (Thread, error)

	// IsThreadAvailable returns ErrThreadNotFound if the thread doesn't exist.
	IsThreadAvailable(ctx context.Context, id string) error

	// FetchIDs pages through thread ids in ascending order, starting after cursor.
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, cred Credential, payload ThreadPayload) (AddedThread, error)
	GetThread(ctx context.Context, threadID string) (ThreadDetail, error)
	InitBloomFilter(ctx context.Context) error
}
