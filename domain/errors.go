package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound matches every NotFound ClientError through errors.Is
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthenticated will throw if the request carries no credential
	ErrUnauthenticated = errors.New("Missing authentication")
)

// Use case error codes. The boundary layer translates them into ClientErrors.
var (
	ErrThreadPayloadInvalid = errors.New("THREAD_USE_CASE.PAYLOAD_INVALID")
	ErrThreadPayloadType    = errors.New("ADD_THREAD_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")

	ErrCommentNoContent   = errors.New("MANAGE_COMMENT_USE_CASE.NO_CONTENT")
	ErrCommentPayloadType = errors.New("MANAGE_COMMENT_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrNotCommentOwner    = errors.New("MANAGE_COMMENT_USE_CASE.NOT_THE_OWNER_OF_COMMENT")
	ErrCommentDeleted     = errors.New("MANAGE_COMMENT_USE_CASE.COMMENT_HAS_BEEN_DELETED")

	ErrReplyNoContent   = errors.New("MANAGE_REPLY_USE_CASE.NO_CONTENT")
	ErrReplyPayloadType = errors.New("MANAGE_REPLY_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrNotReplyOwner    = errors.New("MANAGE_REPLY_USE_CASE.NOT_THE_OWNER_OF_REPLY")
	ErrReplyDeleted     = errors.New("MANAGE_REPLY_USE_CASE.REPLY_HAS_BEEN_DELETED")

	ErrLikedCommentDeleted = errors.New("UPDATE_COMMENT_LIKE_USE_CASE.COMMENT_HAS_BEEN_DELETED")
)

// Repository not-found errors, already carrying their user-facing message.
var (
	ErrThreadNotFound  = NewNotFoundError("thread tidak ditemukan")
	ErrCommentNotFound = NewNotFoundError("komentar tidak ditemukan")
	ErrReplyNotFound   = NewNotFoundError("reply tidak ditemukan")
)

// ErrorKind classifies errors that can be shown to the caller
type ErrorKind int8

const (
	KindInvariant ErrorKind = iota + 1
	KindAuthorization
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "INVARIANT"
	case KindAuthorization:
		return "AUTHORIZATION"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// ClientError is an error whose message is safe to return to the caller
type ClientError struct {
	Kind    ErrorKind
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrNotFound) hold for every NotFound ClientError
func (e *ClientError) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

func NewInvariantError(msg string) *ClientError {
	return &ClientError{Kind: KindInvariant, Message: msg}
}

func NewAuthorizationError(msg string) *ClientError {
	return &ClientError{Kind: KindAuthorization, Message: msg}
}

func NewNotFoundError(msg string) *ClientError {
	return &ClientError{Kind: KindNotFound, Message: msg}
}
