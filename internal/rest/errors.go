package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

const serverErrorMessage = "terjadi kegagalan pada server kami"

// directories maps use case error codes to user-facing errors
var directories = map[error]*domain.ClientError{
	domain.ErrThreadPayloadInvalid: domain.NewInvariantError("harus mengirimkan payload title dan body"),
	domain.ErrThreadPayloadType:    domain.NewInvariantError("title dan body harus string"),

	domain.ErrCommentNoContent:   domain.NewInvariantError("harus mengirimkan payload content"),
	domain.ErrCommentPayloadType: domain.NewInvariantError("content harus string"),
	domain.ErrNotCommentOwner:    domain.NewAuthorizationError("anda tidak dapat menghapus comment yang bukan milik anda"),
	domain.ErrCommentDeleted:     domain.NewInvariantError("komentar telah dihapus"),

	domain.ErrReplyNoContent:   domain.NewInvariantError("harus mengirimkan payload content"),
	domain.ErrReplyPayloadType: domain.NewInvariantError("content harus string"),
	domain.ErrNotReplyOwner:    domain.NewAuthorizationError("anda tidak dapat menghapus balasan yang bukan milik anda"),
	domain.ErrReplyDeleted:     domain.NewInvariantError("balasan telah dihapus"),

	domain.ErrLikedCommentDeleted: domain.NewInvariantError("komentar telah dihapus"),

	domain.ErrBadParamInput: domain.NewInvariantError("payload tidak valid"),
}

// TranslateError maps a known use case error to its ClientError.
// Unknown errors are returned unchanged.
func TranslateError(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if translated, ok := directories[e]; ok {
			return translated
		}
	}
	return err
}

// getStatusCode will get the HTTP status of a ClientError kind
func getStatusCode(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvariant:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	var clientErr *domain.ClientError
	if errors.As(TranslateError(err), &clientErr) {
		c.JSON(getStatusCode(clientErr.Kind), response.Fail(clientErr.Message))
		return
	}

	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error(err)
	c.JSON(http.StatusInternalServerError, response.Error(serverErrorMessage))
}

// bindPayload decodes a JSON body. An empty body leaves obj untouched so the
// use case can report the missing fields.
func bindPayload(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		logrus.Debugf("invalid payload: %v", err)
		return domain.ErrBadParamInput
	}
	return nil
}
