package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) CreateReply(c *gin.Context) {
	cred, ok := middleware.GetCredential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
		return
	}

	var req request.Content
	if err := bindPayload(c, &req); err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddReply(c.Request.Context(), cred, c.Param("threadId"), c.Param("commentId"), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedReply": added}))
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	cred, ok := middleware.GetCredential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
		return
	}

	_, err := h.Service.DeleteReply(c.Request.Context(), cred, c.Param("threadId"), c.Param("commentId"), c.Param("replyId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
