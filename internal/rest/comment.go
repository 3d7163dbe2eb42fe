package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
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

	added, err := h.Service.AddComment(c.Request.Context(), cred, c.Param("threadId"), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedComment": added}))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	cred, ok := middleware.GetCredential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
		return
	}

	_, err := h.Service.DeleteComment(c.Request.Context(), cred, c.Param("threadId"), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
