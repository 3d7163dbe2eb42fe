package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// Toggle likes the comment, or removes the like if the caller already liked it
func (h *likeHandler) Toggle(c *gin.Context) {
	cred, ok := middleware.GetCredential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
		return
	}

	if err := h.Service.ToggleLike(c.Request.Context(), cred, c.Param("threadId"), c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
