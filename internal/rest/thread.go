package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler  represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	cred, ok := middleware.GetCredential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
		return
	}

	var req request.Thread
	if err := bindPayload(c, &req); err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), cred, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedThread": added}))
}

// GetByID will get the thread detail by given id
func (h *ThreadHandler) GetByID(c *gin.Context) {
	detail, err := h.Service.GetThread(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"thread": response.NewThreadFromDomain(&detail)}))
}
