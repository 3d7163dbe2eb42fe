package rest

import "github.com/gin-gonic/gin"

// Handlers groups every handler served by the API
type Handlers struct {
	Thread  *ThreadHandler
	Comment *commentHandler
	Reply   *replyHandler
	Like    *likeHandler
}

// RegisterRoutes mounts the thread API. Every write route runs behind auth.
func RegisterRoutes(route gin.IRouter, auth gin.HandlerFunc, h Handlers) {
	route.GET("/threads/:threadId", h.Thread.GetByID)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.Store)
		authorized.POST("/threads/:threadId/comments", h.Comment.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)

		// the like route has no target state, every verb toggles
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.Toggle)
		authorized.POST("/threads/:threadId/comments/:commentId/likes", h.Like.Toggle)
		authorized.DELETE("/threads/:threadId/comments/:commentId/likes", h.Like.Toggle)
	}
}
