package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

const (
	// Identity headers forwarded by the gateway after it verified the access token
	HeaderUserID   = "X-User-Id"
	HeaderUsername = "X-Username"

	credentialKey = "credential"
)

// AuthMiddleware turns the forwarded identity into a domain.Credential
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		username := c.GetHeader(HeaderUsername)
		if id == "" || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(domain.ErrUnauthenticated.Error()))
			return
		}

		c.Set(credentialKey, domain.Credential{ID: id, Username: username})
		c.Next()
	}
}

// GetCredential returns the credential set by AuthMiddleware
func GetCredential(c *gin.Context) (domain.Credential, bool) {
	v, exists := c.Get(credentialKey)
	if !exists {
		return domain.Credential{}, false
	}
	cred, ok := v.(domain.Credential)
	return cred, ok
}
