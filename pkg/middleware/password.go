package middleware

import (
	"crypto/hmac"

	"EchoVoice/pkg/apperr"
	"EchoVoice/pkg/response"

	"github.com/gin-gonic/gin"
)

// PasswordHeader carries the shared API password on every protected request.
const PasswordHeader = "X-Api-Password"

// RequirePassword gates a route group behind the shared secret. A missing or
// mismatched header aborts with 401 before any handler work runs.
func RequirePassword(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(PasswordHeader)
		if provided == "" || !hmac.Equal([]byte(provided), []byte(secret)) {
			response.Error(c, apperr.New(apperr.AuthFailure, "Invalid password"))
			return
		}
		c.Next()
	}
}
