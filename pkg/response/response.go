package response

import (
	"EchoVoice/pkg/apperr"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error translates a classified error to its transport status and aborts the
// request. This is the only place error kinds map to HTTP codes.
func Error(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(apperr.KindOf(err)), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.AuthFailure:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.ValidationFailure:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
