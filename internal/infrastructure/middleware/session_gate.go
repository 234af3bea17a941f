package middleware

import (
	"context"
	"net/http"
	"strings"

	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the signed-in user id.
const ContextUserID = "user_id"

// SessionResolver maps an access token to a live session's user.
type SessionResolver interface {
	ResolveUserID(ctx context.Context, accessToken string) (string, bool)
}

// BearerToken reads "Authorization: Bearer <token>", falling back to the
// token query parameter for WebSocket upgrades where browsers cannot set headers.
func BearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Query("token")
}

// SessionGate rejects requests without a live session and tells the client
// to go to the auth page.
func SessionGate(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolver.ResolveUserID(c.Request.Context(), BearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  errorx.ErrUnauthorized.Msg,
				"data": gin.H{"redirect": constants.AUTH_PATH},
			})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the id stored by SessionGate.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
