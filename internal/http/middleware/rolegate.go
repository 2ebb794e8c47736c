package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

// RequireRole gates a route group to authenticated callers holding one of the
// allowed roles.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestdata.GetIdentity(c.Request.Context())
		if !access.HasRole(id, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to perform this action.",
			})
			return
		}
		c.Next()
	}
}
