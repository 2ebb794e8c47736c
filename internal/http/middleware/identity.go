package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
	"github.com/yungbote/discussions-backend/internal/services"
)

const headerUserID = "X-User-ID"

type IdentityMiddleware struct {
	log             *logger.Logger
	identityService services.IdentityService
}

func NewIdentityMiddleware(log *logger.Logger, identityService services.IdentityService) *IdentityMiddleware {
	middlewareLogger := log.With("Middleware", "IdentityMiddleware")
	return &IdentityMiddleware{log: middlewareLogger, identityService: identityService}
}

// Resolve builds the caller identity once per request and attaches it to the
// request context. It never rejects: requests without usable credentials
// proceed as anonymous and the policy layer decides what they may do. A
// bearer token wins over the delegated X-User-ID header.
func (im *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id *requestdata.Identity

		if tokenString := extractBearerToken(c); tokenString != "" {
			resolved, err := im.identityService.ResolveBearer(tokenString)
			if err != nil {
				im.log.Warn("Bearer token rejected, continuing as anonymous", "error", err)
			} else {
				id = resolved
			}
		}
		if id == nil {
			id = im.identityService.ResolveDelegatedHeader(c.GetHeader(headerUserID))
		}

		c.Request = c.Request.WithContext(requestdata.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
