package services

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

// IdentityService turns upstream credentials into a caller identity. It never
// decides whether a request is allowed; that is the policy layer's job.
type IdentityService interface {
	ResolveBearer(tokenString string) (*requestdata.Identity, error)
	ResolveDelegatedHeader(headerValue string) *requestdata.Identity
}

type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type identityService struct {
	log          *logger.Logger
	jwtSecretKey string
}

func NewIdentityService(baseLog *logger.Logger, jwtSecretKey string) IdentityService {
	return &identityService{
		log:          baseLog.With("service", "IdentityService"),
		jwtSecretKey: jwtSecretKey,
	}
}

func (is *identityService) ResolveBearer(tokenString string) (*requestdata.Identity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(is.jwtSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return &requestdata.Identity{
		UserID:        &userID,
		Role:          domain.ParseRole(claims.Role),
		Authenticated: true,
	}, nil
}

// ResolveDelegatedHeader maps a trusted X-User-ID header value to an
// unauthenticated identity. Absent or non-integer values resolve to no caller
// id, never to an error.
func (is *identityService) ResolveDelegatedHeader(headerValue string) *requestdata.Identity {
	id := requestdata.Anonymous()
	if headerValue == "" {
		return id
	}
	userID, err := strconv.ParseInt(headerValue, 10, 64)
	if err != nil {
		is.log.Debug("Ignoring malformed delegated user id header", "value", headerValue)
		return id
	}
	id.UserID = &userID
	return id
}
