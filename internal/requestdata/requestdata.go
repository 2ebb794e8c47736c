package requestdata

import (
	"context"

	"github.com/yungbote/discussions-backend/internal/domain"
)

var identityKey = struct{}{}

// Identity is the resolved caller for one request. It is built once by the
// identity middleware and handed explicitly to services; nothing below the
// HTTP layer reads it out of ambient state.
type Identity struct {
	UserID        *int64
	Role          domain.Role
	Authenticated bool
}

// Anonymous is the identity of a request carrying no usable credentials.
func Anonymous() *Identity {
	return &Identity{Role: domain.RoleUnknown}
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) *Identity {
	val := ctx.Value(identityKey)
	if id, ok := val.(*Identity); ok {
		return id
	}
	return nil
}
