package access

import (
	"strings"

	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

// WritePolicy selects the object-level rule applied to PUT/DELETE on the
// general discussion and comment routes. The course routes are always
// owner-or-admin.
type WritePolicy string

const (
	// WriteOwnerOrAdmin permits the record's creator or any ADMIN.
	WriteOwnerOrAdmin WritePolicy = "owner-or-admin"
	// WriteHeaderOwner permits only a header-asserted caller id equal to the
	// record's creator id; any missing value is a deny.
	WriteHeaderOwner WritePolicy = "header-owner"
)

// ListPolicy selects the route-level rule on the general list/create routes.
type ListPolicy string

const (
	ListPublic   ListPolicy = "public"
	ListRoleGate ListPolicy = "role-gate"
)

func ParseWritePolicy(s string) WritePolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(WriteHeaderOwner)) {
		return WriteHeaderOwner
	}
	return WriteOwnerOrAdmin
}

func ParseListPolicy(s string) ListPolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(ListRoleGate)) {
		return ListRoleGate
	}
	return ListPublic
}

// HasRole reports whether the caller is authenticated with one of the allowed
// roles. A nil identity never passes.
func HasRole(id *requestdata.Identity, allowed ...domain.Role) bool {
	if id == nil || !id.Authenticated {
		return false
	}
	for _, role := range allowed {
		if id.Role == role {
			return true
		}
	}
	return false
}

// CanModify evaluates the object-level write policy for a record created by
// creatorID. A null creator id never matches any caller; under owner-or-admin
// only an ADMIN can still touch such a record.
func CanModify(policy WritePolicy, id *requestdata.Identity, creatorID *int64) bool {
	switch policy {
	case WriteHeaderOwner:
		if id == nil || id.UserID == nil || creatorID == nil {
			return false
		}
		return *id.UserID == *creatorID
	default:
		if id == nil {
			return false
		}
		if id.Authenticated && id.Role == domain.RoleAdmin {
			return true
		}
		if id.UserID != nil && creatorID != nil && *id.UserID == *creatorID {
			return true
		}
		return false
	}
}
