package access

import (
	"testing"

	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

func ptr(v int64) *int64 { return &v }

func TestHasRole(t *testing.T) {
	tests := []struct {
		name    string
		id      *requestdata.Identity
		allowed []domain.Role
		want    bool
	}{
		{"nil identity", nil, []domain.Role{domain.RoleStudent}, false},
		{"unauthenticated student", &requestdata.Identity{Role: domain.RoleStudent}, []domain.Role{domain.RoleStudent}, false},
		{"authenticated student", &requestdata.Identity{Role: domain.RoleStudent, Authenticated: true}, []domain.Role{domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin}, true},
		{"authenticated unknown role", &requestdata.Identity{Role: domain.RoleUnknown, Authenticated: true}, []domain.Role{domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin}, false},
		{"admin in allowed set", &requestdata.Identity{Role: domain.RoleAdmin, Authenticated: true}, []domain.Role{domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRole(tt.id, tt.allowed...); got != tt.want {
				t.Fatalf("HasRole: got %v want %v", got, tt.want)
			}
		})
	}
}

func TestCanModifyOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name      string
		id        *requestdata.Identity
		creatorID *int64
		want      bool
	}{
		{"nil identity", nil, ptr(1), false},
		{"owner matches", &requestdata.Identity{UserID: ptr(1)}, ptr(1), true},
		{"non-owner denied", &requestdata.Identity{UserID: ptr(4), Role: domain.RoleStudent, Authenticated: true}, ptr(1), false},
		{"admin overrides any creator", &requestdata.Identity{UserID: ptr(99), Role: domain.RoleAdmin, Authenticated: true}, ptr(1), true},
		{"admin overrides null creator", &requestdata.Identity{UserID: ptr(99), Role: domain.RoleAdmin, Authenticated: true}, nil, true},
		{"null creator never matches owner", &requestdata.Identity{UserID: ptr(1)}, nil, false},
		{"anonymous caller with null creator", &requestdata.Identity{Role: domain.RoleUnknown}, nil, false},
		{"unauthenticated admin role does not override", &requestdata.Identity{UserID: ptr(99), Role: domain.RoleAdmin}, ptr(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(WriteOwnerOrAdmin, tt.id, tt.creatorID); got != tt.want {
				t.Fatalf("CanModify(owner-or-admin): got %v want %v", got, tt.want)
			}
		})
	}
}

func TestCanModifyHeaderOwner(t *testing.T) {
	tests := []struct {
		name      string
		id        *requestdata.Identity
		creatorID *int64
		want      bool
	}{
		{"matching ids", &requestdata.Identity{UserID: ptr(7)}, ptr(7), true},
		{"mismatched ids", &requestdata.Identity{UserID: ptr(7)}, ptr(8), false},
		{"missing caller id is a strict deny", &requestdata.Identity{}, ptr(7), false},
		{"null creator is a strict deny", &requestdata.Identity{UserID: ptr(7)}, nil, false},
		{"nil identity", nil, ptr(7), false},
		{"admin role gets no override here", &requestdata.Identity{UserID: ptr(9), Role: domain.RoleAdmin, Authenticated: true}, ptr(7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(WriteHeaderOwner, tt.id, tt.creatorID); got != tt.want {
				t.Fatalf("CanModify(header-owner): got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParsePolicies(t *testing.T) {
	if got := ParseWritePolicy("header-owner"); got != WriteHeaderOwner {
		t.Fatalf("ParseWritePolicy: got %q", got)
	}
	if got := ParseWritePolicy("anything else"); got != WriteOwnerOrAdmin {
		t.Fatalf("ParseWritePolicy default: got %q", got)
	}
	if got := ParseListPolicy("ROLE-GATE"); got != ListRoleGate {
		t.Fatalf("ParseListPolicy: got %q", got)
	}
	if got := ParseListPolicy(""); got != ListPublic {
		t.Fatalf("ParseListPolicy default: got %q", got)
	}
}
