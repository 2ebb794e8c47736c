package domain

import "strings"

// Role is the closed set of caller roles. Anything outside the known set
// resolves to RoleUnknown at the boundary; downstream comparisons are exact.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
	RoleUnknown Role = "UNKNOWN"
)

func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STUDENT":
		return RoleStudent
	case "STAFF":
		return RoleStaff
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}
