package entity

import errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"

// Role is the closed set of account roles. Keeping it a dedicated type forces
// every role branch through ParseRole or an exhaustive switch instead of raw
// string comparison.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a raw role string coming from the API boundary.
// Admin accounts are never created through public registration, so callers
// that accept user input should additionally reject RoleAdmin themselves.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleFarmer:
		return RoleFarmer, nil
	case RoleCompany:
		return RoleCompany, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.ErrInvalidRole
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleCompany, RoleAdmin:
		return true
	}
	return false
}
