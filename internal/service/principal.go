package service

import "github.com/rajat6235/Robusters-POS-sub001/internal/constants"

// Principal is the authenticated staff identity passed explicitly into every
// mutating operation. It is never read from ambient request context.
type Principal struct {
	UserID uint
	Role   string
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

// IsStaff reports whether the principal holds a recognized staff role.
func (p Principal) IsStaff() bool {
	return p.Role == constants.RoleAdmin || p.Role == constants.RoleManager
}
