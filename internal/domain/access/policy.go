package access

import "time"

// StateOf classifies a subscription expiry. A member whose expiry falls in
// [asOf, asOf+window] is expiring; one already past asOf is expired.
func StateOf(expiry time.Time, window time.Duration, asOf time.Time) MembershipState {
	if expiry.Before(asOf) {
		return StateExpired
	}
	if !expiry.After(asOf.Add(window)) {
		return StateExpiring
	}
	return StateActive
}

// CanViewMember reports whether the caller may read records owned by memberID.
// Admins see everyone; members see only themselves.
func CanViewMember(id Identity, memberID uint) bool {
	switch id.Role {
	case RoleAdmin:
		return true
	case RoleMember:
		return id.UserID != 0 && id.UserID == memberID
	default:
		return false
	}
}

// HasRole reports whether role is one the API issues tokens for.
func HasRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
