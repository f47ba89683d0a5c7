package access

// MembershipState is how a member's subscription looks at a given instant.
type MembershipState string

const (
	StateActive   MembershipState = "active"
	StateExpiring MembershipState = "expiring"
	StateExpired  MembershipState = "expired"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
