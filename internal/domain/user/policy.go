package user

// AccessPolicy is the single place role checks live. Which roles may decide
// leave requests varies by deployment, so the approver set is configuration,
// not a constant.
type AccessPolicy struct {
	approverRoles map[Role]bool
}

func NewAccessPolicy(approverRoles []Role) AccessPolicy {
	set := make(map[Role]bool, len(approverRoles))
	for _, r := range approverRoles {
		set[r] = true
	}
	return AccessPolicy{approverRoles: set}
}

func (p AccessPolicy) IsAdmin(role Role) bool {
	return role == RoleAdmin
}

// IsApprover reports whether role may transition a leave request out of
// Pending. Admin is always an approver.
func (p AccessPolicy) IsApprover(role Role) bool {
	return role == RoleAdmin || p.approverRoles[role]
}

// IsSelf reports whether the caller owns the resource.
func IsSelf(userID, resourceOwnerID string) bool {
	return userID == resourceOwnerID
}
