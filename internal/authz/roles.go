package authz

const (
	RoleViewer  = 10
	RoleMember  = 20
	RoleManager = 30
	RoleAdmin   = 40
)

func IsElevated(roleID int) bool {
	return roleID == RoleManager || roleID == RoleAdmin
}

func IsReadOnly(roleID int) bool {
	return roleID == RoleViewer
}
