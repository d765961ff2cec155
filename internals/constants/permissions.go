package constants

// Capability flags. The flags on a team member's permission set are the single
// source of truth for every gate; the role label is display grouping only.
const (
	PermManageTeam     = "manage_team"
	PermManageContent  = "manage_content"
	PermManageProjects = "manage_projects"
	PermManageServices = "manage_services"
	PermManageReviews  = "manage_reviews"
	PermViewMessages   = "view_messages"
	PermManageMessages = "manage_messages"
)

// Role labels.
const (
	RoleEditor     = "editor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var AllRoles = []string{
	RoleEditor,
	RoleAdmin,
	RoleSuperAdmin,
}

var AllCapabilities = []string{
	PermManageTeam,
	PermManageContent,
	PermManageProjects,
	PermManageServices,
	PermManageReviews,
	PermViewMessages,
	PermManageMessages,
}

// Error messages surfaced to the admin UI.
const (
	ErrAccessDenied       = "Access Denied: Insufficient Permissions"
	ErrSuperAdminProtected = "Super admin access cannot be revoked here"
)
