package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"helix_backend/internals/constants"
)

// PermissionSet is the fixed collection of capability flags carried by one
// team member. It is stored as a jsonb column on user_roles and is the single
// source of truth for every gate; the role label is never consulted.
type PermissionSet struct {
	ManageTeam     bool `json:"manage_team"`
	ManageContent  bool `json:"manage_content"`
	ManageProjects bool `json:"manage_projects"`
	ManageServices bool `json:"manage_services"`
	ManageReviews  bool `json:"manage_reviews"`
	ViewMessages   bool `json:"view_messages"`
	ManageMessages bool `json:"manage_messages"`
}

// DefaultPermissions is the conservative baseline for newly provisioned
// members: projects only, everything else off.
func DefaultPermissions() PermissionSet {
	return PermissionSet{ManageProjects: true}
}

// FullPermissions is the set conventionally carried by a super_admin record.
// The flags are still what every check reads, not the label.
func FullPermissions() PermissionSet {
	return PermissionSet{
		ManageTeam:     true,
		ManageContent:  true,
		ManageProjects: true,
		ManageServices: true,
		ManageReviews:  true,
		ViewMessages:   true,
		ManageMessages: true,
	}
}

// Allows reports whether the set grants the named capability.
// A nil set (no role row resolved) or an unknown capability always denies.
func (p *PermissionSet) Allows(capability string) bool {
	if p == nil {
		return false
	}
	switch capability {
	case constants.PermManageTeam:
		return p.ManageTeam
	case constants.PermManageContent:
		return p.ManageContent
	case constants.PermManageProjects:
		return p.ManageProjects
	case constants.PermManageServices:
		return p.ManageServices
	case constants.PermManageReviews:
		return p.ManageReviews
	case constants.PermViewMessages:
		return p.ViewMessages
	case constants.PermManageMessages:
		return p.ManageMessages
	default:
		return false
	}
}

// AllowsAny reports whether at least one of the capabilities is granted.
func (p *PermissionSet) AllowsAny(capabilities ...string) bool {
	for _, cap := range capabilities {
		if p.Allows(cap) {
			return true
		}
	}
	return false
}

func (p PermissionSet) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PermissionSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PermissionSet{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("permission_set: unsupported column type")
	}
}
