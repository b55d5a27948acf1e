package cloudflare

import "time"

// Account represents an account the token has access to.
type Account struct {
	ID        string           `json:"id"                   yaml:"id"`
	Name      string           `json:"name"                 yaml:"name"`
	Type      string           `json:"type,omitempty"       yaml:"type,omitempty"`
	Settings  *AccountSettings `json:"settings,omitempty"   yaml:"settings,omitempty"`
	CreatedOn time.Time        `json:"created_on,omitzero"  yaml:"created_on,omitempty"`
}

// AccountSettings holds account-wide settings.
type AccountSettings struct {
	EnforceTwoFactor bool `json:"enforce_twofactor" yaml:"enforce_twofactor"`
}

// AccountUpdateRequest is the request body for a partial account update.
type AccountUpdateRequest struct {
	Name     Optional[string]          `json:"name,omitzero"`
	Settings Optional[AccountSettings] `json:"settings,omitzero"`
}

// Role represents a predefined account role.
type Role struct {
	ID          string                    `json:"id"          yaml:"id"`
	Name        string                    `json:"name"        yaml:"name"`
	Description string                    `json:"description" yaml:"description"`
	Permissions map[string]RolePermission `json:"permissions" yaml:"permissions"`
}

// RolePermission describes the access a role grants for one permission
// group.
type RolePermission struct {
	Read bool `json:"read" yaml:"read"`
	Edit bool `json:"edit" yaml:"edit"`
}
