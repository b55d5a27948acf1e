package cloudflare

import "time"

// WidgetMode selects how a Turnstile widget challenges visitors. It is a
// wrapped string with named constants for the known modes; unknown future
// modes pass through unchanged.
type WidgetMode string

const (
	WidgetModeManaged        WidgetMode = "managed"
	WidgetModeNonInteractive WidgetMode = "non-interactive"
	WidgetModeInvisible      WidgetMode = "invisible"
)

// Widget represents a Turnstile widget. The sitekey doubles as its
// identifier.
type Widget struct {
	Sitekey        string     `json:"sitekey"                   yaml:"sitekey"`
	Secret         string     `json:"secret,omitempty"          yaml:"secret,omitempty"`
	Name           string     `json:"name"                      yaml:"name"`
	Domains        []string   `json:"domains"                   yaml:"domains"`
	Mode           WidgetMode `json:"mode"                      yaml:"mode"`
	BotFightMode   bool       `json:"bot_fight_mode"            yaml:"bot_fight_mode"`
	ClearanceLevel string     `json:"clearance_level,omitempty" yaml:"clearance_level,omitempty"`
	Offlabel       bool       `json:"offlabel"                  yaml:"offlabel"`
	CreatedOn      time.Time  `json:"created_on,omitzero"       yaml:"created_on,omitempty"`
	ModifiedOn     time.Time  `json:"modified_on,omitzero"      yaml:"modified_on,omitempty"`
}

// WidgetCreateRequest is the request body for creating a widget.
type WidgetCreateRequest struct {
	Name           string           `json:"name"`
	Domains        []string         `json:"domains"`
	Mode           WidgetMode       `json:"mode"`
	BotFightMode   Optional[bool]   `json:"bot_fight_mode,omitzero"`
	ClearanceLevel Optional[string] `json:"clearance_level,omitzero"`
	Offlabel       Optional[bool]   `json:"offlabel,omitzero"`
}

// WidgetUpdateRequest is the request body for a partial widget update.
type WidgetUpdateRequest struct {
	Name           Optional[string]     `json:"name,omitzero"`
	Domains        Optional[[]string]   `json:"domains,omitzero"`
	Mode           Optional[WidgetMode] `json:"mode,omitzero"`
	BotFightMode   Optional[bool]       `json:"bot_fight_mode,omitzero"`
	ClearanceLevel Optional[string]     `json:"clearance_level,omitzero"`
	Offlabel       Optional[bool]       `json:"offlabel,omitzero"`
}

// WidgetRotateSecretRequest controls whether the previous secret stays
// valid for a grace period after rotation.
type WidgetRotateSecretRequest struct {
	InvalidateImmediately bool `json:"invalidate_immediately"`
}
