package render

// Tier maps a tier-name prefix to a display badge.
type Tier struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Badge  string `json:"badge" yaml:"badge"`
}

// Policy is the table of display heuristics for weakly-typed payloads. The upstream
// API does not document which keys carry identifiers or scores, so the priority
// lists are configuration rather than hard-coded precedence.
type Policy struct {
	// ChunkSize is the number of items or ranking rows per page.
	ChunkSize int `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty"`

	// ListKeys are candidate keys under which a ranking-shaped object nests its rows.
	ListKeys []string `json:"list_keys,omitempty" yaml:"list_keys,omitempty"`

	// NameKeys is the priority order for deriving a row's display identifier.
	NameKeys []string `json:"name_keys,omitempty" yaml:"name_keys,omitempty"`

	// ValueKeys is the priority order for deriving a row's numeric value.
	ValueKeys []string `json:"value_keys,omitempty" yaml:"value_keys,omitempty"`

	Tiers        []Tier `json:"tiers,omitempty" yaml:"tiers,omitempty"`
	DefaultBadge string `json:"default_badge,omitempty" yaml:"default_badge,omitempty"`

	// PrettyFieldCap bounds fields on the player-facing flat-object view.
	PrettyFieldCap int `json:"pretty_field_cap,omitempty" yaml:"pretty_field_cap,omitempty"`

	// DevFieldCap bounds fields on the developer flat-object view.
	DevFieldCap int `json:"dev_field_cap,omitempty" yaml:"dev_field_cap,omitempty"`

	// ProfileUrlTemplate links row names to a profile when a row carries an id.
	// Applied with fmt.Sprintf to the id value.
	ProfileUrlTemplate string `json:"profile_url_template,omitempty" yaml:"profile_url_template,omitempty"`
}

func DefaultPolicy() Policy {
	return Policy{
		ChunkSize: 8,
		ListKeys:  []string{"items", "results", "data"},
		NameKeys:  []string{"name", "username", "title", "id"},
		ValueKeys: []string{"value", "score", "points", "damage", "level"},
		Tiers: []Tier{
			{Prefix: "bronze", Badge: "🥉"},
			{Prefix: "silver", Badge: "🥈"},
			{Prefix: "gold", Badge: "🥇"},
			{Prefix: "platinum", Badge: "💠"},
			{Prefix: "diamond", Badge: "💎"},
		},
		DefaultBadge:       "🎖️",
		PrettyFieldCap:     10,
		DevFieldCap:        15,
		ProfileUrlTemplate: "https://warzone.gg/profile/%v",
	}
}

// WithDefaults fills any unset field from the default policy so partial overrides
// from configuration stay usable.
func (p *Policy) WithDefaults() Policy {
	d := DefaultPolicy()
	if p == nil {
		return d
	}

	out := *p
	if out.ChunkSize <= 0 {
		out.ChunkSize = d.ChunkSize
	}
	if len(out.ListKeys) == 0 {
		out.ListKeys = d.ListKeys
	}
	if len(out.NameKeys) == 0 {
		out.NameKeys = d.NameKeys
	}
	if len(out.ValueKeys) == 0 {
		out.ValueKeys = d.ValueKeys
	}
	if len(out.Tiers) == 0 {
		out.Tiers = d.Tiers
	}
	if out.DefaultBadge == "" {
		out.DefaultBadge = d.DefaultBadge
	}
	if out.PrettyFieldCap <= 0 {
		out.PrettyFieldCap = d.PrettyFieldCap
	}
	if out.DevFieldCap <= 0 {
		out.DevFieldCap = d.DevFieldCap
	}
	if out.ProfileUrlTemplate == "" {
		out.ProfileUrlTemplate = d.ProfileUrlTemplate
	}

	return out
}
