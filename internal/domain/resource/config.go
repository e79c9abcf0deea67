package resource

// MaskFunc renders a display value for a sensitive field. It receives the
// raw value and the full record for context. An empty result falls back to
// the fixed placeholder.
type MaskFunc func(value any, rec Record) string

// SensitiveField names a field that must never leave the service in
// plaintext except through CopyField. A nil Mask means the placeholder.
type SensitiveField struct {
	Name string
	Mask MaskFunc
}

// Config is the sole axis of variation between record kinds. One Service
// per kind, each built from a Config value; no kind carries bespoke logic.
type Config struct {
	// Name is the human-readable kind name used in error messages.
	Name string
	// SearchableFields are matched by the free-text q parameter.
	SearchableFields []string
	// SensitiveFields are replaced on every read path.
	SensitiveFields []SensitiveField
	// WorkspaceScoped kinds require a workspaceId on create and support
	// workspace filtering on list.
	WorkspaceScoped bool
	// DefaultSort is the sort spec applied when the caller passes none,
	// e.g. "-updatedAt,name".
	DefaultSort string
}
