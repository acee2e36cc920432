package types

// ScopeMode determines how person visibility is resolved when building alerts.
type ScopeMode string

const (
	// ScopeOwner restricts each person's dates to the subscriber recorded
	// as their owner. Persons without an owner stay visible to everyone.
	ScopeOwner ScopeMode = "owner_scoped"

	// ScopeBroadcast ignores ownership and sends every person's dates to
	// every subscriber. Retained for the legacy global-notification mode;
	// it must be selected explicitly through configuration.
	ScopeBroadcast ScopeMode = "broadcast"
)
