package importer

import "context"

// Existence is the result of a batch existence check for one fabric.
type Existence struct {
	WWPNs     map[string]struct{}
	ZoneNames map[string]struct{}
}

// Directory is the read-only collaborator the pipeline consults: the prefix
// rule table, the persisted aliases of a fabric, and a batch existence check.
// The SQLite store implements it; tests supply fakes. All calls are awaited
// to completion before the stage depending on them proceeds, and a failing
// call must never abort the session.
type Directory interface {
	WwpnPrefixRules(ctx context.Context) ([]PrefixRule, error)
	ExistingAliases(ctx context.Context, fabricID int) ([]StoredAlias, error)
	CheckExistence(ctx context.Context, aliasWWPNs, zoneNames []string, fabricID int) (Existence, error)
}
