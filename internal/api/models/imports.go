package models

import "github.com/jkoelman/zonewise/internal/importer"

// ImportRequest is the JSON body of POST /imports. Files carry the raw text
// of each uploaded configuration or tech-support dump. Defaults, when
// present, overrides the server-side import defaults for this session only.
type ImportRequest struct {
	Files    []importer.File          `json:"files" binding:"required"`
	Defaults *importer.ImportDefaults `json:"defaults,omitempty"`
}

// CommitRequest is the JSON body of POST /imports/commit: the reviewed
// records of a previous import session, possibly edited by the user.
type CommitRequest struct {
	SessionID string                 `json:"session_id"`
	Aliases   []importer.AliasRecord `json:"aliases"`
	Zones     []importer.ZoneRecord  `json:"zones"`
}

// CommitResponse reports what a commit wrote.
type CommitResponse struct {
	SessionID      string `json:"session_id,omitempty"`
	AliasesCreated int    `json:"aliases_created"`
	ZonesCreated   int    `json:"zones_created"`
	MembersCreated int    `json:"members_created"`
	Skipped        int    `json:"skipped"`
}
