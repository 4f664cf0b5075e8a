package models

import "github.com/jkoelman/zonewise/internal/importer"

// AliasListResponse wraps the stored aliases of one fabric.
type AliasListResponse struct {
	FabricID int                    `json:"fabric_id"`
	Aliases  []importer.StoredAlias `json:"aliases"`
	Count    int                    `json:"count"`
}

// ZoneSummary is one stored zone with its member count.
type ZoneSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	VSAN        *int   `json:"vsan,omitempty"`
	ZoneType    string `json:"zone_type"`
	MemberCount int    `json:"member_count"`
}

// ZoneListResponse wraps the stored zones of one fabric.
type ZoneListResponse struct {
	FabricID int           `json:"fabric_id"`
	Zones    []ZoneSummary `json:"zones"`
	Count    int           `json:"count"`
}
