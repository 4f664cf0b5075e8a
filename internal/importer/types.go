// Package importer implements the bulk import reconciliation pipeline for
// Fibre Channel switch configurations.
//
// Raw Cisco-style configuration text (device-alias, fcalias and zone stanzas,
// including full "show tech-support" dumps) is turned into a validated,
// deduplicated, cross-referenced set of alias and zone records ready for
// human review. The pipeline runs strictly sequentially per import session:
//
//  1. Section extraction (extract.go)
//  2. Alias line parsing (alias_parser.go)
//  3. Zone line parsing (zone_parser.go)
//  4. Smart type resolution (smart.go)
//  5. Deduplication (dedup.go)
//  6. Existence enrichment (enrich.go)
//  7. Member resolution (resolve.go)
//
// Each session owns its own in-memory record set. Collaborator failures are
// never fatal: stages degrade to conservative defaults and surface warnings.
package importer

// AliasUse classifies how a port is used.
type AliasUse string

const (
	UseInit   AliasUse = "init"
	UseTarget AliasUse = "target"
	// UseSmart requests initiator/target inference from the WWPN vendor prefix.
	UseSmart AliasUse = "smart"
)

// CiscoAliasType distinguishes the two Cisco naming mechanisms.
type CiscoAliasType string

const (
	TypeDeviceAlias CiscoAliasType = "device-alias"
	TypeFcAlias     CiscoAliasType = "fcalias"
)

// AliasTypeChoice selects which alias type imported records end up with.
type AliasTypeChoice string

const (
	// AliasTypeOriginal keeps whatever type the source text used.
	AliasTypeOriginal    AliasTypeChoice = "original"
	AliasTypeDeviceAlias AliasTypeChoice = "device-alias"
	AliasTypeFcAlias     AliasTypeChoice = "fcalias"
)

// ConflictResolution decides the alias type when one WWPN appears both as a
// device-alias and as an fcalias and AliasTypeOriginal is in effect.
type ConflictResolution string

const (
	ConflictForceDeviceAlias  ConflictResolution = "device-alias"
	ConflictForceFcAlias      ConflictResolution = "fcalias"
	ConflictPreferDeviceAlias ConflictResolution = "prefer-device-alias"
	ConflictPreferFcAlias     ConflictResolution = "prefer-fcalias"
	ConflictFirstFound        ConflictResolution = "first-found"
)

// MemberKind is the syntactic kind of a zone member reference.
type MemberKind string

const (
	MemberDeviceAlias MemberKind = "device-alias"
	MemberFcAlias     MemberKind = "fcalias"
	MemberPWWN        MemberKind = "pwwn"
	MemberUnknown     MemberKind = "unknown"
)

// MemberSource records which pool satisfied a zone member reference.
type MemberSource string

const (
	// SourceImporting means the member matched an alias parsed in this session.
	SourceImporting MemberSource = "importing"
	// SourceDatabase means the member matched an already-persisted alias.
	SourceDatabase MemberSource = "database"
	// SourceDirect means the member is a bare WWPN with no backing alias.
	SourceDirect MemberSource = "direct"
)

// ZoneType is the zone flavor. Only standard zones are emitted by the parser;
// the type exists so smart zones can be represented later without a model
// change.
type ZoneType string

const ZoneStandard ZoneType = "standard"

// AliasRecord is one alias parsed from switch configuration text. Records are
// created by the alias parser and annotated in place by later pipeline stages.
type AliasRecord struct {
	Name string `json:"name"`
	// WWPN is always in canonical colon-hex form (wwpn.Canonicalize).
	WWPN            string         `json:"wwpn"`
	VSAN            *int           `json:"vsan,omitempty"`
	FabricID        int            `json:"fabric_id"`
	Create          bool           `json:"create"`
	IncludeInZoning bool           `json:"include_in_zoning"`
	Use             AliasUse       `json:"use"`
	CiscoAliasType  CiscoAliasType `json:"cisco_alias_type"`
	// SmartDetectionNote explains the type/use decision made by the smart
	// resolver, for display next to the record in the review UI.
	SmartDetectionNote string `json:"smart_detection_note,omitempty"`
	ExistsInDatabase   bool   `json:"exists_in_database"`
	SourceLine         int    `json:"source_line"`
	// Order is the stable input ordering across all files of the session,
	// used as the tie-break for first-found conflict resolution and dedup.
	Order int `json:"order"`
}

// ZoneMemberRef is a member reference exactly as it appeared in the source.
type ZoneMemberRef struct {
	Kind MemberKind `json:"kind"`
	// Name holds the alias name, or the canonical WWPN for pwwn members.
	Name string `json:"name"`
}

// ResolvedMember is a member reference after resolution against the combined
// alias pool.
type ResolvedMember struct {
	ZoneMemberRef
	Resolved bool         `json:"resolved"`
	WWPN     string       `json:"wwpn,omitempty"`
	Source   MemberSource `json:"source,omitempty"`
	// AliasID is the persisted alias id when Source is "database", 0 otherwise.
	AliasID int64 `json:"alias_id,omitempty"`
	// AliasName is the name of the alias that satisfied a pwwn member.
	AliasName string `json:"alias_name,omitempty"`
	// Reason is set when the member is unresolved.
	Reason string `json:"reason,omitempty"`
}

// MemberStats summarizes member resolution for one zone.
// Resolved+Unresolved always equals Total.
type MemberStats struct {
	Total      int `json:"total"`
	Resolved   int `json:"resolved"`
	Unresolved int `json:"unresolved"`
}

// ZoneRecord is one zone parsed from switch configuration text.
type ZoneRecord struct {
	Name              string           `json:"name"`
	VSAN              *int             `json:"vsan,omitempty"`
	ZoneType          ZoneType         `json:"zone_type"`
	Members           []ZoneMemberRef  `json:"members"`
	ResolvedMembers   []ResolvedMember `json:"resolved_members"`
	UnresolvedMembers []ResolvedMember `json:"unresolved_members"`
	Create            bool             `json:"create"`
	Exists            bool             `json:"exists"`
	FabricID          int              `json:"fabric_id"`
	ExistsInDatabase  bool             `json:"exists_in_database"`
	Stats             MemberStats      `json:"member_resolution_stats"`
}

// PrefixRule maps a 4-hex-digit WWPN vendor prefix to a port use.
type PrefixRule struct {
	Prefix string   `json:"prefix"`
	Use    AliasUse `json:"wwpn_type"` // init or target
	Vendor string   `json:"vendor,omitempty"`
}

// StoredAlias is an already-persisted alias, fetched for member resolution.
type StoredAlias struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	WWPN string `json:"wwpn"`
}

// ImportDefaults carries the user's choices for one import session.
type ImportDefaults struct {
	AliasType          AliasTypeChoice    `json:"alias_type"`
	Use                AliasUse           `json:"use"`
	Create             bool               `json:"create"`
	IncludeInZoning    bool               `json:"include_in_zoning"`
	ConflictResolution ConflictResolution `json:"conflict_resolution"`
	// AllowDirectMembers controls the fate of a pwwn zone member that matches
	// no alias in either pool: true resolves it as a direct-WWPN member,
	// false marks it unresolved.
	AllowDirectMembers bool `json:"allow_direct_members"`
}

// DefaultImportDefaults returns the defaults applied when the caller does not
// specify any.
func DefaultImportDefaults() ImportDefaults {
	return ImportDefaults{
		AliasType:          AliasTypeOriginal,
		Use:                UseSmart,
		Create:             true,
		IncludeInZoning:    true,
		ConflictResolution: ConflictPreferDeviceAlias,
		AllowDirectMembers: true,
	}
}
