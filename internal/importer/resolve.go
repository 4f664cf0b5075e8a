package importer

import "github.com/jkoelman/zonewise/internal/wwpn"

// Unresolved-member reasons surfaced to the review UI.
const (
	ReasonAliasNotFound = "Alias not found"
	ReasonWWPNNotFound  = "WWPN not found"
	ReasonInvalidWWPN   = "Invalid WWPN"
	ReasonUnknownMember = "Unknown member type"
)

// poolEntry is one alias visible to member resolution.
type poolEntry struct {
	name    string
	wwpn    string
	source  MemberSource
	aliasID int64
}

// aliasPool is the name- and WWPN-searchable union of the importing and
// database alias pools. Importing aliases take precedence on name collision
// and are searched first for WWPN-value matches.
type aliasPool struct {
	byName  map[string]poolEntry
	ordered []poolEntry
}

func newAliasPool(importing []AliasRecord, stored []StoredAlias) *aliasPool {
	p := &aliasPool{byName: make(map[string]poolEntry, len(importing)+len(stored))}

	for _, a := range importing {
		entry := poolEntry{name: a.Name, wwpn: a.WWPN, source: SourceImporting}
		p.byName[a.Name] = entry
		p.ordered = append(p.ordered, entry)
	}
	for _, a := range stored {
		entry := poolEntry{name: a.Name, wwpn: wwpn.Canonicalize(a.WWPN), source: SourceDatabase, aliasID: a.ID}
		if _, taken := p.byName[a.Name]; !taken {
			p.byName[a.Name] = entry
		}
		p.ordered = append(p.ordered, entry)
	}

	return p
}

// resolve resolves one member reference. allowDirect decides whether a pwwn
// member matching no alias stands alone as a direct-WWPN member or is marked
// unresolved.
func (p *aliasPool) resolve(ref ZoneMemberRef, allowDirect bool) ResolvedMember {
	member := ResolvedMember{ZoneMemberRef: ref}

	switch ref.Kind {
	case MemberDeviceAlias, MemberFcAlias:
		entry, ok := p.byName[ref.Name]
		if !ok {
			member.Reason = ReasonAliasNotFound
			return member
		}
		member.Resolved = true
		member.WWPN = entry.wwpn
		member.Source = entry.source
		member.AliasID = entry.aliasID
		return member

	case MemberPWWN:
		canon := wwpn.Canonicalize(ref.Name)
		if canon == "" {
			member.Reason = ReasonInvalidWWPN
			return member
		}
		for _, entry := range p.ordered {
			if entry.wwpn == canon {
				member.Resolved = true
				member.WWPN = canon
				member.Source = entry.source
				member.AliasID = entry.aliasID
				member.AliasName = entry.name
				return member
			}
		}
		if allowDirect {
			member.Resolved = true
			member.WWPN = canon
			member.Source = SourceDirect
			return member
		}
		member.Reason = ReasonWWPNNotFound
		return member

	default:
		member.Reason = ReasonUnknownMember
		return member
	}
}

// ResolveZoneMembers resolves every zone's members against the combined pool
// of newly-parsed and already-persisted aliases. Zones are annotated in
// place: resolved/unresolved member lists are rebuilt and the stats
// recomputed, replacing the parser's eager pass.
func ResolveZoneMembers(zones []ZoneRecord, importing []AliasRecord, stored []StoredAlias, defaults ImportDefaults) {
	pool := newAliasPool(importing, stored)

	for i := range zones {
		zone := &zones[i]
		zone.ResolvedMembers = nil
		zone.UnresolvedMembers = nil

		for _, ref := range zone.Members {
			member := pool.resolve(ref, defaults.AllowDirectMembers)
			if member.Resolved {
				zone.ResolvedMembers = append(zone.ResolvedMembers, member)
			} else {
				zone.UnresolvedMembers = append(zone.UnresolvedMembers, member)
			}
		}

		zone.Stats = MemberStats{
			Total:      len(zone.Members),
			Resolved:   len(zone.ResolvedMembers),
			Unresolved: len(zone.UnresolvedMembers),
		}
	}
}
