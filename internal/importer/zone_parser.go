package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jkoelman/zonewise/internal/wwpn"
)

// zoneParseState names the zone parser's position in the input.
type zoneParseState int

const (
	zoneIdle zoneParseState = iota
	zoneInBlock
)

var (
	reZoneMember = regexp.MustCompile(`^\s*(?:member\s+)?(device-alias|fcalias|pwwn)\s+(\S+)\s*$`)
	reMemberLine = regexp.MustCompile(`^\s*member\s+(.+?)\s*$`)
)

// ZoneParser converts zone stanzas into ZoneRecords.
//
// Like AliasParser it is an explicit finite-state parser: a zone header opens
// a block, member lines accumulate, and the zone is emitted when the block
// ends (blank line, next zone header, or end of input). Members are eagerly
// resolved at parse time against the supplied alias pool; the member resolver
// recomputes resolution later against the combined importing+database pool.
//
// Zones with zero members are dropped and reported in the diagnostics.
type ZoneParser struct {
	// FabricID is the target fabric. Zero means no fabric was selected and
	// parsing returns an empty result without error.
	FabricID int
	Defaults ImportDefaults
	// Aliases is the currently-known alias pool used for eager resolution.
	Aliases []AliasRecord
	// File labels skipped-line diagnostics when parsing multiple uploads.
	File string

	state   zoneParseState
	current *ZoneRecord

	pool    *aliasPool
	records []ZoneRecord
	diags   Diagnostics
}

// NewZoneParser creates a parser for one file's zone lines.
func NewZoneParser(fabricID int, defaults ImportDefaults, aliases []AliasRecord) *ZoneParser {
	return &ZoneParser{FabricID: fabricID, Defaults: defaults, Aliases: aliases}
}

// ParseText parses raw configuration text.
func (p *ZoneParser) ParseText(text string) []ZoneRecord {
	return p.ParseLines(splitLines(text))
}

// ParseLines parses pre-extracted zone lines.
func (p *ZoneParser) ParseLines(lines []SourceLine) []ZoneRecord {
	if p.FabricID <= 0 {
		return nil
	}

	p.Feed(lines)
	p.Finish()
	return p.records
}

// Feed consumes a run of lines without finalizing parser state, so callers
// can process large inputs in chunks. An open zone block carries across
// calls.
func (p *ZoneParser) Feed(lines []SourceLine) {
	if p.pool == nil {
		p.pool = newAliasPool(p.Aliases, nil)
	}
	for _, line := range lines {
		p.consume(line)
	}
}

// Finish emits any zone still open at end of input.
func (p *ZoneParser) Finish() {
	p.finishZone()
}

// Records returns all zones emitted so far.
func (p *ZoneParser) Records() []ZoneRecord {
	return p.records
}

// Diagnostics returns the skipped-line and dropped-zone report.
func (p *ZoneParser) Diagnostics() Diagnostics {
	return p.diags
}

func (p *ZoneParser) consume(line SourceLine) {
	trimmed := strings.TrimSpace(line.Text)
	if trimmed == "" {
		p.finishZone()
		return
	}

	if m := reZoneHeader.FindStringSubmatch(line.Text); m != nil {
		p.finishZone()
		p.state = zoneInBlock
		zone := &ZoneRecord{
			Name:     m[1],
			ZoneType: ZoneStandard,
			Create:   p.Defaults.Create,
			FabricID: p.FabricID,
		}
		if m[2] != "" {
			if v, err := strconv.Atoi(m[2]); err == nil {
				zone.VSAN = &v
			}
		}
		p.current = zone
		return
	}

	if p.state != zoneInBlock {
		p.diags.skip(p.File, line.Number, trimmed, "unrecognized line")
		return
	}

	if m := reZoneMember.FindStringSubmatch(line.Text); m != nil {
		kind := MemberKind(m[1])
		name := m[2]
		if kind == MemberPWWN {
			canon := wwpn.Canonicalize(name)
			if canon == "" {
				p.addMember(ZoneMemberRef{Kind: MemberPWWN, Name: name}, line)
				return
			}
			name = canon
		}
		p.addMember(ZoneMemberRef{Kind: kind, Name: name}, line)
		return
	}

	// A member line with an unrecognized type keyword is carried through as
	// an unknown member rather than skipped, so it shows up in the review
	// UI's unresolved list.
	if m := reMemberLine.FindStringSubmatch(line.Text); m != nil {
		p.addMember(ZoneMemberRef{Kind: MemberUnknown, Name: m[1]}, line)
		return
	}

	p.diags.skip(p.File, line.Number, trimmed, "unrecognized zone member line")
}

func (p *ZoneParser) addMember(ref ZoneMemberRef, line SourceLine) {
	p.current.Members = append(p.current.Members, ref)

	resolved := p.pool.resolve(ref, p.Defaults.AllowDirectMembers)
	if resolved.Resolved {
		p.current.ResolvedMembers = append(p.current.ResolvedMembers, resolved)
	} else {
		p.current.UnresolvedMembers = append(p.current.UnresolvedMembers, resolved)
	}
}

// finishZone emits the accumulated zone, dropping it when it has no members.
func (p *ZoneParser) finishZone() {
	zone := p.current
	p.current = nil
	p.state = zoneIdle
	if zone == nil {
		return
	}

	if len(zone.Members) == 0 {
		p.diags.DroppedEmptyZones = append(p.diags.DroppedEmptyZones, zone.Name)
		return
	}

	zone.Stats = MemberStats{
		Total:      len(zone.Members),
		Resolved:   len(zone.ResolvedMembers),
		Unresolved: len(zone.UnresolvedMembers),
	}
	p.records = append(p.records, *zone)
}
