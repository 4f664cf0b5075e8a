package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jkoelman/zonewise/internal/wwpn"
)

// aliasParseState names the alias parser's position in the input.
type aliasParseState int

const (
	aliasIdle aliasParseState = iota
	aliasInFcAliasBlock
)

var reFcAliasMember = regexp.MustCompile(`^\s*member\s+pwwn\s+(\S+)\s*$`)

// AliasParser converts device-alias and fcalias stanzas into AliasRecords.
//
// It is an explicit finite-state parser: device-alias lines emit immediately,
// an fcalias header enters a block state that emits one record per member
// line until the block ends (blank line, next header, or end of input).
// Lines matching no known pattern are skipped and reported in the
// diagnostics, never treated as fatal.
type AliasParser struct {
	// FabricID is the target fabric. Zero means no fabric was selected and
	// parsing returns an empty result without error.
	FabricID int
	Defaults ImportDefaults
	// File labels skipped-line diagnostics when parsing multiple uploads.
	File string

	state aliasParseState
	// Current fcalias block.
	blockName    string
	blockVSAN    *int
	blockEmitted int

	records []AliasRecord
	diags   Diagnostics
}

// NewAliasParser creates a parser for one file's alias lines.
func NewAliasParser(fabricID int, defaults ImportDefaults) *AliasParser {
	return &AliasParser{FabricID: fabricID, Defaults: defaults}
}

// ParseText parses raw configuration text.
func (p *AliasParser) ParseText(text string) []AliasRecord {
	return p.ParseLines(splitLines(text))
}

// ParseLines parses pre-extracted alias lines. Records keep their source line
// numbers; Order is sequential within this parser and renumbered by the
// session after files are merged.
func (p *AliasParser) ParseLines(lines []SourceLine) []AliasRecord {
	if p.FabricID <= 0 {
		// Precondition, not a failure: no fabric selected.
		return nil
	}

	p.Feed(lines)
	p.Finish()
	return p.records
}

// Feed consumes a run of lines without finalizing parser state, so callers
// can process large inputs in chunks. Block state carries across calls; no
// record is ever partially constructed at a chunk boundary.
func (p *AliasParser) Feed(lines []SourceLine) {
	for _, line := range lines {
		p.consume(line)
	}
}

// Finish terminates any open block.
func (p *AliasParser) Finish() {
	p.state = aliasIdle
}

// Records returns all records emitted so far.
func (p *AliasParser) Records() []AliasRecord {
	return p.records
}

// Diagnostics returns the skipped-line report accumulated so far.
func (p *AliasParser) Diagnostics() Diagnostics {
	return p.diags
}

func (p *AliasParser) consume(line SourceLine) {
	trimmed := strings.TrimSpace(line.Text)
	if trimmed == "" {
		p.state = aliasIdle
		return
	}

	if m := reDeviceAlias.FindStringSubmatch(line.Text); m != nil {
		p.state = aliasIdle
		p.emit(m[1], m[2], nil, TypeDeviceAlias, line)
		return
	}

	if m := reFcAliasHeader.FindStringSubmatch(line.Text); m != nil {
		p.state = aliasInFcAliasBlock
		p.blockName = m[1]
		p.blockVSAN = nil
		p.blockEmitted = 0
		if m[2] != "" {
			if v, err := strconv.Atoi(m[2]); err == nil {
				p.blockVSAN = &v
			}
		}
		return
	}

	if p.state == aliasInFcAliasBlock {
		if m := reFcAliasMember.FindStringSubmatch(line.Text); m != nil {
			name := p.blockName
			if p.blockEmitted > 0 {
				// Additional ports under one fc-alias get a disambiguated
				// name: the header name plus the last six octets of the WWPN.
				suffix := wwpn.Suffix12(m[1])
				if suffix == "" {
					p.diags.skip(p.File, line.Number, trimmed, "invalid WWPN")
					return
				}
				name = fmt.Sprintf("%s_%s", p.blockName, suffix)
			}
			if p.emit(name, m[1], p.blockVSAN, TypeFcAlias, line) {
				p.blockEmitted++
			}
			return
		}
		p.diags.skip(p.File, line.Number, trimmed, "unrecognized fcalias member line")
		return
	}

	p.diags.skip(p.File, line.Number, trimmed, "unrecognized line")
}

// emit appends one record with the session defaults applied. Returns false
// when the WWPN does not canonicalize.
func (p *AliasParser) emit(name, rawWWPN string, vsan *int, aliasType CiscoAliasType, line SourceLine) bool {
	canon := wwpn.Canonicalize(rawWWPN)
	if canon == "" {
		p.diags.skip(p.File, line.Number, strings.TrimSpace(line.Text), "invalid WWPN")
		return false
	}

	p.records = append(p.records, AliasRecord{
		Name:            name,
		WWPN:            canon,
		VSAN:            vsan,
		FabricID:        p.FabricID,
		Create:          p.Defaults.Create,
		IncludeInZoning: p.Defaults.IncludeInZoning,
		Use:             p.Defaults.Use,
		CiscoAliasType:  aliasType,
		SourceLine:      line.Number,
		Order:           len(p.records),
	})
	return true
}
