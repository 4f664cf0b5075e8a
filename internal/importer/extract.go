package importer

import (
	"bufio"
	"regexp"
	"strings"
)

// ContentKind classifies an uploaded file.
type ContentKind int

const (
	// KindUnknown means no recognizable switch-configuration syntax was found.
	KindUnknown ContentKind = iota
	// KindAlias is a file containing only alias stanzas.
	KindAlias
	// KindZone is a file containing zone stanzas.
	KindZone
	// KindTechSupport is a full "show tech-support" style dump, or any file
	// mixing alias and zone stanzas.
	KindTechSupport
)

func (k ContentKind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindZone:
		return "zone"
	case KindTechSupport:
		return "tech-support"
	default:
		return "unknown"
	}
}

// SourceLine is one input line with its 1-based position in the original
// file, preserved through section extraction so parse diagnostics can point
// back at the dump.
type SourceLine struct {
	Number int
	Text   string
}

// Sections is the output of section extraction: alias-related and
// zone-related lines, routed to their respective parsers.
type Sections struct {
	AliasLines []SourceLine
	ZoneLines  []SourceLine
}

var (
	reDeviceAlias   = regexp.MustCompile(`^\s*device-alias\s+name\s+(\S+)\s+pwwn\s+(\S+)\s*$`)
	reFcAliasHeader = regexp.MustCompile(`^\s*fcalias\s+name\s+(\S+)(?:\s+vsan\s+(\d+))?\s*$`)
	reZoneHeader    = regexp.MustCompile(`^\s*zone\s+name\s+(\S+)(?:\s+vsan\s+(\d+))?\s*$`)
	reTechSupport   = regexp.MustCompile(`(?i)show\s+(tech-support|running-config|zoneset|device-alias|fcalias)`)
)

// Classify determines what kind of content a file holds. Files mixing alias
// and zone stanzas are treated like tech-support dumps and go through section
// extraction.
func Classify(text string) ContentKind {
	hasAlias := false
	hasZone := false

	scanner := newLineScanner(text)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case reTechSupport.MatchString(line):
			return KindTechSupport
		case reDeviceAlias.MatchString(line) || reFcAliasHeader.MatchString(line):
			hasAlias = true
		case reZoneHeader.MatchString(line):
			hasZone = true
		}
	}

	switch {
	case hasAlias && hasZone:
		return KindTechSupport
	case hasZone:
		return KindZone
	case hasAlias:
		return KindAlias
	default:
		return KindUnknown
	}
}

// extractMode tracks which block the extractor is currently inside.
type extractMode int

const (
	extractIdle extractMode = iota
	extractFcAlias
	extractZone
)

// ExtractSections splits a multi-section dump into alias lines and zone
// lines. Lines belonging to neither kind of stanza are discarded here, not
// reported: tech-support dumps are mostly unrelated output and only lines
// inside a recognized stanza are the parsers' business.
//
// Routing needs block context because member lines are syntactically ambiguous:
// "member pwwn ..." belongs to the enclosing fcalias or zone block. A block
// ends at a blank line, the next stanza header, or end of input.
func ExtractSections(text string) Sections {
	var out Sections
	mode := extractIdle

	scanner := newLineScanner(text)
	num := 0
	for scanner.Scan() {
		num++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			// Blank line terminates the current block in both parsers.
			switch mode {
			case extractFcAlias:
				out.AliasLines = append(out.AliasLines, SourceLine{Number: num, Text: line})
			case extractZone:
				out.ZoneLines = append(out.ZoneLines, SourceLine{Number: num, Text: line})
			}
			mode = extractIdle
			continue
		}

		switch {
		case reDeviceAlias.MatchString(line):
			out.AliasLines = append(out.AliasLines, SourceLine{Number: num, Text: line})
			mode = extractIdle
		case reFcAliasHeader.MatchString(line):
			out.AliasLines = append(out.AliasLines, SourceLine{Number: num, Text: line})
			mode = extractFcAlias
		case reZoneHeader.MatchString(line):
			out.ZoneLines = append(out.ZoneLines, SourceLine{Number: num, Text: line})
			mode = extractZone
		default:
			switch mode {
			case extractFcAlias:
				out.AliasLines = append(out.AliasLines, SourceLine{Number: num, Text: line})
			case extractZone:
				out.ZoneLines = append(out.ZoneLines, SourceLine{Number: num, Text: line})
			}
		}
	}

	return out
}

// splitLines turns raw text into numbered lines for the parsers.
func splitLines(text string) []SourceLine {
	var lines []SourceLine
	scanner := newLineScanner(text)
	num := 0
	for scanner.Scan() {
		num++
		lines = append(lines, SourceLine{Number: num, Text: scanner.Text()})
	}
	return lines
}

// newLineScanner builds a scanner sized for large tech-support dumps, which
// can contain very long lines.
func newLineScanner(text string) *bufio.Scanner {
	scanner := bufio.NewScanner(strings.NewReader(text))
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}
