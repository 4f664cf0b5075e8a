package importer

import "fmt"

// SkippedLine records one input line the parsers could not interpret.
// Unrecognized lines never abort a parse; the report lets operators audit
// what was ignored.
type SkippedLine struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Diagnostics is the audit trail of one import session: everything the
// pipeline dropped, skipped or worked around, as structured data rather than
// log lines.
type Diagnostics struct {
	SkippedLines []SkippedLine `json:"skipped_lines,omitempty"`
	// DuplicateAliases lists the WWPNs of alias records dropped by dedup.
	DuplicateAliases []string `json:"duplicate_aliases,omitempty"`
	// DuplicateZones lists the names of zone records dropped by dedup.
	DuplicateZones []string `json:"duplicate_zones,omitempty"`
	// DroppedEmptyZones lists zones discarded because they had no members.
	DroppedEmptyZones []string `json:"dropped_empty_zones,omitempty"`
	// Warnings carries non-fatal collaborator failures and other conditions
	// that left the result set smaller or less certain than expected.
	Warnings []string `json:"warnings,omitempty"`
}

func (d *Diagnostics) skip(file string, line int, text, reason string) {
	d.SkippedLines = append(d.SkippedLines, SkippedLine{File: file, Line: line, Text: text, Reason: reason})
}

// Warnf appends a formatted warning.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Merge folds another diagnostics report into d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.SkippedLines = append(d.SkippedLines, other.SkippedLines...)
	d.DuplicateAliases = append(d.DuplicateAliases, other.DuplicateAliases...)
	d.DuplicateZones = append(d.DuplicateZones, other.DuplicateZones...)
	d.DroppedEmptyZones = append(d.DroppedEmptyZones, other.DroppedEmptyZones...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}
