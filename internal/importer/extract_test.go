package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const techSupportDump = `` + "`show tech-support details`" + `

Software
  system:    version 8.4(2c)

device-alias name HOST1 pwwn 10:00:00:00:c9:7b:5c:01
device-alias name HOST2 pwwn 10:00:00:00:c9:7b:5c:02

fcalias name GRP1 vsan 10
  member pwwn 21:00:00:24:ff:45:a7:b2

interface fc1/1
  switchport rate-mode dedicated

zone name Z1 vsan 10
  member device-alias HOST1
  member pwwn 21:00:00:24:ff:45:a7:b2
`

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ContentKind
	}{
		{"alias only", "device-alias name H pwwn 10:00:00:00:c9:7b:5c:01\n", KindAlias},
		{"fcalias only", "fcalias name G vsan 1\n  member pwwn 21:00:00:24:ff:45:a7:b2\n", KindAlias},
		{"zone only", "zone name Z1 vsan 5\n  member pwwn 21:00:00:24:ff:45:a7:b2\n", KindZone},
		{"tech support marker", techSupportDump, KindTechSupport},
		{"mixed alias and zone", "device-alias name H pwwn 10:00:00:00:c9:7b:5c:01\nzone name Z1\n", KindTechSupport},
		{"nothing recognizable", "hello\nworld\n", KindUnknown},
		{"empty", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestExtractSections_RoutesMemberLinesByBlock(t *testing.T) {
	sections := ExtractSections(techSupportDump)

	// The fcalias member line must land in the alias stream, the zone member
	// lines in the zone stream, despite sharing the "member pwwn" syntax.
	aliasText := joinLines(sections.AliasLines)
	zoneText := joinLines(sections.ZoneLines)

	assert.Contains(t, aliasText, "device-alias name HOST1")
	assert.Contains(t, aliasText, "fcalias name GRP1")
	assert.Contains(t, aliasText, "member pwwn 21:00:00:24:ff:45:a7:b2")

	assert.Contains(t, zoneText, "zone name Z1")
	assert.Contains(t, zoneText, "member device-alias HOST1")
	assert.Contains(t, zoneText, "member pwwn 21:00:00:24:ff:45:a7:b2")

	// Unrelated dump output is discarded.
	assert.NotContains(t, aliasText, "interface fc1/1")
	assert.NotContains(t, zoneText, "interface fc1/1")
}

func TestExtractSections_PreservesLineNumbers(t *testing.T) {
	sections := ExtractSections("junk\ndevice-alias name H pwwn 10:00:00:00:c9:7b:5c:01\n")
	require.Len(t, sections.AliasLines, 1)
	assert.Equal(t, 2, sections.AliasLines[0].Number)
}

func TestExtractSections_ParsesEndToEnd(t *testing.T) {
	sections := ExtractSections(techSupportDump)

	ap := NewAliasParser(1, testDefaults())
	aliases := ap.ParseLines(sections.AliasLines)
	require.Len(t, aliases, 3)
	assert.Empty(t, ap.Diagnostics().SkippedLines)

	zp := NewZoneParser(1, testDefaults(), aliases)
	zones := zp.ParseLines(sections.ZoneLines)
	require.Len(t, zones, 1)
	assert.Equal(t, MemberStats{Total: 2, Resolved: 2, Unresolved: 0}, zones[0].Stats)
}

func joinLines(lines []SourceLine) string {
	var s string
	for _, l := range lines {
		s += l.Text + "\n"
	}
	return s
}
