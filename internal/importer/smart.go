package importer

import (
	"fmt"
	"strings"

	"github.com/jkoelman/zonewise/internal/wwpn"
)

// ResolveSmartTypes groups alias records by canonical WWPN and gives every
// record in a group the same resolved alias type and use.
//
// Type resolution: with AliasTypeOriginal a singleton group keeps its parsed
// type; a group seen as both device-alias and fcalias goes through the
// conflict policy. Any other AliasTypeChoice is applied uniformly.
//
// Use resolution: UseSmart matches the WWPN's leftmost four hex digits
// against the prefix rule table; no match defaults to initiator. Any other
// use is applied uniformly.
//
// Records are annotated in place; SmartDetectionNote explains both decisions.
// This grouped pass is the single canonical algorithm; single-file imports
// run through it as well, so WWPN collisions across files and within a file
// resolve identically.
func ResolveSmartTypes(records []AliasRecord, defaults ImportDefaults, rules []PrefixRule) {
	groups := groupByWWPN(records)
	ruleIndex := indexRules(rules)

	for _, group := range groups {
		aliasType, typeNote := resolveGroupType(records, group, defaults)
		use, useNote := resolveGroupUse(records[group[0]].WWPN, defaults, ruleIndex)

		note := typeNote
		if useNote != "" {
			note = typeNote + "; " + useNote
		}

		for _, i := range group {
			records[i].CiscoAliasType = aliasType
			records[i].Use = use
			records[i].SmartDetectionNote = note
		}
	}
}

// groupByWWPN returns record index groups in first-seen order.
func groupByWWPN(records []AliasRecord) [][]int {
	byWWPN := make(map[string][]int)
	var order []string
	for i, r := range records {
		if _, seen := byWWPN[r.WWPN]; !seen {
			order = append(order, r.WWPN)
		}
		byWWPN[r.WWPN] = append(byWWPN[r.WWPN], i)
	}

	groups := make([][]int, 0, len(order))
	for _, w := range order {
		groups = append(groups, byWWPN[w])
	}
	return groups
}

func indexRules(rules []PrefixRule) map[string]PrefixRule {
	index := make(map[string]PrefixRule, len(rules))
	for _, r := range rules {
		index[strings.ToLower(r.Prefix)] = r
	}
	return index
}

func resolveGroupType(records []AliasRecord, group []int, defaults ImportDefaults) (CiscoAliasType, string) {
	if defaults.AliasType != AliasTypeOriginal {
		forced := CiscoAliasType(defaults.AliasType)
		return forced, fmt.Sprintf("alias type set to %s", forced)
	}

	hasDevice := false
	hasFc := false
	for _, i := range group {
		switch records[i].CiscoAliasType {
		case TypeDeviceAlias:
			hasDevice = true
		case TypeFcAlias:
			hasFc = true
		}
	}

	if !hasDevice || !hasFc {
		original := records[group[0]].CiscoAliasType
		return original, fmt.Sprintf("kept original type %s", original)
	}

	// Same WWPN seen under both naming mechanisms.
	var resolved CiscoAliasType
	switch defaults.ConflictResolution {
	case ConflictForceDeviceAlias:
		resolved = TypeDeviceAlias
	case ConflictForceFcAlias:
		resolved = TypeFcAlias
	case ConflictPreferFcAlias:
		resolved = TypeFcAlias
	case ConflictFirstFound:
		first := group[0]
		for _, i := range group[1:] {
			if records[i].Order < records[first].Order {
				first = i
			}
		}
		resolved = records[first].CiscoAliasType
	default:
		// ConflictPreferDeviceAlias, and the fallback for anything unset.
		resolved = TypeDeviceAlias
	}

	note := fmt.Sprintf("type conflict (device-alias and fcalias): resolved to %s by %s policy",
		resolved, defaults.ConflictResolution)
	return resolved, note
}

func resolveGroupUse(recordWWPN string, defaults ImportDefaults, rules map[string]PrefixRule) (AliasUse, string) {
	if defaults.Use != UseSmart {
		return defaults.Use, ""
	}

	prefix := wwpn.Prefix(recordWWPN)
	if rule, ok := rules[prefix]; ok {
		note := fmt.Sprintf("smart detection: prefix %s matched rule (%s)", prefix, rule.Use)
		if rule.Vendor != "" {
			note = fmt.Sprintf("smart detection: prefix %s matched %s rule (%s)", prefix, rule.Vendor, rule.Use)
		}
		return rule.Use, note
	}

	return UseInit, fmt.Sprintf("smart detection: no prefix rule for %s, defaulting to init", prefix)
}
