package importer

// DedupAliases removes duplicate alias records across all files of one
// session. The business key is the canonical WWPN, never the name; the first
// occurrence by input order wins. Dropped WWPNs are reported in the
// diagnostics, not raised as errors.
func DedupAliases(records []AliasRecord, diags *Diagnostics) []AliasRecord {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, r := range records {
		if _, dup := seen[r.WWPN]; dup {
			diags.DuplicateAliases = append(diags.DuplicateAliases, r.WWPN)
			continue
		}
		seen[r.WWPN] = struct{}{}
		out = append(out, r)
	}
	return out
}

// DedupZones removes duplicate zone records by name, first occurrence wins.
func DedupZones(records []ZoneRecord, diags *Diagnostics) []ZoneRecord {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, r := range records {
		if _, dup := seen[r.Name]; dup {
			diags.DuplicateZones = append(diags.DuplicateZones, r.Name)
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r)
	}
	return out
}
