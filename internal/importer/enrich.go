package importer

import "context"

// MarkExisting cross-references the deduplicated record set against persisted
// data and sets ExistsInDatabase on any alias whose WWPN, or zone whose name,
// already exists for the fabric. Existing entities stay in the result set:
// the review UI shows them as non-importable and the member resolver still
// uses them as resolution targets.
//
// A failed existence check degrades to "nothing pre-exists" with a warning.
func MarkExisting(ctx context.Context, dir Directory, aliases []AliasRecord, zones []ZoneRecord, fabricID int, diags *Diagnostics) {
	if len(aliases) == 0 && len(zones) == 0 {
		return
	}

	wwpns := make([]string, 0, len(aliases))
	for _, a := range aliases {
		wwpns = append(wwpns, a.WWPN)
	}
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.Name)
	}

	existence, err := dir.CheckExistence(ctx, wwpns, names, fabricID)
	if err != nil {
		diags.Warnf("existence check failed, treating all records as new: %v", err)
		return
	}

	for i := range aliases {
		if _, ok := existence.WWPNs[aliases[i].WWPN]; ok {
			aliases[i].ExistsInDatabase = true
		}
	}
	for i := range zones {
		if _, ok := existence.ZoneNames[zones[i].Name]; ok {
			zones[i].ExistsInDatabase = true
			zones[i].Exists = true
		}
	}
}
