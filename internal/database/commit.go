package database

import (
	"context"
	"fmt"

	"github.com/jkoelman/zonewise/internal/importer"
)

// CommitResult summarizes what one commit transaction persisted.
type CommitResult struct {
	AliasesCreated int `json:"aliases_created"`
	ZonesCreated   int `json:"zones_created"`
	MembersCreated int `json:"members_created"`
	Skipped        int `json:"skipped"`
}

// CommitImport persists a reviewed import result in one transaction.
//
// Records flagged Create=false or already existing in the database are
// skipped, not errors: the review UI sends the full record set back and the
// flags carry the user's decisions. Zone members are stored as reviewed,
// including direct-WWPN members, which carry no alias id.
func (db *DB) CommitImport(ctx context.Context, fabricID int, aliases []importer.AliasRecord, zones []importer.ZoneRecord) (CommitResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result CommitResult

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	aliasStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO aliases (fabric_id, name, wwpn, vsan, port_use, alias_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare alias insert: %w", err)
	}
	defer aliasStmt.Close()

	// Alias ids assigned in this transaction, so zone members created in the
	// same commit can reference freshly persisted aliases.
	newAliasIDs := make(map[string]int64, len(aliases))

	for _, a := range aliases {
		if !a.Create || a.ExistsInDatabase {
			result.Skipped++
			continue
		}
		res, err := aliasStmt.ExecContext(ctx, fabricID, a.Name, a.WWPN, a.VSAN, a.Use, a.CiscoAliasType)
		if err != nil {
			return result, fmt.Errorf("failed to insert alias %s: %w", a.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return result, fmt.Errorf("failed to get alias id: %w", err)
		}
		newAliasIDs[a.Name] = id
		result.AliasesCreated++
	}

	zoneStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO zones (fabric_id, name, vsan, zone_type)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare zone insert: %w", err)
	}
	defer zoneStmt.Close()

	memberStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO zone_members (zone_id, kind, name, wwpn, alias_id, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare member insert: %w", err)
	}
	defer memberStmt.Close()

	for _, z := range zones {
		if !z.Create || z.ExistsInDatabase {
			result.Skipped++
			continue
		}
		res, err := zoneStmt.ExecContext(ctx, fabricID, z.Name, z.VSAN, z.ZoneType)
		if err != nil {
			return result, fmt.Errorf("failed to insert zone %s: %w", z.Name, err)
		}
		zoneID, err := res.LastInsertId()
		if err != nil {
			return result, fmt.Errorf("failed to get zone id: %w", err)
		}
		result.ZonesCreated++

		for pos, m := range z.ResolvedMembers {
			aliasID := memberAliasID(m, newAliasIDs)
			if _, err := memberStmt.ExecContext(ctx, zoneID, m.Kind, m.Name, nullable(m.WWPN), aliasID, pos); err != nil {
				return result, fmt.Errorf("failed to insert member of zone %s: %w", z.Name, err)
			}
			result.MembersCreated++
		}
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit import: %w", err)
	}

	return result, nil
}

func memberAliasID(m importer.ResolvedMember, newIDs map[string]int64) any {
	if m.AliasID != 0 {
		return m.AliasID
	}
	name := m.Name
	if m.AliasName != "" {
		name = m.AliasName
	}
	if id, ok := newIDs[name]; ok {
		return id
	}
	return nil
}
