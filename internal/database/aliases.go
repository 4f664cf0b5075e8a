package database

import (
	"context"
	"fmt"

	"github.com/jkoelman/zonewise/internal/importer"
	"github.com/jkoelman/zonewise/internal/wwpn"
)

// ExistingAliases retrieves all persisted aliases for a fabric, used as the
// "database" pool during member resolution.
func (db *DB) ExistingAliases(ctx context.Context, fabricID int) ([]importer.StoredAlias, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, name, wwpn FROM aliases WHERE fabric_id = ? ORDER BY name", fabricID)
	if err != nil {
		return nil, fmt.Errorf("failed to query aliases: %w", err)
	}
	defer rows.Close()

	var aliases []importer.StoredAlias
	for rows.Next() {
		var a importer.StoredAlias
		if err := rows.Scan(&a.ID, &a.Name, &a.WWPN); err != nil {
			return nil, fmt.Errorf("failed to scan alias: %w", err)
		}
		aliases = append(aliases, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aliases: %w", err)
	}

	return aliases, nil
}

// InsertAlias persists one alias outside of a commit transaction. The WWPN is
// canonicalized on the way in.
func (db *DB) InsertAlias(ctx context.Context, fabricID int, record importer.AliasRecord) (int64, error) {
	canon := wwpn.Canonicalize(record.WWPN)
	if canon == "" {
		return 0, fmt.Errorf("invalid WWPN: %s", record.WWPN)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO aliases (fabric_id, name, wwpn, vsan, port_use, alias_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.ExecContext(ctx, query,
		fabricID, record.Name, canon, record.VSAN, record.Use, record.CiscoAliasType)
	if err != nil {
		return 0, fmt.Errorf("failed to insert alias %s: %w", record.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get alias id: %w", err)
	}

	return id, nil
}
