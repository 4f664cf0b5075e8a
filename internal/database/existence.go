package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jkoelman/zonewise/internal/importer"
)

// inClauseChunk keeps IN (...) parameter lists well under SQLite's bound
// variable limit.
const inClauseChunk = 500

// CheckExistence reports which of the given alias WWPNs and zone names are
// already persisted for the fabric. One batched query per chunk rather than
// one per record.
func (db *DB) CheckExistence(ctx context.Context, aliasWWPNs, zoneNames []string, fabricID int) (importer.Existence, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	existence := importer.Existence{
		WWPNs:     make(map[string]struct{}),
		ZoneNames: make(map[string]struct{}),
	}

	err := db.collectExisting(ctx, "SELECT wwpn FROM aliases WHERE fabric_id = ? AND wwpn IN", aliasWWPNs, fabricID, existence.WWPNs)
	if err != nil {
		return importer.Existence{}, fmt.Errorf("failed to check alias existence: %w", err)
	}

	err = db.collectExisting(ctx, "SELECT name FROM zones WHERE fabric_id = ? AND name IN", zoneNames, fabricID, existence.ZoneNames)
	if err != nil {
		return importer.Existence{}, fmt.Errorf("failed to check zone existence: %w", err)
	}

	return existence, nil
}

// collectExisting runs queryPrefix with chunked IN lists and records each
// match in the target set.
func (db *DB) collectExisting(ctx context.Context, queryPrefix string, values []string, fabricID int, into map[string]struct{}) error {
	for start := 0; start < len(values); start += inClauseChunk {
		end := start + inClauseChunk
		if end > len(values) {
			end = len(values)
		}
		chunk := values[start:end]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		query := fmt.Sprintf("%s (%s)", queryPrefix, placeholders)

		args := make([]any, 0, len(chunk)+1)
		args = append(args, fabricID)
		for _, v := range chunk {
			args = append(args, v)
		}

		rows, err := db.conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}

		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return err
			}
			into[v] = struct{}{}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()
	}

	return nil
}
