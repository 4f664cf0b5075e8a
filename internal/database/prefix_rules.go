package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jkoelman/zonewise/internal/importer"
)

// WwpnPrefixRules retrieves the full prefix rule table, lowercased for
// case-insensitive matching in the smart resolver.
func (db *DB) WwpnPrefixRules(ctx context.Context) ([]importer.PrefixRule, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx,
		"SELECT lower(prefix), wwpn_type, COALESCE(vendor, '') FROM wwpn_prefix_rules ORDER BY prefix")
	if err != nil {
		return nil, fmt.Errorf("failed to query prefix rules: %w", err)
	}
	defer rows.Close()

	var rules []importer.PrefixRule
	for rows.Next() {
		var r importer.PrefixRule
		if err := rows.Scan(&r.Prefix, &r.Use, &r.Vendor); err != nil {
			return nil, fmt.Errorf("failed to scan prefix rule: %w", err)
		}
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prefix rules: %w", err)
	}

	return rules, nil
}

// AddPrefixRule inserts or updates a prefix rule.
func (db *DB) AddPrefixRule(ctx context.Context, rule importer.PrefixRule) error {
	prefix := strings.ToLower(strings.TrimSpace(rule.Prefix))
	if len(prefix) != 4 {
		return fmt.Errorf("prefix must be 4 hex characters, got %q", rule.Prefix)
	}
	if rule.Use != importer.UseInit && rule.Use != importer.UseTarget {
		return fmt.Errorf("wwpn type must be init or target, got %q", rule.Use)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO wwpn_prefix_rules (prefix, wwpn_type, vendor)
		VALUES (?, ?, ?)
		ON CONFLICT(prefix) DO UPDATE SET
			wwpn_type = excluded.wwpn_type,
			vendor = excluded.vendor
	`

	_, err := db.conn.ExecContext(ctx, query, prefix, rule.Use, nullable(rule.Vendor))
	if err != nil {
		return fmt.Errorf("failed to add prefix rule %s: %w", prefix, err)
	}

	return nil
}

// DeletePrefixRule removes a prefix rule.
func (db *DB) DeletePrefixRule(ctx context.Context, prefix string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.ExecContext(ctx,
		"DELETE FROM wwpn_prefix_rules WHERE prefix = ? COLLATE NOCASE", strings.TrimSpace(prefix))
	if err != nil {
		return fmt.Errorf("failed to delete prefix rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("prefix rule not found: %s", prefix)
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
