package database

import (
	"context"
	"fmt"
)

// StoredZone is a persisted zone with its member count.
type StoredZone struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	VSAN        *int   `json:"vsan,omitempty"`
	ZoneType    string `json:"zone_type"`
	MemberCount int    `json:"member_count"`
}

// ZonesForFabric retrieves all persisted zones for a fabric.
func (db *DB) ZonesForFabric(ctx context.Context, fabricID int) ([]StoredZone, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	query := `
		SELECT z.id, z.name, z.vsan, z.zone_type, COUNT(m.id)
		FROM zones z
		LEFT JOIN zone_members m ON m.zone_id = z.id
		WHERE z.fabric_id = ?
		GROUP BY z.id
		ORDER BY z.name
	`

	rows, err := db.conn.QueryContext(ctx, query, fabricID)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []StoredZone
	for rows.Next() {
		var z StoredZone
		if err := rows.Scan(&z.ID, &z.Name, &z.VSAN, &z.ZoneType, &z.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}

	return zones, nil
}
