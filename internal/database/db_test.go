package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkoelman/zonewise/internal/importer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "zonewise-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_MigratesAndSeeds(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Health())

	rules, err := db.WwpnPrefixRules(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rules, "seed migration should install default prefix rules")
}

func TestPrefixRules_CRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.AddPrefixRule(ctx, importer.PrefixRule{Prefix: "ABCD", Use: importer.UseTarget, Vendor: "TestVendor"})
	require.NoError(t, err)

	rules, err := db.WwpnPrefixRules(ctx)
	require.NoError(t, err)

	var found *importer.PrefixRule
	for i := range rules {
		if rules[i].Prefix == "abcd" {
			found = &rules[i]
		}
	}
	require.NotNil(t, found, "rule should be stored lowercased")
	assert.Equal(t, importer.UseTarget, found.Use)
	assert.Equal(t, "TestVendor", found.Vendor)

	// Upsert changes the type in place.
	err = db.AddPrefixRule(ctx, importer.PrefixRule{Prefix: "abcd", Use: importer.UseInit})
	require.NoError(t, err)

	require.NoError(t, db.DeletePrefixRule(ctx, "ABCD"))
	assert.Error(t, db.DeletePrefixRule(ctx, "abcd"), "deleting twice should fail")
}

func TestAddPrefixRule_Validation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	assert.Error(t, db.AddPrefixRule(ctx, importer.PrefixRule{Prefix: "21", Use: importer.UseInit}))
	assert.Error(t, db.AddPrefixRule(ctx, importer.PrefixRule{Prefix: "2100", Use: "both"}))
}

func TestInsertAndFetchAliases(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	vsan := 10
	id, err := db.InsertAlias(ctx, 3, importer.AliasRecord{
		Name:           "HOST1",
		WWPN:           "10:00:00:00:C9:7B:5C:01",
		VSAN:           &vsan,
		Use:            importer.UseInit,
		CiscoAliasType: importer.TypeDeviceAlias,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	aliases, err := db.ExistingAliases(ctx, 3)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "HOST1", aliases[0].Name)
	assert.Equal(t, "10:00:00:00:c9:7b:5c:01", aliases[0].WWPN, "WWPN canonicalized on insert")

	// Other fabrics see nothing.
	other, err := db.ExistingAliases(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCheckExistence(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.InsertAlias(ctx, 1, importer.AliasRecord{
		Name: "A", WWPN: "10:00:00:00:c9:7b:5c:01",
		Use: importer.UseInit, CiscoAliasType: importer.TypeDeviceAlias,
	})
	require.NoError(t, err)

	_, err = db.CommitImport(ctx, 1, nil, []importer.ZoneRecord{
		{Name: "Z1", Create: true, ZoneType: importer.ZoneStandard,
			ResolvedMembers: []importer.ResolvedMember{{
				ZoneMemberRef: importer.ZoneMemberRef{Kind: importer.MemberPWWN, Name: "10:00:00:00:c9:7b:5c:01"},
				Resolved:      true, WWPN: "10:00:00:00:c9:7b:5c:01", Source: importer.SourceDirect,
			}}},
	})
	require.NoError(t, err)

	existence, err := db.CheckExistence(ctx,
		[]string{"10:00:00:00:c9:7b:5c:01", "10:00:00:00:c9:7b:5c:02"},
		[]string{"Z1", "Z2"}, 1)
	require.NoError(t, err)

	assert.Contains(t, existence.WWPNs, "10:00:00:00:c9:7b:5c:01")
	assert.NotContains(t, existence.WWPNs, "10:00:00:00:c9:7b:5c:02")
	assert.Contains(t, existence.ZoneNames, "Z1")
	assert.NotContains(t, existence.ZoneNames, "Z2")

	// Scoped to the fabric.
	elsewhere, err := db.CheckExistence(ctx, []string{"10:00:00:00:c9:7b:5c:01"}, []string{"Z1"}, 2)
	require.NoError(t, err)
	assert.Empty(t, elsewhere.WWPNs)
	assert.Empty(t, elsewhere.ZoneNames)
}

func TestCommitImport(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	aliases := []importer.AliasRecord{
		{Name: "HOST1", WWPN: "10:00:00:00:c9:7b:5c:01", Create: true,
			Use: importer.UseInit, CiscoAliasType: importer.TypeDeviceAlias},
		{Name: "SKIPPED", WWPN: "10:00:00:00:c9:7b:5c:02", Create: false,
			Use: importer.UseInit, CiscoAliasType: importer.TypeDeviceAlias},
		{Name: "PREEXISTING", WWPN: "10:00:00:00:c9:7b:5c:03", Create: true, ExistsInDatabase: true,
			Use: importer.UseInit, CiscoAliasType: importer.TypeDeviceAlias},
	}
	zones := []importer.ZoneRecord{
		{Name: "Z1", Create: true, ZoneType: importer.ZoneStandard,
			ResolvedMembers: []importer.ResolvedMember{{
				ZoneMemberRef: importer.ZoneMemberRef{Kind: importer.MemberDeviceAlias, Name: "HOST1"},
				Resolved:      true, WWPN: "10:00:00:00:c9:7b:5c:01", Source: importer.SourceImporting,
			}}},
	}

	result, err := db.CommitImport(ctx, 5, aliases, zones)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AliasesCreated)
	assert.Equal(t, 1, result.ZonesCreated)
	assert.Equal(t, 1, result.MembersCreated)
	assert.Equal(t, 2, result.Skipped)

	stored, err := db.ZonesForFabric(ctx, 5)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Z1", stored[0].Name)
	assert.Equal(t, 1, stored[0].MemberCount)
}
