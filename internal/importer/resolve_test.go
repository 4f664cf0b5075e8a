package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneWith(members ...ZoneMemberRef) ZoneRecord {
	return ZoneRecord{Name: "Z1", FabricID: 1, Members: members}
}

func TestResolveZoneMembers_ImportingPool(t *testing.T) {
	zones := []ZoneRecord{zoneWith(ZoneMemberRef{Kind: MemberDeviceAlias, Name: "HOST1"})}
	importing := []AliasRecord{hostAlias("HOST1", "10:00:00:00:c9:7b:5c:01")}

	ResolveZoneMembers(zones, importing, nil, testDefaults())

	z := zones[0]
	require.Len(t, z.ResolvedMembers, 1)
	m := z.ResolvedMembers[0]
	assert.Equal(t, "10:00:00:00:c9:7b:5c:01", m.WWPN)
	assert.Equal(t, SourceImporting, m.Source)
	assert.Zero(t, m.AliasID)
	assert.Equal(t, MemberStats{Total: 1, Resolved: 1, Unresolved: 0}, z.Stats)
}

func TestResolveZoneMembers_DatabasePool(t *testing.T) {
	zones := []ZoneRecord{zoneWith(ZoneMemberRef{Kind: MemberFcAlias, Name: "STOR1"})}
	stored := []StoredAlias{{ID: 42, Name: "STOR1", WWPN: "50:06:01:60:3b:a0:1f:4d"}}

	ResolveZoneMembers(zones, nil, stored, testDefaults())

	require.Len(t, zones[0].ResolvedMembers, 1)
	m := zones[0].ResolvedMembers[0]
	assert.Equal(t, SourceDatabase, m.Source)
	assert.Equal(t, int64(42), m.AliasID)
	assert.Equal(t, "50:06:01:60:3b:a0:1f:4d", m.WWPN)
}

func TestResolveZoneMembers_ImportingWinsNameCollision(t *testing.T) {
	zones := []ZoneRecord{zoneWith(ZoneMemberRef{Kind: MemberDeviceAlias, Name: "HOST1"})}
	importing := []AliasRecord{hostAlias("HOST1", "10:00:00:00:c9:7b:5c:01")}
	stored := []StoredAlias{{ID: 7, Name: "HOST1", WWPN: "10:00:00:00:c9:7b:5c:99"}}

	ResolveZoneMembers(zones, importing, stored, testDefaults())

	require.Len(t, zones[0].ResolvedMembers, 1)
	m := zones[0].ResolvedMembers[0]
	assert.Equal(t, SourceImporting, m.Source)
	assert.Equal(t, "10:00:00:00:c9:7b:5c:01", m.WWPN)
}

func TestResolveZoneMembers_PwwnMatchesAliasByValue(t *testing.T) {
	zones := []ZoneRecord{zoneWith(ZoneMemberRef{Kind: MemberPWWN, Name: "50:06:01:60:3b:a0:1f:4d"})}
	stored := []StoredAlias{{ID: 9, Name: "STOR1", WWPN: "50:06:01:60:3b:a0:1f:4d"}}

	ResolveZoneMembers(zones, nil, stored, testDefaults())

	require.Len(t, zones[0].ResolvedMembers, 1)
	m := zones[0].ResolvedMembers[0]
	assert.Equal(t, SourceDatabase, m.Source)
	assert.Equal(t, "STOR1", m.AliasName)
	assert.Equal(t, int64(9), m.AliasID)
}

func TestResolveZoneMembers_DirectMemberPolicy(t *testing.T) {
	ref := ZoneMemberRef{Kind: MemberPWWN, Name: "21:00:00:24:ff:45:a7:b2"}

	t.Run("allowed", func(t *testing.T) {
		zones := []ZoneRecord{zoneWith(ref)}
		defaults := testDefaults()
		defaults.AllowDirectMembers = true
		ResolveZoneMembers(zones, nil, nil, defaults)

		require.Len(t, zones[0].ResolvedMembers, 1)
		m := zones[0].ResolvedMembers[0]
		assert.Equal(t, SourceDirect, m.Source)
		assert.Equal(t, "21:00:00:24:ff:45:a7:b2", m.WWPN)
		assert.Empty(t, m.AliasName)
	})

	t.Run("disallowed", func(t *testing.T) {
		zones := []ZoneRecord{zoneWith(ref)}
		defaults := testDefaults()
		defaults.AllowDirectMembers = false
		ResolveZoneMembers(zones, nil, nil, defaults)

		require.Len(t, zones[0].UnresolvedMembers, 1)
		assert.Equal(t, ReasonWWPNNotFound, zones[0].UnresolvedMembers[0].Reason)
	})
}

func TestResolveZoneMembers_UnknownAlwaysUnresolved(t *testing.T) {
	zones := []ZoneRecord{zoneWith(ZoneMemberRef{Kind: MemberUnknown, Name: "foobar X1"})}
	ResolveZoneMembers(zones, nil, nil, testDefaults())

	require.Len(t, zones[0].UnresolvedMembers, 1)
	assert.Equal(t, ReasonUnknownMember, zones[0].UnresolvedMembers[0].Reason)
}

func TestResolveZoneMembers_StatsInvariant(t *testing.T) {
	zones := []ZoneRecord{zoneWith(
		ZoneMemberRef{Kind: MemberDeviceAlias, Name: "HOST1"},
		ZoneMemberRef{Kind: MemberFcAlias, Name: "MISSING"},
		ZoneMemberRef{Kind: MemberPWWN, Name: "21:00:00:24:ff:45:a7:b2"},
		ZoneMemberRef{Kind: MemberUnknown, Name: "junk"},
	)}
	importing := []AliasRecord{hostAlias("HOST1", "10:00:00:00:c9:7b:5c:01")}

	ResolveZoneMembers(zones, importing, nil, testDefaults())

	z := zones[0]
	assert.Equal(t, len(z.Members), len(z.ResolvedMembers)+len(z.UnresolvedMembers))
	assert.Equal(t, MemberStats{Total: 4, Resolved: 2, Unresolved: 2}, z.Stats)
}

func TestResolveZoneMembers_ReplacesEagerResolution(t *testing.T) {
	// The parser left this member unresolved; the final pass with the
	// database pool resolves it.
	zones := []ZoneRecord{{
		Name:     "Z1",
		FabricID: 1,
		Members:  []ZoneMemberRef{{Kind: MemberDeviceAlias, Name: "STOR1"}},
		UnresolvedMembers: []ResolvedMember{{
			ZoneMemberRef: ZoneMemberRef{Kind: MemberDeviceAlias, Name: "STOR1"},
			Reason:        ReasonAliasNotFound,
		}},
		Stats: MemberStats{Total: 1, Unresolved: 1},
	}}
	stored := []StoredAlias{{ID: 1, Name: "STOR1", WWPN: "50:06:01:60:3b:a0:1f:4d"}}

	ResolveZoneMembers(zones, nil, stored, testDefaults())

	assert.Empty(t, zones[0].UnresolvedMembers)
	require.Len(t, zones[0].ResolvedMembers, 1)
	assert.Equal(t, MemberStats{Total: 1, Resolved: 1, Unresolved: 0}, zones[0].Stats)
}
