package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkoelman/zonewise/internal/api/models"
	"github.com/jkoelman/zonewise/internal/importer"
)

func runImport(t *testing.T, r http.Handler, path, body string) *importer.Result {
	t.Helper()
	w := performRequest(r, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result importer.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return &result
}

func TestRunImport_DeviceAliases(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"aliases.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\ndevice-alias name ARRAY_B pwwn 50:06:01:60:ba:70:2d:e4\n"}]}`
	result := runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, 1, result.FabricID)
	require.Len(t, result.Aliases, 2)

	assert.Equal(t, "HOST_A", result.Aliases[0].Name)
	assert.Equal(t, "10:00:00:00:c9:7b:5c:01", result.Aliases[0].WWPN)
	assert.Equal(t, importer.UseInit, result.Aliases[0].Use, "seeded 1000 prefix rule marks it as initiator")

	assert.Equal(t, "ARRAY_B", result.Aliases[1].Name)
	assert.Equal(t, importer.UseTarget, result.Aliases[1].Use, "seeded 5006 prefix rule marks it as target")

	assert.False(t, result.Aliases[0].ExistsInDatabase)
}

func TestRunImport_ZonesResolveAgainstUpload(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"fabric.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\nzone name Z1 vsan 10\n  member device-alias HOST_A\n"}]}`
	result := runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	require.Len(t, result.Zones, 1)
	assert.Equal(t, "Z1", result.Zones[0].Name)
	assert.Equal(t, 1, result.Zones[0].Stats.Resolved)
	assert.Equal(t, 0, result.Zones[0].Stats.Unresolved)
}

func TestRunImport_MissingFabricID(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"a.txt","content":"x"}]}`
	w := performRequest(r, http.MethodPost, "/api/v1/imports", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/v1/imports?fabric_id=0", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/v1/imports?fabric_id=abc", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunImport_NoFiles(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/v1/imports?fabric_id=1", `{"files":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunImport_DefaultsOverride(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{
		"files":[{"name":"a.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\n"}],
		"defaults":{"alias_type":"original","use":"target","create":true,"include_in_zoning":true,"conflict_resolution":"prefer-device-alias","allow_direct_members":true}
	}`
	result := runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	require.Len(t, result.Aliases, 1)
	assert.Equal(t, importer.UseTarget, result.Aliases[0].Use, "explicit use skips smart detection")
}

func TestCommitImport_PersistsRecords(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"fabric.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\nzone name Z1\n  member device-alias HOST_A\n"}]}`
	result := runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	commitBody, err := json.Marshal(models.CommitRequest{
		SessionID: result.SessionID,
		Aliases:   result.Aliases,
		Zones:     result.Zones,
	})
	require.NoError(t, err)

	w := performRequest(r, http.MethodPost, "/api/v1/imports/commit?fabric_id=1", string(commitBody))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var commit models.CommitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &commit))
	assert.Equal(t, 1, commit.AliasesCreated)
	assert.Equal(t, 1, commit.ZonesCreated)
	assert.Equal(t, 1, commit.MembersCreated)

	// The committed alias is now visible in the fabric inventory.
	w = performRequest(r, http.MethodGet, "/api/v1/fabrics/1/aliases", "")
	require.Equal(t, http.StatusOK, w.Code)

	var aliases models.AliasListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliases))
	require.Equal(t, 1, aliases.Count)
	assert.Equal(t, "HOST_A", aliases.Aliases[0].Name)

	w = performRequest(r, http.MethodGet, "/api/v1/fabrics/1/zones", "")
	require.Equal(t, http.StatusOK, w.Code)

	var zones models.ZoneListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &zones))
	require.Equal(t, 1, zones.Count)
	assert.Equal(t, "Z1", zones.Zones[0].Name)
	assert.Equal(t, 1, zones.Zones[0].MemberCount)
}

func TestCommitThenReimport_MarksExisting(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"a.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\n"}]}`
	result := runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	commitBody, err := json.Marshal(models.CommitRequest{Aliases: result.Aliases})
	require.NoError(t, err)
	w := performRequest(r, http.MethodPost, "/api/v1/imports/commit?fabric_id=1", string(commitBody))
	require.Equal(t, http.StatusOK, w.Code)

	again := runImport(t, r, "/api/v1/imports?fabric_id=1", body)
	require.Len(t, again.Aliases, 1)
	assert.True(t, again.Aliases[0].ExistsInDatabase)
}

func TestStats_CountsImports(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"files":[{"name":"a.txt","content":"device-alias name HOST_A pwwn 10:00:00:00:c9:7b:5c:01\n"}]}`
	runImport(t, r, "/api/v1/imports?fabric_id=1", body)

	w := performRequest(r, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.ServerStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.ImportStats.ImportsRun)
	assert.Equal(t, int64(1), stats.ImportStats.AliasesParsed)
	assert.Equal(t, int64(0), stats.ImportStats.Commits)
}

func TestListAliases_BadFabricID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/v1/fabrics/abc/aliases", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet, "/api/v1/fabrics/0/zones", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAliases_EmptyFabric(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/v1/fabrics/42/aliases", "")
	require.Equal(t, http.StatusOK, w.Code)

	var aliases models.AliasListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliases))
	assert.Equal(t, 0, aliases.Count)
}
