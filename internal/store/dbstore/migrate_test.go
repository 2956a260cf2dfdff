package dbstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familia-santos/aurora-site/internal/db/models"
)

func writeLegacyFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o640))
}

func TestMigrateSeedsEmptyTables(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	// id 3 carries a stale claimant that the import must drop
	writeLegacyFile(t, dir, "gifts.json", `[
		{"id": 3, "name": "Panela", "claimed": false, "claimedBy": "stale"},
		{"id": 7, "name": "Cafeteira", "claimed": true, "claimedBy": "Maria"}
	]`)
	writeLegacyFile(t, dir, "rsvps.json", `[
		{"name": "Ana", "guests": 2, "createdAt": "2026-03-01T09:00:00.000Z"},
		{"name": "Bruno", "guests": 0, "createdAt": ""}
	]`)
	writeLegacyFile(t, dir, "supporters.json", `[
		{"id": 1, "name": "Carla", "createdAt": "2026-03-01T09:00:00.000Z"}
	]`)

	outcomes := NewMigrator(db, dir).Run()
	require.Len(t, outcomes, 3)

	for _, out := range outcomes {
		assert.Equal(t, OutcomeSeeded, out.Kind, out.Collection)
		assert.NoError(t, out.Err)
	}

	assert.Equal(t, int64(2), outcomes[0].Rows)
	assert.Equal(t, int64(2), outcomes[1].Rows)
	assert.Equal(t, int64(1), outcomes[2].Rows)

	set := New(db)

	gifts, err := set.Gifts.List()
	require.NoError(t, err)
	require.Len(t, gifts, 2)

	// legacy ids survive the import
	assert.Equal(t, uint64(3), gifts[0].ID)
	assert.Equal(t, uint64(7), gifts[1].ID)
	assert.Nil(t, gifts[0].ClaimedBy)
	require.NotNil(t, gifts[1].ClaimedBy)
	assert.Equal(t, "Maria", *gifts[1].ClaimedBy)

	rsvps, err := set.RSVPs.List()
	require.NoError(t, err)
	require.Len(t, rsvps, 2)

	for _, r := range rsvps {
		assert.NotEmpty(t, r.CreatedAt)
	}

	// new rows continue past the imported ids
	created, err := set.Gifts.Create(models.Gift{Name: "Liquidificador"})
	require.NoError(t, err)
	assert.Equal(t, uint64(8), created.ID)
}

func TestMigrateSkipsNonEmptyTables(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	writeLegacyFile(t, dir, "gifts.json", `[{"id": 1, "name": "Panela"}]`)

	m := NewMigrator(db, dir)

	first := m.MigrateGifts()
	require.Equal(t, OutcomeSeeded, first.Kind)

	// the second run must not duplicate anything
	second := m.MigrateGifts()
	assert.Equal(t, OutcomeTableNotEmpty, second.Kind)
	assert.Equal(t, int64(1), second.Rows)

	var count int64
	require.NoError(t, db.Model(&models.Gift{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateNoLegacyFile(t *testing.T) {
	db := setupTestDB(t)

	out := NewMigrator(db, t.TempDir()).MigrateGifts()
	assert.Equal(t, OutcomeNoLegacyFile, out.Kind)
	assert.Zero(t, out.Rows)
	assert.NoError(t, out.Err)
}

func TestMigrateParseError(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	writeLegacyFile(t, dir, "supporters.json", "{broken")

	out := NewMigrator(db, dir).MigrateSupporters()
	assert.Equal(t, OutcomeParseError, out.Kind)
	assert.Error(t, out.Err)

	// a bad file leaves the table untouched
	var count int64
	require.NoError(t, db.Model(&models.Supporter{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOutcomeString(t *testing.T) {
	testCases := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeSeeded, "seeded from legacy file"},
		{OutcomeTableNotEmpty, "table not empty, skipped"},
		{OutcomeNoLegacyFile, "no legacy file"},
		{OutcomeParseError, "legacy file unreadable"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Outcome{Kind: tc.kind}.String())
	}
}
