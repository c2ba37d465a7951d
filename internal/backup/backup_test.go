package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pleno.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestManager_CreateAndListJSON(t *testing.T) {
	path := newJSONDataFile(t, `{"version":1}`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)
	assert.FileExists(t, backupPath)
	assert.Equal(t, ".json", filepath.Ext(backupPath))

	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, backupPath, backups[0].Path)
	assert.Greater(t, backups[0].Size, int64(0))
}

func TestManager_CreateMissingDataFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	_, err := mgr.CreateBackup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestManager_ListEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "pleno.json"))
	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestManager_ListIgnoresForeignFiles(t *testing.T) {
	path := newJSONDataFile(t, `{"version":1}`)
	mgr := NewManager(path)

	_, err := mgr.CreateBackup()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(mgr.GetBackupDir(), "pleno-garbage.json"), []byte("x"), 0600))

	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestManager_RestoreJSON(t *testing.T) {
	path := newJSONDataFile(t, `{"version":1,"daily_message":"original"}`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	require.NoError(t, err)

	// Change the live file, then restore the backup over it.
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"daily_message":"changed"}`), 0600))
	require.NoError(t, mgr.RestoreBackup(backupPath))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "original")

	// The pre-restore snapshot of the changed file exists too.
	backups, err := mgr.ListBackups()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(backups), 2)
}

func TestManager_RestoreRejectsInvalidBackup(t *testing.T) {
	path := newJSONDataFile(t, `{"version":1}`)
	mgr := NewManager(path)

	badBackup := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badBackup, []byte("{not json"), 0600))

	err := mgr.RestoreBackup(badBackup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted or invalid")
}

func TestManager_RestoreMissingBackup(t *testing.T) {
	path := newJSONDataFile(t, `{"version":1}`)
	mgr := NewManager(path)

	err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseBackupTimestamp(t *testing.T) {
	tests := []struct {
		stem string
		ok   bool
	}{
		{"20260901-1030", true},
		{"20260901-103045", true},
		{"20260901-1030-2", true},
		{"garbage", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := parseBackupTimestamp(tt.stem); ok != tt.ok {
			t.Errorf("parseBackupTimestamp(%q) ok = %v, want %v", tt.stem, ok, tt.ok)
		}
	}
}
