package data

import (
	"os"
	"path/filepath"
	"testing"

	"intrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefs_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "preferences.yaml")

	prefs, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.True(t, prefs.Equal(model.NewUserPrefs()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "internship_file_path:")
	assert.Contains(t, string(raw), "list_width: 3")
}

func TestPrefs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	want := model.NewUserPrefs()
	want.SetGuiSettings(model.GuiSettings{WindowWidth: 1024, WindowHeight: 768, X: 10, Y: 20, ListWidth: 2})
	want.SetInternshipFilePath("/tmp/mine.db")

	require.NoError(t, SavePrefs(path, want))
	got, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %+v", got)
}

func TestLoadPrefs_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gui: [not, a, map"), 0644))
	_, err := LoadPrefs(path)
	assert.Error(t, err)
}

func TestSavePrefs_Nil(t *testing.T) {
	err := SavePrefs(filepath.Join(t.TempDir(), "p.yaml"), nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}
