package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/recycler/internal/layout"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Default()
	err := cfg.Save()
	require.NoError(t, err)

	// Verify file exists and has correct permissions
	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		ViewportWidth:  120,
		ViewportHeight: 40,
		ItemWidth:      20,
		ItemHeight:     4,
		Spacing:        1,
		SpacingX:       2,
		SpacingY:       1,
		Padding:        Padding{Left: 1, Right: 1, Top: 2, Bottom: 2},
		Axis:           "horizontal",
		Grid:           true,
		Rows:           3,
		Total:          250,
		FullGrid:       true,
		RowDelay:       40 * time.Millisecond,
		ColDelay:       10 * time.Millisecond,
		LabelFormat:    "#%d",
		Theme:          "light",
	}

	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	dir := withHome(t)

	cfgDir := filepath.Join(dir, ".recycler")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("total: 42\naxis: h\n"), 0600)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Total)
	assert.Equal(t, "h", loaded.Axis)
	assert.Equal(t, Default().ItemWidth, loaded.ItemWidth)
	assert.Equal(t, Default().LabelFormat, loaded.LabelFormat)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := withHome(t)

	cfgDir := filepath.Join(dir, ".recycler")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("total: [unclosed\n"), 0600)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadRejectsInvalidGrid(t *testing.T) {
	withHome(t)

	cfg := Default()
	cfg.ItemHeight = 0
	require.NoError(t, cfg.Save())

	_, err := Load()
	assert.ErrorIs(t, err, layout.ErrConfiguration)

	cfg = Default()
	cfg.Total = -5
	require.NoError(t, cfg.Save())

	_, err = Load()
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
}

func TestConfigSpec(t *testing.T) {
	cfg := Default()
	spec, err := cfg.Spec()
	require.NoError(t, err)
	assert.Equal(t, layout.Vertical, spec.Axis)
	assert.Equal(t, layout.Size{W: 80, H: 20}, spec.Viewport)
	assert.Equal(t, layout.Vec2{X: 1}, spec.GridSpacing)
	assert.True(t, spec.Grid)

	plan, err := layout.PlanCapacity(spec, cfg.Total, cfg.FullGrid)
	require.NoError(t, err)
	assert.Equal(t, 5, plan.Cross)
	assert.Equal(t, 6, plan.Fit)
	assert.True(t, plan.Recycling)
}

func TestConfigSpecRejectsUnknownAxis(t *testing.T) {
	cfg := Default()
	cfg.Axis = "diagonal"
	_, err := cfg.Spec()
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".recycler")
	assert.Contains(t, path, "config.yaml")
}
