package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBench(t *testing.T, apps ...string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, SitesDir), 0755))
	for _, app := range apps {
		require.NoError(t, os.MkdirAll(filepath.Join(root, AppsDir, app, app), 0755))
	}
	// t.TempDir may return a symlinked path on some platforms.
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	return resolved
}

func TestFindFromRoot(t *testing.T) {
	root := makeBench(t, "billing")

	ws, err := Find(root)
	require.NoError(t, err)
	assert.Equal(t, root, ws.Root)
}

func TestFindWalksUp(t *testing.T) {
	root := makeBench(t, "billing")
	nested := filepath.Join(root, AppsDir, "billing", "billing")

	ws, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, ws.Root)
}

func TestFindEnvOverride(t *testing.T) {
	root := makeBench(t, "billing")
	t.Setenv("DOPPIO_BENCH", root)

	ws, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, root, ws.Root)
}

func TestFindNotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAtRejectsNonBench(t *testing.T) {
	_, err := At(t.TempDir())
	require.Error(t, err)
}

func TestPathDerivation(t *testing.T) {
	root := makeBench(t, "billing")
	ws, err := At(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "apps", "billing"), ws.AppDir("billing"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "dashboard"), ws.SPADir("billing", "dashboard"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "billing"), ws.PackageDir("billing"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "billing", "hooks.py"), ws.HooksPath("billing"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "billing", "www"), ws.WWWPath("billing"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "package.json"), ws.AppManifestPath("billing"))
	assert.Equal(t, filepath.Join(root, "apps", "billing", "dashboard", "package.json"), ws.SPAManifestPath("billing", "dashboard"))
}

func TestAppExists(t *testing.T) {
	root := makeBench(t, "billing")
	ws, err := At(root)
	require.NoError(t, err)

	assert.True(t, ws.AppExists("billing"))
	assert.False(t, ws.AppExists("crm"))
}

func TestApps(t *testing.T) {
	root := makeBench(t, "billing", "crm")
	ws, err := At(root)
	require.NoError(t, err)

	apps, err := ws.Apps()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"billing", "crm"}, apps)
}
