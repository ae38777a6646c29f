package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndPatchScripts(t *testing.T) {
	path := writeManifest(t, `{
  "name": "dashboard",
  "version": "0.0.0",
  "scripts": {
    "dev": "vite"
  },
  "dependencies": {
    "vue": "^3.2.25"
  }
}`)

	pkg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", pkg.Name())
	assert.Equal(t, "vite", pkg.Script("dev"))

	pkg.SetScript("build", "vite build --base=/assets/billing/dashboard/ && yarn copy-html-entry")
	require.NoError(t, pkg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vite", reloaded.Script("dev"))
	assert.Equal(t,
		"vite build --base=/assets/billing/dashboard/ && yarn copy-html-entry",
		reloaded.Script("build"))

	// Untouched fields round-trip.
	var raw map[string]interface{}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	deps := raw["dependencies"].(map[string]interface{})
	assert.Equal(t, "^3.2.25", deps["vue"])
}

func TestSetScriptCreatesMapping(t *testing.T) {
	path := writeManifest(t, `{"name": "billing"}`)

	pkg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, pkg.Script("dev"))

	pkg.SetScript("dev", "cd dashboard && yarn dev")
	assert.Equal(t, "cd dashboard && yarn dev", pkg.Script("dev"))
}

func TestEncodeUsesTwoSpaceIndent(t *testing.T) {
	path := writeManifest(t, `{"name": "x", "scripts": {"a": "b"}}`)

	pkg, err := Load(path)
	require.NoError(t, err)

	out, err := pkg.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  \"name\"")
}

func TestEncodeDoesNotEscapeShellStrings(t *testing.T) {
	path := writeManifest(t, `{"name": "x"}`)

	pkg, err := Load(path)
	require.NoError(t, err)
	pkg.SetScript("build", "vite build && yarn copy-html-entry")

	out, err := pkg.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "vite build && yarn copy-html-entry")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeManifest(t, "{not json")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateAcceptsGeneratedManifest(t *testing.T) {
	path := writeManifest(t, `{
  "name": "dashboard",
  "version": "0.0.0",
  "scripts": {"build": "vite build"}
}`)

	pkg, err := Load(path)
	require.NoError(t, err)

	result, err := pkg.Validate()
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidateRejectsNonStringScript(t *testing.T) {
	path := writeManifest(t, `{"name": "x", "scripts": {"build": 42}}`)

	pkg, err := Load(path)
	require.NoError(t, err)

	result, err := pkg.Validate()
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)
}

func TestValidateRejectsMissingName(t *testing.T) {
	path := writeManifest(t, `{"scripts": {}}`)

	pkg, err := Load(path)
	require.NoError(t, err)

	result, err := pkg.Validate()
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
