package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// PackageJSON is a loaded npm package manifest. Fields not touched by the
// generator round-trip through the generic map untouched.
type PackageJSON struct {
	path string
	data map[string]interface{}
}

// Load reads and parses a package.json file.
func Load(path string) (*PackageJSON, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &PackageJSON{path: path, data: data}, nil
}

// Path returns the file path this manifest was loaded from.
func (p *PackageJSON) Path() string { return p.path }

// Name returns the package name, or empty if unset.
func (p *PackageJSON) Name() string {
	name, _ := p.data["name"].(string)
	return name
}

// SetScript adds or overwrites an entry in the scripts mapping, creating
// the mapping when absent.
func (p *PackageJSON) SetScript(name, command string) {
	scripts, ok := p.data["scripts"].(map[string]interface{})
	if !ok {
		scripts = make(map[string]interface{})
		p.data["scripts"] = scripts
	}
	scripts[name] = command
}

// Script returns a script command by name, or empty if unset.
func (p *PackageJSON) Script(name string) string {
	scripts, ok := p.data["scripts"].(map[string]interface{})
	if !ok {
		return ""
	}
	cmd, _ := scripts[name].(string)
	return cmd
}

// Encode renders the manifest with two-space indentation, matching what
// npm itself writes.
func (p *PackageJSON) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p.data); err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return buf.Bytes(), nil
}

// Save atomically rewrites the manifest at its original path.
func (p *PackageJSON) Save() error {
	out, err := p.Encode()
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(p.path)
	if err != nil {
		return fmt.Errorf("creating pending manifest file: %w", err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(out); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", p.path, err)
	}
	return nil
}
