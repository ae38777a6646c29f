package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doppio-labs/doppio/internal/branding"
)

// Directory and file name constants for the bench layout convention.
const (
	AppsDir   = "apps"
	SitesDir  = "sites"
	WWWDir    = "www"
	HooksFile = "hooks.py"
)

// ErrNotFound is returned when no bench root can be located.
var ErrNotFound = fmt.Errorf("no bench workspace found (expected a directory containing %s/ and %s/)", AppsDir, SitesDir)

// Workspace is a resolved bench root. All paths derive from Root.
type Workspace struct {
	Root string
}

// Find locates the bench workspace root. It checks the DOPPIO_BENCH
// environment variable first, then walks up from the given directory
// looking for a directory that contains both apps/ and sites/.
func Find(startDir string) (*Workspace, error) {
	if v := os.Getenv(branding.EnvVar("BENCH")); v != "" {
		return At(v)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		if isBenchRoot(dir) {
			return &Workspace{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// At returns a Workspace rooted at the given directory, verifying the
// bench layout exists there.
func At(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving bench root: %w", err)
	}
	if !isBenchRoot(abs) {
		return nil, fmt.Errorf("%s is not a bench workspace: %w", abs, ErrNotFound)
	}
	return &Workspace{Root: abs}, nil
}

func isBenchRoot(dir string) bool {
	for _, sub := range []string{AppsDir, SitesDir} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// AppDir returns the path to an app checkout, e.g. <root>/apps/billing.
func (w *Workspace) AppDir(app string) string {
	return filepath.Join(w.Root, AppsDir, app)
}

// AppExists reports whether the named app is present under apps/.
func (w *Workspace) AppExists(app string) bool {
	info, err := os.Stat(w.AppDir(app))
	return err == nil && info.IsDir()
}

// Apps lists the app directories present under apps/.
func (w *Workspace) Apps() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.Root, AppsDir))
	if err != nil {
		return nil, fmt.Errorf("reading apps directory: %w", err)
	}
	var apps []string
	for _, e := range entries {
		if e.IsDir() {
			apps = append(apps, e.Name())
		}
	}
	return apps, nil
}

// SPADir returns the directory the frontend project is generated into,
// e.g. <root>/apps/billing/dashboard.
func (w *Workspace) SPADir(app, spa string) string {
	return filepath.Join(w.AppDir(app), spa)
}

// PackageDir returns the inner Python package directory of an app,
// e.g. <root>/apps/billing/billing.
func (w *Workspace) PackageDir(app string) string {
	return filepath.Join(w.AppDir(app), app)
}

// HooksPath returns the path to the app's hooks.py,
// e.g. <root>/apps/billing/billing/hooks.py.
func (w *Workspace) HooksPath(app string) string {
	return filepath.Join(w.PackageDir(app), HooksFile)
}

// WWWPath returns the app's www directory used for HTML entry points,
// e.g. <root>/apps/billing/billing/www.
func (w *Workspace) WWWPath(app string) string {
	return filepath.Join(w.PackageDir(app), WWWDir)
}

// AppManifestPath returns the app-level package.json path,
// e.g. <root>/apps/billing/package.json.
func (w *Workspace) AppManifestPath(app string) string {
	return filepath.Join(w.AppDir(app), "package.json")
}

// SPAManifestPath returns the generated project's package.json path.
func (w *Workspace) SPAManifestPath(app, spa string) string {
	return filepath.Join(w.SPADir(app, spa), "package.json")
}
