package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the oldest Node.js release Vite supports.
const MinNodeVersion = "16.0.0"

// NodeVersion returns the installed Node.js version, stripped of its "v"
// prefix.
func NodeVersion(ctx context.Context) (*semver.Version, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return nil, fmt.Errorf("node not found on PATH: %w", err)
	}

	out, err := exec.CommandContext(ctx, nodeBin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running node --version: %w", err)
	}

	return parseSemver(strings.TrimSpace(string(out)))
}

// CheckNode verifies a usable Node.js installation and returns its version.
func CheckNode(ctx context.Context) (*semver.Version, error) {
	version, err := NodeVersion(ctx)
	if err != nil {
		return nil, err
	}

	min := semver.MustParse(MinNodeVersion)
	if version.LessThan(min) {
		return version, fmt.Errorf("node %s is too old: Vite requires %s or newer", version, MinNodeVersion)
	}
	return version, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return v, nil
}
