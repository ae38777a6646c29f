package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Output captures the result of a package manager invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported package manager identifiers.
const (
	ManagerYarn = "yarn"
	ManagerNPM  = "npm"
)

// PackageManager abstracts the JavaScript package manager used to create
// and populate the frontend project.
type PackageManager interface {
	// Name returns the manager identifier ("yarn" or "npm").
	Name() string
	// CreateVite scaffolds a Vite project named name inside dir.
	CreateVite(ctx context.Context, dir, name string) error
	// Add installs runtime dependencies in dir.
	Add(ctx context.Context, dir string, pkgs ...string) error
	// AddDev installs development dependencies in dir.
	AddDev(ctx context.Context, dir string, pkgs ...string) error
	// InitManifest creates a default package.json in dir.
	InitManifest(ctx context.Context, dir string) error
	// Exec runs a package binary (npx-style) in dir.
	Exec(ctx context.Context, dir string, args ...string) error
}

// Detect returns the package manager to use. An explicit preference
// ("yarn" or "npm") wins; otherwise yarn is picked when on PATH, with npm
// as the fallback.
func Detect(preferred string, logger zerolog.Logger) (PackageManager, error) {
	runner := &runner{logger: logger}

	switch preferred {
	case ManagerYarn:
		if _, err := exec.LookPath("yarn"); err != nil {
			return nil, fmt.Errorf("configured package manager yarn not found on PATH: %w", err)
		}
		return &yarn{runner: runner}, nil
	case ManagerNPM:
		if _, err := exec.LookPath("npm"); err != nil {
			return nil, fmt.Errorf("configured package manager npm not found on PATH: %w", err)
		}
		return &npm{runner: runner}, nil
	case "":
	default:
		return nil, fmt.Errorf("unknown package manager %q: supported managers are %q and %q", preferred, ManagerYarn, ManagerNPM)
	}

	if _, err := exec.LookPath("yarn"); err == nil {
		return &yarn{runner: runner}, nil
	}
	if _, err := exec.LookPath("npm"); err == nil {
		return &npm{runner: runner}, nil
	}
	return nil, fmt.Errorf("no JavaScript package manager found: install yarn or npm")
}

// runner spawns package manager processes, streaming output to the
// configured writers while capturing it for error reporting.
type runner struct {
	logger zerolog.Logger

	// Stdout and Stderr can be set for testing; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *runner) run(ctx context.Context, dir, bin string, args ...string) (*Output, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", bin, err)
	}

	r.logger.Debug().
		Str("bin", bin).
		Strs("args", args).
		Str("dir", dir).
		Msg("spawning package manager")

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, fmt.Errorf("%s %s exited with status %d: %s",
				bin, strings.Join(args, " "), output.ExitCode, firstLine(output.Stderr))
		}
		return output, fmt.Errorf("executing %s: %w", bin, err)
	}

	return output, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
