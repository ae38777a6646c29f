package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/doppio-labs/doppio/internal/branding"
	"github.com/doppio-labs/doppio/internal/runtime"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for SPA generation",
	Long:  `Verify the JavaScript toolchain and bench workspace layout before generating.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Toolchain check:")

		// Node version gate.
		if version, err := runtime.CheckNode(cmd.Context()); err != nil {
			fmt.Fprintf(w, "  [FAIL] node: %v\n", err)
		} else {
			fmt.Fprintf(w, "  [ OK ] node %s (minimum %s)\n", version, runtime.MinNodeVersion)
		}

		// Package managers.
		for _, bin := range []string{"yarn", "npm", "npx"} {
			if path, err := exec.LookPath(bin); err != nil {
				fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", bin)
			} else {
				fmt.Fprintf(w, "  [ OK ] %s (%s)\n", bin, path)
			}
		}

		fmt.Fprintln(w, "Workspace check:")

		ws, err := resolveWorkspace()
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %v\n", err)
			fmt.Fprintf(w, "         Run inside a bench directory or set %s\n", branding.EnvVar("BENCH"))
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] bench root at %s\n", ws.Root)

		apps, err := ws.Apps()
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] reading apps: %v\n", err)
			return nil
		}
		if len(apps) == 0 {
			fmt.Fprintln(w, "  [WARN] no apps found under apps/")
			return nil
		}

		for _, app := range apps {
			if _, err := os.Stat(ws.HooksPath(app)); err != nil {
				fmt.Fprintf(w, "  [WARN] %s has no hooks.py (routing rules cannot be registered)\n", app)
				continue
			}
			fmt.Fprintf(w, "  [ OK ] %s (hooks.py present)\n", app)
		}
		return nil
	},
}
