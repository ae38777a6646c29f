package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/doppio-labs/doppio/internal/config"
	"github.com/doppio-labs/doppio/internal/history"
	"github.com/doppio-labs/doppio/internal/runtime"
	"github.com/doppio-labs/doppio/internal/scaffold"
	"github.com/doppio-labs/doppio/internal/workspace"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	spaApp      string
	spaTailwind bool
)

func init() {
	addSPACmd.Flags().StringVar(&spaApp, "app", "", "Target app under apps/ (required)")
	addSPACmd.Flags().BoolVar(&spaTailwind, "tailwindcss", false, "Set up Tailwind CSS in the generated project")
	rootCmd.AddCommand(addSPACmd)
}

var addSPACmd = &cobra.Command{
	Use:   "add-spa <spa-name>",
	Short: "Scaffold a single-page application inside an app",
	Long: `Scaffold a Vue + Vite single-page application inside a bench app.

The generated project lands in apps/<app>/<spa-name>/ with routing, dev
proxy, and build scripts wired, and a website routing rule registered in
the app's hooks.py.

Examples:
  doppio add-spa dashboard --app billing
  doppio add-spa portal --app crm --tailwindcss`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}
		if spaApp == "" {
			return fmt.Errorf("--app is required")
		}
		if err := validateName(spaApp); err != nil {
			return fmt.Errorf("invalid app: %w", err)
		}

		ctx := cmd.Context()

		if _, err := runtime.CheckNode(ctx); err != nil {
			return err
		}

		pm, err := runtime.Detect(config.Get(config.KeyPackageManager), logger)
		if err != nil {
			return err
		}
		logger.Debug().Str("manager", pm.Name()).Msg("selected package manager")

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}

		g := &scaffold.Generator{
			Workspace: ws,
			PM:        pm,
			Logger:    logger,
			App:       spaApp,
			Name:      name,
			Tailwind:  spaTailwind,
		}

		result, err := g.Run(ctx)
		if err != nil {
			return err
		}

		if len(result.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		recordRun(ws, name)

		spaDir, err := filepath.Abs(result.SPADir)
		if err != nil {
			spaDir = result.SPADir
		}
		fmt.Printf("\nRun: cd %s && %s run dev\n", spaDir, pm.Name())
		fmt.Println("to start the development server and visit: http://<site>:8080")
		return nil
	},
}

// recordRun appends the generation to the local history log. History is a
// convenience; failures only surface as debug output.
func recordRun(ws *workspace.Workspace, name string) {
	if err := config.EnsureDir(); err != nil {
		logger.Debug().Err(err).Msg("skipping history record")
		return
	}
	store, err := history.Open(config.HistoryPath())
	if err != nil {
		logger.Debug().Err(err).Msg("skipping history record")
		return
	}
	defer store.Close()

	err = store.Record(history.Entry{
		App:       spaApp,
		SPA:       name,
		Tailwind:  spaTailwind,
		Workspace: ws.Root,
	})
	if err != nil {
		logger.Debug().Err(err).Msg("recording history entry")
	}
}

// resolveWorkspace picks the bench root: the configured path wins, then
// DOPPIO_BENCH, then walking up from the current directory.
func resolveWorkspace() (*workspace.Workspace, error) {
	if configured := config.Get(config.KeyBench); configured != "" {
		return workspace.At(configured)
	}
	return workspace.Find(".")
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}
