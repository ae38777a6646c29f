package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/doppio-labs/doppio/internal/branding"
	"github.com/doppio-labs/doppio/internal/config"
	"github.com/doppio-labs/doppio/internal/log"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Vue + Vite single-page applications inside a bench
workspace: it creates the frontend project, wires routing and proxy
configuration, patches build scripts, and registers the website route in the
host app's hooks.py.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(verbose)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
