package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doppio-labs/doppio/internal/config"
	"github.com/doppio-labs/doppio/internal/history"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously generated SPAs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.HistoryPath()); os.IsNotExist(err) {
			fmt.Println("No SPAs generated yet.")
			return nil
		}

		store, err := history.Open(config.HistoryPath())
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No SPAs generated yet.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "APP\tSPA\tTAILWIND\tWORKSPACE\tCREATED")
		for _, e := range entries {
			tailwind := "no"
			if e.Tailwind {
				tailwind = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				e.App, e.SPA, tailwind, e.Workspace, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	},
}
