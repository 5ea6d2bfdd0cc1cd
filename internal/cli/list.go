package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopvault/shopvault/internal/api"
	"github.com/shopvault/shopvault/internal/classify"
	"github.com/shopvault/shopvault/internal/download"
)

// newListCmd creates the 'list' command.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the store's file library without downloading anything",
		Long: `Enumerate every file in the store's file library and print one line
per file with its kind, target category and derived file name.

Examples:
  shopvault list
  shopvault list --store my-store --token shpat_xxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := api.NewClient(cfg)
			nodes, err := client.FetchAll(GetContext())
			if err != nil {
				return fmt.Errorf("enumeration failed: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tCATEGORY\tFILE\tID")
			for _, node := range nodes {
				target := classify.Classify(node)
				name := "-"
				if target.URL != "" {
					name = download.FileNameFromURL(target.URL)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", node.Typename, target.Category, name, node.ID)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d file(s)\n", len(nodes))
			return nil
		},
	}

	return cmd
}
