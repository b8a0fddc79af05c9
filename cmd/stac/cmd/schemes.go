package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharkinsspatial/stactools/backend"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List registered backend schemes",
	Long:  "List the href schemes with a registered storage backend.",
	Args:  cobra.NoArgs,
	RunE:  runSchemes,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}

func runSchemes(cmd *cobra.Command, args []string) error {
	for _, scheme := range backend.Schemes() {
		if scheme == "" {
			scheme = "(local path)"
		}
		fmt.Println(scheme)
	}
	return nil
}
