package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharkinsspatial/stactools"
)

var catCmd = &cobra.Command{
	Use:   "cat <href>...",
	Short: "Print href contents",
	Long:  "Read one or more hrefs and print their text content to stdout.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	params := backendParams()

	for _, href := range args {
		text, err := stactools.ReadText(cmd.Context(), href, stactools.WithReadParams(params))
		if err != nil {
			return fmt.Errorf("read %s: %w", href, err)
		}
		fmt.Print(text)
	}
	return nil
}
