package cmd

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/sharkinsspatial/stactools"
)

var cpCmd = &cobra.Command{
	Use:   "cp <src>... <dst>",
	Short: "Copy text between hrefs",
	Long: "Copy text content from source hrefs to a destination href. With a single " +
		"source, dst names the target resource; with multiple sources, dst is a " +
		"prefix and each source keeps its base name. Transfers run in parallel, " +
		"bounded by --jobs.",
	Args: cobra.MinimumNArgs(2),
	RunE: runCp,
}

func init() {
	rootCmd.AddCommand(cpCmd)
}

func runCp(cmd *cobra.Command, args []string) error {
	srcs, dst := args[:len(args)-1], args[len(args)-1]
	params := backendParams()

	if len(srcs) == 1 {
		return copyText(cmd.Context(), srcs[0], dst, params)
	}

	p := pool.New().WithMaxGoroutines(getJobs()).WithContext(cmd.Context()).WithCancelOnError()
	for _, src := range srcs {
		target := strings.TrimSuffix(dst, "/") + "/" + path.Base(src)
		p.Go(func(ctx context.Context) error {
			return copyText(ctx, src, target, params)
		})
	}
	return p.Wait()
}

func copyText(ctx context.Context, src, dst string, params stactools.Params) error {
	text, err := stactools.ReadText(ctx, src, stactools.WithReadParams(params))
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := stactools.WriteText(ctx, dst, text, stactools.WithWriteParams(params)); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	log.Info("copied", "src", src, "dst", dst, "bytes", len(text))
	return nil
}
