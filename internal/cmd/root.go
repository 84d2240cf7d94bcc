// Package cmd wires the rename resolver to its command-line surface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/harrison/rn/internal/config"
	"github.com/harrison/rn/internal/display"
	"github.com/harrison/rn/internal/resolver"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for rn
func NewRootCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rn <new-name>",
		Short: "Fast, safe, intent-aware file rename",
		Long: `rn renames the one file in the target's directory whose name the target
evolves from, without making you type the source name.

A file qualifies when the target expands it (characters inserted anywhere
except the very start, e.g. report.csv → report_2023.csv) or changes only
its extension (data.json → data.yaml), probed in both directions. When zero
files qualify, or more than one does, rn refuses and renames nothing.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return runRename(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), workDir, args[0], force)
		},
		// Refusals are reported through the display package; suppress
		// cobra's own error and usage echo to avoid duplicate text.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the target if it already exists")

	return cmd
}

// runRename loads configuration, resolves the rename in workDir and reports
// the outcome on the given writers. Any refusal or failure is both reported
// and returned, so the process exits non-zero.
func runRename(ctx context.Context, out, errOut io.Writer, workDir, target string, force bool) error {
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	reporter := display.NewReporter(out, errOut, cfg.Color)
	// Exclude patterns were validated with the config, so construction
	// only fails for resolvers built outside this path.
	res, err := resolver.New(afs.New(), cfg.Exclude...)
	if err != nil {
		return err
	}

	rename, err := res.Resolve(ctx, workDir, target, force)
	if err != nil {
		reporter.Refusal(err)
		return err
	}

	reporter.Success(rename)
	return nil
}
