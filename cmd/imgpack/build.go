package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"imgpack/internal/config"
	"imgpack/internal/logging"
	"imgpack/internal/pipeline"
)

func runBuild(cmd *cobra.Command, args []string, ctx *commandContext, flags *buildFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err = config.ExpandPath(root)
	if err != nil {
		return fmt.Errorf("resolve scan root: %w", err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve scan root: %w", err)
	}

	if flags.output != "" {
		base, err := config.ExpandPath(flags.output)
		if err != nil {
			return fmt.Errorf("resolve output dir: %w", err)
		}
		cfg.Output.BaseDir = base
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := pipeline.New(cfg, pipeline.Options{
		Root:       root,
		Patterns:   flags.tabs,
		IncludeAll: flags.all || cfg.Tabs.IncludeAll,
		Compress:   flags.compress || cfg.Compress.Enabled,
		Zip:        flags.zip,
		MaxDepth:   resolveMaxDepth(cmd, cfg, flags),
	}, logger)

	summary, err := runner.Run(runCtx)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summary)

	if cfg.Output.OpenBrowser && !flags.noBrowser {
		if err := openBrowser(summary.IndexPath); err != nil {
			logger.Warn("could not open browser", logging.Args(
				logging.String("index", summary.IndexPath),
				logging.Error(err),
			)...)
		}
	}
	return nil
}

// resolveMaxDepth turns the recursion flags into a scanner depth. An
// explicit --depth wins; plain -r means unlimited; otherwise the configured
// depth applies.
func resolveMaxDepth(cmd *cobra.Command, cfg *config.Config, flags *buildFlags) int {
	if cmd.Flags().Changed("depth") {
		return flags.depth
	}
	if flags.recursive || cfg.Scan.Recursive {
		return 0
	}
	return cfg.Scan.MaxDepth
}
