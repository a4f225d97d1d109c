package main

import (
	"github.com/spf13/cobra"
)

type buildFlags struct {
	tabs      []string
	all       bool
	compress  bool
	zip       bool
	recursive bool
	depth     int
	noBrowser bool
	output    string
}

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &buildFlags{}

	rootCmd := &cobra.Command{
		Use:           "imgpack [directory]",
		Short:         "Pack a directory of media files into a shareable HTML gallery",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.Flags().StringSliceVar(&flags.tabs, "tabs", nil, "Tab patterns matched against file names (repeatable or comma separated)")
	rootCmd.Flags().BoolVar(&flags.all, "all", false, "Add an \"all\" bucket containing every scanned file")
	rootCmd.Flags().BoolVar(&flags.compress, "compress", false, "Compress organized files in place")
	rootCmd.Flags().BoolVar(&flags.zip, "zip", false, "Zip the finished output tree")
	rootCmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "Scan subdirectories")
	rootCmd.Flags().IntVar(&flags.depth, "depth", 0, "Maximum scan depth (1 = top level only)")
	rootCmd.Flags().BoolVar(&flags.noBrowser, "no-browser", false, "Do not open the gallery when the run finishes")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Parent directory for the gallery tree")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
