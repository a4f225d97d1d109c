package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgpack/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Compress.FFmpeg, cfg.Compress.FFprobe))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				detail := status.Command
				if status.Available {
					state = "found"
				} else if status.Detail != "" {
					detail = status.Detail
				}
				rows = append(rows, []string{status.Name, state, detail, status.Description})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Status", "Resolved", "Used for"},
				rows,
			))
			return nil
		},
	}
}
