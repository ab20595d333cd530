package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorNovak/cd-ripper/internal/deps"
	"github.com/ConnorNovak/cd-ripper/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that the required external tools are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Defaults(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}

			out := cmd.OutOrStdout()
			printTable(out, []column{
				{header: "Tool"},
				{header: "Command"},
				{header: "Status"},
				{header: "Purpose"},
			}, rows)
			if missing > 0 {
				return services.Wrap(services.ErrConfiguration, "deps", "check",
					fmt.Sprintf("%d of %d required tools unavailable", missing, len(statuses)), nil)
			}
			fmt.Fprintln(out, "All required tools are available")
			return nil
		},
	}
}
