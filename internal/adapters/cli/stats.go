package cli

import (
	"github.com/spf13/cobra"
)

func statsCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show participant statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			return a.renderStats(cmd.OutOrStdout(), a.participants.GetStatistics(cmd.Context()))
		},
	}
}
