package cli

import (
	"github.com/spf13/cobra"
)

func listCmd(app func() *App) *cobra.Command {
	var flags listingFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List participants, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := flags.apply(a); err != nil {
				return err
			}
			return a.renderList(cmd.OutOrStdout(), a.view.State().Filtered)
		},
	}
	flags.bind(cmd)
	return cmd
}
