package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errRegistrationFailed = errors.New("registration failed")

func registerCmd(app func() *App) *cobra.Command {
	var flags participantFlags
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a participant and print the resulting list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			draft, err := flags.draft(a.loc)
			if err != nil {
				return a.inputError(err)
			}
			ok := a.view.Register(cmd.Context(), draft)
			a.renderFeedback(cmd.OutOrStdout())
			if !ok {
				return errRegistrationFailed
			}
			a.view.Acknowledge()
			return a.renderList(cmd.OutOrStdout(), a.view.State().Filtered)
		},
	}
	flags.bind(cmd)
	return cmd
}
