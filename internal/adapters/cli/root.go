package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paradereg/internal/config"
)

// NewRootCommand builds the paradereg command tree. Each invocation starts
// from a freshly seeded in-memory store.
func NewRootCommand(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:           "paradereg",
		Short:         "Register and browse parade participants",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = NewApp(cmd.Context(), cfg, log)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale (es, en)")
	root.PersistentFlags().BoolVar(&cfg.Seed, "seed", cfg.Seed, "load the example participants")

	appFn := func() *App { return app }
	root.AddCommand(listCmd(appFn), statsCmd(appFn), registerCmd(appFn), shellCmd(appFn))
	return root
}
