package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short:       "Show the best score",
		Args:        cobra.NoArgs,
		Annotations: consoleLogAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			best := app.Game.Best(context.Background())
			app.Log.Debug().Int("best", best).Msg("best score read")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBest(best))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short:       "Reset the best score to zero",
		Args:        cobra.NoArgs,
		Annotations: consoleLogAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Game.ClearBest(context.Background()); err != nil {
				return err
			}
			app.Log.Debug().Msg("best score cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "Best score cleared.")
			return nil
		},
	})

	return cmd
}
