package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the game needs an interactive terminal")

func newPlayCmd(app *App) *cobra.Command {
	diff := difficultyFlag(app.Game.Difficulty())
	var music bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Skip the menu and start a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			if err := app.Game.SetDifficulty(domain.Difficulty(diff)); err != nil {
				return err
			}
			if cmd.Flags().Changed("music") {
				app.Game.SetMusic(music)
			}

			m := newAppModel(app)
			play, err := startGame(context.Background(), m.state)
			if err != nil {
				return err
			}
			m.viewStack = append(m.viewStack, play)
			return app.runTUI(m)
		},
	}

	cmd.Flags().Var(&diff, "difficulty", "easy, normal or hard")
	cmd.Flags().BoolVar(&music, "music", app.Game.Music(), "play background music")
	return cmd
}

func newDifficultiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "difficulties",
		Short:       "List difficulties and their time per level",
		Args:        cobra.NoArgs,
		Annotations: consoleLogAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Log.Debug().Str("current", string(app.Game.Difficulty())).Msg("listing difficulties")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDifficulties(app.Game.Difficulty()))
			return nil
		},
	}
}
