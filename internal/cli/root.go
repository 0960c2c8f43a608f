package cli

import (
	"context"

	"github.com/alexanderramin/testament/internal/catalog"
	"github.com/alexanderramin/testament/internal/game"
	"github.com/alexanderramin/testament/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds what CLI commands and TUI views need.
type App struct {
	Game    *game.Controller
	Catalog *catalog.Catalog
	Frames  *FrameBuffer
	Log     zerolog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// RunProgram runs a full-screen model. Nil runs it under bubbletea in
	// the alternate screen.
	RunProgram func(tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// runTUI runs m and makes sure no session outlives the program.
func (a *App) runTUI(m tea.Model) error {
	defer func() {
		if a.Game.Phase().InSession() {
			_, _ = a.Game.Abort(context.Background())
		}
	}()

	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// annotationConsoleLog marks commands that print plain output and may send
// their logs to stderr under --verbose. Full-screen commands never do.
const annotationConsoleLog = "console-log"

var consoleLogAnnotation = map[string]string{annotationConsoleLog: "true"}

// NewRootCmd creates the top-level "testament" command. Run bare in a
// terminal it opens the start menu.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "testament",
		Short:        "Sort books of the Bible into Old and New Testament against the clock",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && cmd.Annotations[annotationConsoleLog] == "true" {
				app.Log = logging.NewConsole(cmd.ErrOrStderr(), zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			app.Log.Debug().Msg("opening start menu")
			return app.runTUI(newAppModel(app))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr (score, books, difficulties)")

	root.AddCommand(
		newPlayCmd(app),
		newScoreCmd(app),
		newBooksCmd(app),
		newDifficultiesCmd(app),
	)

	return root
}
