package cli

import (
	"fmt"

	"github.com/alexanderramin/testament/internal/cli/formatter"
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/spf13/cobra"
)

func newBooksCmd(app *App) *cobra.Command {
	var only categoryFlag

	cmd := &cobra.Command{
		Use:   "books",
		Short:       "List the books in play",
		Args:        cobra.NoArgs,
		Annotations: consoleLogAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldBooks := app.Catalog.List(domain.CategoryOld)
			newBooks := app.Catalog.List(domain.CategoryNew)
			switch domain.Category(only) {
			case domain.CategoryOld:
				newBooks = nil
			case domain.CategoryNew:
				oldBooks = nil
			}

			app.Log.Debug().
				Str("category", only.String()).
				Int("old", len(oldBooks)).
				Int("new", len(newBooks)).
				Msg("listing books")

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatBooks(oldBooks, newBooks))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d books: %d %s, %d %s",
				len(oldBooks)+len(newBooks),
				len(oldBooks), domain.CategoryOld.Label(),
				len(newBooks), domain.CategoryNew.Label())))
			return nil
		},
	}

	cmd.Flags().Var(&only, "category", "old or new (default both)")
	return cmd
}

