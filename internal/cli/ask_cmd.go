package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/service"
)

func newAskCmd(app *App) *cobra.Command {
	var (
		sel   selectionFlags
		brief bool
	)

	cmd := &cobra.Command{
		Use:   "ask <pregunta>",
		Short: "Responde una pregunta o busca una planta",
		Long: `Busca la pregunta en el catálogo de plantas y en la base de conocimiento.
Los filtros de plantas limitan la búsqueda a las plantas que los cumplen.`,
		Example: `  aucca ask menta
  aucca ask "¿qué es el baño seco?"
  aucca ask marzo --available Sí`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sess := service.NewSession(sel.selection())

			result, err := app.Kiosk.Ask(cmd.Context(), sess, strings.Join(args, " "), domain.SourceCLI)
			if err != nil {
				app.Logger.Warn().Err(err).Msg("question not recorded")
			}

			if line := formatter.FormatSelection(sess.Selection()); line != "" {
				fmt.Fprintln(out, line)
			}
			fmt.Fprint(out, formatter.FormatResult(result, app.renderOptions(brief)))
			return nil
		},
	}

	addSelectionFlags(cmd.Flags(), &sel)
	cmd.Flags().BoolVar(&brief, "brief", false, "lista solo los títulos del contenido relacionado")

	return cmd
}

func newSuggestCmd(app *App) *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:   "suggest <texto>",
		Short: "Sugiere plantas y preguntas que contienen el texto",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := service.NewSession(sel.selection())
			s := app.Kiosk.Suggest(sess, strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(s))
			return nil
		},
	}

	addSelectionFlags(cmd.Flags(), &sel)
	return cmd
}
