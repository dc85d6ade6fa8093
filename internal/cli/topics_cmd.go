package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
)

func newTopicsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Lista los temas de la base de conocimiento",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopics(app.Kiosk.Knowledge(), all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "muestra también las preguntas de cada tema")
	cmd.AddCommand(newTopicsShowCmd(app))
	return cmd
}

func newTopicsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tema>",
		Short: "Lista las preguntas de un tema",
		Example: `  aucca topics show compost
  aucca topics show "baño seco"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := knowledge.ParseCategory(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopic(c, app.Kiosk.TopicConcepts(c)))
			return nil
		},
	}
}

func newRelatedCmd(app *App) *cobra.Command {
	var brief bool

	cmd := &cobra.Command{
		Use:   "related <pregunta>",
		Short: "Muestra el contenido relacionado con una pregunta",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			key, ok := app.Kiosk.ConceptKey(question)
			if !ok {
				return fmt.Errorf("no hay una pregunta registrada como %q", question)
			}
			related, _ := app.Kiosk.Related(key)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("📚 Leer más · "+formatter.Capitalize(key)))
			fmt.Fprint(out, formatter.FormatRelated(related, app.renderOptions(brief)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&brief, "brief", false, "lista solo los títulos")
	return cmd
}
