package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/repository"
	"github.com/LinFrancis/aucca-app/internal/service"
)

const defaultLogLimit = 20

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Revisa las preguntas registradas por el kiosco",
		Long: `Revisa las preguntas registradas por el kiosco. Las preguntas sin respuesta
muestran qué contenido conviene agregar a la base de conocimiento.

El registro se activa con AUCCA_QUERY_LOG=true.`,
	}

	cmd.AddCommand(
		newLogRecentCmd(app),
		newLogUnansweredCmd(app),
		newLogStatsCmd(app),
		newLogPruneCmd(app),
		newLogResolveCmd(app),
	)
	return cmd
}

// queryLogError turns the disabled sentinel into a hint the operator can act on.
func queryLogError(err error) error {
	if errors.Is(err, service.ErrQueryLogDisabled) {
		return fmt.Errorf("el registro de preguntas está desactivado; actívalo con AUCCA_QUERY_LOG=true")
	}
	return err
}

func newLogRecentCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Muestra las últimas preguntas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Kiosk.RecentQueries(cmd.Context(), limit)
			if err != nil {
				return queryLogError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQueryLog(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLogLimit, "cantidad máxima de preguntas")
	return cmd
}

func newLogUnansweredCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "unanswered",
		Short: "Muestra las preguntas sin respuesta más frecuentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gaps, err := app.Kiosk.UnansweredQueries(cmd.Context(), limit)
			if err != nil {
				return queryLogError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGaps(gaps, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLogLimit, "cantidad máxima de preguntas")
	return cmd
}

func newLogStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resume cómo terminaron las preguntas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Kiosk.QueryStats(cmd.Context())
			if err != nil {
				return queryLogError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(counts))
			return nil
		},
	}
}

func newLogPruneCmd(app *App) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Borra las preguntas más antiguas que la edad indicada",
		Example: `  aucca log prune --older-than 720h`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than debe ser positivo")
			}
			n, err := app.Kiosk.PruneQueries(cmd.Context(), olderThan)
			if err != nil {
				return queryLogError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d preguntas borradas.\n", formatter.StyleGreen.Render("✔"), n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "edad mínima de las preguntas a borrar, por ejemplo 720h")
	_ = cmd.MarkFlagRequired("older-than")
	return cmd
}

func newLogResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pregunta>",
		Short: "Quita una pregunta de la lista de preguntas sin respuesta",
		Long: `Quita una pregunta de la lista de preguntas sin respuesta, por ejemplo
después de agregar su respuesta a la base de conocimiento.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			err := app.Kiosk.DismissGap(cmd.Context(), question)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%q no está entre las preguntas sin respuesta", question)
			}
			if err != nil {
				return queryLogError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q marcada como resuelta.\n", formatter.StyleGreen.Render("✔"), question)
			return nil
		},
	}
}
