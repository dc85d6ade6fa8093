package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/service"
)

// App holds what the commands need: the kiosk they query and how output
// should look.
type App struct {
	Kiosk  *service.Kiosk
	Logger zerolog.Logger

	// Markdown renders answers through glamour instead of plain wrapping.
	Markdown bool
	// HTTPAddr is the default listen address of the serve command.
	HTTPAddr string
	// HistoryPath is where the shell keeps its history. Empty disables it.
	HistoryPath string
	// IsInteractive reports whether stdin is a terminal. A bare "aucca"
	// starts the shell only when it does.
	IsInteractive func() bool
	// Now is the clock used for relative timestamps.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) renderOptions(brief bool) formatter.RenderOptions {
	return formatter.RenderOptions{Markdown: a.Markdown, Brief: brief}
}

// NewRootCmd creates the top-level "aucca" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aucca",
		Short: "Consultas del eco-centro AUCCA",
		Long: `Responde preguntas sobre el eco-centro AUCCA: plantas del vivero,
baño seco, biofiltro, compostaje y el taller de huerta.

Sin argumentos, en una terminal, abre la consola interactiva.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newPlantsCmd(app),
		newPlantCmd(app),
		newTopicsCmd(app),
		newRelatedCmd(app),
		newSuggestCmd(app),
		newLogCmd(app),
		newServeCmd(app),
		newShellCmd(app),
	)

	return root
}
