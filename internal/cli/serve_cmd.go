package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sirve la API JSON del kiosco",
		Long: `Sirve la API JSON del kiosco para una pantalla web. Se detiene con Ctrl+C
o SIGTERM, terminando las peticiones en curso.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = app.HTTPAddr
			}
			return httpapi.NewServer(app.Kiosk, app.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "dirección donde escuchar (por defecto AUCCA_HTTP_ADDR)")
	return cmd
}
