package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/service"
)

func newPlantsCmd(app *App) *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:   "plants",
		Short: "Lista las plantas que cumplen los filtros",
		Example: `  aucca plants --available Sí
  aucca plants --month marzo,abril --category aromáticas`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			selection := sel.selection()
			plants := app.Kiosk.Plants(selection)

			if line := formatter.FormatSelection(selection); line != "" {
				fmt.Fprintln(out, line)
				fmt.Fprintln(out, formatter.FormatFilterSummary(plants))
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, formatter.FormatPlantTable(plants))
			return nil
		},
	}

	addSelectionFlags(cmd.Flags(), &sel)
	cmd.AddCommand(newPlantsOptionsCmd(app))
	return cmd
}

func newPlantsOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Muestra los valores que acepta cada filtro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptions(app.Kiosk.FilterOptions()))
			return nil
		},
	}
}

func newPlantCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plant <nombre>",
		Short: "Muestra la ficha de una planta",
		Long: `Muestra la ficha de una planta. El nombre puede ser el nombre completo
("Menta (Mentha spicata)") o parte del nombre común o científico.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := strings.Join(args, " ")

			if p, ok := app.Kiosk.FindPlant(name); ok {
				fmt.Fprint(out, formatter.FormatPlant(p))
				return nil
			}

			matches := app.Kiosk.Suggest(service.NewSession(catalog.Selection{}), name).Plants
			switch len(matches) {
			case 0:
				return fmt.Errorf("no se encontró la planta %q", name)
			case 1:
				p, _ := app.Kiosk.FindPlant(matches[0])
				fmt.Fprint(out, formatter.FormatPlant(p))
			default:
				fmt.Fprint(out, formatter.FormatPlantList("Se encontraron varias plantas:", matches))
			}
			return nil
		},
	}
}
