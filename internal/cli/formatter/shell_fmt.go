package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormatShellWelcome renders the banner shown when the kiosk shell starts.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render("  🌿 Aucca") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString("  Escribe el nombre de una planta o una pregunta sobre el eco-centro.\n")
	b.WriteString(StyleDim.Render("  Ejemplos: menta, ¿qué es el baño seco?, cómo hacer compost") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Cuando aparezca una lista, escribe el número para elegir.") + "\n")
	b.WriteString(StyleDim.Render("  Escribe /ayuda para ver los comandos.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	width := 0
	for _, c := range cat.commands {
		if w := lipgloss.Width(c[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		pad := strings.Repeat(" ", width-lipgloss.Width(c[0])+2)
		b.WriteString(fmt.Sprintf("  %s%s%s\n", StyleGreen.Render(c[0]), pad, StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the shell command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Preguntar",
			commands: [][]string{
				{"<pregunta>", "Busca plantas y respuestas"},
				{"<número>", "Elige de la última lista"},
				{"/sugerir <texto>", "Sugiere plantas y preguntas que contienen el texto"},
			},
		},
		{
			title: "Explorar",
			commands: [][]string{
				{"/plantas", "Lista las plantas que cumplen los filtros"},
				{"/temas [tema]", "Muestra los temas o las preguntas de un tema"},
			},
		},
		{
			title: "Filtros",
			commands: [][]string{
				{"/filtros", "Elige filtros de plantas paso a paso"},
				{"/limpiar", "Quita los filtros y la última respuesta"},
			},
		},
		{
			title: "Sesión",
			commands: [][]string{
				{"/ayuda", "Muestra esta ayuda"},
				{"/salir", "Cierra la consola"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}

	b.WriteString("\n" + StyleDim.Render(
		"Los comandos de la línea de órdenes también funcionan con /,\n"+
			"por ejemplo /log unanswered o /related qué es aucca."))

	return RenderBox("Comandos", b.String())
}
