package formatter

import (
	"fmt"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Garden palette: leaf green, straw, clay, sky and soil tones.
var (
	ColorGreen  = lipgloss.Color("#a9b665")
	ColorYellow = lipgloss.Color("#d8a657")
	ColorRed    = lipgloss.Color("#e06c4f")
	ColorBlue   = lipgloss.Color("#7daea3")
	ColorDim    = lipgloss.Color("#8c7a66")
	ColorFg     = lipgloss.Color("#e8dcc4")
	ColorHeader = lipgloss.Color("#c97d3a")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the style used for a result kind: green for direct
// answers, yellow for anything that asks the visitor to pick, red for no
// answer.
func KindStyle(kind domain.ResultKind) lipgloss.Style {
	switch kind {
	case domain.ResultSinglePlant, domain.ResultConceptAnswer:
		return StyleGreen
	case domain.ResultMultiplePlants, domain.ResultFuzzySuggestions:
		return StyleYellow
	case domain.ResultNotFound:
		return StyleRed
	default:
		return StyleDim
	}
}

var kindLabels = map[domain.ResultKind]string{
	domain.ResultSinglePlant:      "planta",
	domain.ResultMultiplePlants:   "varias plantas",
	domain.ResultConceptAnswer:    "concepto",
	domain.ResultFuzzySuggestions: "sugerencias",
	domain.ResultNotFound:         "sin respuesta",
}

// KindBadge returns a colored indicator such as "● concepto".
func KindBadge(kind domain.ResultKind) string {
	label, ok := kindLabels[kind]
	if !ok {
		label = string(kind)
	}
	return KindStyle(kind).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
