package formatter

import (
	"fmt"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/resolver"
)

// NoRelated is shown under "Leer más" when an answer has no related content.
const NoRelated = "No hay información adicional relacionada disponible."

const (
	multiplePlantsTitle = "Se encontraron varias plantas:"
	fuzzyTitle          = "No se encontró coincidencia exacta. ¿Quizás quisiste decir:"
)

// RenderOptions controls how results are drawn.
type RenderOptions struct {
	// Markdown renders answers through glamour instead of plain wrapping.
	Markdown bool
	// Brief lists related concepts by key only.
	Brief bool
}

// FormatResult renders any resolver outcome.
func FormatResult(r resolver.Result, opts RenderOptions) string {
	switch v := r.(type) {
	case resolver.SinglePlant:
		return FormatPlant(v.Plant)
	case resolver.MultiplePlants:
		return FormatPlantList(multiplePlantsTitle, plantNames(v.Plants))
	case resolver.FuzzySuggestions:
		return FormatPlantList(fuzzyTitle, v.Candidates)
	case resolver.ConceptAnswer:
		return FormatConceptAnswer(v, opts)
	case resolver.NotFound:
		return StyleYellow.Render(v.Message) + "\n"
	default:
		return ""
	}
}

func plantNames(plants []catalog.Plant) []string {
	names := make([]string, len(plants))
	for i, p := range plants {
		names[i] = p.DisplayName()
	}
	return names
}

// FormatConceptAnswer renders the main answer followed by its "Leer más"
// section.
func FormatConceptAnswer(ca resolver.ConceptAnswer, opts RenderOptions) string {
	var b strings.Builder

	title := "🧠 Respuesta principal"
	if ca.DidYouMean {
		title = "🧠 Quizás quisiste decir"
	}
	b.WriteString(Header(title) + "\n")
	b.WriteString(Bold(Capitalize(ca.Key)) + "\n\n")
	b.WriteString(formatAnswer(ca.Answer, opts) + "\n")

	b.WriteString("\n" + Header("📚 Leer más") + "\n")
	b.WriteString(FormatRelated(ca.Related, opts))
	return b.String()
}

// FormatRelated renders a related bundle, or the NoRelated placeholder.
func FormatRelated(related []knowledge.Concept, opts RenderOptions) string {
	if len(related) == 0 {
		return "  " + Dim(NoRelated) + "\n"
	}

	var b strings.Builder
	for i, c := range related {
		if opts.Brief {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), Capitalize(c.Key)))
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + StyleBlue.Render("🔹 "+Capitalize(c.Key)) + "\n")
		b.WriteString(formatAnswer(c.Answer, opts) + "\n")
	}
	return b.String()
}

func formatAnswer(answer string, opts RenderOptions) string {
	if strings.TrimSpace(answer) == "" {
		return "  " + Dim("(sin respuesta registrada)")
	}
	if opts.Markdown {
		return RenderMarkdown(answer)
	}
	return indentWrapped(answer, 2, textWrapWidth)
}

// FormatSuggestions renders type-ahead suggestions for a partial query.
func FormatSuggestions(s resolver.Suggestions) string {
	if s.Len() == 0 {
		return Dim("Sin sugerencias.") + "\n"
	}
	var b strings.Builder
	if len(s.Plants) > 0 {
		b.WriteString(FormatPlantList("Sugerencias de Plantas:", s.Plants))
	}
	if len(s.Concepts) > 0 {
		if len(s.Plants) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleYellow.Render("💡 Sugerencias de Conceptos:") + "\n")
		for _, key := range s.Concepts {
			b.WriteString("  • " + Capitalize(key) + "\n")
		}
	}
	return b.String()
}
