package formatter

import (
	"strings"
	"testing"

	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/resolver"
	"github.com/LinFrancis/aucca-app/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func sampleAnswer() resolver.ConceptAnswer {
	return resolver.ConceptAnswer{
		Key:    "qué es aucca",
		Answer: "Un eco-centro de permacultura.",
		Related: []knowledge.Concept{
			{Key: "misión de aucca", Answer: "Educar con el ejemplo."},
			{Key: "visión de aucca", Answer: "Territorios regenerados."},
		},
	}
}

func TestFormatResult_Plants(t *testing.T) {
	plants := testutil.NewTestCatalog(
		testutil.NewTestPlant("Manzano", "Malus domestica"),
		testutil.NewTestPlant("Manzano", "Malus sylvestris"),
	).Plants()

	single := stripANSI(FormatResult(resolver.SinglePlant{Plant: plants[0]}, RenderOptions{}))
	assert.True(t, strings.HasPrefix(single, "MANZANO (MALUS DOMESTICA)\n"))

	multi := stripANSI(FormatResult(resolver.MultiplePlants{Plants: plants}, RenderOptions{}))
	assert.Equal(t, "Se encontraron varias plantas:\n   1. Manzano (Malus domestica)\n   2. Manzano (Malus sylvestris)\n", multi)
}

func TestFormatResult_FuzzyAndNotFound(t *testing.T) {
	fuzzy := stripANSI(FormatResult(resolver.FuzzySuggestions{Candidates: []string{"Menta (Mentha spicata)"}}, RenderOptions{}))
	assert.Equal(t, "No se encontró coincidencia exacta. ¿Quizás quisiste decir:\n   1. Menta (Mentha spicata)\n", fuzzy)

	nf := stripANSI(FormatResult(resolver.NotFound{Message: resolver.NotFoundMessage}, RenderOptions{}))
	assert.Equal(t, resolver.NotFoundMessage+"\n", nf)
}

func TestFormatConceptAnswer(t *testing.T) {
	out := stripANSI(FormatResult(sampleAnswer(), RenderOptions{}))

	assert.True(t, strings.HasPrefix(out, "🧠 RESPUESTA PRINCIPAL\n"))
	assert.Contains(t, out, "Qué es aucca\n\n  Un eco-centro de permacultura.\n")
	assert.Contains(t, out, "📚 LEER MÁS")
	assert.Contains(t, out, "🔹 Misión de aucca\n  Educar con el ejemplo.\n\n  🔹 Visión de aucca")
	assert.Less(t, strings.Index(out, "LEER MÁS"), strings.Index(out, "Misión de aucca"))
}

func TestFormatConceptAnswer_DidYouMean(t *testing.T) {
	ca := sampleAnswer()
	ca.DidYouMean = true

	out := stripANSI(FormatConceptAnswer(ca, RenderOptions{}))
	assert.True(t, strings.HasPrefix(out, "🧠 QUIZÁS QUISISTE DECIR\n"))
	assert.NotContains(t, out, "RESPUESTA PRINCIPAL")
}

func TestFormatConceptAnswer_Brief(t *testing.T) {
	out := stripANSI(FormatConceptAnswer(sampleAnswer(), RenderOptions{Brief: true}))
	assert.Contains(t, out, " 1. Misión de aucca\n   2. Visión de aucca\n")
	assert.NotContains(t, out, "Educar con el ejemplo.")
	assert.Contains(t, out, "Un eco-centro de permacultura.")
}

func TestFormatConceptAnswer_EmptyParts(t *testing.T) {
	out := stripANSI(FormatConceptAnswer(resolver.ConceptAnswer{Key: "biofiltro"}, RenderOptions{}))
	assert.Contains(t, out, "(sin respuesta registrada)")
	assert.Contains(t, out, NoRelated)
}

func TestFormatConceptAnswer_Markdown(t *testing.T) {
	ca := resolver.ConceptAnswer{Key: "taller", Answer: "## Materiales\n\n- pala\n- rastrillo"}

	out := stripANSI(FormatConceptAnswer(ca, RenderOptions{Markdown: true}))
	assert.Contains(t, out, "Materiales")
	assert.Contains(t, out, "pala")
	assert.Contains(t, out, "rastrillo")
}

func TestFormatSuggestions(t *testing.T) {
	assert.Contains(t, FormatSuggestions(resolver.Suggestions{}), "Sin sugerencias.")

	concepts := stripANSI(FormatSuggestions(resolver.Suggestions{Concepts: []string{"qué es el compost"}}))
	assert.Equal(t, "💡 Sugerencias de Conceptos:\n  • Qué es el compost\n", concepts)

	plants := stripANSI(FormatSuggestions(resolver.Suggestions{Plants: []string{"Menta (Mentha spicata)"}}))
	assert.NotContains(t, plants, "Conceptos")
}

func TestFormatResult_Unknown(t *testing.T) {
	var r resolver.Result
	assert.Empty(t, FormatResult(r, RenderOptions{}))
}
