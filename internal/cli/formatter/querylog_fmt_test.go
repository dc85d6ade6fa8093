package formatter

import (
	"testing"
	"time"

	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatQueryLog(t *testing.T) {
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, FormatQueryLog(nil, now), "Todavía no hay preguntas registradas.")

	entries := []*domain.QueryLog{
		testutil.NewTestQueryLog("menta",
			testutil.WithKind(domain.ResultSinglePlant),
			testutil.WithAnswerKey("Menta (Mentha spicata)"),
			testutil.WithSource(domain.SourceShell),
			testutil.WithCreatedAt(now.Add(-5*time.Minute))),
		testutil.NewTestQueryLog("que es la agroekologia",
			testutil.WithKind(domain.ResultConceptAnswer),
			testutil.WithAnswerKey("qué es la agroecología"),
			testutil.WithDidYouMean(),
			testutil.WithCreatedAt(now.Add(-2*time.Hour))),
	}

	out := stripANSI(FormatQueryLog(entries, now))
	assert.Contains(t, out, "PREGUNTA")
	assert.Contains(t, out, entries[0].ID[:8])
	assert.NotContains(t, out, entries[0].ID)
	assert.Contains(t, out, "hace 5m")
	assert.Contains(t, out, "shell")
	assert.Contains(t, out, "● planta")
	assert.Contains(t, out, "~ qué es la agroecología")
	assert.Contains(t, out, "hace 2h")
}

func TestFormatGaps(t *testing.T) {
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, FormatGaps(nil, now), "No hay preguntas sin respuesta.")

	out := stripANSI(FormatGaps([]domain.QueryGap{{
		Normalized:  "zzzz",
		SampleQuery: "¿ZZZZ?",
		Count:       3,
		FirstSeen:   now.Add(-48 * time.Hour),
		LastSeen:    now.Add(-2 * time.Hour),
	}}, now))
	assert.Contains(t, out, "VECES")
	assert.Contains(t, out, "¿ZZZZ?")
	assert.Contains(t, out, "hace 2h")
}

func TestFormatStats(t *testing.T) {
	assert.Contains(t, FormatStats(nil), "Todavía no hay preguntas registradas.")

	out := stripANSI(FormatStats([]domain.KindCount{
		{Kind: domain.ResultConceptAnswer, Count: 2},
		{Kind: domain.ResultSinglePlant, Count: 1},
		{Kind: domain.ResultFuzzySuggestions, Count: 0},
		{Kind: domain.ResultNotFound, Count: 1},
	}))
	assert.Contains(t, out, "● concepto")
	assert.Contains(t, out, "● sin respuesta")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "Respondidas: 3 de 4")
	assert.Contains(t, out, " 75%")
}
