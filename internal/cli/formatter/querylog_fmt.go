package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/LinFrancis/aucca-app/internal/domain"
)

// FormatQueryLog renders recent questions, newest first.
func FormatQueryLog(entries []*domain.QueryLog, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Todavía no hay preguntas registradas.") + "\n"
	}
	headers := []string{"ID", "CUÁNDO", "ORIGEN", "RESULTADO", "PREGUNTA", "RESPUESTA"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		answer := e.AnswerKey
		if e.DidYouMean {
			answer = "~ " + answer
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestampFrom(e.CreatedAt, now),
			string(e.Source),
			KindBadge(e.Kind),
			e.Query,
			answer,
		})
	}
	return RenderTable(headers, rows)
}

// FormatGaps renders unanswered questions, most frequent first.
func FormatGaps(gaps []domain.QueryGap, now time.Time) string {
	if len(gaps) == 0 {
		return Dim("No hay preguntas sin respuesta.") + "\n"
	}
	headers := []string{"VECES", "PREGUNTA", "NORMALIZADA", "ÚLTIMA VEZ"}
	rows := make([][]string, 0, len(gaps))
	for _, g := range gaps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", g.Count),
			g.SampleQuery,
			g.Normalized,
			HumanTimestampFrom(g.LastSeen, now),
		})
	}
	return RenderTable(headers, rows)
}

// FormatStats renders how many questions ended in each result kind, with
// the answered share.
func FormatStats(counts []domain.KindCount) string {
	total := 0
	answered := 0
	for _, c := range counts {
		total += c.Count
		if c.Kind.Answered() {
			answered += c.Count
		}
	}
	if total == 0 {
		return Dim("Todavía no hay preguntas registradas.") + "\n"
	}

	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{
			KindBadge(c.Kind),
			fmt.Sprintf("%d", c.Count),
			RenderShare(c.Count, total, 20, KindStyle(c.Kind)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"RESULTADO", "PREGUNTAS", "PROPORCIÓN"}, rows))
	b.WriteString(fmt.Sprintf("\n%s %d de %d %s\n",
		Bold("Respondidas:"), answered, total, RenderShare(answered, total, 20, StyleGreen)))
	return b.String()
}
