package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/service"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"plants":   s.kiosk.Plants(catalog.Selection{}).Len(),
		"concepts": s.kiosk.Knowledge().Len(),
	})
}

// resolve handles POST /resolve. Every request gets a fresh session, so the
// selection in the body is the only filter applied.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sess := service.NewSession(req.Selection.toSelection())
	result, err := s.kiosk.Ask(r.Context(), sess, req.Query, domain.SourceHTTP)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question not recorded")
	}
	writeJSON(w, http.StatusOK, toResultDTO(result))
}

// suggest handles GET /suggest?q=...; filter parameters narrow the plants.
func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	sess := service.NewSession(selectionFromQuery(r))
	sg := s.kiosk.Suggest(sess, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"plants":   nonNil(sg.Plants),
		"concepts": nonNil(sg.Concepts),
	})
}

func (s *Server) listPlants(w http.ResponseWriter, r *http.Request) {
	plants := s.kiosk.Plants(selectionFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  plants.Len(),
		"plants": toPlantDTOs(plants.Plants()),
	})
}

func (s *Server) plantOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toOptionsDTO(s.kiosk.FilterOptions()))
}

func (s *Server) listTopics(w http.ResponseWriter, _ *http.Request) {
	topics := s.kiosk.Topics()
	out := make([]TopicDTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicDTO{Category: t.Category.String(), Label: t.Label, Count: t.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) topicConcepts(w http.ResponseWriter, r *http.Request) {
	c, err := knowledge.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown topic", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": c.String(),
		"label":    c.Label(),
		"concepts": toConceptDTOs(s.kiosk.TopicConcepts(c)),
	})
}

// relatedConcepts handles GET /concepts/related?key=...
func (s *Server) relatedConcepts(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if strings.TrimSpace(key) == "" {
		writeError(w, http.StatusBadRequest, "key is required", "")
		return
	}
	canonical, ok := s.kiosk.ConceptKey(key)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown concept", key)
		return
	}
	related, _ := s.kiosk.Related(canonical)
	writeJSON(w, http.StatusOK, map[string]any{
		"key":     canonical,
		"related": toConceptDTOs(related),
	})
}

// selectionFromQuery reads filters from query parameters. List filters
// accept repeated parameters as well as comma separated values.
func selectionFromQuery(r *http.Request) catalog.Selection {
	q := r.URL.Query()
	list := func(name string) []string {
		var out []string
		for _, v := range q[name] {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
		return out
	}
	return catalog.Selection{
		Availability:  q.Get("available"),
		Months:        list("month"),
		Categories:    list("category"),
		NitrogenFixer: q.Get("nitrogen"),
		Accumulators:  list("accumulator"),
		Properties:    list("property"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{"error": message}
	if detail != "" {
		resp["detail"] = detail
	}
	writeJSON(w, status, resp)
}
