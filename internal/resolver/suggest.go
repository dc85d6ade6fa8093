package resolver

import (
	"strings"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/textnorm"
)

// Suggestions are type-ahead completions for a partial query.
type Suggestions struct {
	Plants   []string `json:"plants"`
	Concepts []string `json:"concepts"`
}

// Len returns the total number of suggestions.
func (s Suggestions) Len() int { return len(s.Plants) + len(s.Concepts) }

// Suggest lists plant display names (catalog order, without repeats) and
// concept keys (knowledge base order) whose normalized text contains the
// normalized query. An empty query suggests nothing.
func Suggest(raw string, plants *catalog.Catalog, kb *knowledge.Base) Suggestions {
	out := Suggestions{Plants: []string{}, Concepts: []string{}}
	norm := textnorm.Normalize(raw)
	if norm == "" {
		return out
	}

	seen := make(map[string]struct{})
	for _, name := range plants.DisplayNames() {
		if _, dup := seen[name]; dup {
			continue
		}
		if textnorm.Contains(name, norm) {
			seen[name] = struct{}{}
			out.Plants = append(out.Plants, name)
		}
	}

	if kb != nil {
		keys := kb.Keys()
		for i, n := range kb.NormalizedKeys() {
			if strings.Contains(n, norm) {
				out.Concepts = append(out.Concepts, keys[i])
			}
		}
	}
	return out
}

// SelectPlant resolves a picked display name to a SinglePlant, as when the
// user chooses one of several matches or suggestions.
func SelectPlant(displayName string, plants *catalog.Catalog) (Result, bool) {
	p, ok := plants.Find(displayName)
	if !ok {
		return nil, false
	}
	return SinglePlant{Plant: p}, true
}

// SelectConcept resolves a picked concept key to its answer together with
// the related bundle of its category.
func SelectConcept(key string, kb *knowledge.Base) (Result, bool) {
	if kb == nil {
		return nil, false
	}
	answer, ok := kb.Lookup(key)
	if !ok {
		return nil, false
	}
	return ConceptAnswer{Key: key, Answer: answer, Related: kb.Related(key)}, true
}
