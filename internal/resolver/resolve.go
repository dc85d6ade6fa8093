package resolver

import (
	"strings"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/similarity"
	"github.com/LinFrancis/aucca-app/internal/textnorm"
)

const (
	// MaxPlantSuggestions caps the fuzzy plant suggestions.
	MaxPlantSuggestions = 5

	fruitCategory = "frutales"
)

var months = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Options tunes the cascade. The zero value keeps the historical behavior.
type Options struct {
	// MatchSynonyms lets the knowledge base substring step also match the
	// alternate phrasings recorded for each concept.
	MatchSynonyms bool
}

// Resolve answers raw against plants (usually already narrowed by the active
// filters) and kb. The first matcher that produces anything wins:
//
//  1. plant names, sowing months or the fruit category
//  2. fuzzy plant names
//  3. category keywords, in category priority order
//  4. knowledge base key substring
//  5. fuzzy knowledge base key
//
// Resolve never fails; an empty query or one nothing recognises yields
// NotFound.
func Resolve(raw string, plants *catalog.Catalog, kb *knowledge.Base, opts Options) Result {
	query := strings.TrimSpace(raw)
	norm := textnorm.Normalize(query)
	if norm == "" {
		return notFound()
	}

	if matched := matchPlants(norm, plants); len(matched) == 1 {
		return SinglePlant{Plant: matched[0]}
	} else if len(matched) > 1 {
		return MultiplePlants{Plants: matched}
	}

	if fuzzy := similarity.CloseMatches(query, plants.DisplayNames(), MaxPlantSuggestions, similarity.DefaultCutoff); len(fuzzy) > 0 {
		return FuzzySuggestions{Candidates: similarity.Candidates(fuzzy)}
	}

	if kb == nil {
		return notFound()
	}

	if r, ok := matchCategory(norm, kb); ok {
		return r
	}
	if r, ok := matchKey(norm, kb, opts); ok {
		return r
	}
	if best, ok := similarity.Best(norm, kb.NormalizedKeys(), similarity.DefaultCutoff); ok {
		key := keyForNormalized(kb, best.Candidate)
		answer, _ := kb.Lookup(key)
		return ConceptAnswer{
			Key:        key,
			Answer:     answer,
			Related:    kb.Related(key),
			DidYouMean: true,
		}
	}
	return notFound()
}

// matchPlants runs the plant step. A month name in the query selects plants
// sown that month; otherwise "frutales" selects the fruit category; otherwise
// the query is looked up in the vernacular and display names.
func matchPlants(norm string, plants *catalog.Catalog) []catalog.Plant {
	var keep func(catalog.Plant) bool
	if month := monthIn(norm); month != "" {
		keep = func(p catalog.Plant) bool {
			return p.Has(catalog.ColSowingMonths) && textnorm.Contains(p.SowingMonths, month)
		}
	} else if strings.Contains(norm, fruitCategory) {
		keep = func(p catalog.Plant) bool {
			return p.Has(catalog.ColCategory) && textnorm.Contains(p.Category, fruitCategory)
		}
	} else {
		keep = func(p catalog.Plant) bool {
			return textnorm.Contains(p.Vernacular, norm) ||
				textnorm.Contains(p.DisplayName(), norm)
		}
	}
	return plants.Where(keep).Plants()
}

func monthIn(norm string) string {
	for _, m := range months {
		if strings.Contains(norm, m) {
			return m
		}
	}
	return ""
}

// matchCategory answers with the first concept of the first category whose
// keywords appear in the query. An empty category ends the step without an
// answer; later categories are not consulted.
func matchCategory(norm string, kb *knowledge.Base) (Result, bool) {
	for _, cat := range knowledge.Categories() {
		if !cat.MatchesQuery(norm) {
			continue
		}
		first, ok := kb.First(cat)
		if !ok {
			return nil, false
		}
		return ConceptAnswer{
			Key:     first.Key,
			Answer:  first.Answer,
			Related: kb.RelatedIn(cat, first.Key),
		}, true
	}
	return nil, false
}

func matchKey(norm string, kb *knowledge.Base, opts Options) (Result, bool) {
	normalized := kb.NormalizedKeys()
	for i, c := range kb.Concepts() {
		if strings.Contains(normalized[i], norm) || (opts.MatchSynonyms && synonymContains(kb, c.Key, norm)) {
			return ConceptAnswer{Key: c.Key, Answer: c.Answer, Related: []knowledge.Concept{}}, true
		}
	}
	return nil, false
}

func synonymContains(kb *knowledge.Base, key, norm string) bool {
	for _, alt := range kb.Synonyms(key) {
		if textnorm.Contains(alt, norm) {
			return true
		}
	}
	return false
}

// keyForNormalized maps a normalized key back to its authored key. When two
// keys normalize alike the later one wins.
func keyForNormalized(kb *knowledge.Base, norm string) string {
	keys := kb.Keys()
	found := ""
	for i, n := range kb.NormalizedKeys() {
		if n == norm {
			found = keys[i]
		}
	}
	return found
}
