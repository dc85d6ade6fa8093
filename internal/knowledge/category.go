package knowledge

import (
	"fmt"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/textnorm"
)

// Category is a topical grouping of concepts. The declaration order is the
// priority order used for keyword matching and for related-content lookup.
type Category int

const (
	DryToilet Category = iota
	Biofilter
	Compost
	General
	Workshop
)

// categoryDef is the static data carried by each category.
type categoryDef struct {
	name  string
	label string
	// keywords are stems searched for in a normalized query.
	keywords []string
	// keyContains admits every concept whose normalized key contains a stem.
	keyContains []string
	// keys admits the listed concept keys verbatim.
	keys []string
}

var categoryDefs = [...]categoryDef{
	DryToilet: {
		name:        "baño",
		label:       "Baño seco",
		keywords:    []string{"baño", "seco"},
		keyContains: []string{"baño seco"},
	},
	Biofilter: {
		name:        "biofiltro",
		label:       "Biofiltro",
		keywords:    []string{"biofiltro"},
		keyContains: []string{"biofiltro"},
	},
	Compost: {
		name:        "compost",
		label:       "Compostaje",
		keywords:    []string{"compost", "lombricultura"},
		keyContains: []string{"compost", "lombricultura"},
	},
	General: {
		name:     "general",
		label:    "AUCCA",
		keywords: []string{"aucca", "ubicacion", "mision", "historia", "objetivos", "talleres", "beneficiarios", "contacto"},
		keys: []string{
			"qué es aucca", "cuál es la ubicación", "cuál es la misión", "cuál es la historia",
			"cuáles son los objetivos", "cuáles son las áreas temáticas", "cuáles son las alianzas",
			"quiénes son beneficiarios", "proyectos destacados", "financiamiento", "contacto",
			"qué talleres", "cuáles son los principios", "qué eventos", "voluntariado",
		},
	},
	Workshop: {
		name:     "taller",
		label:    "Taller de huerta",
		keywords: []string{"agricultura", "revolucion", "transgenicos", "huerta"},
		keys: []string{
			"qué es la agricultura", "qué es la revolución verde", "cómo es la producción de alimentos en Chile",
			"qué son los transgénicos", "qué es la agroecología", "qué es la agricultura urbana",
			"qué es la permacultura", "qué es el suelo en agricultura", "qué papel juega el sol en la agricultura",
			"cómo influye el tiempo en la agricultura", "por qué es importante el agua en la agricultura",
			"qué son los camellones y surcos", "qué es un bancal profundo", "qué es la cero labranza",
			"cuáles son los tipos de huerta",
		},
	},
}

// normalizedKeywords holds each category's keyword stems in normalized form,
// so "baño" is compared as "bano" like the query it is matched against.
var normalizedKeywords = func() [len(categoryDefs)][]string {
	var out [len(categoryDefs)][]string
	for i, def := range categoryDefs {
		for _, kw := range def.keywords {
			out[i] = append(out[i], textnorm.Normalize(kw))
		}
	}
	return out
}()

// Categories returns every category in priority order.
func Categories() []Category {
	out := make([]Category, len(categoryDefs))
	for i := range categoryDefs {
		out[i] = Category(i)
	}
	return out
}

func (c Category) valid() bool { return c >= 0 && int(c) < len(categoryDefs) }

// String returns the short category name ("baño", "biofiltro", ...).
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryDefs[c].name
}

// Label returns the display title of the category.
func (c Category) Label() string {
	if !c.valid() {
		return c.String()
	}
	return categoryDefs[c].label
}

// Keywords returns the keyword stems of the category as authored.
func (c Category) Keywords() []string {
	if !c.valid() {
		return nil
	}
	return append([]string(nil), categoryDefs[c].keywords...)
}

// MatchesQuery reports whether a normalized query contains any of the
// category's keyword stems.
func (c Category) MatchesQuery(normalizedQuery string) bool {
	if !c.valid() || normalizedQuery == "" {
		return false
	}
	for _, kw := range normalizedKeywords[c] {
		if strings.Contains(normalizedQuery, kw) {
			return true
		}
	}
	return false
}

// admits reports whether a concept key belongs to the category.
func (c Category) admits(key, normalizedKey string) bool {
	def := categoryDefs[c]
	for _, k := range def.keys {
		if k == key {
			return true
		}
	}
	for _, stem := range def.keyContains {
		if strings.Contains(normalizedKey, textnorm.Normalize(stem)) {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category from its name or label, ignoring case
// and accents.
func ParseCategory(s string) (Category, error) {
	want := textnorm.Normalize(s)
	for _, c := range Categories() {
		if want == textnorm.Normalize(c.String()) || want == textnorm.Normalize(c.Label()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
