// Package knowledge holds the kiosk's static knowledge base: canonical
// question phrases mapped to answers, their alternate phrasings and the
// topical categories used to bundle related answers.
package knowledge

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/textnorm"
)

// ErrDuplicateKey is returned by Build when two concepts share a key.
var ErrDuplicateKey = errors.New("duplicate concept key")

// Concept is a canonical question phrase and its answer.
type Concept struct {
	Key    string
	Answer string
}

// Base is an immutable, ordered knowledge base. It is safe for concurrent
// use once built.
type Base struct {
	concepts   []Concept
	normalized []string
	index      map[string]int
	synonyms   map[string][]string
	members    [len(categoryDefs)][]int
	categoryOf map[string]Category
	// warnings are problems found while parsing the source definition.
	warnings []string
}

// Build creates a Base from concepts in lookup order and a synonym table.
// Category membership is computed once here.
func Build(concepts []Concept, synonyms map[string][]string) (*Base, error) {
	b := &Base{
		concepts:   make([]Concept, 0, len(concepts)),
		normalized: make([]string, 0, len(concepts)),
		index:      make(map[string]int, len(concepts)),
		synonyms:   make(map[string][]string, len(synonyms)),
		categoryOf: make(map[string]Category),
	}

	for _, c := range concepts {
		if strings.TrimSpace(c.Key) == "" {
			return nil, errors.New("concept key must not be empty")
		}
		if _, dup := b.index[c.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, c.Key)
		}
		b.index[c.Key] = len(b.concepts)
		b.concepts = append(b.concepts, c)
		b.normalized = append(b.normalized, textnorm.Normalize(c.Key))
	}

	for key, alts := range synonyms {
		b.synonyms[key] = append([]string(nil), alts...)
	}

	for _, cat := range Categories() {
		for i, c := range b.concepts {
			if cat.admits(c.Key, b.normalized[i]) {
				b.members[cat] = append(b.members[cat], i)
				if _, seen := b.categoryOf[c.Key]; !seen {
					b.categoryOf[c.Key] = cat
				}
			}
		}
	}

	return b, nil
}

// Len returns the number of concepts.
func (b *Base) Len() int { return len(b.concepts) }

// Lookup returns the answer stored under the exact key.
func (b *Base) Lookup(key string) (string, bool) {
	i, ok := b.index[key]
	if !ok {
		return "", false
	}
	return b.concepts[i].Answer, true
}

// Keys returns every concept key in insertion order.
func (b *Base) Keys() []string {
	out := make([]string, len(b.concepts))
	for i, c := range b.concepts {
		out[i] = c.Key
	}
	return out
}

// NormalizedKeys returns the normalized form of every key, aligned with Keys.
func (b *Base) NormalizedKeys() []string {
	return append([]string(nil), b.normalized...)
}

// Concepts returns every concept in insertion order.
func (b *Base) Concepts() []Concept {
	return append([]Concept(nil), b.concepts...)
}

// CategoryOf returns the first category, in priority order, containing key.
func (b *Base) CategoryOf(key string) (Category, bool) {
	c, ok := b.categoryOf[key]
	return c, ok
}

// Members returns the concepts of a category in insertion order.
func (b *Base) Members(c Category) []Concept {
	if !c.valid() {
		return nil
	}
	out := make([]Concept, 0, len(b.members[c]))
	for _, i := range b.members[c] {
		out = append(out, b.concepts[i])
	}
	return out
}

// First returns the first concept of a category.
func (b *Base) First(c Category) (Concept, bool) {
	if !c.valid() || len(b.members[c]) == 0 {
		return Concept{}, false
	}
	return b.concepts[b.members[c][0]], true
}

// Related returns every other concept of the first category containing key,
// in the category's order. A key outside every category has no related
// concepts and yields an empty, non-nil slice.
func (b *Base) Related(key string) []Concept {
	cat, ok := b.categoryOf[key]
	if !ok {
		return []Concept{}
	}
	return b.RelatedIn(cat, key)
}

// RelatedIn returns the concepts of category c other than key.
func (b *Base) RelatedIn(c Category, key string) []Concept {
	out := []Concept{}
	if !c.valid() {
		return out
	}
	for _, i := range b.members[c] {
		if b.concepts[i].Key != key {
			out = append(out, b.concepts[i])
		}
	}
	return out
}

// Synonyms returns the alternate phrasings recorded for key.
func (b *Base) Synonyms(key string) []string {
	return append([]string(nil), b.synonyms[key]...)
}

// Validate reports synonym table entries whose key is not a concept and
// section references missing from the source document. Neither stops the
// kiosk, but both usually point to a typo in the source.
func (b *Base) Validate() []string {
	problems := append([]string(nil), b.warnings...)
	for key := range b.synonyms {
		if _, ok := b.index[key]; !ok {
			problems = append(problems, fmt.Sprintf("synonyms recorded for unknown concept %q", key))
		}
	}
	sort.Strings(problems)
	return problems
}
