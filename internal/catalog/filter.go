package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/textnorm"
)

// Selection is the active combination of filter values. The zero value
// imposes no restriction.
//
// Availability and NitrogenFixer accept a single value compared by trimmed
// equality; "" means any. The remaining dimensions accept a set of tags: a
// plant passes when its field contains any of the tags after normalization.
// An empty set means any.
type Selection struct {
	Availability  string
	Months        []string
	Categories    []string
	NitrogenFixer string
	Accumulators  []string
	Properties    []string
}

// Active reports whether any dimension restricts the catalog.
func (s Selection) Active() bool {
	return strings.TrimSpace(s.Availability) != "" ||
		strings.TrimSpace(s.NitrogenFixer) != "" ||
		len(normalizeTags(s.Months)) > 0 ||
		len(normalizeTags(s.Categories)) > 0 ||
		len(normalizeTags(s.Accumulators)) > 0 ||
		len(normalizeTags(s.Properties)) > 0
}

// Filter returns the plants passing every dimension of sel, in catalog
// order. Filtering with the zero Selection returns every plant.
func (c *Catalog) Filter(sel Selection) *Catalog {
	availability := strings.TrimSpace(sel.Availability)
	fixer := strings.TrimSpace(sel.NitrogenFixer)
	months := normalizeTags(sel.Months)
	categories := normalizeTags(sel.Categories)
	accumulators := normalizeTags(sel.Accumulators)
	properties := normalizeTags(sel.Properties)

	return c.Where(func(p Plant) bool {
		return matchesSingle(p.Availability, availability) &&
			matchesAny(p.SowingMonths, months) &&
			matchesAny(p.Category, categories) &&
			matchesSingle(p.NitrogenFixer, fixer) &&
			matchesAny(p.Accumulator, accumulators) &&
			matchesAny(p.Properties, properties)
	})
}

func matchesSingle(field, want string) bool {
	return want == "" || field == want
}

func matchesAny(field string, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	if field == NoData {
		return false
	}
	norm := textnorm.Normalize(field)
	for _, tag := range tags {
		if strings.Contains(norm, tag) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if n := textnorm.Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Options lists the selectable values of every filter dimension.
type Options struct {
	Availability  []string
	Months        []string
	Categories    []string
	NitrogenFixer []string
	Accumulators  []string
	Properties    []string
}

var tagSeparators = regexp.MustCompile(`[,;\-]`)

// Options collects the selectable values present in the catalog. Single
// value dimensions list distinct field values; tag dimensions list the
// distinct lowercase pieces of each field split on commas, semicolons and
// hyphens. All lists are sorted and exclude NoData.
func (c *Catalog) Options() Options {
	plants := c.Plants()
	return Options{
		Availability:  distinctValues(plants, ColAvailability),
		Months:        distinctTags(plants, ColSowingMonths),
		Categories:    distinctTags(plants, ColCategory),
		NitrogenFixer: distinctValues(plants, ColNitrogenFixer),
		Accumulators:  distinctTags(plants, ColAccumulator),
		Properties:    distinctTags(plants, ColProperties),
	}
}

func distinctValues(plants []Plant, col Column) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range plants {
		if !p.Has(col) {
			continue
		}
		v := p.Field(col)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func distinctTags(plants []Plant, col Column) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range plants {
		if !p.Has(col) {
			continue
		}
		for _, piece := range tagSeparators.Split(p.Field(col), -1) {
			tag := strings.ToLower(strings.TrimSpace(piece))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}
