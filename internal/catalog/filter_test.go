package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func names(c *Catalog) []string {
	var out []string
	for _, p := range c.Plants() {
		out = append(out, p.DisplayName())
	}
	return out
}

const (
	manzanoDom = "Manzano (Malus domestica)"
	manzanoSyl = "Manzano (Malus sylvestris)"
	menta      = "Menta (Mentha spicata)"
	haba       = "Haba (Vicia faba)"
)

func TestFilter_DefaultSelectionIsIdentity(t *testing.T) {
	c := loadFixture(t)
	got := c.Filter(Selection{})
	if diff := cmp.Diff(c.Plants(), got.Plants()); diff != "" {
		t.Errorf("default selection changed the catalog (-want +got):\n%s", diff)
	}
}

func TestFilter_Dimensions(t *testing.T) {
	c := loadFixture(t)
	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"availability", Selection{Availability: "Sí"}, []string{manzanoDom, menta, haba}},
		{"availability trimmed", Selection{Availability: " No "}, []string{manzanoSyl}},
		{"month", Selection{Months: []string{"julio"}}, []string{manzanoDom, manzanoSyl}},
		{"any month", Selection{Months: []string{"septiembre", "marzo"}}, []string{menta, haba}},
		{"category accent insensitive", Selection{Categories: []string{"AROMATICAS"}}, []string{menta}},
		{"category", Selection{Categories: []string{"frutales"}}, []string{manzanoDom, manzanoSyl}},
		{"nitrogen fixer", Selection{NitrogenFixer: "Sí"}, []string{haba}},
		{"accumulator skips missing", Selection{Accumulators: []string{"potasio"}}, []string{manzanoDom, menta}},
		{"property", Selection{Properties: []string{"digestiva"}}, []string{manzanoDom, menta}},
		{"conjunction", Selection{Availability: "Sí", Categories: []string{"frutales"}}, []string{manzanoDom}},
		{"empty result", Selection{Availability: "Sí", Months: []string{"julio"}, Properties: []string{"calmante"}}, nil},
		{"blank tags ignored", Selection{Months: []string{"", "  "}}, []string{manzanoDom, manzanoSyl, menta, haba}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.Filter(tt.sel)))
		})
	}
}

func TestFilter_NarrowsDeterministicallyWithoutMutation(t *testing.T) {
	c := loadFixture(t)
	before := c.Plants()
	sel := Selection{Properties: []string{"digestiva", "calmante"}, Availability: "Sí"}

	first := c.Filter(sel)
	second := c.Filter(sel)
	assert.Equal(t, names(first), names(second))

	all := map[string]bool{}
	for _, n := range names(c) {
		all[n] = true
	}
	for _, n := range names(first) {
		assert.True(t, all[n], "%s is not in the base catalog", n)
	}
	assert.LessOrEqual(t, first.Len(), c.Len())

	if diff := cmp.Diff(before, c.Plants()); diff != "" {
		t.Errorf("base catalog mutated (-before +after):\n%s", diff)
	}
}

func TestFilter_Chained(t *testing.T) {
	c := loadFixture(t)
	got := c.Filter(Selection{Categories: []string{"frutales"}}).Filter(Selection{Availability: "Sí"})
	assert.Equal(t, []string{manzanoDom}, names(got))
}

func TestSelection_Active(t *testing.T) {
	assert.False(t, Selection{}.Active())
	assert.False(t, Selection{Months: []string{" "}}.Active())
	assert.True(t, Selection{Availability: "Sí"}.Active())
	assert.True(t, Selection{Properties: []string{"digestiva"}}.Active())
}

func TestOptions(t *testing.T) {
	got := loadFixture(t).Options()
	want := Options{
		Availability:  []string{"No", "Sí"},
		Months:        []string{"abril", "agosto", "julio", "junio", "marzo", "mayo", "octubre", "septiembre"},
		Categories:    []string{"aromáticas", "frutales", "hortalizas"},
		NitrogenFixer: []string{"No", "Sí"},
		Accumulators:  []string{"magnesio", "nitrógeno", "potasio"},
		Properties:    []string{"antioxidante", "calmante", "digestiva"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_EmptyCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, Options{}, c.Options())
}
