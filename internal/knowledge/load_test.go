package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LinFrancis/aucca-app/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = "### Suelo\n\nEl suelo vive.\n\n### Agua\n\nRegar poco.\n"

func TestParse_SectionAndCompose(t *testing.T) {
	def := []byte(`
concepts:
  - key: qué es el suelo en agricultura
    section: Suelo
  - key: cuáles son los elementos
    compose:
      intro: "Elementos de la huerta:"
      sections: [Suelo, Agua]
  - key: qué es la lluvia
    section: Lluvia
synonyms:
  qué es el suelo en agricultura: [tierra]
`)
	b, err := Parse(def, ingest.Parse([]byte(testDoc)))
	require.NoError(t, err)

	answer, _ := b.Lookup("qué es el suelo en agricultura")
	assert.Equal(t, "El suelo vive.", answer)

	composed, _ := b.Lookup("cuáles son los elementos")
	assert.Equal(t, "Elementos de la huerta:\n\n# Suelo\n\nEl suelo vive.\n\n# Agua\n\nRegar poco.", composed)

	missing, ok := b.Lookup("qué es la lluvia")
	assert.True(t, ok)
	assert.Equal(t, "", missing)

	assert.Equal(t, []string{"tierra"}, b.Synonyms("qué es el suelo en agricultura"))
	assert.Equal(t, []string{`concept "qué es la lluvia" references missing section "Lluvia"`}, b.Validate())
}

func TestParse_ComposeReportsMissingSections(t *testing.T) {
	def := []byte(`
concepts:
  - key: tipos
    compose:
      intro: "Tipos:"
      sections: [Suelo, Viento]
synonyms:
  tipo: [clase]
`)
	b, err := Parse(def, ingest.Parse([]byte(testDoc)))
	require.NoError(t, err)
	assert.Equal(t, []string{
		`concept "tipos" references missing section "Viento"`,
		`synonyms recorded for unknown concept "tipo"`,
	}, b.Validate())
}

func TestParse_Errors(t *testing.T) {
	doc := ingest.Parse([]byte(testDoc))

	_, err := Parse([]byte("concepts: ["), doc)
	assert.Error(t, err)

	_, err = Parse([]byte("concepts: []"), doc)
	assert.Error(t, err)

	_, err = Parse([]byte("concepts:\n  - key: a\n    answer: x\n    section: Suelo\n"), doc)
	assert.ErrorContains(t, err, "only one of")

	_, err = Parse([]byte("concepts:\n  - key: a\n    section: Suelo\n"), nil)
	assert.Error(t, err)

	_, err = Parse([]byte("concepts:\n  - key: a\n  - key: a\n"), doc)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "kb.yaml")
	docPath := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(defPath, []byte("concepts:\n  - key: qué es el agua\n    section: Agua\n"), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(testDoc), 0o644))

	b, err := LoadFiles(defPath, docPath)
	require.NoError(t, err)
	answer, _ := b.Lookup("qué es el agua")
	assert.Equal(t, "Regar poco.", answer)

	bundled, err := LoadFiles("", "")
	require.NoError(t, err)
	assert.Equal(t, 88, bundled.Len())

	_, err = LoadFiles(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
	_, err = LoadFiles("", filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}
