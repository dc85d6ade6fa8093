package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/ingest"
	"gopkg.in/yaml.v3"
)

//go:embed data/knowledge.yaml
var defaultDefinition []byte

//go:embed data/huerta.md
var defaultDocument []byte

// SectionSource supplies the body of a titled section of a source document.
// A missing section yields "".
type SectionSource interface {
	Section(title string) string
}

// titledSource is a SectionSource that can list its section titles, which
// lets Parse report references to sections the document does not have.
type titledSource interface {
	SectionSource
	Titles() []string
}

type definitionFile struct {
	Concepts []conceptDef `yaml:"concepts"`
	// Synonyms adds alternate phrasings outside the concept entries.
	Synonyms map[string][]string `yaml:"synonyms"`
}

type conceptDef struct {
	Key      string      `yaml:"key"`
	Answer   string      `yaml:"answer"`
	Section  string      `yaml:"section"`
	Compose  *composeDef `yaml:"compose"`
	Synonyms []string    `yaml:"synonyms"`
}

type composeDef struct {
	Intro    string   `yaml:"intro"`
	Sections []string `yaml:"sections"`
}

// Parse builds a Base from a YAML definition, resolving section references
// against doc.
func Parse(definition []byte, doc SectionSource) (*Base, error) {
	var def definitionFile
	if err := yaml.Unmarshal(definition, &def); err != nil {
		return nil, fmt.Errorf("parsing knowledge definition: %w", err)
	}
	if len(def.Concepts) == 0 {
		return nil, errors.New("knowledge definition has no concepts")
	}

	var known map[string]bool
	if titled, ok := doc.(titledSource); ok {
		known = make(map[string]bool)
		for _, title := range titled.Titles() {
			known[title] = true
		}
	}

	concepts := make([]Concept, 0, len(def.Concepts))
	synonyms := make(map[string][]string)
	var warnings []string
	for i, cd := range def.Concepts {
		answer, err := cd.resolve(doc)
		if err != nil {
			return nil, fmt.Errorf("concept %d (%q): %w", i, cd.Key, err)
		}
		if known != nil {
			for _, title := range cd.sections() {
				if !known[strings.TrimSpace(title)] {
					warnings = append(warnings, fmt.Sprintf("concept %q references missing section %q", cd.Key, title))
				}
			}
		}
		concepts = append(concepts, Concept{Key: cd.Key, Answer: answer})
		if len(cd.Synonyms) > 0 {
			synonyms[cd.Key] = append(synonyms[cd.Key], cd.Synonyms...)
		}
	}
	for key, alts := range def.Synonyms {
		synonyms[key] = append(synonyms[key], alts...)
	}

	b, err := Build(concepts, synonyms)
	if err != nil {
		return nil, err
	}
	b.warnings = warnings
	return b, nil
}

// sections lists the document sections the concept takes its answer from.
func (cd conceptDef) sections() []string {
	switch {
	case cd.Section != "":
		return []string{cd.Section}
	case cd.Compose != nil:
		return cd.Compose.Sections
	default:
		return nil
	}
}

func (cd conceptDef) resolve(doc SectionSource) (string, error) {
	sources := 0
	for _, set := range []bool{cd.Answer != "", cd.Section != "", cd.Compose != nil} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return "", errors.New("only one of answer, section or compose may be set")
	}

	switch {
	case cd.Section != "":
		if doc == nil {
			return "", fmt.Errorf("section %q requested without a source document", cd.Section)
		}
		return doc.Section(cd.Section), nil
	case cd.Compose != nil:
		if doc == nil {
			return "", errors.New("compose requested without a source document")
		}
		parts := []string{strings.TrimSpace(cd.Compose.Intro)}
		for _, title := range cd.Compose.Sections {
			parts = append(parts, "# "+title+"\n\n"+doc.Section(title))
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return cd.Answer, nil
	}
}

// Default builds the Base bundled with the binary.
func Default() (*Base, error) {
	return Parse(defaultDefinition, ingest.Parse(defaultDocument))
}

// LoadFiles builds a Base from a definition file and a Markdown source
// document. An empty path selects the bundled file.
func LoadFiles(definitionPath, documentPath string) (*Base, error) {
	definition := defaultDefinition
	if definitionPath != "" {
		data, err := os.ReadFile(definitionPath)
		if err != nil {
			return nil, fmt.Errorf("reading knowledge definition: %w", err)
		}
		definition = data
	}

	doc := ingest.Parse(defaultDocument)
	if documentPath != "" {
		parsed, err := ingest.ParseFile(documentPath)
		if err != nil {
			return nil, fmt.Errorf("reading knowledge document: %w", err)
		}
		doc = parsed
	}

	return Parse(definition, doc)
}
