package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrMissingColumn reports a required column absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// headerAliases maps legacy export headers to their current name.
var headerAliases = map[string]Column{
	"Meses UNIRCADENAS": ColSowingMonths,
}

// LoadError is returned when the catalog source cannot be used. It is fatal
// at startup.
type LoadError struct {
	Source string
	Column Column
	Err    error
}

func (e *LoadError) Error() string {
	src := e.Source
	if src == "" {
		src = "plant catalog"
	}
	if e.Column != "" {
		return fmt.Sprintf("loading %s: %v %q", src, e.Err, string(e.Column))
	}
	return fmt.Sprintf("loading %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads a ';'-delimited catalog export. The input may be UTF-8 or
// Latin-1; the encoding is detected from the content.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return parse(data)
}

// LoadFile reads the catalog export at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	c, err := parse(data)
	var le *LoadError
	if errors.As(err, &le) {
		le.Source = path
	}
	return c, err
}

func parse(data []byte) (*Catalog, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, &LoadError{Err: fmt.Errorf("decoding latin-1: %w", err)}
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Err: errors.New("empty file")}
	}

	index := make(map[Column]int, len(rows[0]))
	for i, cell := range rows[0] {
		name := cleanCell(cell)
		col := Column(name)
		if alias, ok := headerAliases[name]; ok {
			col = alias
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Column: col, Err: ErrMissingColumn}
		}
	}

	c := &Catalog{}
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		var p Plant
		for _, col := range RequiredColumns {
			if i := index[col]; i < len(row) {
				*p.field(col) = row[i]
			}
		}
		p.clean()
		c.plants = append(c.plants, p)
	}
	return c, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
