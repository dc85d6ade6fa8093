package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadFile(filepath.Join("testdata", "plantas_latin1.csv"))
	require.NoError(t, err)
	return c
}

func headerLine(skip Column) string {
	var cols []string
	for _, c := range RequiredColumns {
		if c != skip {
			cols = append(cols, string(c))
		}
	}
	return strings.Join(cols, ";")
}

func TestLoadFile_Latin1WithLegacyHeader(t *testing.T) {
	c := loadFixture(t)
	require.Equal(t, 4, c.Len())

	plants := c.Plants()
	assert.Equal(t, "Manzano (Malus domestica)", plants[0].DisplayName())
	assert.Equal(t, "Fabaceae", plants[3].Family)
	assert.Equal(t, "Sí", plants[3].NitrogenFixer)
	assert.Equal(t, "junio-julio-agosto", plants[0].SowingMonths)
	assert.Equal(t, "marzo; abril; mayo", plants[3].SowingMonths)
	assert.Equal(t, "Aromáticas", plants[2].Category)
}

func TestLoadFile_TrimsAndFillsMissing(t *testing.T) {
	plants := loadFixture(t).Plants()

	assert.Equal(t, "Manzano", plants[1].Vernacular)
	assert.Equal(t, NoData, plants[0].Germination)
	assert.Equal(t, NoData, plants[1].Accumulator)
	assert.Equal(t, NoData, plants[2].MapImage)
	assert.False(t, plants[1].Has(ColLatitude))
	assert.True(t, plants[0].Has(ColMapImage))
}

func TestLoad_UTF8WithBOM(t *testing.T) {
	src := "\ufeff" + headerLine("") + "\n" +
		"Ruda;Ruta graveolens;Rutaceae;Medicinales;No;;Repelente;;;;;;;;;;;;Sí;Jardín;;;\n"
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Ruda (Ruta graveolens)", c.Plants()[0].DisplayName())
	assert.Equal(t, NoData, c.Plants()[0].MapImage)
}

func TestLoad_ShortRowsFillWithNoData(t *testing.T) {
	src := headerLine("") + "\nRuda;Ruta graveolens\n"
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, NoData, c.Plants()[0].Zone)
}

func TestLoad_MissingColumn(t *testing.T) {
	src := headerLine(ColZone) + "\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ColZone, le.Column)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), `"Zona"`)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	var le *LoadError
	assert.True(t, errors.As(err, &le))
}

func TestLoadFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := LoadFile(path)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Source)
	assert.Contains(t, err.Error(), path)
}

func TestPlant_Coordinates(t *testing.T) {
	plants := loadFixture(t).Plants()

	lat, lon, ok := plants[0].Coordinates()
	require.True(t, ok)
	assert.InDelta(t, -33.665, lat, 1e-9)
	assert.InDelta(t, -70.928, lon, 1e-9)

	lat, _, ok = plants[2].Coordinates()
	require.True(t, ok)
	assert.InDelta(t, -33.6651, lat, 1e-9)

	_, _, ok = plants[1].Coordinates()
	assert.False(t, ok)

	bad := Plant{Latitude: "norte", Longitude: "-70"}
	_, _, ok = bad.Coordinates()
	assert.False(t, ok)
}

func TestPlant_DisplayNameFollowsNames(t *testing.T) {
	p := Plant{Vernacular: "Menta", Scientific: "Mentha spicata"}
	assert.Equal(t, "Menta (Mentha spicata)", p.DisplayName())
	p.Scientific = "Mentha piperita"
	assert.Equal(t, "Menta (Mentha piperita)", p.DisplayName())
}

func TestNew_CleansAndCopies(t *testing.T) {
	in := []Plant{{Vernacular: " Haba ", Scientific: "Vicia faba"}}
	c := New(in)
	assert.Equal(t, "Haba", c.Plants()[0].Vernacular)
	assert.Equal(t, NoData, c.Plants()[0].Zone)
	assert.Equal(t, " Haba ", in[0].Vernacular)
}

func TestCatalog_Find(t *testing.T) {
	c := loadFixture(t)
	p, ok := c.Find("Menta (Mentha spicata)")
	require.True(t, ok)
	assert.Equal(t, "Jardín", p.Zone)

	_, ok = c.Find("Menta")
	assert.False(t, ok)

	var nilCatalog *Catalog
	_, ok = nilCatalog.Find("Menta (Mentha spicata)")
	assert.False(t, ok)
	assert.Equal(t, 0, nilCatalog.Len())
	assert.Empty(t, nilCatalog.DisplayNames())
}
