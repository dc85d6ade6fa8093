// Package catalog holds the plant catalog of the center: loading it from the
// delimited export, narrowing it with filters and listing filter options.
package catalog

import (
	"strconv"
	"strings"
)

// NoData marks a field with no value in the source table.
const NoData = "Sin información"

// Column is the exact header of a catalog column.
type Column string

const (
	ColVernacular    Column = "Nombre vulgar"
	ColScientific    Column = "Nombre Científico"
	ColFamily        Column = "Familia"
	ColCategory      Column = "Categoria"
	ColNitrogenFixer Column = "Fijador de Nitrógeno"
	ColAccumulator   Column = "Acumulador Dinámico"
	ColProperties    Column = "Propiedades"
	ColMinerals      Column = "Minerales"
	ColObservations  Column = "Observaciones"
	ColSowingSeason  Column = "Época de siembra (CHILE)"
	ColSowingMonths  Column = "Meses Siembra (Chile)"
	ColMethod        Column = "Método"
	ColDepth         Column = "Profundidad de Siembra"
	ColGermination   Column = "Tiempo de germinar"
	ColTransplant    Column = "Transplante"
	ColPlantSpacing  Column = "Distancia entre (Plantas)"
	ColRowSpacing    Column = "Distancia entre (hileras)"
	ColHarvestTime   Column = "Tiempo para cosechar"
	ColAvailability  Column = "Disponible Nov 2024"
	ColZone          Column = "Zona"
	ColLatitude      Column = "lat"
	ColLongitude     Column = "lon"
	ColMapImage      Column = "ruta mapa"
)

// RequiredColumns lists every column the loader expects, in export order.
var RequiredColumns = []Column{
	ColVernacular, ColScientific, ColFamily, ColCategory,
	ColNitrogenFixer, ColAccumulator, ColProperties, ColMinerals, ColObservations,
	ColSowingSeason, ColSowingMonths, ColMethod, ColDepth, ColGermination, ColTransplant,
	ColPlantSpacing, ColRowSpacing, ColHarvestTime,
	ColAvailability, ColZone, ColLatitude, ColLongitude, ColMapImage,
}

// Plant is one row of the catalog. Every field is trimmed and a missing
// value holds NoData.
type Plant struct {
	Vernacular    string
	Scientific    string
	Family        string
	Category      string
	NitrogenFixer string
	Accumulator   string
	Properties    string
	Minerals      string
	Observations  string
	SowingSeason  string
	SowingMonths  string
	Method        string
	Depth         string
	Germination   string
	Transplant    string
	PlantSpacing  string
	RowSpacing    string
	HarvestTime   string
	Availability  string
	Zone          string
	Latitude      string
	Longitude     string
	MapImage      string
}

// DisplayName is "{vernacular} ({scientific})". It is derived on every call
// so it always reflects the current names.
func (p Plant) DisplayName() string {
	return p.Vernacular + " (" + p.Scientific + ")"
}

// Field returns the value stored under column c.
func (p Plant) Field(c Column) string {
	if f := p.field(c); f != nil {
		return *f
	}
	return ""
}

// Has reports whether column c holds a value.
func (p Plant) Has(c Column) bool {
	v := p.Field(c)
	return v != "" && v != NoData
}

// Coordinates parses the latitude and longitude fields. Decimal commas are
// accepted. ok is false when either value is missing or not a number.
func (p Plant) Coordinates() (lat, lon float64, ok bool) {
	if !p.Has(ColLatitude) || !p.Has(ColLongitude) {
		return 0, 0, false
	}
	lat, err := parseDecimal(p.Latitude)
	if err != nil {
		return 0, 0, false
	}
	lon, err = parseDecimal(p.Longitude)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// clean trims every field and fills empty ones with NoData.
func (p *Plant) clean() {
	for _, c := range RequiredColumns {
		f := p.field(c)
		*f = cleanValue(*f)
	}
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NoData
	}
	return v
}

func (p *Plant) field(c Column) *string {
	switch c {
	case ColVernacular:
		return &p.Vernacular
	case ColScientific:
		return &p.Scientific
	case ColFamily:
		return &p.Family
	case ColCategory:
		return &p.Category
	case ColNitrogenFixer:
		return &p.NitrogenFixer
	case ColAccumulator:
		return &p.Accumulator
	case ColProperties:
		return &p.Properties
	case ColMinerals:
		return &p.Minerals
	case ColObservations:
		return &p.Observations
	case ColSowingSeason:
		return &p.SowingSeason
	case ColSowingMonths:
		return &p.SowingMonths
	case ColMethod:
		return &p.Method
	case ColDepth:
		return &p.Depth
	case ColGermination:
		return &p.Germination
	case ColTransplant:
		return &p.Transplant
	case ColPlantSpacing:
		return &p.PlantSpacing
	case ColRowSpacing:
		return &p.RowSpacing
	case ColHarvestTime:
		return &p.HarvestTime
	case ColAvailability:
		return &p.Availability
	case ColZone:
		return &p.Zone
	case ColLatitude:
		return &p.Latitude
	case ColLongitude:
		return &p.Longitude
	case ColMapImage:
		return &p.MapImage
	}
	return nil
}
