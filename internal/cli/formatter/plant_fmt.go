package formatter

import (
	"fmt"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/catalog"
)

// LocationUnavailable is shown when a plant has neither coordinates nor a
// zone map.
const LocationUnavailable = "Información de ubicación no disponible."

type plantSection struct {
	title   string
	columns []catalog.Column
}

var plantSections = []plantSection{
	{"🌿 Identificación", []catalog.Column{
		catalog.ColVernacular, catalog.ColScientific, catalog.ColFamily, catalog.ColCategory,
	}},
	{"🌱 Características y Servicios Ecosistémicos", []catalog.Column{
		catalog.ColNitrogenFixer, catalog.ColAccumulator, catalog.ColMinerals, catalog.ColProperties,
	}},
	{"📚 Guía para Cultivo", []catalog.Column{
		catalog.ColSowingSeason, catalog.ColMethod, catalog.ColDepth, catalog.ColGermination,
		catalog.ColTransplant, catalog.ColPlantSpacing, catalog.ColRowSpacing,
		catalog.ColHarvestTime, catalog.ColObservations,
	}},
}

// FormatPlant renders the detail card of a plant.
func FormatPlant(p catalog.Plant) string {
	var b strings.Builder
	b.WriteString(Header(p.DisplayName()))
	b.WriteString("\n")

	for _, sec := range plantSections {
		b.WriteString("\n" + Bold(sec.title) + "\n")
		for _, col := range sec.columns {
			writeField(&b, string(col), p.Field(col))
		}
	}

	b.WriteString("\n" + Bold("📍 Localización en Aucca") + "\n")
	b.WriteString(formatLocation(p))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(label+":"), value))
}

// formatLocation prefers coordinates, then the zone map image.
func formatLocation(p catalog.Plant) string {
	var b strings.Builder
	if p.Has(catalog.ColZone) {
		writeField(&b, string(catalog.ColZone), p.Zone)
	}
	if lat, lon, ok := p.Coordinates(); ok {
		writeField(&b, "Coordenadas", fmt.Sprintf("%.6f, %.6f", lat, lon))
		return b.String()
	}
	if p.Has(catalog.ColMapImage) {
		writeField(&b, "Mapa", p.MapImage)
		return b.String()
	}
	b.WriteString("  " + Dim(LocationUnavailable) + "\n")
	return b.String()
}

// FormatPlantList renders display names as a numbered list under title.
// The numbers let the shell pick an entry.
func FormatPlantList(title string, names []string) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(title) + "\n")
	for i, name := range names {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), name))
	}
	return b.String()
}

// FormatFilterSummary reports the plants passing the active filters, e.g.
// "Se encontraron 2 plantas disponibles: Menta (Mentha spicata), Ajo (Allium sativum)".
func FormatFilterSummary(plants *catalog.Catalog) string {
	names := plants.DisplayNames()
	if len(names) == 0 {
		return "No hay plantas que cumplan los filtros seleccionados."
	}
	return fmt.Sprintf("Se encontraron %d plantas disponibles: %s", len(names), strings.Join(names, ", "))
}

// FormatPlantTable renders plants as a compact table.
func FormatPlantTable(plants *catalog.Catalog) string {
	if plants.Len() == 0 {
		return Dim("No hay plantas en el catálogo.") + "\n"
	}
	headers := []string{"#", "PLANTA", "CATEGORÍA", "DISPONIBLE", "SIEMBRA"}
	var rows [][]string
	for i, p := range plants.Plants() {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.DisplayName(),
			p.Category,
			p.Availability,
			p.SowingMonths,
		})
	}
	return RenderTable(headers, rows)
}

// FormatSelection describes the active filters on one line, or "" when no
// filter is set.
func FormatSelection(sel catalog.Selection) string {
	if !sel.Active() {
		return ""
	}
	var parts []string
	add := func(label string, values ...string) {
		var kept []string
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			parts = append(parts, label+": "+strings.Join(kept, ", "))
		}
	}
	add("Disponible", sel.Availability)
	add("Meses", sel.Months...)
	add("Categoría", sel.Categories...)
	add("Fijador", sel.NitrogenFixer)
	add("Acumulador", sel.Accumulators...)
	add("Propiedades", sel.Properties...)
	return Dim("Filtros · " + strings.Join(parts, " · "))
}

// FormatOptions lists the selectable values of every filter dimension.
func FormatOptions(opts catalog.Options) string {
	var b strings.Builder
	b.WriteString(Header("Filtros disponibles") + "\n")
	dims := []struct {
		label  string
		flag   string
		values []string
	}{
		{"Disponibilidad en Aucca", "--available", opts.Availability},
		{"Meses de Siembra (Chile)", "--month", opts.Months},
		{"Categoría", "--category", opts.Categories},
		{"Fijador de Nitrógeno", "--nitrogen", opts.NitrogenFixer},
		{"Acumulador Dinámico", "--accumulator", opts.Accumulators},
		{"Propiedades Medicinales", "--property", opts.Properties},
	}
	for _, d := range dims {
		b.WriteString(fmt.Sprintf("\n%s %s\n", Bold(d.label), Dim(d.flag)))
		if len(d.values) == 0 {
			b.WriteString("  " + Dim("(sin valores)") + "\n")
			continue
		}
		b.WriteString(indentWrapped(strings.Join(d.values, ", "), 2, textWrapWidth) + "\n")
	}
	return b.String()
}
