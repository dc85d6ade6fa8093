package cli

import (
	"github.com/spf13/pflag"

	"github.com/LinFrancis/aucca-app/internal/catalog"
)

// selectionFlags binds the plant filters to command flags.
type selectionFlags struct {
	available    string
	months       []string
	categories   []string
	nitrogen     string
	accumulators []string
	properties   []string
}

// addSelectionFlags registers the filter flags on fs. List flags may be
// repeated or take comma separated values.
func addSelectionFlags(fs *pflag.FlagSet, f *selectionFlags) {
	fs.StringVar(&f.available, "available", "", "disponibilidad en Aucca (Sí o No)")
	fs.StringSliceVar(&f.months, "month", nil, "mes de siembra")
	fs.StringSliceVar(&f.categories, "category", nil, "categoría de planta")
	fs.StringVar(&f.nitrogen, "nitrogen", "", "fijador de nitrógeno (Sí o No)")
	fs.StringSliceVar(&f.accumulators, "accumulator", nil, "mineral que acumula")
	fs.StringSliceVar(&f.properties, "property", nil, "propiedad medicinal")
}

func (f *selectionFlags) selection() catalog.Selection {
	return catalog.Selection{
		Availability:  f.available,
		Months:        f.months,
		Categories:    f.categories,
		NitrogenFixer: f.nitrogen,
		Accumulators:  f.accumulators,
		Properties:    f.properties,
	}
}
