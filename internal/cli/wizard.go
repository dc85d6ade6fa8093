package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
)

// auccaHuhTheme returns a huh theme using the formatter palette.
func auccaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[•] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// filterAnswers receives the wizard choices. It starts from the current
// selection so the wizard opens with the active filters marked.
type filterAnswers struct {
	availability string
	months       []string
	categories   []string
	nitrogen     string
	accumulators []string
	properties   []string
}

func newFilterAnswers(sel catalog.Selection) *filterAnswers {
	return &filterAnswers{
		availability: sel.Availability,
		months:       sel.Months,
		categories:   sel.Categories,
		nitrogen:     sel.NitrogenFixer,
		accumulators: sel.Accumulators,
		properties:   sel.Properties,
	}
}

func (a *filterAnswers) selection() catalog.Selection {
	return catalog.Selection{
		Availability:  a.availability,
		Months:        a.months,
		Categories:    a.categories,
		NitrogenFixer: a.nitrogen,
		Accumulators:  a.accumulators,
		Properties:    a.properties,
	}
}

// wizardFilters builds one step per filter dimension that has values in the
// catalog. It returns nil when no dimension has any.
func wizardFilters(opts catalog.Options, a *filterAnswers) *huh.Form {
	var groups []*huh.Group

	if len(opts.Availability) > 0 {
		groups = append(groups, huh.NewGroup(singleChoice("Disponibilidad en Aucca", opts.Availability, &a.availability)))
	}
	if len(opts.Months) > 0 {
		groups = append(groups, huh.NewGroup(multiChoice("Meses de siembra", opts.Months, &a.months)))
	}
	if len(opts.Categories) > 0 {
		groups = append(groups, huh.NewGroup(multiChoice("Categoría", opts.Categories, &a.categories)))
	}
	if len(opts.NitrogenFixer) > 0 {
		groups = append(groups, huh.NewGroup(singleChoice("Fijador de nitrógeno", opts.NitrogenFixer, &a.nitrogen)))
	}
	if len(opts.Accumulators) > 0 {
		groups = append(groups, huh.NewGroup(multiChoice("Acumulador dinámico", opts.Accumulators, &a.accumulators)))
	}
	if len(opts.Properties) > 0 {
		groups = append(groups, huh.NewGroup(multiChoice("Propiedades medicinales", opts.Properties, &a.properties)))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(auccaHuhTheme()).WithShowHelp(false)
}

// singleChoice offers "Todas" (no filter) followed by values.
func singleChoice(title string, values []string, value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(values)+1)
	options = append(options, huh.NewOption("Todas", ""))
	for _, v := range values {
		options = append(options, huh.NewOption(v, v))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value)
}

func multiChoice(title string, values []string, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title(title).
		Description("Espacio marca, Enter continúa. Sin marcas no se filtra.").
		Options(huh.NewOptions(values...)...).
		Value(value)
}
