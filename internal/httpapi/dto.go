package httpapi

import (
	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/resolver"
)

// SelectionDTO is the JSON form of catalog.Selection.
type SelectionDTO struct {
	Availability  string   `json:"availability,omitempty"`
	Months        []string `json:"months,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	NitrogenFixer string   `json:"nitrogen_fixer,omitempty"`
	Accumulators  []string `json:"accumulators,omitempty"`
	Properties    []string `json:"properties,omitempty"`
}

func (s SelectionDTO) toSelection() catalog.Selection {
	return catalog.Selection{
		Availability:  s.Availability,
		Months:        s.Months,
		Categories:    s.Categories,
		NitrogenFixer: s.NitrogenFixer,
		Accumulators:  s.Accumulators,
		Properties:    s.Properties,
	}
}

// ResolveRequest is the body of POST /resolve.
type ResolveRequest struct {
	Query     string       `json:"query"`
	Selection SelectionDTO `json:"selection"`
}

// PlantDTO carries every catalog field of a plant. Coordinates are omitted
// when the plant has none.
type PlantDTO struct {
	DisplayName   string   `json:"display_name"`
	Vernacular    string   `json:"vernacular"`
	Scientific    string   `json:"scientific"`
	Family        string   `json:"family"`
	Category      string   `json:"category"`
	NitrogenFixer string   `json:"nitrogen_fixer"`
	Accumulator   string   `json:"accumulator"`
	Properties    string   `json:"properties"`
	Minerals      string   `json:"minerals"`
	Observations  string   `json:"observations"`
	SowingSeason  string   `json:"sowing_season"`
	SowingMonths  string   `json:"sowing_months"`
	Method        string   `json:"method"`
	Depth         string   `json:"depth"`
	Germination   string   `json:"germination"`
	Transplant    string   `json:"transplant"`
	PlantSpacing  string   `json:"plant_spacing"`
	RowSpacing    string   `json:"row_spacing"`
	HarvestTime   string   `json:"harvest_time"`
	Availability  string   `json:"availability"`
	Zone          string   `json:"zone"`
	Latitude      *float64 `json:"lat,omitempty"`
	Longitude     *float64 `json:"lon,omitempty"`
	MapImage      string   `json:"map_image"`
}

func toPlantDTO(p catalog.Plant) PlantDTO {
	dto := PlantDTO{
		DisplayName:   p.DisplayName(),
		Vernacular:    p.Vernacular,
		Scientific:    p.Scientific,
		Family:        p.Family,
		Category:      p.Category,
		NitrogenFixer: p.NitrogenFixer,
		Accumulator:   p.Accumulator,
		Properties:    p.Properties,
		Minerals:      p.Minerals,
		Observations:  p.Observations,
		SowingSeason:  p.SowingSeason,
		SowingMonths:  p.SowingMonths,
		Method:        p.Method,
		Depth:         p.Depth,
		Germination:   p.Germination,
		Transplant:    p.Transplant,
		PlantSpacing:  p.PlantSpacing,
		RowSpacing:    p.RowSpacing,
		HarvestTime:   p.HarvestTime,
		Availability:  p.Availability,
		Zone:          p.Zone,
		MapImage:      p.MapImage,
	}
	if lat, lon, ok := p.Coordinates(); ok {
		dto.Latitude = &lat
		dto.Longitude = &lon
	}
	return dto
}

func toPlantDTOs(plants []catalog.Plant) []PlantDTO {
	out := make([]PlantDTO, 0, len(plants))
	for _, p := range plants {
		out = append(out, toPlantDTO(p))
	}
	return out
}

// ConceptDTO is one question and its answer.
type ConceptDTO struct {
	Key    string `json:"key"`
	Answer string `json:"answer"`
}

func toConceptDTOs(concepts []knowledge.Concept) []ConceptDTO {
	out := make([]ConceptDTO, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, ConceptDTO{Key: c.Key, Answer: c.Answer})
	}
	return out
}

// ResultDTO is the JSON form of a resolver result. Kind decides which of the
// other fields are set.
type ResultDTO struct {
	Kind       string       `json:"kind"`
	Plant      *PlantDTO    `json:"plant,omitempty"`
	Plants     []PlantDTO   `json:"plants,omitempty"`
	Concept    *ConceptDTO  `json:"concept,omitempty"`
	DidYouMean bool         `json:"did_you_mean,omitempty"`
	Related    []ConceptDTO `json:"related,omitempty"`
	Candidates []string     `json:"candidates,omitempty"`
	Message    string       `json:"message,omitempty"`
}

func toResultDTO(r resolver.Result) ResultDTO {
	dto := ResultDTO{Kind: string(r.Kind())}
	switch v := r.(type) {
	case resolver.SinglePlant:
		p := toPlantDTO(v.Plant)
		dto.Plant = &p
	case resolver.MultiplePlants:
		dto.Plants = toPlantDTOs(v.Plants)
	case resolver.ConceptAnswer:
		dto.Concept = &ConceptDTO{Key: v.Key, Answer: v.Answer}
		dto.DidYouMean = v.DidYouMean
		dto.Related = toConceptDTOs(v.Related)
	case resolver.FuzzySuggestions:
		dto.Candidates = v.Candidates
	case resolver.NotFound:
		dto.Message = v.Message
	}
	return dto
}

// OptionsDTO is the JSON form of catalog.Options.
type OptionsDTO struct {
	Availability  []string `json:"availability"`
	Months        []string `json:"months"`
	Categories    []string `json:"categories"`
	NitrogenFixer []string `json:"nitrogen_fixer"`
	Accumulators  []string `json:"accumulators"`
	Properties    []string `json:"properties"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toOptionsDTO(o catalog.Options) OptionsDTO {
	return OptionsDTO{
		Availability:  nonNil(o.Availability),
		Months:        nonNil(o.Months),
		Categories:    nonNil(o.Categories),
		NitrogenFixer: nonNil(o.NitrogenFixer),
		Accumulators:  nonNil(o.Accumulators),
		Properties:    nonNil(o.Properties),
	}
}

// TopicDTO summarizes one knowledge category.
type TopicDTO struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}
