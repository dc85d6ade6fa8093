// Package resolver turns a free-text question into exactly one kiosk answer
// by running a fixed cascade of matchers over the plant catalog and the
// knowledge base.
package resolver

import (
	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
)

// NotFoundMessage is the reply given when no matcher produced an answer.
const NotFoundMessage = "Lo siento, no tengo información sobre eso. " +
	"Puedes preguntar por agroecología, compostaje, baños secos, biofiltros o escribir el nombre de una planta."

// Kind identifies the variant of a Result.
type Kind = domain.ResultKind

const (
	KindSinglePlant      = domain.ResultSinglePlant
	KindMultiplePlants   = domain.ResultMultiplePlants
	KindConceptAnswer    = domain.ResultConceptAnswer
	KindFuzzySuggestions = domain.ResultFuzzySuggestions
	KindNotFound         = domain.ResultNotFound
)

// Result is the outcome of resolving one query. It is implemented only by the
// types of this package.
type Result interface {
	Kind() Kind
	sealed()
}

// SinglePlant is returned when exactly one plant matched.
type SinglePlant struct {
	Plant catalog.Plant
}

// MultiplePlants is returned when several plants matched; the user picks one.
type MultiplePlants struct {
	Plants []catalog.Plant
}

// ConceptAnswer is a knowledge base answer with the other answers of its
// category. DidYouMean marks an answer found only by approximate matching.
type ConceptAnswer struct {
	Key        string
	Answer     string
	Related    []knowledge.Concept
	DidYouMean bool
}

// FuzzySuggestions lists plant display names close to the query, best first.
type FuzzySuggestions struct {
	Candidates []string
}

// NotFound carries the fixed apology message.
type NotFound struct {
	Message string
}

func (SinglePlant) Kind() Kind      { return KindSinglePlant }
func (MultiplePlants) Kind() Kind   { return KindMultiplePlants }
func (ConceptAnswer) Kind() Kind    { return KindConceptAnswer }
func (FuzzySuggestions) Kind() Kind { return KindFuzzySuggestions }
func (NotFound) Kind() Kind         { return KindNotFound }

func (SinglePlant) sealed()      {}
func (MultiplePlants) sealed()   {}
func (ConceptAnswer) sealed()    {}
func (FuzzySuggestions) sealed() {}
func (NotFound) sealed()         {}

func notFound() NotFound { return NotFound{Message: NotFoundMessage} }

// AnswerKey returns the concept key of a ConceptAnswer or the display name of
// a SinglePlant, and "" for the other variants.
func AnswerKey(r Result) string {
	switch v := r.(type) {
	case ConceptAnswer:
		return v.Key
	case SinglePlant:
		return v.Plant.DisplayName()
	}
	return ""
}
