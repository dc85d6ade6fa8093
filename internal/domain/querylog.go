package domain

import (
	"fmt"
	"strings"
	"time"
)

type ResultKind string

const (
	ResultSinglePlant      ResultKind = "single_plant"
	ResultMultiplePlants   ResultKind = "multiple_plants"
	ResultConceptAnswer    ResultKind = "concept_answer"
	ResultFuzzySuggestions ResultKind = "fuzzy_suggestions"
	ResultNotFound         ResultKind = "not_found"
)

// ValidResultKinds is the canonical set of accepted result kind strings.
var ValidResultKinds = map[string]bool{
	"single_plant": true, "multiple_plants": true, "concept_answer": true,
	"fuzzy_suggestions": true, "not_found": true,
}

func (k ResultKind) IsValid() bool { return ValidResultKinds[string(k)] }

// Answered reports whether k is a definite answer: a plant, a list of plants
// or a concept.
func (k ResultKind) Answered() bool {
	switch k {
	case ResultSinglePlant, ResultMultiplePlants, ResultConceptAnswer:
		return true
	}
	return false
}

// ParseResultKind converts a stored kind name back into a ResultKind.
func ParseResultKind(s string) (ResultKind, error) {
	if !ValidResultKinds[s] {
		return "", fmt.Errorf("unknown result kind %q", s)
	}
	return ResultKind(s), nil
}

type QuerySource string

const (
	SourceCLI   QuerySource = "cli"
	SourceShell QuerySource = "shell"
	SourceHTTP  QuerySource = "http"
)

// QueryLog records one resolved question.
type QueryLog struct {
	ID         string
	Query      string
	Normalized string
	Kind       ResultKind
	AnswerKey  string
	DidYouMean bool
	Source     QuerySource
	CreatedAt  time.Time
}

// Answered reports whether the kiosk gave a definite answer rather than
// suggestions or an apology.
func (q *QueryLog) Answered() bool { return q.Kind.Answered() }

// Validate checks the fields required before a log entry is stored.
func (q *QueryLog) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return fmt.Errorf("query log: query is required")
	}
	if !q.Kind.IsValid() {
		return fmt.Errorf("query log: invalid kind %q", q.Kind)
	}
	return nil
}

// QueryGap aggregates unanswered questions sharing a normalized form. Curators
// use gaps to decide which concepts to add next.
type QueryGap struct {
	Normalized  string
	SampleQuery string
	Count       int
	FirstSeen   time.Time
	LastSeen    time.Time
}

// KindCount is the number of logged queries resolved to one kind.
type KindCount struct {
	Kind  ResultKind
	Count int
}
