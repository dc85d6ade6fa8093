package testutil

import (
	"testing"
	"time"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/textnorm"
	"github.com/google/uuid"
)

// Plant options
type PlantOption func(*catalog.Plant)

func WithCategory(c string) PlantOption {
	return func(p *catalog.Plant) {
		p.Category = c
	}
}

func WithSowingMonths(m string) PlantOption {
	return func(p *catalog.Plant) {
		p.SowingMonths = m
	}
}

func WithAvailability(a string) PlantOption {
	return func(p *catalog.Plant) {
		p.Availability = a
	}
}

func WithNitrogenFixer(v string) PlantOption {
	return func(p *catalog.Plant) {
		p.NitrogenFixer = v
	}
}

func WithAccumulator(v string) PlantOption {
	return func(p *catalog.Plant) {
		p.Accumulator = v
	}
}

func WithProperties(v string) PlantOption {
	return func(p *catalog.Plant) {
		p.Properties = v
	}
}

func WithCoordinates(lat, lon string) PlantOption {
	return func(p *catalog.Plant) {
		p.Latitude = lat
		p.Longitude = lon
	}
}

func WithMapImage(path string) PlantOption {
	return func(p *catalog.Plant) {
		p.MapImage = path
	}
}

func WithZone(z string) PlantOption {
	return func(p *catalog.Plant) {
		p.Zone = z
	}
}

// NewTestPlant builds a plant with the given names. Fields not set by an
// option hold catalog.NoData once the plant goes through NewTestCatalog.
func NewTestPlant(vernacular, scientific string, opts ...PlantOption) catalog.Plant {
	p := catalog.Plant{
		Vernacular: vernacular,
		Scientific: scientific,
		Family:     "Familia de prueba",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestCatalog wraps plants in a catalog, cleaning them like loaded rows.
func NewTestCatalog(plants ...catalog.Plant) *catalog.Catalog {
	return catalog.New(plants)
}

// NewTestBase returns the embedded knowledge base.
func NewTestBase(t *testing.T) *knowledge.Base {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("failed to load knowledge base: %v", err)
	}
	return kb
}

// QueryLog options
type QueryLogOption func(*domain.QueryLog)

func WithKind(k domain.ResultKind) QueryLogOption {
	return func(q *domain.QueryLog) {
		q.Kind = k
	}
}

func WithAnswerKey(key string) QueryLogOption {
	return func(q *domain.QueryLog) {
		q.AnswerKey = key
	}
}

func WithSource(s domain.QuerySource) QueryLogOption {
	return func(q *domain.QueryLog) {
		q.Source = s
	}
}

func WithCreatedAt(t time.Time) QueryLogOption {
	return func(q *domain.QueryLog) {
		q.CreatedAt = t
	}
}

func WithDidYouMean() QueryLogOption {
	return func(q *domain.QueryLog) {
		q.DidYouMean = true
	}
}

// NewTestQueryLog builds an unanswered query log entry for query.
func NewTestQueryLog(query string, opts ...QueryLogOption) *domain.QueryLog {
	q := &domain.QueryLog{
		ID:         uuid.New().String(),
		Query:      query,
		Normalized: textnorm.Normalize(query),
		Kind:       domain.ResultNotFound,
		Source:     domain.SourceCLI,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}
