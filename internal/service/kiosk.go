package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/repository"
	"github.com/LinFrancis/aucca-app/internal/resolver"
	"github.com/LinFrancis/aucca-app/internal/textnorm"
	"github.com/google/uuid"
)

// ErrQueryLogDisabled is returned by the query log use cases when the kiosk
// runs without a database.
var ErrQueryLogDisabled = errors.New("query log is disabled")

// Kiosk answers visitor questions against the shared knowledge base and plant
// catalog and, when configured, keeps a log of what was asked.
type Kiosk struct {
	plants   *catalog.Catalog
	kb       *knowledge.Base
	opts     resolver.Options
	logs     repository.QueryLogRepo
	gaps     repository.QueryGapRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

type KioskOption func(*Kiosk)

func WithResolverOptions(o resolver.Options) KioskOption {
	return func(k *Kiosk) {
		k.opts = o
	}
}

// WithQueryLog enables recording of questions. Writes go through uow so an
// entry and its gap counter are stored together.
func WithQueryLog(logs repository.QueryLogRepo, gaps repository.QueryGapRepo, uow db.UnitOfWork) KioskOption {
	return func(k *Kiosk) {
		k.logs = logs
		k.gaps = gaps
		k.uow = uow
	}
}

func WithObserver(obs UseCaseObserver) KioskOption {
	return func(k *Kiosk) {
		k.observer = obs
	}
}

func WithClock(now func() time.Time) KioskOption {
	return func(k *Kiosk) {
		k.now = now
	}
}

func NewKiosk(plants *catalog.Catalog, kb *knowledge.Base, opts ...KioskOption) *Kiosk {
	k := &Kiosk{
		plants: plants,
		kb:     kb,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(k)
	}
	k.observer = useCaseObserverOrNoop([]UseCaseObserver{k.observer})
	return k
}

// Knowledge returns the knowledge base the kiosk answers from.
func (k *Kiosk) Knowledge() *knowledge.Base { return k.kb }

// QueryLogEnabled reports whether questions are being recorded.
func (k *Kiosk) QueryLogEnabled() bool { return k.uow != nil && k.logs != nil }

// Ask resolves raw against the catalog narrowed by the session filters and
// stores the outcome in sess. The result is always returned; the error only
// reports a failure to record the question.
func (k *Kiosk) Ask(ctx context.Context, sess *Session, raw string, source domain.QuerySource) (resolver.Result, error) {
	start := time.Now()

	r := resolver.Resolve(raw, k.plants.Filter(sess.Selection()), k.kb, k.opts)
	sess.record(raw, r)
	err := k.recordQuery(ctx, raw, r, source)

	k.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "ask",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"kind":       string(r.Kind()),
			"source":     string(source),
			"answer_key": resolver.AnswerKey(r),
		},
	})
	return r, err
}

func (k *Kiosk) recordQuery(ctx context.Context, raw string, r resolver.Result, source domain.QuerySource) error {
	if !k.QueryLogEnabled() {
		return nil
	}
	query := strings.TrimSpace(raw)
	if query == "" {
		return nil
	}

	entry := &domain.QueryLog{
		ID:         uuid.New().String(),
		Query:      query,
		Normalized: textnorm.Normalize(query),
		Kind:       r.Kind(),
		AnswerKey:  resolver.AnswerKey(r),
		Source:     source,
		CreatedAt:  k.now(),
	}
	if ca, ok := r.(resolver.ConceptAnswer); ok {
		entry.DidYouMean = ca.DidYouMean
	}

	err := k.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteQueryLogRepo(tx).Create(ctx, entry); err != nil {
			return err
		}
		if entry.Kind != domain.ResultNotFound || entry.Normalized == "" {
			return nil
		}
		return repository.NewSQLiteQueryGapRepo(tx).Record(ctx, entry.Normalized, entry.Query, entry.CreatedAt)
	})
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return nil
}

// Suggest lists completions for a partial question among the plants visible
// under the session filters.
func (k *Kiosk) Suggest(sess *Session, raw string) resolver.Suggestions {
	return resolver.Suggest(raw, k.plants.Filter(sess.Selection()), k.kb)
}

// SelectPlant shows the named plant, as when the visitor picks one of several
// matches or suggestions.
func (k *Kiosk) SelectPlant(sess *Session, displayName string) (resolver.Result, bool) {
	r, ok := resolver.SelectPlant(displayName, k.plants)
	if ok {
		sess.show(r)
	}
	return r, ok
}

// SelectConcept shows the answer stored under key with its related bundle.
func (k *Kiosk) SelectConcept(sess *Session, key string) (resolver.Result, bool) {
	r, ok := resolver.SelectConcept(key, k.kb)
	if ok {
		sess.show(r)
	}
	return r, ok
}

// Plants returns the catalog narrowed by sel.
func (k *Kiosk) Plants(sel catalog.Selection) *catalog.Catalog {
	return k.plants.Filter(sel)
}

// FilterOptions lists the selectable values of every filter dimension.
func (k *Kiosk) FilterOptions() catalog.Options {
	return k.plants.Options()
}

// FindPlant looks a plant up by display name in the whole catalog.
func (k *Kiosk) FindPlant(displayName string) (catalog.Plant, bool) {
	return k.plants.Find(displayName)
}

// Topic summarizes one knowledge category.
type Topic struct {
	Category knowledge.Category
	Label    string
	Count    int
}

// Topics lists every category in priority order with its concept count.
func (k *Kiosk) Topics() []Topic {
	var out []Topic
	for _, c := range knowledge.Categories() {
		out = append(out, Topic{Category: c, Label: c.Label(), Count: len(k.kb.Members(c))})
	}
	return out
}

// TopicConcepts returns the concepts of a category in stored order.
func (k *Kiosk) TopicConcepts(c knowledge.Category) []knowledge.Concept {
	return k.kb.Members(c)
}

// ConceptKey maps question to the stored key it names, ignoring case,
// accents and punctuation. When two keys normalize alike the later one wins.
func (k *Kiosk) ConceptKey(question string) (string, bool) {
	if _, ok := k.kb.Lookup(question); ok {
		return question, true
	}
	norm := textnorm.Normalize(question)
	if norm == "" {
		return "", false
	}
	keys := k.kb.Keys()
	normalized := k.kb.NormalizedKeys()
	for i := len(normalized) - 1; i >= 0; i-- {
		if normalized[i] == norm {
			return keys[i], true
		}
	}
	return "", false
}

// Related returns the related bundle of the concept named by key. ok is
// false when key names no concept.
func (k *Kiosk) Related(key string) (related []knowledge.Concept, ok bool) {
	canonical, found := k.ConceptKey(key)
	if !found {
		return nil, false
	}
	return k.kb.Related(canonical), true
}

func (k *Kiosk) RecentQueries(ctx context.Context, limit int) ([]*domain.QueryLog, error) {
	if !k.QueryLogEnabled() {
		return nil, ErrQueryLogDisabled
	}
	return k.logs.ListRecent(ctx, limit)
}

// UnansweredQueries lists the most frequent questions that got no answer.
func (k *Kiosk) UnansweredQueries(ctx context.Context, limit int) ([]domain.QueryGap, error) {
	if !k.QueryLogEnabled() || k.gaps == nil {
		return nil, ErrQueryLogDisabled
	}
	return k.gaps.ListTop(ctx, limit)
}

func (k *Kiosk) QueryStats(ctx context.Context) ([]domain.KindCount, error) {
	if !k.QueryLogEnabled() {
		return nil, ErrQueryLogDisabled
	}
	return k.logs.CountByKind(ctx)
}

// DismissGap forgets an unanswered question, typically after a concept was
// added for it. The text is normalized before lookup.
func (k *Kiosk) DismissGap(ctx context.Context, question string) error {
	if !k.QueryLogEnabled() || k.gaps == nil {
		return ErrQueryLogDisabled
	}
	return k.gaps.Delete(ctx, textnorm.Normalize(question))
}

// PruneQueries deletes log entries older than age.
func (k *Kiosk) PruneQueries(ctx context.Context, age time.Duration) (int64, error) {
	if !k.QueryLogEnabled() {
		return 0, ErrQueryLogDisabled
	}
	return k.logs.DeleteBefore(ctx, k.now().Add(-age))
}
