package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/LinFrancis/aucca-app/internal/repository"
	"github.com/LinFrancis/aucca-app/internal/resolver"
	"github.com/LinFrancis/aucca-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orchardCatalog() *catalog.Catalog {
	return testutil.NewTestCatalog(
		testutil.NewTestPlant("Manzano", "Malus domestica",
			testutil.WithCategory("Frutales"), testutil.WithAvailability("Sí")),
		testutil.NewTestPlant("Manzano", "Malus sylvestris",
			testutil.WithCategory("Frutales"), testutil.WithAvailability("No")),
		testutil.NewTestPlant("Menta", "Mentha spicata",
			testutil.WithCategory("Aromáticas"), testutil.WithAvailability("Sí")),
	)
}

func newLoggedKiosk(t *testing.T, database *sql.DB, uow db.UnitOfWork, opts ...KioskOption) *Kiosk {
	t.Helper()
	opts = append([]KioskOption{WithQueryLog(
		repository.NewSQLiteQueryLogRepo(database),
		repository.NewSQLiteQueryGapRepo(database),
		uow,
	)}, opts...)
	return NewKiosk(orchardCatalog(), testutil.NewTestBase(t), opts...)
}

func TestKiosk_AskWithoutQueryLog(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))
	sess := NewSession(catalog.Selection{})
	ctx := context.Background()

	r, err := k.Ask(ctx, sess, "qué es aucca", domain.SourceCLI)
	require.NoError(t, err)
	ca, ok := r.(resolver.ConceptAnswer)
	require.True(t, ok)
	assert.Equal(t, "qué es aucca", ca.Key)
	assert.Equal(t, "qué es aucca", sess.LastQuery())
	assert.Equal(t, r, sess.LastResult())

	assert.False(t, k.QueryLogEnabled())
	_, err = k.RecentQueries(ctx, 5)
	assert.ErrorIs(t, err, ErrQueryLogDisabled)
	_, err = k.UnansweredQueries(ctx, 5)
	assert.ErrorIs(t, err, ErrQueryLogDisabled)
	_, err = k.QueryStats(ctx)
	assert.ErrorIs(t, err, ErrQueryLogDisabled)
	_, err = k.PruneQueries(ctx, time.Hour)
	assert.ErrorIs(t, err, ErrQueryLogDisabled)
	assert.ErrorIs(t, k.DismissGap(ctx, "x"), ErrQueryLogDisabled)
}

func TestKiosk_AskHonorsSessionFilters(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))
	ctx := context.Background()

	all, err := k.Ask(ctx, NewSession(catalog.Selection{}), "manzano", domain.SourceCLI)
	require.NoError(t, err)
	assert.Equal(t, resolver.KindMultiplePlants, all.Kind())

	available, err := k.Ask(ctx, NewSession(catalog.Selection{Availability: "Sí"}), "manzano", domain.SourceCLI)
	require.NoError(t, err)
	single, ok := available.(resolver.SinglePlant)
	require.True(t, ok)
	assert.Equal(t, "Manzano (Malus domestica)", single.Plant.DisplayName())
}

func TestKiosk_AskRecordsQueries(t *testing.T) {
	database := testutil.NewTestDB(t)
	t0 := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	k := newLoggedKiosk(t, database, testutil.NewTestUoW(database), WithClock(func() time.Time { return t0 }))
	sess := NewSession(catalog.Selection{})
	ctx := context.Background()

	_, err := k.Ask(ctx, sess, "  ¿Qué es AUCCA?  ", domain.SourceShell)
	require.NoError(t, err)
	_, err = k.Ask(ctx, sess, "zzzz", domain.SourceHTTP)
	require.NoError(t, err)
	_, err = k.Ask(ctx, sess, "ZZZZ!", domain.SourceCLI)
	require.NoError(t, err)
	_, err = k.Ask(ctx, sess, "   ", domain.SourceCLI)
	require.NoError(t, err)

	recent, err := k.RecentQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3, "blank questions are not recorded")

	var asked *domain.QueryLog
	for _, q := range recent {
		if q.Kind == domain.ResultConceptAnswer {
			asked = q
		}
	}
	require.NotNil(t, asked)
	assert.Equal(t, "¿Qué es AUCCA?", asked.Query)
	assert.Equal(t, "que es aucca", asked.Normalized)
	assert.Equal(t, "qué es aucca", asked.AnswerKey)
	assert.Equal(t, domain.SourceShell, asked.Source)
	assert.True(t, t0.Equal(asked.CreatedAt))

	gaps, err := k.UnansweredQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.Equal(t, "zzzz", gaps[0].Normalized)
	assert.Equal(t, "zzzz", gaps[0].SampleQuery)
	assert.Equal(t, 2, gaps[0].Count)

	stats, err := k.QueryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.KindCount{
		{Kind: domain.ResultNotFound, Count: 2},
		{Kind: domain.ResultConceptAnswer, Count: 1},
	}, stats)
}

func TestKiosk_AskRecordsDidYouMean(t *testing.T) {
	database := testutil.NewTestDB(t)
	k := newLoggedKiosk(t, database, testutil.NewTestUoW(database))
	ctx := context.Background()

	r, err := k.Ask(ctx, NewSession(catalog.Selection{}), "que es la agroekologia", domain.SourceCLI)
	require.NoError(t, err)
	require.True(t, r.(resolver.ConceptAnswer).DidYouMean)

	recent, err := k.RecentQueries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].DidYouMean)
	assert.Equal(t, "qué es la agroecología", recent[0].AnswerKey)
}

func TestKiosk_AskRollsBackGapOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	// ExecContext #1 inserts the log entry, #2 upserts the gap.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    errors.New("injected gap failure"),
	}
	k := newLoggedKiosk(t, database, failUoW)
	sess := NewSession(catalog.Selection{})
	ctx := context.Background()

	r, err := k.Ask(ctx, sess, "zzzz", domain.SourceCLI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected gap failure")
	assert.Equal(t, resolver.KindNotFound, r.Kind(), "the answer survives a logging failure")
	assert.Equal(t, r, sess.LastResult())

	recent, err := k.RecentQueries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "log entry should be rolled back with the gap")
	gaps, err := k.UnansweredQueries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

func TestKiosk_AskAnsweredQueryDoesNotTouchGaps(t *testing.T) {
	database := testutil.NewTestDB(t)
	// An answered question issues a single write, so a failure on the
	// second one is never reached.
	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("unreachable")}
	k := newLoggedKiosk(t, database, failUoW)

	_, err := k.Ask(context.Background(), NewSession(catalog.Selection{}), "menta", domain.SourceCLI)
	require.NoError(t, err)
}

func TestKiosk_AskNotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t), WithObserver(obs))

	_, err := k.Ask(context.Background(), NewSession(catalog.Selection{}), "menta", domain.SourceHTTP)
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "ask", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, "single_plant", e.Fields["kind"])
	assert.Equal(t, "http", e.Fields["source"])
	assert.Equal(t, "Menta (Mentha spicata)", e.Fields["answer_key"])
}

func TestKiosk_PruneAndDismiss(t *testing.T) {
	database := testutil.NewTestDB(t)
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	k := newLoggedKiosk(t, database, testutil.NewTestUoW(database), WithClock(func() time.Time { return now }))
	sess := NewSession(catalog.Selection{})
	ctx := context.Background()

	_, err := k.Ask(ctx, sess, "zzzz", domain.SourceCLI)
	require.NoError(t, err)
	now = now.Add(48 * time.Hour)
	_, err = k.Ask(ctx, sess, "menta", domain.SourceCLI)
	require.NoError(t, err)

	n, err := k.PruneQueries(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	recent, err := k.RecentQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "menta", recent[0].Query)

	require.NoError(t, k.DismissGap(ctx, "  ZZZZ "))
	assert.ErrorIs(t, k.DismissGap(ctx, "zzzz"), repository.ErrNotFound)
}

func TestKiosk_SelectPlantAndConcept(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))
	sess := NewSession(catalog.Selection{Availability: "No"})
	sess.record("manzano", resolver.NotFound{})

	r, ok := k.SelectPlant(sess, "Menta (Mentha spicata)")
	require.True(t, ok, "picking a plant looks in the whole catalog")
	assert.Equal(t, resolver.KindSinglePlant, r.Kind())
	assert.Equal(t, r, sess.LastResult())
	assert.Equal(t, "manzano", sess.LastQuery())

	_, ok = k.SelectPlant(sess, "Menta")
	assert.False(t, ok)

	r, ok = k.SelectConcept(sess, "cómo se usa el baño seco")
	require.True(t, ok)
	ca := r.(resolver.ConceptAnswer)
	require.NotEmpty(t, ca.Related)
	assert.Equal(t, "qué es el baño seco", ca.Related[0].Key)

	_, ok = k.SelectConcept(sess, "no existe")
	assert.False(t, ok)
}

func TestKiosk_SuggestUsesSessionFilters(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))

	all := k.Suggest(NewSession(catalog.Selection{}), "man")
	assert.Equal(t, []string{"Manzano (Malus domestica)", "Manzano (Malus sylvestris)"}, all.Plants)

	narrowed := k.Suggest(NewSession(catalog.Selection{Availability: "No"}), "man")
	assert.Equal(t, []string{"Manzano (Malus sylvestris)"}, narrowed.Plants)
}

func TestKiosk_CatalogViews(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))

	assert.Equal(t, 3, k.Plants(catalog.Selection{}).Len())
	assert.Equal(t, 2, k.Plants(catalog.Selection{Categories: []string{"frutales"}}).Len())

	opts := k.FilterOptions()
	assert.Equal(t, []string{"No", "Sí"}, opts.Availability)
	assert.Equal(t, []string{"aromáticas", "frutales"}, opts.Categories)

	p, ok := k.FindPlant("Menta (Mentha spicata)")
	require.True(t, ok)
	assert.Equal(t, "Aromáticas", p.Category)
}

func TestKiosk_Topics(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))

	topics := k.Topics()
	require.Len(t, topics, 5)
	got := map[knowledge.Category]int{}
	for _, tp := range topics {
		got[tp.Category] = tp.Count
		assert.NotEmpty(t, tp.Label)
	}
	assert.Equal(t, knowledge.DryToilet, topics[0].Category)
	assert.Equal(t, 10, got[knowledge.DryToilet])
	assert.Equal(t, 30, got[knowledge.Compost])
	assert.Equal(t, 15, got[knowledge.General])

	concepts := k.TopicConcepts(knowledge.General)
	require.Len(t, concepts, 15)
	assert.Equal(t, "qué es aucca", concepts[0].Key)
}

func TestKiosk_Related(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))

	related, ok := k.Related("qué es aucca")
	require.True(t, ok)
	assert.Len(t, related, 14)

	_, ok = k.Related("no existe")
	assert.False(t, ok)
}

func TestKiosk_ConceptKey(t *testing.T) {
	k := NewKiosk(orchardCatalog(), testutil.NewTestBase(t))

	key, ok := k.ConceptKey("¿Qué es AUCCA?")
	require.True(t, ok)
	assert.Equal(t, "qué es aucca", key)

	related, ok := k.Related("QUE ES AUCCA")
	require.True(t, ok)
	assert.Len(t, related, 14)

	_, ok = k.ConceptKey("¿?")
	assert.False(t, ok)
}
