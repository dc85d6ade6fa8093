package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/domain"
	"github.com/LinFrancis/aucca-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite mirrors a shell recording questions
// while the HTTP server lists the log.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewTestFileDB(t)
	ctx := context.Background()
	uow := db.NewSQLiteUnitOfWork(database)
	logs := NewSQLiteQueryLogRepo(database)
	gaps := NewSQLiteQueryGapRepo(database)

	const writes = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			q := testutil.NewTestQueryLog(fmt.Sprintf("pregunta %d", i%4))
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				if err := NewSQLiteQueryLogRepo(tx).Create(ctx, q); err != nil {
					return err
				}
				return NewSQLiteQueryGapRepo(tx).Record(ctx, q.Normalized, q.Query, q.CreatedAt)
			})
			if err != nil {
				t.Errorf("writer: record %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				entries, err := logs.ListRecent(ctx, writes)
				if err != nil {
					t.Errorf("reader %d: list recent: %v", reader, err)
					return
				}
				for _, e := range entries {
					if e.ID == "" || e.Normalized == "" {
						t.Errorf("reader %d: got a half-written entry", reader)
					}
				}
				if _, err := gaps.ListTop(ctx, 10); err != nil {
					t.Errorf("reader %d: list gaps: %v", reader, err)
					return
				}
			}
		}(r)
	}

	wg.Wait()

	entries, err := logs.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, entries, writes)

	top, err := gaps.ListTop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 4)
	for _, g := range top {
		assert.Equal(t, writes/4, g.Count, g.Normalized)
	}
}

// TestConcurrentAccess_GapCounterIsExact checks that concurrent upserts of
// the same question never lose an increment.
func TestConcurrentAccess_GapCounterIsExact(t *testing.T) {
	database := testutil.NewTestFileDB(t)
	ctx := context.Background()
	gaps := NewSQLiteQueryGapRepo(database)

	const writers, perWriter = 8, 10
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				q := testutil.NewTestQueryLog("¿Qué es la poda?")
				if err := gaps.Record(ctx, q.Normalized, q.Query, q.CreatedAt); err != nil {
					t.Errorf("writer %d: record: %v", writer, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	top, err := gaps.ListTop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, writers*perWriter, top[0].Count)
	assert.Equal(t, "que es la poda", top[0].Normalized)
}

// TestConcurrentAccess_StatsWhileWriting keeps CountByKind consistent with
// the rows it can see.
func TestConcurrentAccess_StatsWhileWriting(t *testing.T) {
	database := testutil.NewTestFileDB(t)
	ctx := context.Background()
	logs := NewSQLiteQueryLogRepo(database)

	kinds := []domain.ResultKind{domain.ResultSinglePlant, domain.ResultConceptAnswer, domain.ResultNotFound}
	const perKind = 5

	var wg sync.WaitGroup
	for _, k := range kinds {
		wg.Add(1)
		go func(kind domain.ResultKind) {
			defer wg.Done()
			for i := 0; i < perKind; i++ {
				if err := logs.Create(ctx, testutil.NewTestQueryLog("menta", testutil.WithKind(kind))); err != nil {
					t.Errorf("writer %s: %v", kind, err)
					return
				}
			}
		}(k)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			counts, err := logs.CountByKind(ctx)
			if err != nil {
				t.Errorf("stats: %v", err)
				return
			}
			for _, c := range counts {
				if c.Count <= 0 || c.Count > perKind {
					t.Errorf("stats: unexpected count %d for %s", c.Count, c.Kind)
				}
			}
		}
	}()
	wg.Wait()

	counts, err := logs.CountByKind(ctx)
	require.NoError(t, err)
	require.Len(t, counts, len(kinds))
	for _, c := range counts {
		assert.Equal(t, perKind, c.Count, c.Kind)
	}
}
