package service

import (
	"context"
	"fmt"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/config"
	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Resources are the read-only data sets a kiosk answers from.
type Resources struct {
	Plants    *catalog.Catalog
	Knowledge *knowledge.Base
}

// LoadResources builds the knowledge base and reads the plant catalog
// concurrently. Knowledge base consistency problems are logged as warnings;
// a broken definition or an unreadable catalog is an error.
func LoadResources(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Resources, error) {
	var res Resources
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		kb, err := loadKnowledge(cfg)
		if err != nil {
			return err
		}
		res.Knowledge = kb
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.PlantsCSV == "" {
			res.Plants = catalog.New(nil)
			return nil
		}
		plants, err := catalog.LoadFile(cfg.PlantsCSV)
		if err != nil {
			return fmt.Errorf("loading plant catalog: %w", err)
		}
		res.Plants = plants
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, w := range res.Knowledge.Validate() {
		logger.Warn().Str("component", "knowledge").Msg(w)
	}
	logger.Debug().
		Int("concepts", res.Knowledge.Len()).
		Int("plants", res.Plants.Len()).
		Str("plants_csv", cfg.PlantsCSV).
		Msg("resources loaded")
	return &res, nil
}

func loadKnowledge(cfg config.Config) (*knowledge.Base, error) {
	var (
		kb  *knowledge.Base
		err error
	)
	if cfg.KnowledgeFile == "" && cfg.DocumentFile == "" {
		kb, err = knowledge.Default()
	} else {
		kb, err = knowledge.LoadFiles(cfg.KnowledgeFile, cfg.DocumentFile)
	}
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	return kb, nil
}
