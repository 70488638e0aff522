package services

import (
	"context"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"golang.org/x/sync/errgroup"
)

// ActivityService orquesta la recolección windowed de actividad y su
// agregación por categoría.
type ActivityService struct {
	vcs        ports.VCSClient
	aggregator *Aggregator
}

func NewActivityService(vcs ports.VCSClient) *ActivityService {
	return &ActivityService{
		vcs:        vcs,
		aggregator: NewAggregator(),
	}
}

// Collect dispara las tres consultas en paralelo y espera a que terminen
// todas. No hay resultado parcial: si una falla, falla la operación entera
// y las otras se cancelan vía el contexto del grupo.
func (s *ActivityService) Collect(ctx context.Context, daysBack int) (models.ActivityData, error) {
	var data models.ActivityData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.Pulls, err = s.vcs.ListRecentPullRequests(gctx, daysBack)
		return err
	})

	g.Go(func() error {
		var err error
		data.Issues, err = s.vcs.ListRecentIssues(gctx, daysBack)
		return err
	})

	g.Go(func() error {
		var err error
		data.Commits, err = s.vcs.ListRecentCommits(gctx, daysBack)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.ActivityData{}, err
	}

	logger.Info(ctx, "activity collected",
		"pulls", len(data.Pulls),
		"issues", len(data.Issues),
		"commits", len(data.Commits),
	)
	return data, nil
}

// Process agrupa la actividad recolectada por categoría.
func (s *ActivityService) Process(data models.ActivityData) models.AggregatedContent {
	return s.aggregator.Aggregate(data)
}
