package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/routing"
)

type StatsService struct {
	repo        repository.OrderRepository
	catalog     *catalog.Catalog
	reliability routing.ReliabilityTable
}

func NewStatsService(repo repository.OrderRepository, cat *catalog.Catalog, reliability routing.ReliabilityTable) *StatsService {
	return &StatsService{repo: repo, catalog: cat, reliability: reliability}
}

type OrderStats struct {
	Pending             int                `json:"pending"`
	Completed           int                `json:"completed"`
	Failed              int                `json:"failed"`
	Total               int                `json:"total"`
	SupportedCountries  []string           `json:"supported_countries"`
	ProviderReliability map[string]float64 `json:"provider_reliability"`
}

// Overview fans the per-status counts out concurrently and folds in the
// static catalog and reliability configuration.
func (s *StatsService) Overview(ctx context.Context) (*OrderStats, error) {
	g, gctx := errgroup.WithContext(ctx)

	var pending, completed, failed int

	g.Go(func() error {
		var err error
		pending, err = s.repo.CountByStatus(gctx, model.StatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.repo.CountByStatus(gctx, model.StatusCompleted)
		return err
	})
	g.Go(func() error {
		var err error
		failed, err = s.repo.CountByStatus(gctx, model.StatusFailed)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &OrderStats{
		Pending:             pending,
		Completed:           completed,
		Failed:              failed,
		Total:               pending + completed + failed,
		SupportedCountries:  s.catalog.SupportedCountries(),
		ProviderReliability: s.reliability.Stats(),
	}, nil
}
