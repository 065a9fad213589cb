// Package reporting expõe as consultas de métricas com cache e os cálculos feitos sobre as linhas retornadas
package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
)

type Reporter interface {
	ARRTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ARRPoint, error)
	RetentionTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.RetentionPoint, error)
	MovementSummary(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.MovementSummary, error)
	TopMovers(ctx context.Context, window domain.Window, filter domain.AccountFilter, limit int) (*domain.TopMovers, error)
	ClosedRevenueMonthly(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ClosedRevenueMonth, error)
	PipelineCoverage(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.PipelineCoverage, error)
	OpenPipelineByStage(ctx context.Context, filter domain.AccountFilter) ([]domain.StageBreakdown, error)
	StageDynamics(ctx context.Context, filter domain.AccountFilter) (*domain.StageDynamics, error)
	HealthSnapshot(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.HealthSnapshot, error)
}

type Service struct {
	cfg          *config.Config
	revenueRepo  repository.RevenueRepository
	pipelineRepo repository.PipelineRepository
	healthRepo   repository.HealthRepository
	cache        cache.Cache
	ttl          time.Duration
}

func NewService(
	cfg *config.Config,
	revenueRepo repository.RevenueRepository,
	pipelineRepo repository.PipelineRepository,
	healthRepo repository.HealthRepository,
	c cache.Cache,
) Reporter {
	return &Service{
		cfg:          cfg,
		revenueRepo:  revenueRepo,
		pipelineRepo: pipelineRepo,
		healthRepo:   healthRepo,
		cache:        c,
		ttl:          cfg.Cache.MetricsTTL,
	}
}

func (s *Service) ARRTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ARRPoint, error) {
	key := cache.Key("arr_trend", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() ([]domain.ARRPoint, error) {
		return s.revenueRepo.ARRTrend(ctx, window, filter)
	})
}

func (s *Service) RetentionTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.RetentionPoint, error) {
	key := cache.Key("retention_trend", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() ([]domain.RetentionPoint, error) {
		return s.revenueRepo.RetentionTrend(ctx, window, filter)
	})
}

func (s *Service) MovementSummary(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.MovementSummary, error) {
	key := cache.Key("mrr_movement_summary", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() ([]domain.MovementSummary, error) {
		rows, err := s.revenueRepo.MovementRows(ctx, window, filter)
		if err != nil {
			return nil, err
		}
		return SummarizeMovement(rows), nil
	})
}

// TopMovers usa o limite configurado quando limit não é positivo
func (s *Service) TopMovers(ctx context.Context, window domain.Window, filter domain.AccountFilter, limit int) (*domain.TopMovers, error) {
	if limit <= 0 {
		limit = s.cfg.Thresholds.TopMoversLimit
	}

	key := cache.Key("top_mrr_movers", window, filter.Normalized(), limit)
	return cache.Remember(s.cache, key, s.ttl, func() (*domain.TopMovers, error) {
		candidates, err := s.revenueRepo.MoverCandidates(ctx, window, filter)
		if err != nil {
			return nil, err
		}
		movers := RankMovers(candidates, limit)
		return &movers, nil
	})
}

func (s *Service) ClosedRevenueMonthly(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ClosedRevenueMonth, error) {
	key := cache.Key("closed_revenue_monthly", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() ([]domain.ClosedRevenueMonth, error) {
		return s.pipelineRepo.ClosedRevenueMonthly(ctx, window, filter)
	})
}

func (s *Service) PipelineCoverage(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.PipelineCoverage, error) {
	key := cache.Key("pipeline_coverage", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() (*domain.PipelineCoverage, error) {
		return s.pipelineRepo.Coverage(ctx, window, filter)
	})
}

func (s *Service) OpenPipelineByStage(ctx context.Context, filter domain.AccountFilter) ([]domain.StageBreakdown, error) {
	key := cache.Key("open_pipeline_by_stage", filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() ([]domain.StageBreakdown, error) {
		return s.pipelineRepo.OpenByStage(ctx, filter)
	})
}

// StageDynamics retorna Available=false quando não existe histórico de estágios
func (s *Service) StageDynamics(ctx context.Context, filter domain.AccountFilter) (*domain.StageDynamics, error) {
	key := cache.Key("stage_dynamics", filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() (*domain.StageDynamics, error) {
		durations, err := s.pipelineRepo.StageDurations(ctx, filter)
		if errors.Is(err, repository.ErrDatasetUnavailable) {
			return &domain.StageDynamics{
				Available:   false,
				Durations:   []domain.StageDuration{},
				Conversions: []domain.StageConversion{},
			}, nil
		}
		if err != nil {
			return nil, err
		}

		conversions, err := s.pipelineRepo.StageConversions(ctx, filter)
		if err != nil {
			return nil, err
		}

		return &domain.StageDynamics{
			Available:   true,
			Durations:   durations,
			Conversions: conversions,
		}, nil
	})
}

// HealthSnapshot usa a tabela de health quando ela existe e tem linhas para a janela;
// caso contrário calcula o score a partir dos sinais de MRR e tickets.
func (s *Service) HealthSnapshot(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.HealthSnapshot, error) {
	key := cache.Key("health_snapshot", window, filter.Normalized())
	return cache.Remember(s.cache, key, s.ttl, func() (*domain.HealthSnapshot, error) {
		rows, err := s.healthRepo.HealthTableSnapshot(ctx, window, filter)
		switch {
		case err == nil && len(rows) > 0:
			SortHealthRows(rows)
			return &domain.HealthSnapshot{Rows: rows, Distribution: HealthDistribution(rows)}, nil
		case err != nil && !errors.Is(err, repository.ErrDatasetUnavailable):
			logrus.WithError(err).Warn("Falha ao ler a tabela de health, usando o score calculado")
		}

		signals, err := s.healthRepo.HealthSignals(ctx, window, filter, s.cfg.Health.TicketWindowDays)
		if err != nil {
			return nil, err
		}

		rows = make([]domain.HealthRow, 0, len(signals))
		for _, signal := range signals {
			rows = append(rows, ScoreHealth(signal, s.cfg.Health))
		}
		SortHealthRows(rows)

		return &domain.HealthSnapshot{Rows: rows, Distribution: HealthDistribution(rows)}, nil
	})
}
