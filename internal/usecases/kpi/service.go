// Package kpi deriva os indicadores do painel (último valor, anterior, variação, alertas)
package kpi

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/retention"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

type Summarizer interface {
	Summarize(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.KPISnapshot, error)
	RetentionQuality(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.RetentionQualityReport, error)
}

type Service struct {
	cfg      *config.Config
	reporter reporting.Reporter
	gate     retention.Evaluator
}

func NewService(cfg *config.Config, reporter reporting.Reporter, gate retention.Evaluator) Summarizer {
	return &Service{
		cfg:      cfg,
		reporter: reporter,
		gate:     gate,
	}
}

// Summarize monta o retrato de KPIs. A falha de uma seção fica registrada em SectionErrors
// e não impede as demais; só retorna erro quando faltam tabelas obrigatórias.
func (s *Service) Summarize(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.KPISnapshot, error) {
	snapshot := &domain.KPISnapshot{
		Window:        window,
		SectionErrors: make(map[string]string),
	}

	var missingTables *repository.MissingTablesError
	sectionFailed := func(section string, err error) {
		logrus.WithError(err).WithField("section", section).Error("Erro ao calcular seção de KPIs")
		snapshot.SectionErrors[section] = err.Error()
		if missingTables == nil {
			errors.As(err, &missingTables)
		}
	}

	arr, err := s.reporter.ARRTrend(ctx, window, filter)
	if err != nil {
		sectionFailed(domain.SectionARR, err)
	}
	snapshot.ARR = ARRDelta(arr)

	ret, err := s.reporter.RetentionTrend(ctx, window, filter)
	if err != nil {
		sectionFailed(domain.SectionRetention, err)
	}
	snapshot.NRR = NRRDelta(ret)
	snapshot.GRR = GRRDelta(ret)
	snapshot.LatestStartMRR = LatestStartMRR(ret)

	closed, err := s.reporter.ClosedRevenueMonthly(ctx, window, filter)
	if err != nil {
		sectionFailed(domain.SectionClosed, err)
	}
	snapshot.WinRate = WinRateDelta(closed)

	coverage, err := s.reporter.PipelineCoverage(ctx, window, filter)
	if err != nil {
		sectionFailed(domain.SectionCoverage, err)
	}
	if coverage != nil {
		snapshot.Coverage = *coverage
	}

	if missingTables != nil {
		return nil, missingTables
	}

	snapshot.CoverageAssessment = AssessPipelineCoverage(snapshot.Coverage.CoverageRatio, s.cfg.Thresholds.PipelineCoverageTargetX)
	snapshot.RetentionQuality = s.gate.Evaluate(ctx, window, filter, snapshot.NRR.Month)
	snapshot.Alerts = Alerts(snapshot.NRR.Latest, snapshot.GRR.Latest, snapshot.Coverage.CoverageRatio, arr, s.cfg.Thresholds)
	snapshot.Display = domain.KPIDisplay{
		ARR:              utils.FormatCurrency(snapshot.ARR.Latest),
		NRR:              DisplayRetentionValue(snapshot.NRR.Latest, snapshot.LatestStartMRR),
		GRR:              DisplayRetentionValue(snapshot.GRR.Latest, snapshot.LatestStartMRR),
		WinRate:          utils.FormatPct(snapshot.WinRate.Latest),
		PipelineCoverage: utils.FormatX(snapshot.Coverage.CoverageRatio),
	}

	if len(snapshot.SectionErrors) == 0 {
		snapshot.SectionErrors = nil
	}

	return snapshot, nil
}

// RetentionQuality avalia o último mês de coorte com MRR inicial positivo
func (s *Service) RetentionQuality(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.RetentionQualityReport, error) {
	ret, err := s.reporter.RetentionTrend(ctx, window, filter)
	if err != nil {
		return nil, err
	}

	cohort := NRRDelta(ret).Month
	return &domain.RetentionQualityReport{
		CohortMonth:      cohort,
		RetentionQuality: s.gate.Evaluate(ctx, window, filter, cohort),
	}, nil
}
