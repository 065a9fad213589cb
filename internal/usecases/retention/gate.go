// Package retention decide se o NRR/GRR do mês de coorte mais recente pode ser interpretado
package retention

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

type Evaluator interface {
	Evaluate(ctx context.Context, window domain.Window, filter domain.AccountFilter, cohortMonth *time.Time) domain.RetentionQuality
}

type Gate struct {
	revenueRepo repository.RevenueRepository
	cache       cache.Cache
	ttl         time.Duration
	threshold   float64
}

func NewGate(cfg *config.Config, revenueRepo repository.RevenueRepository, c cache.Cache) Evaluator {
	return &Gate{
		revenueRepo: revenueRepo,
		cache:       c,
		ttl:         cfg.Cache.MetricsTTL,
		threshold:   cfg.Thresholds.RetentionCoverageThreshold,
	}
}

// Evaluate nunca retorna erro: falhas de consulta viram um resultado não interpretável com a causa na nota
func (g *Gate) Evaluate(
	ctx context.Context,
	window domain.Window,
	filter domain.AccountFilter,
	cohortMonth *time.Time,
) domain.RetentionQuality {
	if cohortMonth == nil {
		return domain.RetentionQuality{
			RetentionInterpretable: false,
			CoverageThresholdPct:   g.threshold,
			RetentionNote:          domain.RetentionNoteNoCohort,
		}
	}

	key := cache.Key("retention_data_quality", window, filter.Normalized(), domain.MonthStart(*cohortMonth), g.threshold)
	quality, err := cache.Remember(g.cache, key, g.ttl, func() (domain.RetentionQuality, error) {
		coverage, err := g.revenueRepo.CohortCoverage(ctx, window, filter, *cohortMonth)
		if err != nil {
			return domain.RetentionQuality{}, err
		}
		return Assess(&coverage.CohortAccounts, &coverage.NextMonthAccounts, g.threshold), nil
	})
	if err != nil {
		logrus.WithError(err).WithField("cohort_month", cohortMonth.Format(domain.DateLayout)).
			Warn("Falha na verificação de qualidade da retenção")
		return domain.RetentionQuality{
			RetentionInterpretable: false,
			CoverageThresholdPct:   g.threshold,
			RetentionNote:          domain.RetentionNoteCheckFailed + err.Error(),
		}
	}

	return quality
}

// Assess calcula a cobertura do mês seguinte e compara com o limiar.
// Sem contas na coorte a cobertura é nula e a retenção não é interpretável.
func Assess(cohort, next *int, threshold float64) domain.RetentionQuality {
	quality := domain.RetentionQuality{
		CohortAccounts:       cohort,
		NextMonthAccounts:    next,
		CoverageThresholdPct: threshold,
	}

	if cohort != nil && next != nil && *cohort > 0 {
		pct := utils.RoundWithTwoDecimalPlace(100 * float64(*next) / float64(*cohort))
		quality.NextMonthCoveragePct = &pct
	}

	quality.RetentionInterpretable = quality.NextMonthCoveragePct != nil && *quality.NextMonthCoveragePct >= threshold
	if quality.RetentionInterpretable {
		quality.RetentionNote = domain.RetentionNoteInterpretable
	} else {
		quality.RetentionNote = domain.RetentionNoteNotInterpretable
	}

	return quality
}
