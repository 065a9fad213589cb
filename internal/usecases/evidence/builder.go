// Package evidence monta o pacote de evidências em JSON usado como único contexto das narrativas
package evidence

import (
	"context"
	"fmt"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// Ordena as chaves de mapas, então o mesmo pacote sempre gera os mesmos bytes
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	seriesTail   = 12
	stagesTop    = 8
	moversPerSet = 5
)

type Builder interface {
	Build(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.EvidencePack, []byte, error)
}

type builder struct {
	cfg        *config.Config
	summarizer kpi.Summarizer
	reporter   reporting.Reporter
	cache      cache.Cache
	ttl        time.Duration
	newID      func() (string, error)
}

type cachedPack struct {
	pack  *domain.EvidencePack
	bytes []byte
}

func NewBuilder(cfg *config.Config, summarizer kpi.Summarizer, reporter reporting.Reporter, c cache.Cache) Builder {
	return &builder{
		cfg:        cfg,
		summarizer: summarizer,
		reporter:   reporter,
		cache:      c,
		ttl:        cfg.Cache.PackTTL,
		newID:      utils.GenerateID,
	}
}

// Build retorna o pacote e seus bytes. Dentro do TTL, os mesmos argumentos retornam
// exatamente os mesmos bytes, inclusive o pack_id.
func (b *builder) Build(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.EvidencePack, []byte, error) {
	key := cache.Key("evidence_pack", window, filter.Normalized())
	cached, err := cache.Remember(b.cache, key, b.ttl, func() (cachedPack, error) {
		pack, err := b.assemble(ctx, window, filter)
		if err != nil {
			return cachedPack{}, err
		}

		bytes, err := json.Marshal(pack)
		if err != nil {
			return cachedPack{}, fmt.Errorf("erro ao serializar pacote de evidências: %w", err)
		}

		return cachedPack{pack: pack, bytes: bytes}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return cached.pack, cached.bytes, nil
}

func (b *builder) assemble(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.EvidencePack, error) {
	snapshot, err := b.summarizer.Summarize(ctx, window, filter)
	if err != nil {
		return nil, err
	}

	packID, err := b.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do pacote de evidências: %w", err)
	}

	log := logrus.WithFields(logrus.Fields{
		"pack_id":     packID,
		"time_window": window.String(),
	})

	pack := &domain.EvidencePack{
		PackID:     packID,
		TimeWindow: window.String(),
		Filters: domain.PackFilters{
			StartDate:            window.Start.Format(domain.DateLayout),
			EndDate:              window.End.Format(domain.DateLayout),
			RetentionCohortMonth: utils.FormatDate(snapshot.NRR.Month),
			Dimensions:           filter.Normalized(),
		},
		Benchmarks: domain.PackBenchmarks{
			PipelineCoverageTargetX: b.cfg.Thresholds.PipelineCoverageTargetX,
		},
		Metrics: domain.PackMetrics{
			ARRLatest:                  snapshot.ARR.Latest,
			ARRDeltaMoM:                snapshot.ARR.Delta,
			NRRPct:                     snapshot.NRR.Latest,
			GRRPct:                     snapshot.GRR.Latest,
			WinRatePct:                 snapshot.WinRate.Latest,
			WinRateDeltaMoM:            snapshot.WinRate.Delta,
			PipelineCoverageRatioX:     snapshot.Coverage.CoverageRatio,
			PipelineCoverageAssessment: snapshot.CoverageAssessment,
			TotalOpenPipeline:          snapshot.Coverage.TotalOpenPipeline,
			Avg3mClosedRevenue:         snapshot.Coverage.Avg3mClosedRevenue,
		},
		DataQuality: snapshot.RetentionQuality,
		Rules: domain.PackRules{
			GroundingRule: domain.GroundingRule,
			RetentionRule: domain.RetentionRule,
			PipelineRule:  domain.PipelineRule,
		},
	}

	// As consultas abaixo já passaram pelo cache ao montar os KPIs
	if arr, err := b.reporter.ARRTrend(ctx, window, filter); err == nil {
		pack.Series.ARRTrendLast12 = lastN(arr, seriesTail, func(p domain.ARRPoint) time.Time { return p.Month })
	} else {
		log.WithError(err).Warn("Série de ARR indisponível para o pacote de evidências")
	}

	if ret, err := b.reporter.RetentionTrend(ctx, window, filter); err == nil {
		pack.Series.RetentionLast12 = lastN(ret, seriesTail, func(p domain.RetentionPoint) time.Time { return p.Month })
	} else {
		log.WithError(err).Warn("Série de retenção indisponível para o pacote de evidências")
	}

	if closed, err := b.reporter.ClosedRevenueMonthly(ctx, window, filter); err == nil {
		pack.Series.ClosedRevLast12 = lastN(closed, seriesTail, func(m domain.ClosedRevenueMonth) time.Time { return m.CloseMonth })
	} else {
		log.WithError(err).Warn("Receita fechada indisponível para o pacote de evidências")
	}

	if _, failed := snapshot.SectionErrors[domain.SectionCoverage]; !failed {
		pack.Pipeline.CoverageRow = []domain.PipelineCoverage{snapshot.Coverage}
	}

	if stages, err := b.reporter.OpenPipelineByStage(ctx, filter); err == nil {
		pack.Pipeline.OpenByStageTop8 = topStages(stages, stagesTop)
	} else {
		log.WithError(err).Warn("Pipeline por estágio indisponível para o pacote de evidências")
	}

	if summary, err := b.reporter.MovementSummary(ctx, window, filter); err == nil {
		pack.MRRMovement.MovementSummary = summary
	} else {
		log.WithError(err).Warn("Resumo de movimentação de MRR indisponível para o pacote de evidências")
	}

	if movers, err := b.reporter.TopMovers(ctx, window, filter, moversPerSet); err == nil && movers != nil {
		pack.MRRMovement.TopExpansions = head(movers.Expansions, moversPerSet)
		pack.MRRMovement.TopContractions = head(movers.Contractions, moversPerSet)
	} else if err != nil {
		log.WithError(err).Warn("Maiores movimentações indisponíveis para o pacote de evidências")
	}

	return pack, nil
}

// lastN ordena uma cópia por mês e retorna os n últimos itens
func lastN[T any](rows []T, n int, month func(T) time.Time) []T {
	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return month(sorted[i]).Before(month(sorted[j]))
	})

	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func topStages(stages []domain.StageBreakdown, n int) []domain.StageBreakdown {
	sorted := make([]domain.StageBreakdown, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OpenPipeline > sorted[j].OpenPipeline
	})
	return head(sorted, n)
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
