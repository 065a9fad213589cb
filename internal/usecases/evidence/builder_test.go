package evidence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	kpimocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi/mocks"
	reportingmocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		Thresholds: config.Thresholds{PipelineCoverageTargetX: 3},
		Cache:      config.Cache{PackTTL: 5 * time.Minute},
	}
}

func snapshotFixture() *domain.KPISnapshot {
	cohort := month(2024, 5)
	return &domain.KPISnapshot{
		ARR:     domain.MetricDelta{Latest: utils.Float64Ptr(1200), Delta: utils.Float64Ptr(-30)},
		NRR:     domain.MetricDelta{Month: &cohort, Latest: utils.Float64Ptr(0)},
		GRR:     domain.MetricDelta{Month: &cohort, Latest: utils.Float64Ptr(0)},
		WinRate: domain.MetricDelta{Latest: utils.Float64Ptr(30)},
		Coverage: domain.PipelineCoverage{
			TotalOpenPipeline:  utils.Float64Ptr(300_000),
			Avg3mClosedRevenue: utils.Float64Ptr(100_000),
			CoverageRatio:      utils.Float64Ptr(3),
		},
		CoverageAssessment: "healthy",
		RetentionQuality: domain.RetentionQuality{
			RetentionInterpretable: false,
			RetentionNote:          domain.RetentionNoteNotInterpretable,
		},
	}
}

func expectSections(reporter *reportingmocks.MockReporter, window domain.Window, filter domain.AccountFilter) {
	arr := make([]domain.ARRPoint, 0, 15)
	for i := 14; i >= 0; i-- {
		arr = append(arr, domain.ARRPoint{Month: month(2023, time.January).AddDate(0, i, 0), TotalARR: float64(100 + i)})
	}

	stages := make([]domain.StageBreakdown, 0, 10)
	for i := 0; i < 10; i++ {
		stages = append(stages, domain.StageBreakdown{Stage: string(rune('A' + i)), OpenPipeline: float64(i * 10)})
	}

	expansions := make([]domain.Mover, 0, 7)
	for i := 0; i < 7; i++ {
		expansions = append(expansions, domain.Mover{AccountID: string(rune('a' + i)), MRRDelta: float64(100 - i)})
	}

	reporter.EXPECT().ARRTrend(gomock.Any(), window, filter).Return(arr, nil)
	reporter.EXPECT().RetentionTrend(gomock.Any(), window, filter).Return(nil, assert.AnError)
	reporter.EXPECT().ClosedRevenueMonthly(gomock.Any(), window, filter).Return([]domain.ClosedRevenueMonth{}, nil)
	reporter.EXPECT().OpenPipelineByStage(gomock.Any(), filter).Return(stages, nil)
	reporter.EXPECT().MovementSummary(gomock.Any(), window, filter).Return([]domain.MovementSummary{
		{MovementType: domain.MovementChurn, RowsCount: 1, NetMRRChange: -50},
	}, nil)
	reporter.EXPECT().TopMovers(gomock.Any(), window, filter, 5).Return(&domain.TopMovers{
		Expansions:   expansions,
		Contractions: []domain.Mover{},
	}, nil)
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	window := domain.NewWindow(month(2023, time.January), time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
	filter := domain.AccountFilter{Segments: []string{"SMB"}}

	t.Run("Deve montar o pacote com séries, estágios e movimentações", func(t *testing.T) {
		summarizer := kpimocks.NewMockSummarizer(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		summarizer.EXPECT().Summarize(gomock.Any(), window, filter).Return(snapshotFixture(), nil)
		expectSections(reporter, window, filter)

		b := NewBuilder(testConfig(), summarizer, reporter, cache.New(time.Minute)).(*builder)
		b.newID = func() (string, error) { return "pack123", nil }

		pack, bytes, err := b.Build(context.Background(), window, filter)

		require.NoError(t, err)
		assert.Equal(t, "pack123", pack.PackID)
		assert.Equal(t, "2023-01-01 to 2024-06-30", pack.TimeWindow)
		assert.Equal(t, "2024-05-01", *pack.Filters.RetentionCohortMonth)
		assert.Equal(t, 3.0, pack.Benchmarks.PipelineCoverageTargetX)

		require.Len(t, pack.Series.ARRTrendLast12, 12)
		assert.Equal(t, month(2023, time.April), pack.Series.ARRTrendLast12[0].Month)
		assert.Equal(t, month(2024, time.March), pack.Series.ARRTrendLast12[11].Month)
		assert.Nil(t, pack.Series.RetentionLast12, "série que falhou fica nula")

		require.Len(t, pack.Pipeline.OpenByStageTop8, 8)
		assert.Equal(t, "J", pack.Pipeline.OpenByStageTop8[0].Stage)
		assert.Equal(t, []domain.PipelineCoverage{snapshotFixture().Coverage}, pack.Pipeline.CoverageRow)

		assert.Len(t, pack.MRRMovement.TopExpansions, 5)
		assert.Empty(t, pack.MRRMovement.TopContractions)

		assert.Contains(t, string(bytes), `"retention_last_12":null`)
		assert.Contains(t, string(bytes), `"retention_interpretable":false`)
		assert.Contains(t, string(bytes), `"pipeline_coverage_target_x":3`)
	})

	t.Run("Chamadas repetidas dentro do TTL retornam os mesmos bytes", func(t *testing.T) {
		summarizer := kpimocks.NewMockSummarizer(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		summarizer.EXPECT().Summarize(gomock.Any(), window, filter).Return(snapshotFixture(), nil).Times(1)
		expectSections(reporter, window, filter)

		b := NewBuilder(testConfig(), summarizer, reporter, cache.New(time.Minute))

		_, first, err := b.Build(context.Background(), window, filter)
		require.NoError(t, err)

		_, second, err := b.Build(context.Background(), window, domain.AccountFilter{Segments: []string{"SMB", "SMB"}})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Erro ao calcular KPIs interrompe a montagem", func(t *testing.T) {
		summarizer := kpimocks.NewMockSummarizer(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		summarizer.EXPECT().Summarize(gomock.Any(), window, filter).Return(nil, assert.AnError)

		pack, bytes, err := NewBuilder(testConfig(), summarizer, reporter, cache.New(time.Minute)).
			Build(context.Background(), window, filter)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, pack)
		assert.Nil(t, bytes)
	})
}

func TestLastN(t *testing.T) {
	points := []domain.ARRPoint{
		{Month: month(2024, 3), TotalARR: 3},
		{Month: month(2024, 1), TotalARR: 1},
		{Month: month(2024, 2), TotalARR: 2},
	}

	tail := lastN(points, 2, func(p domain.ARRPoint) time.Time { return p.Month })

	assert.Equal(t, []float64{2, 3}, []float64{tail[0].TotalARR, tail[1].TotalARR})
	assert.Equal(t, month(2024, 3), points[0].Month, "a série original não é reordenada")
}
