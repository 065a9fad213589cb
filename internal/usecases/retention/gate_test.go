package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name                  string
		cohort                *int
		next                  *int
		expectedPct           *float64
		expectedInterpretable bool
		expectedNote          string
	}{
		{
			name:                  "Cobertura de 40% com limiar de 90% não é interpretável",
			cohort:                intPtr(100),
			next:                  intPtr(40),
			expectedPct:           func() *float64 { v := 40.0; return &v }(),
			expectedInterpretable: false,
			expectedNote:          "Retention is NOT interpretable: next-month MRR appears incomplete/not loaded for the selected period.",
		},
		{
			name:                  "Cobertura igual ao limiar é interpretável",
			cohort:                intPtr(100),
			next:                  intPtr(90),
			expectedPct:           func() *float64 { v := 90.0; return &v }(),
			expectedInterpretable: true,
			expectedNote:          "Retention is interpretable (next-month MRR coverage is high).",
		},
		{
			name:                  "Coorte vazia não tem cobertura",
			cohort:                intPtr(0),
			next:                  intPtr(10),
			expectedPct:           nil,
			expectedInterpretable: false,
			expectedNote:          domain.RetentionNoteNotInterpretable,
		},
		{
			name:                  "Contagens ausentes não têm cobertura",
			cohort:                nil,
			next:                  nil,
			expectedPct:           nil,
			expectedInterpretable: false,
			expectedNote:          domain.RetentionNoteNotInterpretable,
		},
		{
			name:                  "Cobertura é arredondada em duas casas",
			cohort:                intPtr(3),
			next:                  intPtr(2),
			expectedPct:           func() *float64 { v := 66.67; return &v }(),
			expectedInterpretable: false,
			expectedNote:          domain.RetentionNoteNotInterpretable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quality := Assess(tt.cohort, tt.next, 90)

			assert.Equal(t, tt.expectedPct, quality.NextMonthCoveragePct)
			assert.Equal(t, tt.expectedInterpretable, quality.RetentionInterpretable)
			assert.Equal(t, tt.expectedNote, quality.RetentionNote)
			assert.Equal(t, 90.0, quality.CoverageThresholdPct)
		})
	}
}

func TestAssess_MonotonicInCoverage(t *testing.T) {
	cohort := 200
	wasInterpretable := false

	for next := 0; next <= 250; next++ {
		n := next
		quality := Assess(&cohort, &n, 90)

		if wasInterpretable {
			assert.True(t, quality.RetentionInterpretable, "cobertura maior não pode deixar de ser interpretável (next=%d)", next)
		}
		wasInterpretable = quality.RetentionInterpretable
	}
	assert.True(t, wasInterpretable)
}

func TestGate_Evaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		Thresholds: config.Thresholds{RetentionCoverageThreshold: 90},
		Cache:      config.Cache{MetricsTTL: time.Minute},
	}
	window := domain.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	cohortMonth := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Sem mês de coorte não consulta o warehouse", func(t *testing.T) {
		revenueRepo := mocks.NewMockRevenueRepository(ctrl)
		gate := NewGate(cfg, revenueRepo, cache.New(time.Minute))

		quality := gate.Evaluate(context.Background(), window, domain.AccountFilter{}, nil)

		assert.False(t, quality.RetentionInterpretable)
		assert.Equal(t, "Retention cohort month not available for selected filters.", quality.RetentionNote)
	})

	t.Run("Falha na consulta vira nota de verificação falha", func(t *testing.T) {
		revenueRepo := mocks.NewMockRevenueRepository(ctrl)
		revenueRepo.EXPECT().CohortCoverage(gomock.Any(), window, gomock.Any(), cohortMonth).Return(nil, errors.New("timeout"))
		gate := NewGate(cfg, revenueRepo, cache.New(time.Minute))

		quality := gate.Evaluate(context.Background(), window, domain.AccountFilter{}, &cohortMonth)

		assert.False(t, quality.RetentionInterpretable)
		assert.Equal(t, "Retention data-quality check failed: timeout", quality.RetentionNote)
	})

	t.Run("Resultado é guardado em cache pelos argumentos", func(t *testing.T) {
		revenueRepo := mocks.NewMockRevenueRepository(ctrl)
		revenueRepo.EXPECT().CohortCoverage(gomock.Any(), window, gomock.Any(), cohortMonth).
			Return(&domain.CohortCoverage{CohortAccounts: 100, NextMonthAccounts: 95}, nil).
			Times(1)
		gate := NewGate(cfg, revenueRepo, cache.New(time.Minute))

		first := gate.Evaluate(context.Background(), window, domain.AccountFilter{}, &cohortMonth)
		second := gate.Evaluate(context.Background(), window, domain.AccountFilter{}, &cohortMonth)

		require.NotNil(t, first.NextMonthCoveragePct)
		assert.Equal(t, 95.0, *first.NextMonthCoveragePct)
		assert.True(t, first.RetentionInterpretable)
		assert.Equal(t, first, second)
	})
}
