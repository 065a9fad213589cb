package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

func month(m time.Month) time.Time {
	return time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC)
}

var defaultThresholds = config.Thresholds{
	NRRAlertBelow:              90,
	GRRAlertBelow:              90,
	PipelineCoverageAlertBelow: 3,
	ARRNegativeTrendLookback:   3,
	RetentionCoverageThreshold: 90,
	PipelineCoverageTargetX:    3,
	TopMoversLimit:             10,
}

func TestARRDelta(t *testing.T) {
	t.Run("ARR 100, 120, 90 deve ter último 90, anterior 120 e variação -30", func(t *testing.T) {
		points := []domain.ARRPoint{
			{Month: month(3), TotalARR: 90},
			{Month: month(1), TotalARR: 100},
			{Month: month(2), TotalARR: 120},
		}

		delta := ARRDelta(points)

		require.NotNil(t, delta.Latest)
		require.NotNil(t, delta.Previous)
		require.NotNil(t, delta.Delta)
		assert.Equal(t, 90.0, *delta.Latest)
		assert.Equal(t, 120.0, *delta.Previous)
		assert.Equal(t, -30.0, *delta.Delta)
		assert.Equal(t, month(3), *delta.Month)

		alerts := Alerts(nil, nil, nil, points, defaultThresholds)
		assert.Equal(t, []string{"ARR trending down over recent months."}, alerts)
	})

	t.Run("Meses com ARR zero são ignorados", func(t *testing.T) {
		delta := ARRDelta([]domain.ARRPoint{
			{Month: month(1), TotalARR: 100},
			{Month: month(2), TotalARR: 0},
		})

		assert.Equal(t, 100.0, *delta.Latest)
		assert.Equal(t, month(1), *delta.Month)
		assert.Nil(t, delta.Previous)
		assert.Nil(t, delta.Delta, "sem valor anterior a variação é nula, não zero")
	})

	t.Run("Série vazia não tem valores", func(t *testing.T) {
		assert.Equal(t, domain.MetricDelta{}, ARRDelta(nil))
	})
}

func TestNRRDelta(t *testing.T) {
	points := []domain.RetentionPoint{
		{Month: month(1), StartMRR: 100, NRRPct: utils.Float64Ptr(101), GRRPct: utils.Float64Ptr(97)},
		{Month: month(2), StartMRR: 110, NRRPct: utils.Float64Ptr(95), GRRPct: utils.Float64Ptr(92)},
		{Month: month(3), StartMRR: 0, NRRPct: nil, GRRPct: nil},
	}

	nrr := NRRDelta(points)
	grr := GRRDelta(points)

	assert.Equal(t, month(2), *nrr.Month)
	assert.Equal(t, 95.0, *nrr.Latest)
	assert.Equal(t, -6.0, *nrr.Delta)
	assert.Equal(t, 92.0, *grr.Latest)
	assert.Equal(t, 110.0, *LatestStartMRR(points))
}

func TestAssessPipelineCoverage(t *testing.T) {
	tests := []struct {
		name     string
		ratio    *float64
		expected string
	}{
		{name: "Sem razão é desconhecida", ratio: nil, expected: "unknown"},
		{name: "Abaixo da meta é baixa", ratio: utils.Float64Ptr(2.99), expected: "low"},
		{name: "Igual à meta é saudável", ratio: utils.Float64Ptr(3), expected: "healthy"},
		{name: "Abaixo do dobro da meta é saudável", ratio: utils.Float64Ptr(5.99), expected: "healthy"},
		{name: "A partir do dobro da meta é forte", ratio: utils.Float64Ptr(6), expected: "strong"},
		{name: "A partir de 10x pede validação do denominador", ratio: utils.Float64Ptr(10), expected: "very high (validate denominator)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssessPipelineCoverage(tt.ratio, 3))
		})
	}
}

func TestCoverageScenario(t *testing.T) {
	t.Run("Pipeline aberto de 300.000 sobre média de 100.000 é 3.00x saudável", func(t *testing.T) {
		ratio := utils.RoundWithTwoDecimalPlace(300_000.0 / 100_000.0)

		assert.Equal(t, 3.0, ratio)
		assert.Equal(t, "healthy", AssessPipelineCoverage(&ratio, defaultThresholds.PipelineCoverageTargetX))
		assert.Empty(t, Alerts(nil, nil, &ratio, nil, defaultThresholds))
	})
}

func TestDisplayRetentionValue(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		startMRR *float64
		expected string
	}{
		{name: "Valor ausente", value: nil, startMRR: utils.Float64Ptr(100), expected: "Not available"},
		{name: "Zero com MRR inicial indica falta de carga", value: utils.Float64Ptr(0), startMRR: utils.Float64Ptr(100), expected: "Data not loaded for selected period"},
		{name: "Zero sem MRR inicial é exibido", value: utils.Float64Ptr(0), startMRR: nil, expected: "0.00%"},
		{name: "Valor normal em percentual", value: utils.Float64Ptr(104.5), startMRR: utils.Float64Ptr(100), expected: "104.50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayRetentionValue(tt.value, tt.startMRR))
		})
	}
}

func TestAlerts(t *testing.T) {
	tests := []struct {
		name     string
		nrr      *float64
		grr      *float64
		coverage *float64
		arr      []domain.ARRPoint
		expected []string
	}{
		{
			name:     "Sem dados não gera alertas",
			expected: []string{},
		},
		{
			name:     "Retenção e cobertura abaixo dos limiares",
			nrr:      utils.Float64Ptr(85.5),
			grr:      utils.Float64Ptr(80),
			coverage: utils.Float64Ptr(2.456),
			expected: []string{
				"Net Revenue Retention below 90% (NRR=85.50%).",
				"Gross Revenue Retention below 90% (GRR=80.00%).",
				"Pipeline coverage below 3.0x (Coverage=2.46x).",
			},
		},
		{
			name:     "Valores no limiar não geram alerta",
			nrr:      utils.Float64Ptr(90),
			grr:      utils.Float64Ptr(90),
			coverage: utils.Float64Ptr(3),
			expected: []string{},
		},
		{
			name: "Menos meses que a janela de tendência não gera alerta de ARR",
			arr: []domain.ARRPoint{
				{Month: month(1), TotalARR: 120},
				{Month: month(2), TotalARR: 90},
			},
			expected: []string{},
		},
		{
			name: "ARR que volta a subir no último mês não gera alerta",
			arr: []domain.ARRPoint{
				{Month: month(1), TotalARR: 100},
				{Month: month(2), TotalARR: 80},
				{Month: month(3), TotalARR: 110},
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Alerts(tt.nrr, tt.grr, tt.coverage, tt.arr, defaultThresholds))
		})
	}
}
