package kpi

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const (
	CoverageUnknown  = "unknown"
	CoverageLow      = "low"
	CoverageHealthy  = "healthy"
	CoverageStrong   = "strong"
	CoverageVeryHigh = "very high (validate denominator)"

	RetentionNotAvailable = "Not available"
	RetentionNotLoaded    = "Data not loaded for selected period"
)

// LatestPrevious considera apenas as linhas com denominador positivo, ordenadas por mês.
// Delta só existe quando há valor atual e anterior.
func LatestPrevious[T any](
	rows []T,
	month func(T) time.Time,
	denominator func(T) float64,
	value func(T) *float64,
) domain.MetricDelta {
	valid := make([]T, 0, len(rows))
	for _, row := range rows {
		if denominator(row) > 0 {
			valid = append(valid, row)
		}
	}

	if len(valid) == 0 {
		return domain.MetricDelta{}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return month(valid[i]).Before(month(valid[j]))
	})

	last := valid[len(valid)-1]
	latestMonth := month(last)
	out := domain.MetricDelta{
		Month:  &latestMonth,
		Latest: value(last),
	}

	if len(valid) >= 2 {
		out.Previous = value(valid[len(valid)-2])
	}

	if out.Latest != nil && out.Previous != nil {
		delta := *out.Latest - *out.Previous
		out.Delta = &delta
	}

	return out
}

func ARRDelta(points []domain.ARRPoint) domain.MetricDelta {
	return LatestPrevious(points,
		func(p domain.ARRPoint) time.Time { return p.Month },
		func(p domain.ARRPoint) float64 { return p.TotalARR },
		func(p domain.ARRPoint) *float64 { return utils.Float64Ptr(p.TotalARR) },
	)
}

func NRRDelta(points []domain.RetentionPoint) domain.MetricDelta {
	return LatestPrevious(points,
		func(p domain.RetentionPoint) time.Time { return p.Month },
		func(p domain.RetentionPoint) float64 { return p.StartMRR },
		func(p domain.RetentionPoint) *float64 { return p.NRRPct },
	)
}

func GRRDelta(points []domain.RetentionPoint) domain.MetricDelta {
	return LatestPrevious(points,
		func(p domain.RetentionPoint) time.Time { return p.Month },
		func(p domain.RetentionPoint) float64 { return p.StartMRR },
		func(p domain.RetentionPoint) *float64 { return p.GRRPct },
	)
}

// LatestStartMRR é o MRR inicial do último mês de coorte válido
func LatestStartMRR(points []domain.RetentionPoint) *float64 {
	return LatestPrevious(points,
		func(p domain.RetentionPoint) time.Time { return p.Month },
		func(p domain.RetentionPoint) float64 { return p.StartMRR },
		func(p domain.RetentionPoint) *float64 { return utils.Float64Ptr(p.StartMRR) },
	).Latest
}

func WinRateDelta(months []domain.ClosedRevenueMonth) domain.MetricDelta {
	return LatestPrevious(months,
		func(m domain.ClosedRevenueMonth) time.Time { return m.CloseMonth },
		func(m domain.ClosedRevenueMonth) float64 { return m.TotalClosedRevenue },
		func(m domain.ClosedRevenueMonth) *float64 { return m.WinRatePct },
	)
}

// AssessPipelineCoverage classifica o múltiplo de cobertura em relação à meta
func AssessPipelineCoverage(ratio *float64, target float64) string {
	switch {
	case ratio == nil:
		return CoverageUnknown
	case *ratio < target:
		return CoverageLow
	case *ratio < 2*target:
		return CoverageHealthy
	case *ratio < 10:
		return CoverageStrong
	default:
		return CoverageVeryHigh
	}
}

// DisplayRetentionValue distingue retenção zerada por falta de carga de retenção realmente zero
func DisplayRetentionValue(value *float64, startMRR *float64) string {
	if value == nil {
		return RetentionNotAvailable
	}
	if startMRR != nil && *startMRR > 0 && *value == 0 {
		return RetentionNotLoaded
	}
	return utils.FormatPct(value)
}

// Alerts gera os avisos do painel a partir dos últimos valores e da tendência de ARR
func Alerts(nrr, grr, coverage *float64, arr []domain.ARRPoint, thresholds config.Thresholds) []string {
	alerts := make([]string, 0)

	if nrr != nil && *nrr < thresholds.NRRAlertBelow {
		alerts = append(alerts, fmt.Sprintf("Net Revenue Retention below %.0f%% (NRR=%.2f%%).", thresholds.NRRAlertBelow, *nrr))
	}
	if grr != nil && *grr < thresholds.GRRAlertBelow {
		alerts = append(alerts, fmt.Sprintf("Gross Revenue Retention below %.0f%% (GRR=%.2f%%).", thresholds.GRRAlertBelow, *grr))
	}
	if coverage != nil && *coverage < thresholds.PipelineCoverageAlertBelow {
		alerts = append(alerts, fmt.Sprintf("Pipeline coverage below %.1fx (Coverage=%.2fx).", thresholds.PipelineCoverageAlertBelow, *coverage))
	}
	if arrTrendingDown(arr, thresholds.ARRNegativeTrendLookback) {
		alerts = append(alerts, "ARR trending down over recent months.")
	}

	return alerts
}

func arrTrendingDown(points []domain.ARRPoint, lookback int) bool {
	valid := make([]domain.ARRPoint, 0, len(points))
	for _, p := range points {
		if p.TotalARR > 0 {
			valid = append(valid, p)
		}
	}

	if lookback < 2 || len(valid) < lookback {
		return false
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Month.Before(valid[j].Month)
	})

	tail := valid[len(valid)-lookback:]
	return tail[len(tail)-1].TotalARR < tail[0].TotalARR
}
