package domain

import "time"

// MetricDelta guarda o último valor válido de uma série, o anterior e a diferença.
// Delta é nil quando não há valor anterior, o que é diferente de variação zero.
type MetricDelta struct {
	Month    *time.Time `json:"month"`
	Latest   *float64   `json:"latest"`
	Previous *float64   `json:"previous"`
	Delta    *float64   `json:"delta"`
}

type KPIDisplay struct {
	ARR              string `json:"arr"`
	NRR              string `json:"nrr"`
	GRR              string `json:"grr"`
	WinRate          string `json:"win_rate"`
	PipelineCoverage string `json:"pipeline_coverage"`
}

type KPISnapshot struct {
	Window             Window            `json:"window"`
	ARR                MetricDelta       `json:"arr"`
	NRR                MetricDelta       `json:"nrr"`
	GRR                MetricDelta       `json:"grr"`
	WinRate            MetricDelta       `json:"win_rate"`
	LatestStartMRR     *float64          `json:"latest_start_mrr"`
	Coverage           PipelineCoverage  `json:"coverage"`
	CoverageAssessment string            `json:"coverage_assessment"`
	RetentionQuality   RetentionQuality  `json:"retention_quality"`
	Display            KPIDisplay        `json:"display"`
	Alerts             []string          `json:"alerts"`
	SectionErrors      map[string]string `json:"section_errors,omitempty"`
}

// Nomes das seções usadas em SectionErrors
const (
	SectionARR       = "arr"
	SectionRetention = "retention"
	SectionClosed    = "closed_revenue"
	SectionCoverage  = "pipeline_coverage"
)
