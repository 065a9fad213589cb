package domain

const (
	GroundingRule = "Use ONLY fields in this JSON. If missing/null, say data not available."
	RetentionRule = "If data_quality.retention_interpretable is false, DO NOT interpret NRR/GRR as churn. " +
		"Say retention is not fully loaded/complete for the selected period."
	PipelineRule = "Pipeline coverage is an X multiple. Compare vs benchmarks.pipeline_coverage_target_x. " +
		"If assessment is 'very high', advise validating denominator/baseline."
)

// EvidencePack é o único objeto JSON usado como contexto para as narrativas.
// Todo valor numérico vem de uma consulta; dados ausentes são null.
type EvidencePack struct {
	PackID      string           `json:"pack_id"`
	TimeWindow  string           `json:"time_window"`
	Filters     PackFilters      `json:"filters"`
	Benchmarks  PackBenchmarks   `json:"benchmarks"`
	Metrics     PackMetrics      `json:"metrics"`
	DataQuality RetentionQuality `json:"data_quality"`
	Series      PackSeries       `json:"series"`
	Pipeline    PackPipeline     `json:"pipeline"`
	MRRMovement PackMovement     `json:"mrr_movement"`
	Rules       PackRules        `json:"rules"`
}

type PackFilters struct {
	StartDate            string        `json:"start_date"`
	EndDate              string        `json:"end_date"`
	RetentionCohortMonth *string       `json:"retention_cohort_month"`
	Dimensions           AccountFilter `json:"dimensions"`
}

type PackBenchmarks struct {
	PipelineCoverageTargetX float64 `json:"pipeline_coverage_target_x"`
}

type PackMetrics struct {
	ARRLatest                  *float64 `json:"arr_latest"`
	ARRDeltaMoM                *float64 `json:"arr_delta_mom"`
	NRRPct                     *float64 `json:"nrr_pct"`
	GRRPct                     *float64 `json:"grr_pct"`
	WinRatePct                 *float64 `json:"win_rate_pct"`
	WinRateDeltaMoM            *float64 `json:"win_rate_delta_mom"`
	PipelineCoverageRatioX     *float64 `json:"pipeline_coverage_ratio_x"`
	PipelineCoverageAssessment string   `json:"pipeline_coverage_assessment"`
	TotalOpenPipeline          *float64 `json:"total_open_pipeline"`
	Avg3mClosedRevenue         *float64 `json:"avg_3m_closed_revenue"`
}

type PackSeries struct {
	ARRTrendLast12  []ARRPoint           `json:"arr_trend_last_12"`
	RetentionLast12 []RetentionPoint     `json:"retention_last_12"`
	ClosedRevLast12 []ClosedRevenueMonth `json:"closed_rev_last_12"`
}

type PackPipeline struct {
	CoverageRow     []PipelineCoverage `json:"coverage_row"`
	OpenByStageTop8 []StageBreakdown   `json:"open_by_stage_top_8"`
}

type PackMovement struct {
	MovementSummary []MovementSummary `json:"movement_summary"`
	TopExpansions   []Mover           `json:"top_expansions"`
	TopContractions []Mover           `json:"top_contractions"`
}

type PackRules struct {
	GroundingRule string `json:"grounding_rule"`
	RetentionRule string `json:"retention_rule"`
	PipelineRule  string `json:"pipeline_rule"`
}
