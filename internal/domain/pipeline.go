package domain

import "time"

type Opportunity struct {
	OppID        string     `json:"opp_id"`
	AccountID    string     `json:"account_id"`
	CreatedDate  time.Time  `json:"created_date"`
	CloseDate    *time.Time `json:"close_date"`
	CurrentStage string     `json:"current_stage"`
	Probability  float64    `json:"probability"`
	Amount       float64    `json:"amount"`
	IsClosed     bool       `json:"is_closed"`
	IsWon        bool       `json:"is_won"`
}

type ClosedRevenueMonth struct {
	CloseMonth         time.Time `json:"close_month"`
	TotalClosedRevenue float64   `json:"total_closed_revenue"`
	TotalWonRevenue    float64   `json:"total_won_revenue"`
	WinRatePct         *float64  `json:"win_rate_pct"`
	AvgSalesCycleDays  *float64  `json:"avg_sales_cycle_days"`
}

// PipelineCoverage é a razão entre o pipeline aberto e a média de receita fechada dos 3 últimos meses
type PipelineCoverage struct {
	TotalOpenPipeline  *float64 `json:"total_open_pipeline"`
	Avg3mClosedRevenue *float64 `json:"avg_3m_closed_revenue"`
	CoverageRatio      *float64 `json:"pipeline_coverage_ratio"`
}

type StageBreakdown struct {
	Stage            string  `json:"current_stage"`
	OpenPipeline     float64 `json:"open_pipeline"`
	WeightedPipeline float64 `json:"weighted_pipeline"`
	OppCount         int     `json:"opp_count"`
}

type StageDuration struct {
	Stage                string   `json:"stage"`
	DealsReachedStage    int      `json:"deals_reached_stage"`
	AvgStageDurationDays *float64 `json:"avg_stage_duration_days"`
}

type StageConversion struct {
	FromStage         string   `json:"from_stage"`
	ToStage           string   `json:"to_stage"`
	DealsProgressed   int      `json:"deals_progressed"`
	DealsInStage      int      `json:"deals_in_stage"`
	ConversionRatePct *float64 `json:"conversion_rate_pct"`
}

// StageDynamics depende do histórico de estágios, que é opcional
type StageDynamics struct {
	Available   bool              `json:"available"`
	Durations   []StageDuration   `json:"durations"`
	Conversions []StageConversion `json:"conversions"`
}
