package domain

import "time"

type HealthStatus string

const (
	HealthLost     HealthStatus = "Lost"
	HealthHighRisk HealthStatus = "High Risk"
	HealthAtRisk   HealthStatus = "At Risk"
	HealthGrowing  HealthStatus = "Growing"
	HealthStable   HealthStatus = "Stable"
)

const (
	HealthSourceTable    = "table"
	HealthSourceFallback = "fallback"
)

// HealthSignal são os insumos do score de saúde calculado para o último mês da janela
type HealthSignal struct {
	AccountID    string    `json:"account_id"`
	AccountName  string    `json:"account_name"`
	Segment      string    `json:"segment"`
	Region       string    `json:"region"`
	Industry     string    `json:"industry"`
	Month        time.Time `json:"month"`
	TotalMRR     float64   `json:"total_mrr"`
	PrevMRR      float64   `json:"prev_mrr"`
	MRRAvg3m     float64   `json:"mrr_avg_3m"`
	TicketCnt90d int       `json:"ticket_cnt_90d"`
}

type HealthRow struct {
	AccountID    string       `json:"account_id"`
	AccountName  string       `json:"account_name"`
	Segment      string       `json:"segment"`
	Region       string       `json:"region"`
	Industry     string       `json:"industry"`
	Month        time.Time    `json:"month"`
	TotalMRR     *float64     `json:"total_mrr,omitempty"`
	PrevMRR      *float64     `json:"prev_mrr,omitempty"`
	MoMMRRPct    *float64     `json:"mom_mrr_pct,omitempty"`
	MRRAvg3m     *float64     `json:"mrr_avg_3m,omitempty"`
	TicketCnt90d *int         `json:"ticket_cnt_90d,omitempty"`
	HealthScore  *float64     `json:"health_score"`
	HealthStatus HealthStatus `json:"health_status"`
	Source       string       `json:"source"`
}

type HealthDistribution struct {
	HealthStatus HealthStatus `json:"health_status"`
	Count        int          `json:"count"`
}

type HealthSnapshot struct {
	Rows         []HealthRow          `json:"rows"`
	Distribution []HealthDistribution `json:"distribution"`
}
