package domain

import "time"

type ARRPoint struct {
	Month    time.Time `json:"month"`
	TotalARR float64   `json:"total_arr"`
}

// RetentionPoint é o resultado de um mês de coorte T comparado com T+1
type RetentionPoint struct {
	Month       time.Time `json:"month"`
	StartMRR    float64   `json:"start_mrr"`
	EndMRR      float64   `json:"end_mrr"`
	RetainedMRR float64   `json:"retained_mrr"`
	NRRPct      *float64  `json:"nrr_pct"`
	GRRPct      *float64  `json:"grr_pct"`
}

// AccountMonthMRR é uma linha de MRR por conta e mês com o valor anterior da mesma conta
type AccountMonthMRR struct {
	AccountID string    `json:"account_id"`
	Month     time.Time `json:"month"`
	TotalMRR  float64   `json:"total_mrr"`
	PrevMRR   *float64  `json:"prev_mrr"`
}

type MovementType string

const (
	MovementNew         MovementType = "New"
	MovementChurn       MovementType = "Churn"
	MovementExpansion   MovementType = "Expansion"
	MovementContraction MovementType = "Contraction"
	MovementFlat        MovementType = "Flat"
)

// ClassifyMovement classifica a transição de MRR de uma conta em exatamente uma categoria
func ClassifyMovement(prev *float64, current float64) MovementType {
	switch {
	case prev == nil && current > 0:
		return MovementNew
	case prev != nil && *prev > 0 && current == 0:
		return MovementChurn
	case prev != nil && current > *prev:
		return MovementExpansion
	case prev != nil && current < *prev:
		return MovementContraction
	default:
		return MovementFlat
	}
}

type MovementSummary struct {
	MovementType MovementType `json:"movement_type"`
	RowsCount    int          `json:"rows_count"`
	NetMRRChange float64      `json:"net_mrr_change"`
}

type Mover struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Segment     string  `json:"segment"`
	Region      string  `json:"region"`
	Industry    string  `json:"industry"`
	MRRCurr     float64 `json:"mrr_curr"`
	MRRPrev     float64 `json:"mrr_prev"`
	MRRDelta    float64 `json:"mrr_delta"`
}

type TopMovers struct {
	Expansions   []Mover `json:"expansions"`
	Contractions []Mover `json:"contractions"`
}
