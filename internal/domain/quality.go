package domain

import "time"

const (
	RetentionNoteInterpretable    = "Retention is interpretable (next-month MRR coverage is high)."
	RetentionNoteNotInterpretable = "Retention is NOT interpretable: next-month MRR appears incomplete/not loaded for the selected period."
	RetentionNoteNoCohort         = "Retention cohort month not available for selected filters."
	RetentionNoteCheckFailed      = "Retention data-quality check failed: "
)

// RetentionQuality indica se o mês de coorte mais recente pode ser interpretado como retenção real
type RetentionQuality struct {
	CohortAccounts         *int     `json:"cohort_accounts"`
	NextMonthAccounts      *int     `json:"next_month_accounts"`
	NextMonthCoveragePct   *float64 `json:"next_month_coverage_pct"`
	RetentionInterpretable bool     `json:"retention_interpretable"`
	CoverageThresholdPct   float64  `json:"coverage_threshold_pct"`
	RetentionNote          string   `json:"retention_note"`
}

// RetentionQualityReport acompanha o resultado do gate com o mês de coorte avaliado
type RetentionQualityReport struct {
	CohortMonth *time.Time `json:"cohort_month"`
	RetentionQuality
}

// CohortCoverage é o resultado bruto da contagem de contas da coorte e do mês seguinte
type CohortCoverage struct {
	CohortAccounts       int      `json:"cohort_accounts"`
	NextMonthAccounts    int      `json:"next_month_accounts"`
	NextMonthCoveragePct *float64 `json:"next_month_coverage_pct"`
}

// SanityCheck é o resultado de uma verificação de qualidade de dados.
// Uma verificação que falhou carrega Error e não interrompe as demais.
type SanityCheck struct {
	Title  string         `json:"title"`
	Values map[string]any `json:"values,omitempty"`
	Error  string         `json:"error,omitempty"`
}
