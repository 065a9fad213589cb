package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

type PipelineRepository interface {
	ClosedRevenueMonthly(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ClosedRevenueMonth, error)
	Coverage(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.PipelineCoverage, error)
	OpenByStage(ctx context.Context, filter domain.AccountFilter) ([]domain.StageBreakdown, error)
	StageDurations(ctx context.Context, filter domain.AccountFilter) ([]domain.StageDuration, error)
	StageConversions(ctx context.Context, filter domain.AccountFilter) ([]domain.StageConversion, error)
	OpportunitiesByAccount(ctx context.Context, accountID string, limit uint64) ([]domain.Opportunity, error)
}

type pipelineRepository struct {
	warehouse
}

func NewPipelineRepository(conn postgres.Queryer, resolver TableResolver) PipelineRepository {
	return &pipelineRepository{
		warehouse: warehouse{conn: conn, resolver: resolver},
	}
}

func pipelineFrom(tables domain.ResolvedTables, filter domain.AccountFilter, columns ...string) squirrel.SelectBuilder {
	pipeline, _ := tables.Get(domain.DatasetFctPipeline)
	builder := squirrel.Select(columns...).From(pipeline + " p")
	return withAccounts(builder, tables, filter, "p.account_id", "p.rep_id")
}

// ClosedRevenueMonthly agrega as oportunidades fechadas por mês de fechamento dentro da janela
func (r *pipelineRepository) ClosedRevenueMonthly(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ClosedRevenueMonth, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	closed := pipelineFrom(tables, filter,
		"date_trunc('month', p.close_date)::date AS close_month",
		"p.amount",
		"p.is_won",
		"p.created_date",
		"p.close_date",
	).
		Where("p.is_closed = true").
		Where("p.close_date IS NOT NULL").
		Where(squirrel.GtOrEq{"date_trunc('month', p.close_date)": window.Start}).
		Where(squirrel.LtOrEq{"date_trunc('month', p.close_date)": window.End})

	query := squirrel.
		Select(
			"close_month",
			"round(sum(amount)::numeric, 2) AS total_closed_revenue",
			"round(sum(CASE WHEN is_won THEN amount ELSE 0 END)::numeric, 2) AS total_won_revenue",
			"round((100.0 * sum(CASE WHEN is_won THEN 1 ELSE 0 END) / nullif(count(*), 0))::numeric, 2) AS win_rate_pct",
			"round(avg(close_date::date - created_date::date)::numeric, 2) AS avg_sales_cycle_days",
		).
		Prefix("WITH closed AS (?)", closed).
		From("closed").
		GroupBy("close_month").
		OrderBy("close_month").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "closed_revenue", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ClosedRevenueMonth, 0)
	for rows.Next() {
		var (
			m                domain.ClosedRevenueMonth
			winRate, avgDays sql.NullFloat64
		)
		if err := rows.Scan(&m.CloseMonth, &m.TotalClosedRevenue, &m.TotalWonRevenue, &winRate, &avgDays); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita fechada: %w", err)
		}
		m.WinRatePct = floatPtr(winRate)
		m.AvgSalesCycleDays = floatPtr(avgDays)
		out = append(out, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// Coverage divide o pipeline aberto pela média da receita fechada nos três meses de fechamento
// mais recentes da janela. Sem histórico de fechamento a razão fica nula.
func (r *pipelineRepository) Coverage(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.PipelineCoverage, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	openPipe := pipelineFrom(tables, filter, "round(sum(p.amount)::numeric, 2) AS total_open_pipeline").
		Where("p.is_closed = false")

	closed := pipelineFrom(tables, filter,
		"date_trunc('month', p.close_date)::date AS close_month",
		"round(sum(p.amount)::numeric, 2) AS total_closed_revenue",
	).
		Where("p.is_closed = true").
		Where("p.close_date IS NOT NULL").
		Where(squirrel.GtOrEq{"date_trunc('month', p.close_date)": window.Start}).
		Where(squirrel.LtOrEq{"date_trunc('month', p.close_date)": window.End}).
		GroupBy("1")

	query := squirrel.
		Select(
			"o.total_open_pipeline",
			"round(g.avg_3m_closed_revenue::numeric, 2) AS avg_3m_closed_revenue",
			"round((o.total_open_pipeline / nullif(g.avg_3m_closed_revenue, 0))::numeric, 2) AS pipeline_coverage_ratio",
		).
		Prefix(`WITH open_pipe AS (?),
closed AS (?),
last3 AS (SELECT total_closed_revenue FROM closed ORDER BY close_month DESC LIMIT 3),
avg3 AS (SELECT avg(total_closed_revenue) AS avg_3m_closed_revenue FROM last3)`, openPipe, closed).
		From("open_pipe o, avg3 g").
		PlaceholderFormat(squirrel.Dollar)

	var open, avg3m, ratio sql.NullFloat64
	if err := r.queryRow(ctx, "pipeline_coverage", query, &open, &avg3m, &ratio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.PipelineCoverage{}, nil
		}
		return nil, err
	}

	return &domain.PipelineCoverage{
		TotalOpenPipeline:  floatPtr(open),
		Avg3mClosedRevenue: floatPtr(avg3m),
		CoverageRatio:      floatPtr(ratio),
	}, nil
}

// OpenByStage agrupa o pipeline aberto pelo estágio atual, do maior para o menor valor
func (r *pipelineRepository) OpenByStage(ctx context.Context, filter domain.AccountFilter) ([]domain.StageBreakdown, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	query := pipelineFrom(tables, filter,
		"p.current_stage",
		"round(sum(p.amount)::numeric, 2) AS open_pipeline",
		"round(sum(p.amount * p.probability)::numeric, 2) AS weighted_pipeline",
		"count(*) AS opp_count",
	).
		Where("p.is_closed = false").
		GroupBy("p.current_stage").
		OrderBy("open_pipeline DESC").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "open_pipeline_by_stage", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.StageBreakdown, 0)
	for rows.Next() {
		var (
			s     domain.StageBreakdown
			stage sql.NullString
		)
		if err := rows.Scan(&stage, &s.OpenPipeline, &s.WeightedPipeline, &s.OppCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear estágio: %w", err)
		}
		s.Stage = stage.String
		out = append(out, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

func (r *pipelineRepository) stageHistory(tables domain.ResolvedTables, filter domain.AccountFilter) (squirrel.SelectBuilder, bool) {
	history, ok := tables.Get(domain.DatasetStageHistory)
	if !ok {
		return squirrel.SelectBuilder{}, false
	}

	builder := squirrel.
		Select("sh.opp_id", "sh.stage", "sh.stage_start_date", "sh.stage_end_date").
		From(history + " sh")
	return withAccounts(builder, tables, filter, "sh.account_id", "a.owner_rep_id"), true
}

// StageDurations retorna ErrDatasetUnavailable quando não há histórico de estágios
func (r *pipelineRepository) StageDurations(ctx context.Context, filter domain.AccountFilter) ([]domain.StageDuration, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	history, ok := r.stageHistory(tables, filter)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	query := squirrel.
		Select(
			"stage",
			"count(DISTINCT opp_id) AS deals_reached_stage",
			"round(avg(stage_end_date::date - stage_start_date::date)::numeric, 2) AS avg_stage_duration_days",
		).
		Prefix("WITH sh AS (?)", history).
		From("sh").
		Where("stage_end_date IS NOT NULL").
		GroupBy("stage").
		OrderBy("deals_reached_stage DESC").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "stage_durations", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.StageDuration, 0)
	for rows.Next() {
		var (
			d       domain.StageDuration
			avgDays sql.NullFloat64
		)
		if err := rows.Scan(&d.Stage, &d.DealsReachedStage, &avgDays); err != nil {
			return nil, fmt.Errorf("erro ao escanear duração de estágio: %w", err)
		}
		d.AvgStageDurationDays = floatPtr(avgDays)
		out = append(out, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// StageConversions conta as transições de cada estágio para o seguinte (ordenado pela data de início)
func (r *pipelineRepository) StageConversions(ctx context.Context, filter domain.AccountFilter) ([]domain.StageConversion, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	history, ok := r.stageHistory(tables, filter)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	query := squirrel.
		Select(
			"t.from_stage",
			"t.to_stage",
			"t.deals_progressed",
			"i.deals_in_stage",
			"round((100.0 * t.deals_progressed / nullif(i.deals_in_stage, 0))::numeric, 2) AS conversion_rate_pct",
		).
		Prefix(`WITH sh AS (?),
ordered AS (
	SELECT opp_id, stage AS from_stage,
		lead(stage) OVER (PARTITION BY opp_id ORDER BY stage_start_date) AS to_stage
	FROM sh
),
trans AS (
	SELECT from_stage, to_stage, count(*) AS deals_progressed
	FROM ordered
	WHERE to_stage IS NOT NULL
	GROUP BY from_stage, to_stage
),
in_stage AS (
	SELECT stage AS from_stage, count(DISTINCT opp_id) AS deals_in_stage
	FROM sh
	GROUP BY stage
)`, history).
		From("trans t").
		Join("in_stage i ON i.from_stage = t.from_stage").
		OrderBy("conversion_rate_pct DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "stage_conversions", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.StageConversion, 0)
	for rows.Next() {
		var (
			c    domain.StageConversion
			rate sql.NullFloat64
		)
		if err := rows.Scan(&c.FromStage, &c.ToStage, &c.DealsProgressed, &c.DealsInStage, &rate); err != nil {
			return nil, fmt.Errorf("erro ao escanear conversão de estágio: %w", err)
		}
		c.ConversionRatePct = floatPtr(rate)
		out = append(out, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// OpportunitiesByAccount lista as oportunidades mais recentes de uma conta, sem filtro de janela
func (r *pipelineRepository) OpportunitiesByAccount(ctx context.Context, accountID string, limit uint64) ([]domain.Opportunity, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	pipeline, _ := tables.Get(domain.DatasetFctPipeline)

	query := squirrel.
		Select(
			"p.opp_id",
			"p.account_id",
			"p.created_date",
			"p.close_date",
			"p.current_stage",
			"coalesce(p.probability, 0)",
			"coalesce(p.amount, 0)",
			"p.is_closed",
			"p.is_won",
		).
		From(pipeline + " p").
		Where(squirrel.Eq{"p.account_id": accountID}).
		OrderBy("p.created_date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "account_opportunities", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Opportunity, 0)
	for rows.Next() {
		var (
			o         domain.Opportunity
			closeDate sql.NullTime
			stage     sql.NullString
		)
		err := rows.Scan(
			&o.OppID,
			&o.AccountID,
			&o.CreatedDate,
			&closeDate,
			&stage,
			&o.Probability,
			&o.Amount,
			&o.IsClosed,
			&o.IsWon,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade: %w", err)
		}
		o.CloseDate = timePtr(closeDate)
		o.CurrentStage = stage.String
		out = append(out, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}
