package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

type RevenueRepository interface {
	ARRTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ARRPoint, error)
	RetentionTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.RetentionPoint, error)
	MovementRows(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.AccountMonthMRR, error)
	MoverCandidates(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.Mover, error)
	CohortCoverage(ctx context.Context, window domain.Window, filter domain.AccountFilter, cohortMonth time.Time) (*domain.CohortCoverage, error)
	DateBounds(ctx context.Context) (*domain.DateBounds, error)
}

type revenueRepository struct {
	warehouse
}

func NewRevenueRepository(conn postgres.Queryer, resolver TableResolver) RevenueRepository {
	return &revenueRepository{
		warehouse: warehouse{conn: conn, resolver: resolver},
	}
}

func (r *revenueRepository) ARRTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.ARRPoint, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	query := squirrel.
		Select("month", "round((sum(total_mrr) * 12)::numeric, 2) AS total_arr").
		Prefix("WITH base AS (?)", mrrBase(tables, window, filter)).
		From("base").
		GroupBy("month").
		OrderBy("month").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "arr_trend", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.ARRPoint, 0)
	for rows.Next() {
		var p domain.ARRPoint
		if err := rows.Scan(&p.Month, &p.TotalARR); err != nil {
			return nil, fmt.Errorf("erro ao escanear ARR: %w", err)
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// RetentionTrend compara cada mês de coorte T (antes do último mês da janela) com T+1.
// O MRR retido é limitado ao MRR inicial de cada conta, então o GRR nunca passa de 100.
func (r *revenueRepository) RetentionTrend(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.RetentionPoint, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	query := squirrel.
		Select(
			"cur.month",
			"round(sum(cur.total_mrr)::numeric, 2) AS start_mrr",
			"round(sum(coalesce(nxt.total_mrr, 0))::numeric, 2) AS end_mrr",
			"round(sum(least(coalesce(nxt.total_mrr, 0), cur.total_mrr))::numeric, 2) AS retained_mrr",
			"round((100 * sum(coalesce(nxt.total_mrr, 0)) / nullif(sum(cur.total_mrr), 0))::numeric, 2) AS nrr_pct",
			"round((100 * sum(least(coalesce(nxt.total_mrr, 0), cur.total_mrr)) / nullif(sum(cur.total_mrr), 0))::numeric, 2) AS grr_pct",
		).
		Prefix(`WITH base AS (?),
maxm AS (SELECT max(month) AS max_month FROM base),
cur AS (
	SELECT b.account_id, b.month, b.total_mrr
	FROM base b CROSS JOIN maxm
	WHERE b.month < maxm.max_month AND b.total_mrr > 0
)`, mrrBase(tables, window, filter)).
		From("cur").
		LeftJoin("base nxt ON nxt.account_id = cur.account_id AND nxt.month = (cur.month + INTERVAL '1 month')::date").
		GroupBy("cur.month").
		OrderBy("cur.month").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "retention_trend", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.RetentionPoint, 0)
	for rows.Next() {
		var (
			p        domain.RetentionPoint
			nrr, grr sql.NullFloat64
		)
		if err := rows.Scan(&p.Month, &p.StartMRR, &p.EndMRR, &p.RetainedMRR, &nrr, &grr); err != nil {
			return nil, fmt.Errorf("erro ao escanear retenção: %w", err)
		}
		p.NRRPct = floatPtr(nrr)
		p.GRRPct = floatPtr(grr)
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// MovementRows retorna o MRR de cada conta e mês com o MRR do mês anterior da mesma conta
func (r *revenueRepository) MovementRows(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.AccountMonthMRR, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	query := squirrel.
		Select(
			"account_id",
			"month",
			"total_mrr",
			"lag(total_mrr) OVER (PARTITION BY account_id ORDER BY month) AS prev_mrr",
		).
		Prefix("WITH base AS (?)", mrrBase(tables, window, filter)).
		From("base").
		OrderBy("account_id", "month").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "mrr_movement", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AccountMonthMRR, 0)
	for rows.Next() {
		var (
			row  domain.AccountMonthMRR
			prev sql.NullFloat64
		)
		if err := rows.Scan(&row.AccountID, &row.Month, &row.TotalMRR, &prev); err != nil {
			return nil, fmt.Errorf("erro ao escanear movimento de MRR: %w", err)
		}
		row.PrevMRR = floatPtr(prev)
		out = append(out, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// MoverCandidates retorna, por conta, o MRR dos dois últimos meses da janela (ausente vale 0).
// A ordenação e o corte de maiores expansões e contrações ficam com quem chama.
func (r *revenueRepository) MoverCandidates(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.Mover, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	accounts, _ := tables.Get(domain.DatasetAccounts)

	query := squirrel.
		Select(
			"p.account_id",
			"a.account_name",
			"a.segment",
			"a.region",
			"a.industry",
			"round(coalesce(p.mrr_curr, 0)::numeric, 2) AS mrr_curr",
			"round(coalesce(p.mrr_prev, 0)::numeric, 2) AS mrr_prev",
			"round((coalesce(p.mrr_curr, 0) - coalesce(p.mrr_prev, 0))::numeric, 2) AS mrr_delta",
		).
		Prefix(`WITH base AS (?),
maxm AS (SELECT max(month) AS max_month FROM base),
last2 AS (
	SELECT b.account_id, b.month, b.total_mrr
	FROM base b CROSS JOIN maxm
	WHERE b.month IN (maxm.max_month, (maxm.max_month - INTERVAL '1 month')::date)
),
pivoted AS (
	SELECT l.account_id,
		max(CASE WHEN l.month = maxm.max_month THEN l.total_mrr END) AS mrr_curr,
		max(CASE WHEN l.month = (maxm.max_month - INTERVAL '1 month')::date THEN l.total_mrr END) AS mrr_prev
	FROM last2 l CROSS JOIN maxm
	GROUP BY l.account_id
)`, mrrBase(tables, window, filter)).
		From("pivoted p").
		Join(accounts + " a ON a.account_id = p.account_id").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "top_movers", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movers := make([]domain.Mover, 0)
	for rows.Next() {
		var (
			m                         domain.Mover
			name, seg, region, indust sql.NullString
		)
		if err := rows.Scan(&m.AccountID, &name, &seg, &region, &indust, &m.MRRCurr, &m.MRRPrev, &m.MRRDelta); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		m.AccountName, m.Segment, m.Region, m.Industry = name.String, seg.String, region.String, indust.String
		movers = append(movers, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return movers, nil
}

// CohortCoverage conta as contas com MRR positivo no mês de coorte e as contas presentes no mês seguinte
func (r *revenueRepository) CohortCoverage(
	ctx context.Context,
	window domain.Window,
	filter domain.AccountFilter,
	cohortMonth time.Time,
) (*domain.CohortCoverage, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	month := domain.MonthStart(cohortMonth)
	next := month.AddDate(0, 1, 0)

	query := squirrel.
		Select(
			"(SELECT count(*) FROM cohort) AS cohort_accounts",
			"(SELECT count(*) FROM nxt) AS next_month_accounts",
			"round((100.0 * (SELECT count(*) FROM nxt) / nullif((SELECT count(*) FROM cohort), 0))::numeric, 2) AS next_month_coverage_pct",
		).
		Prefix(`WITH base AS (?),
cohort AS (SELECT DISTINCT account_id FROM base WHERE month = ? AND total_mrr > 0),
nxt AS (SELECT DISTINCT account_id FROM base WHERE month = ?)`, mrrBase(tables, window, filter), month, next).
		PlaceholderFormat(squirrel.Dollar)

	var (
		coverage domain.CohortCoverage
		pct      sql.NullFloat64
	)
	if err := r.queryRow(ctx, "cohort_coverage", query, &coverage.CohortAccounts, &coverage.NextMonthAccounts, &pct); err != nil {
		return nil, err
	}
	coverage.NextMonthCoveragePct = floatPtr(pct)

	return &coverage, nil
}

// DateBounds retorna o primeiro e o último mês com MRR carregado, sem filtros
func (r *revenueRepository) DateBounds(ctx context.Context) (*domain.DateBounds, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	mrr, _ := tables.Get(domain.DatasetFctMRR)

	query := squirrel.
		Select("min(month) AS min_month", "max(month) AS max_month").
		From(mrr).
		PlaceholderFormat(squirrel.Dollar)

	var minMonth, maxMonth sql.NullTime
	if err := r.queryRow(ctx, "mrr_date_bounds", query, &minMonth, &maxMonth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if !minMonth.Valid || !maxMonth.Valid {
		return nil, nil
	}

	return &domain.DateBounds{MinMonth: minMonth.Time, MaxMonth: maxMonth.Time}, nil
}
