package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

type HealthRepository interface {
	HealthTableSnapshot(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.HealthRow, error)
	HealthSignals(ctx context.Context, window domain.Window, filter domain.AccountFilter, ticketWindowDays int) ([]domain.HealthSignal, error)
}

type healthRepository struct {
	warehouse
}

func NewHealthRepository(conn postgres.Queryer, resolver TableResolver) HealthRepository {
	return &healthRepository{
		warehouse: warehouse{conn: conn, resolver: resolver},
	}
}

// HealthTableSnapshot lê a tabela de health para o último mês da janela.
// Retorna ErrDatasetUnavailable quando nenhuma tabela de health foi resolvida.
func (r *healthRepository) HealthTableSnapshot(ctx context.Context, window domain.Window, filter domain.AccountFilter) ([]domain.HealthRow, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	health, ok := tables.Get(domain.DatasetHealthSnapshot)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	scoped := withAccounts(
		squirrel.
			Select(
				"h.account_id",
				"a.account_name",
				"a.segment",
				"a.region",
				"a.industry",
				"h.month",
				"h.health_score",
				"h.health_status",
			).
			From(health+" h").
			Where(squirrel.GtOrEq{"h.month": window.Start}).
			Where(squirrel.LtOrEq{"h.month": window.End}),
		tables, filter, "h.account_id", "a.owner_rep_id",
	)

	query := squirrel.
		Select(
			"s.account_id",
			"s.account_name",
			"s.segment",
			"s.region",
			"s.industry",
			"s.month",
			"s.health_score",
			"s.health_status",
		).
		Prefix(`WITH scoped AS (?),
maxm AS (SELECT max(month) AS max_month FROM scoped)`, scoped).
		From("scoped s").
		Join("maxm ON s.month = maxm.max_month").
		OrderBy("s.health_score ASC NULLS LAST", "s.account_id").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "health_table", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.HealthRow, 0)
	for rows.Next() {
		var (
			h                         domain.HealthRow
			name, seg, region, indust sql.NullString
			score                     sql.NullFloat64
			status                    sql.NullString
		)
		if err := rows.Scan(&h.AccountID, &name, &seg, &region, &indust, &h.Month, &score, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear health: %w", err)
		}
		h.AccountName, h.Segment, h.Region, h.Industry = name.String, seg.String, region.String, indust.String
		h.HealthScore = floatPtr(score)
		h.HealthStatus = domain.HealthStatus(status.String)
		h.Source = domain.HealthSourceTable
		out = append(out, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// HealthSignals calcula, para o último mês da janela, o MRR atual, o anterior, a média móvel de 3 meses
// e a quantidade de tickets abertos nos últimos ticketWindowDays dias (0 quando não há tabela de tickets).
func (r *healthRepository) HealthSignals(
	ctx context.Context,
	window domain.Window,
	filter domain.AccountFilter,
	ticketWindowDays int,
) ([]domain.HealthSignal, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	accounts, _ := tables.Get(domain.DatasetAccounts)

	prefix := `WITH base AS (?),
maxm AS (SELECT max(month) AS max_month FROM base),
latest AS (
	SELECT b.account_id, b.month, b.total_mrr,
		lag(b.total_mrr) OVER (PARTITION BY b.account_id ORDER BY b.month) AS prev_mrr,
		avg(b.total_mrr) OVER (PARTITION BY b.account_id ORDER BY b.month ROWS BETWEEN 2 PRECEDING AND CURRENT ROW) AS mrr_avg_3m
	FROM base b
)`
	args := []any{mrrBase(tables, window, filter)}
	ticketColumn := "0 AS ticket_cnt_90d"

	tickets, hasTickets := tables.Get(domain.DatasetSupportTickets)
	if hasTickets {
		prefix += fmt.Sprintf(`,
tickets AS (
	SELECT st.account_id, count(*) AS ticket_cnt
	FROM %s st CROSS JOIN maxm
	WHERE st.created_date >= maxm.max_month - make_interval(days => ?::int)
	GROUP BY st.account_id
)`, tickets)
		args = append(args, ticketWindowDays)
		ticketColumn = "coalesce(t.ticket_cnt, 0) AS ticket_cnt_90d"
	}

	query := squirrel.
		Select(
			"l.account_id",
			"a.account_name",
			"a.segment",
			"a.region",
			"a.industry",
			"l.month",
			"round(l.total_mrr::numeric, 2) AS total_mrr",
			"round(coalesce(l.prev_mrr, 0)::numeric, 2) AS prev_mrr",
			"round(l.mrr_avg_3m::numeric, 2) AS mrr_avg_3m",
			ticketColumn,
		).
		Prefix(prefix, args...).
		From("latest l").
		Join("maxm ON l.month = maxm.max_month").
		Join(accounts + " a ON a.account_id = l.account_id")
	if hasTickets {
		query = query.LeftJoin("tickets t ON t.account_id = l.account_id")
	}
	query = query.OrderBy("l.account_id").PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "health_signals", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.HealthSignal, 0)
	for rows.Next() {
		var (
			s                         domain.HealthSignal
			name, seg, region, indust sql.NullString
		)
		err := rows.Scan(
			&s.AccountID,
			&name,
			&seg,
			&region,
			&indust,
			&s.Month,
			&s.TotalMRR,
			&s.PrevMRR,
			&s.MRRAvg3m,
			&s.TicketCnt90d,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sinais de health: %w", err)
		}
		s.AccountName, s.Segment, s.Region, s.Industry = name.String, seg.String, region.String, indust.String
		out = append(out, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}
