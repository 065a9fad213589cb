package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

type AccountRepository interface {
	FilterDomains(ctx context.Context) (*domain.FilterDomains, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AccountMRR(ctx context.Context, accountID string, window domain.Window) ([]domain.AccountMRRPoint, error)
	TicketsByAccount(ctx context.Context, accountID string, limit uint64) ([]domain.SupportTicket, error)
}

type accountRepository struct {
	warehouse
}

func NewAccountRepository(conn postgres.Queryer, resolver TableResolver) AccountRepository {
	return &accountRepository{
		warehouse: warehouse{conn: conn, resolver: resolver},
	}
}

// FilterDomains lista os valores distintos de segmento, região e indústria das contas
// e de time e região dos vendedores (vazios quando não há tabela de vendedores)
func (r *accountRepository) FilterDomains(ctx context.Context) (*domain.FilterDomains, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	accounts, _ := tables.Get(domain.DatasetAccounts)

	segments, regions, industries := newValueSet(), newValueSet(), newValueSet()

	query := squirrel.
		Select("DISTINCT segment", "region", "industry").
		From(accounts).
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "account_filter_domains", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seg, region, indust sql.NullString
		if err := rows.Scan(&seg, &region, &indust); err != nil {
			return nil, fmt.Errorf("erro ao escanear domínio de filtro: %w", err)
		}
		segments.add(seg)
		regions.add(region)
		industries.add(indust)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	domains := &domain.FilterDomains{
		Segments:   segments.sorted(),
		Regions:    regions.sorted(),
		Industries: industries.sorted(),
		RepTeams:   []string{},
		RepRegions: []string{},
	}

	reps, ok := tables.Get(domain.DatasetSalesReps)
	if !ok {
		return domains, nil
	}

	repQuery := squirrel.
		Select("DISTINCT team", "region").
		From(reps).
		PlaceholderFormat(squirrel.Dollar)

	repRows, err := r.query(ctx, "rep_filter_domains", repQuery)
	if err != nil {
		return nil, err
	}
	defer repRows.Close()

	teams, repRegions := newValueSet(), newValueSet()
	for repRows.Next() {
		var team, region sql.NullString
		if err := repRows.Scan(&team, &region); err != nil {
			return nil, fmt.Errorf("erro ao escanear domínio de vendedor: %w", err)
		}
		teams.add(team)
		repRegions.add(region)
	}

	if err = repRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	domains.RepTeams = teams.sorted()
	domains.RepRegions = repRegions.sorted()

	return domains, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	accounts, _ := tables.Get(domain.DatasetAccounts)

	query := squirrel.
		Select("a.account_id", "a.account_name", "a.segment", "a.region", "a.industry", "a.owner_rep_id", "a.website").
		From(accounts + " a").
		OrderBy("a.account_name").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "list_accounts", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Account, 0)
	for rows.Next() {
		var (
			a                         domain.Account
			name, seg, region, indust sql.NullString
			ownerRepID, website       sql.NullString
		)
		if err := rows.Scan(&a.ID, &name, &seg, &region, &indust, &ownerRepID, &website); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		a.Name, a.Segment, a.Region, a.Industry = name.String, seg.String, region.String, indust.String
		a.OwnerRepID = stringPtr(ownerRepID)
		a.Website = stringPtr(website)
		out = append(out, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

func (r *accountRepository) AccountMRR(ctx context.Context, accountID string, window domain.Window) ([]domain.AccountMRRPoint, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}
	mrr, _ := tables.Get(domain.DatasetFctMRR)

	query := squirrel.
		Select("m.month", "round(sum(m.total_mrr)::numeric, 2) AS total_mrr").
		From(mrr + " m").
		Where(squirrel.Eq{"m.account_id": accountID}).
		Where(squirrel.GtOrEq{"m.month": window.Start}).
		Where(squirrel.LtOrEq{"m.month": window.End}).
		GroupBy("m.month").
		OrderBy("m.month").
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "account_mrr", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AccountMRRPoint, 0)
	for rows.Next() {
		var p domain.AccountMRRPoint
		if err := rows.Scan(&p.Month, &p.TotalMRR); err != nil {
			return nil, fmt.Errorf("erro ao escanear MRR da conta: %w", err)
		}
		out = append(out, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

// TicketsByAccount retorna ErrDatasetUnavailable quando não há tabela de tickets
func (r *accountRepository) TicketsByAccount(ctx context.Context, accountID string, limit uint64) ([]domain.SupportTicket, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	tickets, ok := tables.Get(domain.DatasetSupportTickets)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	query := squirrel.
		Select("st.ticket_id", "st.account_id", "st.created_date", "st.status", "st.priority", "st.category", "st.subject").
		From(tickets + " st").
		Where(squirrel.Eq{"st.account_id": accountID}).
		OrderBy("st.created_date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	rows, err := r.query(ctx, "account_tickets", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SupportTicket, 0)
	for rows.Next() {
		var (
			t                                   domain.SupportTicket
			status, priority, category, subject sql.NullString
		)
		if err := rows.Scan(&t.TicketID, &t.AccountID, &t.CreatedDate, &status, &priority, &category, &subject); err != nil {
			return nil, fmt.Errorf("erro ao escanear ticket: %w", err)
		}
		t.Status, t.Priority, t.Category, t.Subject = status.String, priority.String, category.String, subject.String
		out = append(out, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

type valueSet map[string]struct{}

func newValueSet() valueSet {
	return valueSet{}
}

func (s valueSet) add(v sql.NullString) {
	if v.Valid && v.String != "" {
		s[v.String] = struct{}{}
	}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
