package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// accountPredicate monta o filtro de contas aplicado sobre os aliases "a" (contas) e "r" (vendedores).
// As cláusulas de vendedor só entram quando a tabela de vendedores foi resolvida.
func accountPredicate(filter domain.AccountFilter, hasReps bool) squirrel.Sqlizer {
	f := filter.Normalized()
	clauses := squirrel.And{}

	if len(f.Segments) > 0 {
		clauses = append(clauses, squirrel.Eq{"a.segment": f.Segments})
	}
	if len(f.Regions) > 0 {
		clauses = append(clauses, squirrel.Eq{"a.region": f.Regions})
	}
	if len(f.Industries) > 0 {
		clauses = append(clauses, squirrel.Eq{"a.industry": f.Industries})
	}
	if hasReps {
		if len(f.RepTeams) > 0 {
			clauses = append(clauses, squirrel.Eq{"r.team": f.RepTeams})
		}
		if len(f.RepRegions) > 0 {
			clauses = append(clauses, squirrel.Eq{"r.region": f.RepRegions})
		}
	}

	if len(clauses) == 0 {
		return squirrel.Expr("1=1")
	}
	return clauses
}

// withAccounts adiciona o join com contas (e vendedores, quando existirem) e o predicado de filtro.
// accountKey e repKey são as colunas da tabela de fatos que apontam para conta e vendedor.
func withAccounts(
	builder squirrel.SelectBuilder,
	tables domain.ResolvedTables,
	filter domain.AccountFilter,
	accountKey string,
	repKey string,
) squirrel.SelectBuilder {
	accounts, _ := tables.Get(domain.DatasetAccounts)
	builder = builder.Join(accounts + " a ON a.account_id = " + accountKey)

	reps, hasReps := tables.Get(domain.DatasetSalesReps)
	if hasReps {
		builder = builder.LeftJoin(reps + " r ON r.rep_id = " + repKey)
	}

	return builder.Where(accountPredicate(filter, hasReps))
}

// mrrBase seleciona o MRR por conta e mês dentro da janela, já filtrado
func mrrBase(tables domain.ResolvedTables, window domain.Window, filter domain.AccountFilter) squirrel.SelectBuilder {
	mrr, _ := tables.Get(domain.DatasetFctMRR)

	base := squirrel.
		Select("m.account_id", "m.month", "m.total_mrr").
		From(mrr+" m").
		Where(squirrel.GtOrEq{"m.month": window.Start}).
		Where(squirrel.LtOrEq{"m.month": window.End})

	return withAccounts(base, tables, filter, "m.account_id", "a.owner_rep_id")
}
