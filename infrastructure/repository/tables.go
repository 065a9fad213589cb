package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/metrics"
)

const resolvedTablesCacheKey = "resolve_tables"

// MissingTablesError é retornado quando algum dataset obrigatório não tem tabela
type MissingTablesError struct {
	Datasets []domain.Dataset
}

func (e *MissingTablesError) Error() string {
	names := make([]string, 0, len(e.Datasets))
	for _, d := range e.Datasets {
		names = append(names, string(d))
	}
	return "tabelas obrigatórias não encontradas: " + strings.Join(names, ", ")
}

// TableResolver descobre qual tabela candidata responde para cada dataset lógico
type TableResolver interface {
	Resolve(ctx context.Context) (domain.ResolvedTables, error)
	Reset()
}

type probeFunc func(ctx context.Context, table string) error

type tableResolver struct {
	candidates map[domain.Dataset][]string
	cache      cache.Cache
	ttl        time.Duration
	probe      probeFunc
}

func NewTableResolver(conn postgres.Queryer, tables config.Tables, c cache.Cache, ttl time.Duration) TableResolver {
	r := &tableResolver{
		candidates: candidatesByDataset(tables),
		cache:      c,
		ttl:        ttl,
	}
	r.probe = func(ctx context.Context, table string) error {
		return probeTable(ctx, conn, table)
	}
	return r
}

func candidatesByDataset(tables config.Tables) map[domain.Dataset][]string {
	byName := tables.ByDataset()
	out := make(map[domain.Dataset][]string, len(byName))
	for _, d := range domain.Datasets {
		out[d] = byName[string(d)]
	}
	return out
}

// Resolve retorna o mapeamento memoizado. Datasets obrigatórios ausentes
// resultam em MissingTablesError, junto com o mapeamento parcial.
func (r *tableResolver) Resolve(ctx context.Context) (domain.ResolvedTables, error) {
	resolved, err := cache.Remember(r.cache, resolvedTablesCacheKey, r.ttl, func() (domain.ResolvedTables, error) {
		return r.resolve(ctx), nil
	})
	if err != nil {
		return nil, err
	}

	if missing := resolved.Missing(domain.RequiredDatasets...); len(missing) > 0 {
		return resolved, &MissingTablesError{Datasets: missing}
	}

	return resolved, nil
}

// Reset descarta o mapeamento memoizado, forçando novos testes na próxima chamada
func (r *tableResolver) Reset() {
	r.cache.Delete(resolvedTablesCacheKey)
}

func (r *tableResolver) resolve(ctx context.Context) domain.ResolvedTables {
	resolved := make(domain.ResolvedTables, len(domain.Datasets))

	for _, dataset := range domain.Datasets {
		resolved[dataset] = ""
		for _, candidate := range r.candidates[dataset] {
			if err := r.probe(ctx, candidate); err != nil {
				metrics.TableProbes.WithLabelValues(string(dataset), "miss").Inc()
				logrus.WithFields(logrus.Fields{
					"dataset": dataset,
					"table":   candidate,
				}).WithError(err).Debug("Tabela candidata não respondeu")
				continue
			}

			metrics.TableProbes.WithLabelValues(string(dataset), "hit").Inc()
			resolved[dataset] = candidate
			break
		}

		if resolved[dataset] == "" {
			logrus.WithField("dataset", dataset).Warn("Nenhuma tabela candidata encontrada para o dataset")
		}
	}

	return resolved
}

func probeTable(ctx context.Context, conn postgres.Queryer, table string) error {
	query, args, err := squirrel.
		Select("1 AS ok").
		From(table).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return rows.Err()
}
