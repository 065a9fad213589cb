// Package repository contém as consultas ao warehouse de receita.
// Todas as consultas de métricas compartilham o mesmo predicado de filtro de contas
// e recebem os nomes de tabela do TableResolver.
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
	"github.com/vfg2006/revenue-intelligence-api/pkg/metrics"
)

// ErrDatasetUnavailable indica que um dataset opcional não foi resolvido
var ErrDatasetUnavailable = errors.New("dataset opcional não disponível")

// warehouse agrupa a conexão e o resolver usados por todos os repositórios
type warehouse struct {
	conn     postgres.Queryer
	resolver TableResolver
}

func (w warehouse) tables(ctx context.Context) (domain.ResolvedTables, error) {
	return w.resolver.Resolve(ctx)
}

// query executa o builder e registra a duração na métrica do warehouse
func (w warehouse) query(ctx context.Context, name string, builder squirrel.Sqlizer) (*sql.Rows, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query %s: %w", name, err)
	}

	start := time.Now()
	rows, err := w.conn.QueryContext(ctx, sqlQuery, args...)
	observe(name, start, err)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query %s: %w", name, err)
	}

	return rows, nil
}

func (w warehouse) queryRow(ctx context.Context, name string, builder squirrel.Sqlizer, dest ...any) error {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query %s: %w", name, err)
	}

	start := time.Now()
	err = w.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(dest...)
	observe(name, start, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("erro ao executar a query %s: %w", name, err)
	}

	return nil
}

func observe(name string, start time.Time, err error) {
	result := "ok"
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		result = "error"
	}
	metrics.WarehouseQueryDuration.WithLabelValues(name, result).Observe(time.Since(start).Seconds())
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
