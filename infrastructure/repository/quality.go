package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const (
	CheckMRRBounds      = "MRR date bounds"
	CheckPipelineBounds = "Pipeline close date bounds"
	CheckRowCounts      = "Row counts"
)

type QualityRepository interface {
	SanityChecks(ctx context.Context) ([]domain.SanityCheck, error)
}

type qualityRepository struct {
	warehouse
}

func NewQualityRepository(conn postgres.Queryer, resolver TableResolver) QualityRepository {
	return &qualityRepository{
		warehouse: warehouse{conn: conn, resolver: resolver},
	}
}

// SanityChecks executa as verificações de qualidade de dados.
// A falha de uma verificação fica registrada nela mesma e não interrompe as demais.
func (r *qualityRepository) SanityChecks(ctx context.Context) ([]domain.SanityCheck, error) {
	tables, err := r.tables(ctx)
	if err != nil {
		return nil, err
	}

	return []domain.SanityCheck{
		r.mrrBounds(ctx, tables),
		r.pipelineBounds(ctx, tables),
		r.rowCounts(ctx, tables),
	}, nil
}

func (r *qualityRepository) mrrBounds(ctx context.Context, tables domain.ResolvedTables) domain.SanityCheck {
	mrr, _ := tables.Get(domain.DatasetFctMRR)
	query := squirrel.
		Select("min(month) AS min_month", "max(month) AS max_month", "count(*) AS row_count").
		From(mrr).
		PlaceholderFormat(squirrel.Dollar)

	var (
		minMonth, maxMonth sql.NullTime
		rows               int64
	)
	if err := r.queryRow(ctx, "check_mrr_bounds", query, &minMonth, &maxMonth, &rows); err != nil {
		return failedCheck(CheckMRRBounds, err)
	}

	return domain.SanityCheck{
		Title: CheckMRRBounds,
		Values: map[string]any{
			"min_month": timePtr(minMonth),
			"max_month": timePtr(maxMonth),
			"rows":      rows,
		},
	}
}

func (r *qualityRepository) pipelineBounds(ctx context.Context, tables domain.ResolvedTables) domain.SanityCheck {
	pipeline, _ := tables.Get(domain.DatasetFctPipeline)
	query := squirrel.
		Select("min(close_date) AS min_close", "max(close_date) AS max_close", "count(*) AS row_count").
		From(pipeline).
		PlaceholderFormat(squirrel.Dollar)

	var (
		minClose, maxClose sql.NullTime
		rows               int64
	)
	if err := r.queryRow(ctx, "check_pipeline_bounds", query, &minClose, &maxClose, &rows); err != nil {
		return failedCheck(CheckPipelineBounds, err)
	}

	return domain.SanityCheck{
		Title: CheckPipelineBounds,
		Values: map[string]any{
			"min_close": timePtr(minClose),
			"max_close": timePtr(maxClose),
			"rows":      rows,
		},
	}
}

// rowCounts conta as linhas de cada dataset resolvido; datasets ausentes ficam de fora
func (r *qualityRepository) rowCounts(ctx context.Context, tables domain.ResolvedTables) domain.SanityCheck {
	counts := make(map[string]any, len(domain.Datasets))

	for _, dataset := range domain.Datasets {
		table, ok := tables.Get(dataset)
		if !ok {
			continue
		}

		query := squirrel.
			Select("count(*) AS n").
			From(table).
			PlaceholderFormat(squirrel.Dollar)

		var n int64
		if err := r.queryRow(ctx, "check_row_count", query, &n); err != nil {
			return failedCheck(CheckRowCounts, err)
		}
		counts[table] = n
	}

	return domain.SanityCheck{Title: CheckRowCounts, Values: counts}
}

func failedCheck(title string, err error) domain.SanityCheck {
	logrus.WithError(err).WithField("check", title).Warn("Verificação de qualidade de dados falhou")
	return domain.SanityCheck{Title: title, Error: err.Error()}
}
