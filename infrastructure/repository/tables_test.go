package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
)

func newTestResolver(existing map[string]bool, calls *int) *tableResolver {
	return &tableResolver{
		candidates: candidatesByDataset(config.Tables{
			Accounts:       []string{"raw.accounts"},
			SalesReps:      []string{"raw.sales_reps"},
			FctMRR:         []string{"marts.fct_mrr_complete", "marts.fct_mrr"},
			FctPipeline:    []string{"marts.fct_pipeline"},
			StageHistory:   []string{"raw.opportunity_stage_history", "marts.opportunity_stage_history"},
			SupportTickets: []string{"raw.support_tickets"},
			HealthSnapshot: []string{"marts.account_health"},
		}),
		cache: cache.New(time.Minute),
		ttl:   time.Hour,
		probe: func(_ context.Context, table string) error {
			*calls++
			if existing[table] {
				return nil
			}
			return errors.New("relation does not exist")
		},
	}
}

func TestTableResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		existing   map[string]bool
		expected   domain.ResolvedTables
		missingErr []domain.Dataset
	}{
		{
			name: "Deve escolher a primeira candidata que responde",
			existing: map[string]bool{
				"raw.accounts":                    true,
				"marts.fct_mrr_complete":          true,
				"marts.fct_mrr":                   true,
				"marts.fct_pipeline":              true,
				"marts.opportunity_stage_history": true,
			},
			expected: domain.ResolvedTables{
				domain.DatasetAccounts:       "raw.accounts",
				domain.DatasetSalesReps:      "",
				domain.DatasetFctMRR:         "marts.fct_mrr_complete",
				domain.DatasetFctPipeline:    "marts.fct_pipeline",
				domain.DatasetStageHistory:   "marts.opportunity_stage_history",
				domain.DatasetSupportTickets: "",
				domain.DatasetHealthSnapshot: "",
			},
		},
		{
			name: "Deve cair para a segunda candidata quando a primeira não existe",
			existing: map[string]bool{
				"raw.accounts":       true,
				"marts.fct_mrr":      true,
				"marts.fct_pipeline": true,
			},
			expected: domain.ResolvedTables{
				domain.DatasetAccounts:       "raw.accounts",
				domain.DatasetSalesReps:      "",
				domain.DatasetFctMRR:         "marts.fct_mrr",
				domain.DatasetFctPipeline:    "marts.fct_pipeline",
				domain.DatasetStageHistory:   "",
				domain.DatasetSupportTickets: "",
				domain.DatasetHealthSnapshot: "",
			},
		},
		{
			name: "Deve retornar erro listando os datasets obrigatórios ausentes",
			existing: map[string]bool{
				"raw.accounts": true,
			},
			expected: domain.ResolvedTables{
				domain.DatasetAccounts:       "raw.accounts",
				domain.DatasetSalesReps:      "",
				domain.DatasetFctMRR:         "",
				domain.DatasetFctPipeline:    "",
				domain.DatasetStageHistory:   "",
				domain.DatasetSupportTickets: "",
				domain.DatasetHealthSnapshot: "",
			},
			missingErr: []domain.Dataset{domain.DatasetFctMRR, domain.DatasetFctPipeline},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			resolver := newTestResolver(tt.existing, &calls)

			resolved, err := resolver.Resolve(context.Background())

			assert.Equal(t, tt.expected, resolved)
			if tt.missingErr == nil {
				assert.NoError(t, err)
				return
			}

			var missing *MissingTablesError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.missingErr, missing.Datasets)
			assert.Contains(t, err.Error(), "FCT_MRR, FCT_PIPELINE")
		})
	}
}

func TestTableResolver_Memoization(t *testing.T) {
	existing := map[string]bool{
		"raw.accounts":       true,
		"marts.fct_mrr":      true,
		"marts.fct_pipeline": true,
	}

	calls := 0
	resolver := newTestResolver(existing, &calls)

	_, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	first := calls
	assert.Greater(t, first, 0)

	_, err = resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, calls, "a segunda chamada deve usar o resultado memoizado")

	resolver.Reset()
	_, err = resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*first, calls, "após Reset as candidatas devem ser testadas novamente")
}

func TestResolvedTables_Listing(t *testing.T) {
	resolved := domain.ResolvedTables{
		domain.DatasetAccounts: "raw.accounts",
		domain.DatasetFctMRR:   "marts.fct_mrr",
	}

	listing := resolved.Listing()

	require.Len(t, listing, len(domain.Datasets))
	assert.Equal(t, domain.ResolvedTable{Dataset: domain.DatasetAccounts, Table: "raw.accounts"}, listing[0])
	assert.Equal(t, domain.ResolvedTable{Dataset: domain.DatasetSalesReps, Table: "NOT FOUND"}, listing[1])
	assert.Equal(t, domain.ResolvedTable{Dataset: domain.DatasetFctMRR, Table: "marts.fct_mrr"}, listing[2])
}
