package exploring

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	resolver     *mocks.MockTableResolver
	accountRepo  *mocks.MockAccountRepository
	revenueRepo  *mocks.MockRevenueRepository
	pipelineRepo *mocks.MockPipelineRepository
	qualityRepo  *mocks.MockQualityRepository
	clock        *clockwork.FakeClock
	service      Explorer
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		resolver:     mocks.NewMockTableResolver(ctrl),
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		revenueRepo:  mocks.NewMockRevenueRepository(ctrl),
		pipelineRepo: mocks.NewMockPipelineRepository(ctrl),
		qualityRepo:  mocks.NewMockQualityRepository(ctrl),
		clock:        clockwork.NewFakeClockAt(time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)),
	}

	cfg := &config.Config{Cache: config.Cache{MetricsTTL: time.Minute, DomainsTTL: 30 * time.Minute}}
	f.service = NewService(cfg, f.resolver, f.accountRepo, f.revenueRepo, f.pipelineRepo, f.qualityRepo, cache.New(time.Minute), f.clock)
	return f
}

func TestService_DateBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		bounds   *domain.DateBounds
		expected *domain.DateBounds
	}{
		{
			name: "Usa os limites da tabela de MRR",
			bounds: &domain.DateBounds{
				MinMonth: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
				MaxMonth: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			},
			expected: &domain.DateBounds{
				MinMonth: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
				MaxMonth: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "Tabela vazia usa 2023-01-01 até hoje",
			bounds: nil,
			expected: &domain.DateBounds{
				MinMonth: DefaultMinMonth,
				MaxMonth: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(ctrl)
			f.revenueRepo.EXPECT().DateBounds(gomock.Any()).Return(tt.bounds, nil).Times(1)

			bounds, err := f.service.DateBounds(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bounds)

			cached, err := f.service.DateBounds(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cached)
		})
	}
}

func TestService_AccountDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Oportunidades e tickets usam o limite de 200", func(t *testing.T) {
		f := newFixture(ctrl)
		f.pipelineRepo.EXPECT().OpportunitiesByAccount(gomock.Any(), "acc-1", uint64(200)).
			Return([]domain.Opportunity{{OppID: "o1"}}, nil)
		f.accountRepo.EXPECT().TicketsByAccount(gomock.Any(), "acc-1", uint64(200)).
			Return(nil, repository.ErrDatasetUnavailable)

		opps, err := f.service.AccountOpportunities(context.Background(), "acc-1")
		require.NoError(t, err)
		assert.Len(t, opps, 1)

		_, err = f.service.AccountTickets(context.Background(), "acc-1")
		assert.ErrorIs(t, err, repository.ErrDatasetUnavailable)
	})
}

func TestService_ResolvedTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Tabelas ausentes aparecem como NOT FOUND", func(t *testing.T) {
		f := newFixture(ctrl)
		resolved := domain.ResolvedTables{domain.DatasetAccounts: "crm.accounts"}
		f.resolver.EXPECT().Resolve(gomock.Any()).
			Return(resolved, &repository.MissingTablesError{Datasets: []domain.Dataset{domain.DatasetFctMRR}})

		listing, err := f.service.ResolvedTables(context.Background())

		require.NoError(t, err)
		require.Len(t, listing, len(domain.Datasets))
		assert.Equal(t, domain.ResolvedTable{Dataset: domain.DatasetAccounts, Table: "crm.accounts"}, listing[0])
		assert.Equal(t, "NOT FOUND", listing[2].Table)
	})

	t.Run("Erro sem mapeamento é propagado", func(t *testing.T) {
		f := newFixture(ctrl)
		f.resolver.EXPECT().Resolve(gomock.Any()).Return(nil, assert.AnError)

		_, err := f.service.ResolvedTables(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Recarrega tabelas, domínios e limites de datas", func(t *testing.T) {
		f := newFixture(ctrl)
		domains := &domain.FilterDomains{Segments: []string{"SMB"}}

		f.accountRepo.EXPECT().FilterDomains(gomock.Any()).Return(domains, nil).Times(2)
		f.revenueRepo.EXPECT().DateBounds(gomock.Any()).Return(nil, nil).Times(1)
		f.resolver.EXPECT().Reset()
		f.resolver.EXPECT().Resolve(gomock.Any()).Return(domain.ResolvedTables{}, nil)

		_, err := f.service.FilterDomains(context.Background())
		require.NoError(t, err)

		require.NoError(t, f.service.Reload(context.Background()))
	})

	t.Run("Falha na resolução interrompe a recarga", func(t *testing.T) {
		f := newFixture(ctrl)
		missing := &repository.MissingTablesError{Datasets: []domain.Dataset{domain.DatasetAccounts}}

		f.resolver.EXPECT().Reset()
		f.resolver.EXPECT().Resolve(gomock.Any()).Return(domain.ResolvedTables{}, missing)

		err := f.service.Reload(context.Background())

		assert.ErrorAs(t, err, &missing)
	})
}
