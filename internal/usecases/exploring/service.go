// Package exploring atende as telas de apoio: domínios de filtro, limites de datas,
// explorador de contas e verificações de qualidade de dados
package exploring

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
)

const (
	AccountDetailLimit = 200

	keyFilterDomains = "filter_domains"
	keyDateBounds    = "mrr_date_bounds"
)

// DefaultMinMonth é usado quando a tabela de MRR está vazia
var DefaultMinMonth = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

type Explorer interface {
	FilterDomains(ctx context.Context) (*domain.FilterDomains, error)
	DateBounds(ctx context.Context) (*domain.DateBounds, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AccountMRR(ctx context.Context, accountID string, window domain.Window) ([]domain.AccountMRRPoint, error)
	AccountOpportunities(ctx context.Context, accountID string) ([]domain.Opportunity, error)
	AccountTickets(ctx context.Context, accountID string) ([]domain.SupportTicket, error)
	SanityChecks(ctx context.Context) ([]domain.SanityCheck, error)
	ResolvedTables(ctx context.Context) ([]domain.ResolvedTable, error)
	Reload(ctx context.Context) error
}

type Service struct {
	cfg          *config.Config
	resolver     repository.TableResolver
	accountRepo  repository.AccountRepository
	revenueRepo  repository.RevenueRepository
	pipelineRepo repository.PipelineRepository
	qualityRepo  repository.QualityRepository
	cache        cache.Cache
	clock        clockwork.Clock
}

func NewService(
	cfg *config.Config,
	resolver repository.TableResolver,
	accountRepo repository.AccountRepository,
	revenueRepo repository.RevenueRepository,
	pipelineRepo repository.PipelineRepository,
	qualityRepo repository.QualityRepository,
	c cache.Cache,
	clock clockwork.Clock,
) Explorer {
	return &Service{
		cfg:          cfg,
		resolver:     resolver,
		accountRepo:  accountRepo,
		revenueRepo:  revenueRepo,
		pipelineRepo: pipelineRepo,
		qualityRepo:  qualityRepo,
		cache:        c,
		clock:        clock,
	}
}

func (s *Service) FilterDomains(ctx context.Context) (*domain.FilterDomains, error) {
	return cache.Remember(s.cache, cache.Key(keyFilterDomains), s.cfg.Cache.DomainsTTL, func() (*domain.FilterDomains, error) {
		return s.accountRepo.FilterDomains(ctx)
	})
}

// DateBounds retorna o primeiro e o último mês de MRR, ou 2023-01-01 até hoje quando não há dados
func (s *Service) DateBounds(ctx context.Context) (*domain.DateBounds, error) {
	return cache.Remember(s.cache, cache.Key(keyDateBounds), s.cfg.Cache.MetricsTTL, func() (*domain.DateBounds, error) {
		bounds, err := s.revenueRepo.DateBounds(ctx)
		if err != nil {
			return nil, err
		}

		if bounds == nil {
			now := s.clock.Now().UTC()
			return &domain.DateBounds{
				MinMonth: DefaultMinMonth,
				MaxMonth: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			}, nil
		}

		return bounds, nil
	})
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return cache.Remember(s.cache, cache.Key("accounts"), s.cfg.Cache.MetricsTTL, func() ([]domain.Account, error) {
		return s.accountRepo.ListAccounts(ctx)
	})
}

func (s *Service) AccountMRR(ctx context.Context, accountID string, window domain.Window) ([]domain.AccountMRRPoint, error) {
	key := cache.Key("account_mrr", accountID, window)
	return cache.Remember(s.cache, key, s.cfg.Cache.MetricsTTL, func() ([]domain.AccountMRRPoint, error) {
		return s.accountRepo.AccountMRR(ctx, accountID, window)
	})
}

func (s *Service) AccountOpportunities(ctx context.Context, accountID string) ([]domain.Opportunity, error) {
	key := cache.Key("account_opportunities", accountID)
	return cache.Remember(s.cache, key, s.cfg.Cache.MetricsTTL, func() ([]domain.Opportunity, error) {
		return s.pipelineRepo.OpportunitiesByAccount(ctx, accountID, AccountDetailLimit)
	})
}

// AccountTickets retorna repository.ErrDatasetUnavailable quando não existe tabela de tickets
func (s *Service) AccountTickets(ctx context.Context, accountID string) ([]domain.SupportTicket, error) {
	key := cache.Key("account_tickets", accountID)
	return cache.Remember(s.cache, key, s.cfg.Cache.MetricsTTL, func() ([]domain.SupportTicket, error) {
		return s.accountRepo.TicketsByAccount(ctx, accountID, AccountDetailLimit)
	})
}

func (s *Service) SanityChecks(ctx context.Context) ([]domain.SanityCheck, error) {
	return s.qualityRepo.SanityChecks(ctx)
}

func (s *Service) ResolvedTables(ctx context.Context) ([]domain.ResolvedTable, error) {
	tables, err := s.resolver.Resolve(ctx)
	if tables == nil && err != nil {
		return nil, err
	}
	return tables.Listing(), nil
}

// Reload descarta a resolução de tabelas e os domínios em cache e carrega tudo de novo
func (s *Service) Reload(ctx context.Context) error {
	s.resolver.Reset()
	s.cache.Delete(cache.Key(keyFilterDomains))
	s.cache.Delete(cache.Key(keyDateBounds))

	if _, err := s.resolver.Resolve(ctx); err != nil {
		return err
	}
	if _, err := s.FilterDomains(ctx); err != nil {
		return err
	}
	if _, err := s.DateBounds(ctx); err != nil {
		return err
	}
	return nil
}
