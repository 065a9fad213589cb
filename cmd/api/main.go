package main

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/integrator/anthropicclient"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/api"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/evidence"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/narrating"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/retention"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	appCache := cache.New(cfg.Cache.MetricsTTL)
	go appCache.Start()
	defer appCache.Stop()

	resolver := repository.NewTableResolver(pgConn, cfg.Tables, appCache, cfg.Cache.TablesTTL)
	resolveTables(ctx, resolver)

	accountRepo := repository.NewAccountRepository(pgConn, resolver)
	revenueRepo := repository.NewRevenueRepository(pgConn, resolver)
	pipelineRepo := repository.NewPipelineRepository(pgConn, resolver)
	healthRepo := repository.NewHealthRepository(pgConn, resolver)
	qualityRepo := repository.NewQualityRepository(pgConn, resolver)

	reporter := reporting.NewService(cfg, revenueRepo, pipelineRepo, healthRepo, appCache)
	gate := retention.NewGate(cfg, revenueRepo, appCache)
	summarizer := kpi.NewService(cfg, reporter, gate)
	builder := evidence.NewBuilder(cfg, summarizer, reporter, appCache)

	completer := anthropicclient.NewClient(cfg)
	narrator := narrating.NewService(cfg, builder, completer, appCache)

	explorer := exploring.NewService(cfg, resolver, accountRepo, revenueRepo, pipelineRepo, qualityRepo, appCache, clock)

	authenticator, err := authenticating.NewService(cfg, clock)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os clientes da API")
	}

	warmupService := scheduler.NewWarmupService(cfg, explorer, appCache, clock)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do cache")
	} else {
		logrus.Info("Agendador de aquecimento do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:      reporter,
		Summarizer:    summarizer,
		Builder:       builder,
		Narrator:      narrator,
		Explorer:      explorer,
		Authenticator: authenticator,
		Warmup:        warmupService,
		Clock:         clock,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o warehouse; NewConnection já tenta o ping com backoff
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao warehouse")
	}

	logrus.Info("Conexão com o warehouse estabelecida com sucesso")
	return conn
}

// resolveTables aborta a inicialização quando falta algum dataset obrigatório
func resolveTables(ctx context.Context, resolver repository.TableResolver) {
	resolved, err := resolver.Resolve(ctx)

	var missing *repository.MissingTablesError
	if errors.As(err, &missing) {
		logrus.WithField("datasets", missing.Datasets).Fatal("Tabelas obrigatórias não encontradas no warehouse")
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao resolver as tabelas do warehouse")
	}

	for _, t := range resolved.Listing() {
		logrus.WithFields(logrus.Fields{
			"dataset": t.Dataset,
			"table":   t.Table,
		}).Info("Tabela resolvida")
	}
}
