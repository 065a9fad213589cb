// Package scheduler contém o agendamento do aquecimento de cache
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/metrics"
)

type WarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type WarmupService struct {
	scheduler           *gocron.Scheduler
	explorer            exploring.Explorer
	cache               cache.Cache
	clock               clockwork.Clock
	config              WarmupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastCacheClearedAt  time.Time
}

func NewWarmupService(cfg *config.Config, explorer exploring.Explorer, c cache.Cache, clock clockwork.Clock) *WarmupService {
	warmupConfig := WarmupConfig{
		CronSchedule: cfg.Warmup.CronSchedule,
		SyncEnabled:  cfg.Warmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.SyncEnabled,
	}).Info("Configuração do agendador de aquecimento de cache carregada")

	return &WarmupService{
		scheduler: gocron.NewScheduler(time.UTC),
		explorer:  explorer,
		cache:     c,
		clock:     clock,
		config:    warmupConfig,
	}
}

func (s *WarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de aquecimento de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Warmup(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento de cache")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// Warmup refaz a resolução de tabelas e recarrega domínios de filtro e limites de datas.
// Uma execução concorrente é ignorada.
func (s *WarmupService) Warmup(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Aquecimento de cache já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento de cache")

	err := s.explorer.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.clock.Now()

	if err != nil {
		metrics.WarmupRuns.WithLabelValues("error").Inc()
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao recarregar tabelas e domínios: %w", err)
	}

	metrics.WarmupRuns.WithLabelValues("ok").Inc()
	s.lastSyncError = ""
	logrus.WithField("duration", s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)).Info("Aquecimento de cache concluído")
	return nil
}

// TriggerManualSync inicia manualmente um aquecimento em segundo plano
func (s *WarmupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de cache")
	go func() {
		if err := s.Warmup(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento manual de cache")
		}
	}()
}

// ClearCache descarta todas as entradas, inclusive a resolução de tabelas
func (s *WarmupService) ClearCache() {
	s.cache.DeleteAll()

	s.syncMutex.Lock()
	s.lastCacheClearedAt = s.clock.Now()
	s.syncMutex.Unlock()

	logrus.Info("Cache limpo manualmente")
}

// GetStatus retorna o status atual do agendador
func (s *WarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_cache_cleared_at":  s.lastCacheClearedAt,
	}
}
