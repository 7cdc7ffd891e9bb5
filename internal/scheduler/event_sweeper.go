package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
)

// EventSweeperConfig representa a configuração da varredura de eventos
type EventSweeperConfig struct {
	IntervalSeconds int
	BatchSize       int
	SyncEnabled     bool
}

// EventSweeper processa periodicamente os eventos pendentes do log
type EventSweeper struct {
	scheduler            *gocron.Scheduler
	config               EventSweeperConfig
	eventService         eventing.EventService
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepProcessed   int
	lastSweepErrors      int
}

// NewEventSweeper cria uma nova instância da varredura de eventos
func NewEventSweeper(eventService eventing.EventService, appConfig *config.Config) *EventSweeper {
	sweeperConfig := EventSweeperConfig{
		IntervalSeconds: appConfig.EventSync.IntervalSeconds,
		BatchSize:       appConfig.EventSync.BatchSize,
		SyncEnabled:     appConfig.EventSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": sweeperConfig.IntervalSeconds,
		"batch_size":       sweeperConfig.BatchSize,
		"sync_enabled":     sweeperConfig.SyncEnabled,
	}).Info("Configuração da varredura de eventos carregada")

	return &EventSweeper{
		scheduler:    scheduler,
		config:       sweeperConfig,
		eventService: eventService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *EventSweeper) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de eventos desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando varredura de eventos")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de eventos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando varredura de eventos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *EventSweeper) sweep(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de eventos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	s.syncMutex.Lock()
	s.lastSweepStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.eventService.ProcessPending(ctx, uint64(s.config.BatchSize))
	if err != nil {
		logrus.WithError(err).Error("Erro ao processar eventos pendentes")
		return
	}

	s.syncMutex.Lock()
	s.lastSweepProcessed = summary.Processed
	s.lastSweepErrors = summary.Errors
	s.lastSweepCompletedAt = time.Now()
	s.syncMutex.Unlock()

	if summary.Total > 0 {
		logrus.WithFields(logrus.Fields{
			"total":     summary.Total,
			"processed": summary.Processed,
			"errors":    summary.Errors,
			"duration":  time.Since(startTime).String(),
		}).Info("Varredura de eventos concluída")
	}
}

// TriggerManualSync inicia manualmente uma varredura de eventos pendentes
func (s *EventSweeper) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de eventos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de eventos")
	go s.sweep(context.Background())
}

// GetStatus retorna o status atual da varredura
func (s *EventSweeper) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":            s.config.SyncEnabled,
		"sync_interval_seconds":   s.config.IntervalSeconds,
		"sync_batch_size":         s.config.BatchSize,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_processed":    s.lastSweepProcessed,
		"last_sweep_errors":       s.lastSweepErrors,
	}
}
