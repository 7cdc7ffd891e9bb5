package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
)

// WorkflowRunnerConfig representa a configuração do worker de workflows
type WorkflowRunnerConfig struct {
	IntervalSeconds int
	BatchSize       int
	SyncEnabled     bool
}

// WorkflowRunner consome os jobs de workflow vencidos fora do ciclo de
// requisição
type WorkflowRunner struct {
	scheduler           *gocron.Scheduler
	config              WorkflowRunnerConfig
	campaignService     campaigning.CampaignService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastRunClaimed      int
	lastRunDone         int
	lastRunFailed       int
}

// NewWorkflowRunner cria uma nova instância do worker de workflows
func NewWorkflowRunner(campaignService campaigning.CampaignService, appConfig *config.Config) *WorkflowRunner {
	runnerConfig := WorkflowRunnerConfig{
		IntervalSeconds: appConfig.WorkflowSync.IntervalSeconds,
		BatchSize:       appConfig.WorkflowSync.BatchSize,
		SyncEnabled:     appConfig.WorkflowSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": runnerConfig.IntervalSeconds,
		"batch_size":       runnerConfig.BatchSize,
		"sync_enabled":     runnerConfig.SyncEnabled,
	}).Info("Configuração do worker de workflows carregada")

	return &WorkflowRunner{
		scheduler:       scheduler,
		config:          runnerConfig,
		campaignService: campaignService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *WorkflowRunner) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Worker de workflows desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando worker de workflows")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.runDueTasks(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar worker de workflows: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando worker de workflows")
		s.scheduler.Stop()
	}()

	return nil
}

// runDueTasks processa um lote de jobs vencidos; varreduras não se sobrepõem
func (s *WorkflowRunner) runDueTasks(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de workflows já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	s.syncMutex.Lock()
	s.lastRunStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.campaignService.ProcessDueWorkflowTasks(ctx, uint64(s.config.BatchSize))
	if err != nil {
		logrus.WithError(err).Error("Erro ao processar jobs de workflow vencidos")
		return
	}

	s.syncMutex.Lock()
	s.lastRunClaimed = summary.Claimed
	s.lastRunDone = summary.Done
	s.lastRunFailed = summary.Failed
	s.lastRunCompletedAt = time.Now()
	s.syncMutex.Unlock()

	if summary.Claimed > 0 {
		logrus.WithFields(logrus.Fields{
			"claimed":  summary.Claimed,
			"done":     summary.Done,
			"failed":   summary.Failed,
			"duration": time.Since(startTime).String(),
		}).Info("Varredura de workflows concluída")
	}
}

// TriggerManualSync inicia manualmente uma varredura de jobs de workflow
func (s *WorkflowRunner) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de workflows já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de workflows")
	go s.runDueTasks(context.Background())
}

// GetStatus retorna o status atual do worker
func (s *WorkflowRunner) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_seconds":  s.config.IntervalSeconds,
		"sync_batch_size":        s.config.BatchSize,
		"last_run_started_at":    s.lastRunStartedAt,
		"last_run_completed_at":  s.lastRunCompletedAt,
		"last_run_claimed":       s.lastRunClaimed,
		"last_run_done":          s.lastRunDone,
		"last_run_failed":        s.lastRunFailed,
	}
}
