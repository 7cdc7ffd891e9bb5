package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
)

type stubCampaignService struct {
	campaigning.CampaignService
	summary campaigning.WorkflowRunSummary
}

func (s *stubCampaignService) ProcessDueWorkflowTasks(_ context.Context, _ uint64) (*campaigning.WorkflowRunSummary, error) {
	summary := s.summary
	return &summary, nil
}

type stubEventService struct {
	eventing.EventService
	summary domain.EventProcessSummary
}

func (s *stubEventService) ProcessPending(_ context.Context, _ uint64) (*domain.EventProcessSummary, error) {
	summary := s.summary
	return &summary, nil
}

func workerConfig() *config.Config {
	return &config.Config{
		WorkflowSync: config.WorkflowSync{IntervalSeconds: 60, BatchSize: 25, Enabled: true},
		EventSync:    config.EventSync{IntervalSeconds: 60, BatchSize: 25, Enabled: true},
	}
}

func TestWorkflowRunnerStatusDuringSweep(t *testing.T) {
	service := &stubCampaignService{summary: campaigning.WorkflowRunSummary{Claimed: 2, Done: 1, Failed: 1}}
	runner := NewWorkflowRunner(service, workerConfig())

	// Leituras de status concorrentes com varreduras não podem disputar os
	// campos de último resultado
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			runner.runDueTasks(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = runner.GetStatus()
		}()
	}
	wg.Wait()

	status := runner.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 2, status["last_run_claimed"])
	assert.Equal(t, 1, status["last_run_done"])
	assert.Equal(t, 1, status["last_run_failed"])
}

func TestEventSweeperStatusDuringSweep(t *testing.T) {
	service := &stubEventService{summary: domain.EventProcessSummary{Total: 3, Processed: 2, Errors: 1}}
	sweeper := NewEventSweeper(service, workerConfig())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sweeper.sweep(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = sweeper.GetStatus()
		}()
	}
	wg.Wait()

	status := sweeper.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 2, status["last_sweep_processed"])
	assert.Equal(t, 1, status["last_sweep_errors"])
}
