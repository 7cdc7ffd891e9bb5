package campaigning

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider"
	providermocks "github.com/vfg2006/marketing-automation-api/infrastructure/provider/mocks"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider/providerclient"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	segmentingmocks "github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	campaignRepo   *mocks.MockCampaignRepository
	templateRepo   *mocks.MockTemplateRepository
	workflowRepo   *mocks.MockWorkflowRepository
	taskRepo       *mocks.MockTaskRepository
	executionRepo  *mocks.MockExecutionRepository
	metricsRepo    *mocks.MockMetricsRepository
	eventRepo      *mocks.MockEventRepository
	customerRepo   *mocks.MockCustomerRepository
	interestRepo   *mocks.MockInterestRepository
	segmentService *segmentingmocks.MockSegmentService
	delivery       *providermocks.MockDeliveryIntegrator
}

func newCampaignService(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		campaignRepo:   mocks.NewMockCampaignRepository(ctrl),
		templateRepo:   mocks.NewMockTemplateRepository(ctrl),
		workflowRepo:   mocks.NewMockWorkflowRepository(ctrl),
		taskRepo:       mocks.NewMockTaskRepository(ctrl),
		executionRepo:  mocks.NewMockExecutionRepository(ctrl),
		metricsRepo:    mocks.NewMockMetricsRepository(ctrl),
		eventRepo:      mocks.NewMockEventRepository(ctrl),
		customerRepo:   mocks.NewMockCustomerRepository(ctrl),
		interestRepo:   mocks.NewMockInterestRepository(ctrl),
		segmentService: segmentingmocks.NewMockSegmentService(ctrl),
		delivery:       providermocks.NewMockDeliveryIntegrator(ctrl),
	}

	service := &Service{
		campaignRepository:  m.campaignRepo,
		templateRepository:  m.templateRepo,
		workflowRepository:  m.workflowRepo,
		taskRepository:      m.taskRepo,
		executionRepository: m.executionRepo,
		metricsRepository:   m.metricsRepo,
		eventRepository:     m.eventRepo,
		customerRepository:  m.customerRepo,
		interestRepository:  m.interestRepo,
		segmentService:      m.segmentService,
		delivery:            m.delivery,
	}

	return service, m
}

func member(id int64, email string) *domain.CustomerAttributes {
	return &domain.CustomerAttributes{
		Customer: domain.Customer{
			ID:        id,
			Email:     email,
			FirstName: "Cliente",
			LastName:  "Teste",
		},
	}
}

func TestExecuteCampaign(t *testing.T) {
	service, m := newCampaignService(t)

	segmentID := int64(10)
	campaign := &domain.Campaign{
		ID:              1,
		Name:            "Programa VIP",
		Type:            domain.CampaignTypeEmail,
		Status:          domain.CampaignStatusActive,
		TargetSegmentID: &segmentID,
		MessageContent:  "Olá {{first_name}}",
	}

	template := &domain.CampaignTemplate{
		ID:          5,
		CampaignID:  1,
		Channel:     domain.CampaignTypeEmail,
		SubjectLine: "Oferta para {{first_name}}",
		BodyContent: "Olá {{first_name}}, temos novidades.",
	}

	members := []*domain.CustomerAttributes{
		member(100, "a@exemplo.com"),
		member(200, "b@exemplo.com"),
		member(300, "c@exemplo.com"),
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.segmentService.EXPECT().CustomersBySegment(segmentID).Return(members, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(template, nil)
	m.interestRepo.EXPECT().TopInterest(gomock.Any()).Return(nil, nil).Times(3)

	m.executionRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(execution *domain.CampaignExecution) (*domain.CampaignExecution, error) {
			execution.ID = execution.CustomerID // ID previsível por cliente
			assert.Equal(t, domain.DeliveryPending, execution.DeliveryStatus)
			return execution, nil
		}).
		Times(3)

	// O cliente 200 falha no provedor; os demais entregam
	m.delivery.EXPECT().
		Deliver(gomock.Any(), int64(1), domain.CampaignTypeEmail, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ domain.CampaignType, request *providerclient.DeliveryRequest) *provider.DeliveryOutcome {
			if request.CustomerID == 200 {
				return &provider.DeliveryOutcome{Delivered: false, FailureReason: "mailbox unavailable"}
			}
			return &provider.DeliveryOutcome{Delivered: true, ProviderMessageID: "msg-ok"}
		}).
		Times(3)

	m.executionRepo.EXPECT().UpdateStatus(int64(100), domain.DeliverySent, nil).Return(nil)
	m.executionRepo.EXPECT().UpdateStatus(int64(200), domain.DeliveryFailed, gomock.Any()).Return(nil)
	m.executionRepo.EXPECT().UpdateStatus(int64(300), domain.DeliverySent, nil).Return(nil)

	// Cada entrega bem sucedida agenda os passos de workflow do evento de início
	m.workflowRepo.EXPECT().
		ListActiveByTrigger(int64(1), TriggerEventCampaignStart).
		Return(nil, nil).
		Times(2)

	m.metricsRepo.EXPECT().
		UpsertDaily(gomock.Any()).
		DoAndReturn(func(metrics *domain.CampaignMetrics) error {
			assert.Equal(t, 2, metrics.EmailsSent)
			return nil
		})

	m.eventRepo.EXPECT().Insert(gomock.Any()).Return(&domain.MarketingEvent{}, nil).AnyTimes()

	summary, err := service.ExecuteCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalTargeted)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
	assert.NotEmpty(t, summary.BatchRef)
}

func TestExecuteCampaignPromotesDraft(t *testing.T) {
	service, m := newCampaignService(t)

	segmentID := int64(10)
	campaign := &domain.Campaign{
		ID:              1,
		Type:            domain.CampaignTypeEmail,
		Status:          domain.CampaignStatusDraft,
		TargetSegmentID: &segmentID,
	}

	// A promoção relê a campanha antes de aplicar a transição
	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil).Times(2)
	m.campaignRepo.EXPECT().UpdateStatus(int64(1), domain.CampaignStatusActive).Return(nil)
	m.segmentService.EXPECT().CustomersBySegment(segmentID).Return(nil, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(nil, nil)
	m.eventRepo.EXPECT().Insert(gomock.Any()).Return(&domain.MarketingEvent{}, nil).AnyTimes()

	summary, err := service.ExecuteCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalTargeted)
}

func TestExecuteCampaignRejectsCompleted(t *testing.T) {
	service, m := newCampaignService(t)

	segmentID := int64(10)
	campaign := &domain.Campaign{
		ID:              1,
		Type:            domain.CampaignTypeEmail,
		Status:          domain.CampaignStatusCompleted,
		TargetSegmentID: &segmentID,
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)

	_, err := service.ExecuteCampaign(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCampaignNotActive)
}

func TestExecuteCampaignWithoutTargetSegment(t *testing.T) {
	service, m := newCampaignService(t)

	campaign := &domain.Campaign{
		ID:     1,
		Type:   domain.CampaignTypeEmail,
		Status: domain.CampaignStatusActive,
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)

	_, err := service.ExecuteCampaign(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNoTargetSegment)
}

func TestExecuteCampaignSkipsWithoutContent(t *testing.T) {
	service, m := newCampaignService(t)

	segmentID := int64(10)
	campaign := &domain.Campaign{
		ID:              1,
		Type:            domain.CampaignTypeEmail,
		Status:          domain.CampaignStatusActive,
		TargetSegmentID: &segmentID,
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.segmentService.EXPECT().
		CustomersBySegment(segmentID).
		Return([]*domain.CustomerAttributes{member(100, "a@exemplo.com")}, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(nil, nil)
	m.eventRepo.EXPECT().Insert(gomock.Any()).Return(&domain.MarketingEvent{}, nil).AnyTimes()

	summary, err := service.ExecuteCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Sent)
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.CampaignStatus
		next    domain.CampaignStatus
		allowed bool
	}{
		{"Ativação de rascunho é aplicada", domain.CampaignStatusDraft, domain.CampaignStatusActive, true},
		{"Pausa de campanha ativa é aplicada", domain.CampaignStatusActive, domain.CampaignStatusPaused, true},
		{"Campanha concluída não pode ser reativada", domain.CampaignStatusCompleted, domain.CampaignStatusActive, false},
		{"Rascunho não pode ser concluído direto", domain.CampaignStatusDraft, domain.CampaignStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCampaignService(t)

			campaign := &domain.Campaign{ID: 1, Status: tt.current}
			m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)

			if tt.allowed {
				m.campaignRepo.EXPECT().UpdateStatus(int64(1), tt.next).Return(nil)
				m.eventRepo.EXPECT().Insert(gomock.Any()).Return(&domain.MarketingEvent{}, nil).AnyTimes()
			}

			updated, err := service.ChangeStatus(1, tt.next)

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tt.next, updated.Status)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	service, _ := newCampaignService(t)

	_, err := service.ChangeStatus(1, domain.CampaignStatus("arquivada"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProcessWorkflowTriggerSchedulesDelayedSteps(t *testing.T) {
	service, m := newCampaignService(t)

	steps := []*domain.CampaignWorkflow{
		{
			ID:           50,
			CampaignID:   1,
			StepNumber:   1,
			TriggerEvent: TriggerEventCampaignStart,
			DelayHours:   48,
			ActionType:   domain.ActionSendEmail,
			ActionConfig: json.RawMessage(`{"subject": "Lembrete"}`),
			IsActive:     true,
		},
	}

	m.workflowRepo.EXPECT().
		ListActiveByTrigger(int64(1), TriggerEventCampaignStart).
		Return(steps, nil)

	before := time.Now()

	m.taskRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(task *domain.WorkflowTask) (*domain.WorkflowTask, error) {
			assert.Equal(t, int64(50), task.WorkflowID)
			assert.Equal(t, domain.ActionSendEmail, task.ActionType)
			assert.Equal(t, domain.TaskStatusPending, task.Status)
			// O disparo fica agendado para o futuro, não executa inline
			assert.True(t, task.FireAt.After(before.Add(47*time.Hour)))
			task.ID = 900
			return task, nil
		})

	tasks, err := service.ProcessWorkflowTrigger(context.Background(), 1, 100, TriggerEventCampaignStart)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(900), tasks[0].ID)
}

func TestProcessWorkflowTriggerRunsImmediateSegmentStep(t *testing.T) {
	service, m := newCampaignService(t)

	steps := []*domain.CampaignWorkflow{
		{
			ID:           51,
			CampaignID:   1,
			StepNumber:   1,
			TriggerEvent: "EMAIL_OPENED",
			DelayHours:   0,
			ActionType:   domain.ActionAddToSegment,
			ActionConfig: json.RawMessage(`{"segment_id": 10}`),
			IsActive:     true,
		},
	}

	campaign := &domain.Campaign{ID: 1, Status: domain.CampaignStatusActive}

	m.workflowRepo.EXPECT().ListActiveByTrigger(int64(1), "EMAIL_OPENED").Return(steps, nil)
	m.taskRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(task *domain.WorkflowTask) (*domain.WorkflowTask, error) {
			// Passo imediato nasce reivindicado; a varredura só pega pending
			assert.Equal(t, domain.TaskStatusProcessing, task.Status)
			task.ID = 901
			return task, nil
		})
	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.segmentService.EXPECT().AssignCustomer(int64(100), int64(10)).Return(nil)
	m.taskRepo.EXPECT().MarkDone(int64(901)).Return(nil)

	tasks, err := service.ProcessWorkflowTrigger(context.Background(), 1, 100, "EMAIL_OPENED")

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestProcessWorkflowTriggerImmediateStepRunsOnce(t *testing.T) {
	service, m := newCampaignService(t)

	steps := []*domain.CampaignWorkflow{
		{
			ID:           55,
			CampaignID:   1,
			StepNumber:   1,
			TriggerEvent: "EMAIL_OPENED",
			DelayHours:   0,
			ActionType:   domain.ActionAddToSegment,
			ActionConfig: json.RawMessage(`{"segment_id": 10}`),
			IsActive:     true,
		},
	}

	campaign := &domain.Campaign{ID: 1, Status: domain.CampaignStatusActive}

	m.workflowRepo.EXPECT().ListActiveByTrigger(int64(1), "EMAIL_OPENED").Return(steps, nil)
	m.taskRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(task *domain.WorkflowTask) (*domain.WorkflowTask, error) {
			require.Equal(t, domain.TaskStatusProcessing, task.Status)
			task.ID = 905
			return task, nil
		})
	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil).Times(1)

	// A ação e o desfecho acontecem exatamente uma vez, mesmo com uma
	// varredura disparando logo depois do trigger: como o job nunca entrou
	// como pending, a reivindicação da varredura volta vazia
	m.segmentService.EXPECT().AssignCustomer(int64(100), int64(10)).Return(nil).Times(1)
	m.taskRepo.EXPECT().MarkDone(int64(905)).Return(nil).Times(1)
	m.taskRepo.EXPECT().ClaimDue(gomock.Any(), uint64(50)).Return(nil, nil)

	_, err := service.ProcessWorkflowTrigger(context.Background(), 1, 100, "EMAIL_OPENED")
	require.NoError(t, err)

	summary, err := service.ProcessDueWorkflowTasks(context.Background(), 50)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Claimed)
}

func TestProcessDueWorkflowTasks(t *testing.T) {
	service, m := newCampaignService(t)

	activeCampaign := &domain.Campaign{ID: 1, Status: domain.CampaignStatusActive}
	pausedCampaign := &domain.Campaign{ID: 2, Status: domain.CampaignStatusPaused}

	tasks := []*domain.WorkflowTask{
		{
			ID:           901,
			CampaignID:   1,
			CustomerID:   100,
			ActionType:   domain.ActionAddToSegment,
			ActionConfig: json.RawMessage(`{"segment_id": 10}`),
		},
		{
			ID:           902,
			CampaignID:   2,
			CustomerID:   100,
			ActionType:   domain.ActionSendEmail,
			ActionConfig: json.RawMessage(`{"content": "Oi"}`),
		},
	}

	m.taskRepo.EXPECT().ClaimDue(gomock.Any(), uint64(100)).Return(tasks, nil)

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign, nil)
	m.segmentService.EXPECT().AssignCustomer(int64(100), int64(10)).Return(nil)
	m.taskRepo.EXPECT().MarkDone(int64(901)).Return(nil)

	// Job de campanha pausada é devolvido como falha sem executar a ação
	m.campaignRepo.EXPECT().GetByID(int64(2)).Return(pausedCampaign, nil)
	m.taskRepo.EXPECT().MarkFailed(int64(902), gomock.Any()).Return(nil)

	summary, err := service.ProcessDueWorkflowTasks(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Claimed)
	assert.Equal(t, 1, summary.Done)
	assert.Equal(t, 1, summary.Failed)
}

func TestCreateCampaignValidation(t *testing.T) {
	service, m := newCampaignService(t)

	_, err := service.CreateCampaign(&CreateCampaignRequest{Name: ""})
	assert.ErrorIs(t, err, ErrCampaignNameMissing)

	_, err = service.CreateCampaign(&CreateCampaignRequest{Name: "Teste", Type: "banner"})
	assert.ErrorIs(t, err, ErrInvalidCampaignType)

	segmentID := int64(99)
	m.segmentService.EXPECT().GetSegment(segmentID).Return(nil, ErrSegmentNotFound)

	_, err = service.CreateCampaign(&CreateCampaignRequest{
		Name:            "Teste",
		Type:            domain.CampaignTypeEmail,
		TargetSegmentID: &segmentID,
	})
	assert.ErrorIs(t, err, ErrSegmentNotFound)
}

func TestRenderPreview(t *testing.T) {
	service, m := newCampaignService(t)

	campaign := &domain.Campaign{ID: 1, Type: domain.CampaignTypeEmail, Status: domain.CampaignStatusActive}
	template := &domain.CampaignTemplate{
		CampaignID:            1,
		Channel:               domain.CampaignTypeEmail,
		SubjectLine:           "Olá {{first_name}}",
		BodyContent:           "Seu nível: {{tier}}. Novidades em {{top_interest}}!",
		PersonalizationFields: map[string]string{"tier": "VIP"},
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(template, nil)
	m.customerRepo.EXPECT().GetAttributes(int64(100)).Return(member(100, "a@exemplo.com"), nil)
	m.interestRepo.EXPECT().TopInterest(int64(100)).Return(&domain.CustomerInterest{
		CustomerID:      100,
		ProductCategory: "eletrônicos",
		InterestLevel:   domain.InterestHigh,
	}, nil)

	preview, err := service.RenderPreview(1, domain.CampaignTypeEmail, 100)

	require.NoError(t, err)
	assert.Equal(t, "Olá Cliente", preview.SubjectLine)
	assert.Equal(t, "Seu nível: VIP. Novidades em eletrônicos!", preview.BodyContent)
}

func TestRenderPreviewWithoutInterests(t *testing.T) {
	service, m := newCampaignService(t)

	campaign := &domain.Campaign{ID: 1, Type: domain.CampaignTypeEmail, Status: domain.CampaignStatusActive}
	template := &domain.CampaignTemplate{
		CampaignID:  1,
		Channel:     domain.CampaignTypeEmail,
		SubjectLine: "Olá {{first_name}}",
		BodyContent: "Novidades em {{top_interest}}",
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(template, nil)
	m.customerRepo.EXPECT().GetAttributes(int64(100)).Return(member(100, "a@exemplo.com"), nil)
	m.interestRepo.EXPECT().TopInterest(int64(100)).Return(nil, nil)

	preview, err := service.RenderPreview(1, domain.CampaignTypeEmail, 100)

	require.NoError(t, err)
	// Cliente sem interesses mantém o token intacto
	assert.Equal(t, "Novidades em {{top_interest}}", preview.BodyContent)
}

func TestRenderPreviewWithoutTemplate(t *testing.T) {
	service, m := newCampaignService(t)

	campaign := &domain.Campaign{ID: 1, Type: domain.CampaignTypeEmail}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(campaign, nil)
	m.templateRepo.EXPECT().GetByCampaignChannel(int64(1), domain.CampaignTypeEmail).Return(nil, nil)

	_, err := service.RenderPreview(1, domain.CampaignTypeEmail, 100)

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
