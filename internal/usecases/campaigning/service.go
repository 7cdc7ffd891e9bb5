package campaigning

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider/providerclient"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

// Evento de workflow disparado quando a campanha é executada
const TriggerEventCampaignStart = "CAMPAIGN_STARTED"

type CampaignService interface {
	ListCampaigns(status *domain.CampaignStatus, campaignType *domain.CampaignType) ([]*domain.Campaign, error)
	CreateCampaign(request *CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(campaignID int64) (*domain.Campaign, error)
	ChangeStatus(campaignID int64, next domain.CampaignStatus) (*domain.Campaign, error)
	UpdateMessage(campaignID int64, messageContent string) (*domain.Campaign, error)
	AddTemplate(campaignID int64, request *TemplateRequest) (*domain.CampaignTemplate, error)
	ListTemplates(campaignID int64) ([]*domain.CampaignTemplate, error)
	RenderPreview(campaignID int64, channel domain.CampaignType, customerID int64) (*RenderedMessage, error)
	ExecuteCampaign(ctx context.Context, campaignID int64) (*domain.ExecutionSummary, error)
	ListExecutions(campaignID int64) ([]*domain.CampaignExecution, error)
	UpsertWorkflowStep(campaignID int64, request *WorkflowStepRequest) (*domain.CampaignWorkflow, error)
	ListWorkflowSteps(campaignID int64) ([]*domain.CampaignWorkflow, error)
	ProcessWorkflowTrigger(ctx context.Context, campaignID, customerID int64, triggerEvent string) ([]*domain.WorkflowTask, error)
	ProcessDueWorkflowTasks(ctx context.Context, limit uint64) (*WorkflowRunSummary, error)
}

// CreateCampaignRequest é a entrada de criação de campanha
type CreateCampaignRequest struct {
	Name            string              `json:"campaign_name"`
	Description     string              `json:"description"`
	Type            domain.CampaignType `json:"campaign_type"`
	TargetSegmentID *int64              `json:"target_segment_id,omitempty"`
	StartDate       *string             `json:"start_date,omitempty"`
	EndDate         *string             `json:"end_date,omitempty"`
	Budget          float64             `json:"budget"`
	MessageContent  string              `json:"message_content"`
	CreatedBy       string              `json:"created_by"`
}

// TemplateRequest é a entrada de criação de template de canal
type TemplateRequest struct {
	Channel               domain.CampaignType `json:"channel"`
	SubjectLine           string              `json:"subject_line"`
	BodyContent           string              `json:"body_content"`
	PersonalizationFields map[string]string   `json:"personalization_fields"`
	ExternalAssetURL      *string             `json:"external_asset_url,omitempty"`
}

// WorkflowStepRequest é a entrada de definição de passo de workflow
type WorkflowStepRequest struct {
	StepNumber   int               `json:"step_number"`
	TriggerEvent string            `json:"trigger_event"`
	DelayHours   int               `json:"delay_hours"`
	ActionType   domain.ActionType `json:"action_type"`
	ActionConfig json.RawMessage   `json:"action_config"`
}

// RenderedMessage é a prévia de personalização de um canal para um cliente
type RenderedMessage struct {
	CampaignID  int64               `json:"campaign_id"`
	CustomerID  int64               `json:"customer_id"`
	Channel     domain.CampaignType `json:"channel"`
	SubjectLine string              `json:"subject_line,omitempty"`
	BodyContent string              `json:"body_content"`
}

// WorkflowRunSummary resume uma varredura de jobs de workflow vencidos
type WorkflowRunSummary struct {
	Claimed int `json:"claimed"`
	Done    int `json:"done"`
	Failed  int `json:"failed"`
}

type Service struct {
	campaignRepository  repository.CampaignRepository
	templateRepository  repository.TemplateRepository
	workflowRepository  repository.WorkflowRepository
	taskRepository      repository.TaskRepository
	executionRepository repository.ExecutionRepository
	metricsRepository   repository.MetricsRepository
	eventRepository     repository.EventRepository
	customerRepository  repository.CustomerRepository
	interestRepository  repository.InterestRepository
	segmentService      segmenting.SegmentService
	delivery            provider.DeliveryIntegrator
	cfg                 *config.Config
}

func NewService(
	campaignRepository repository.CampaignRepository,
	templateRepository repository.TemplateRepository,
	workflowRepository repository.WorkflowRepository,
	taskRepository repository.TaskRepository,
	executionRepository repository.ExecutionRepository,
	metricsRepository repository.MetricsRepository,
	eventRepository repository.EventRepository,
	customerRepository repository.CustomerRepository,
	interestRepository repository.InterestRepository,
	segmentService segmenting.SegmentService,
	delivery provider.DeliveryIntegrator,
	cfg *config.Config,
) CampaignService {
	return &Service{
		campaignRepository:  campaignRepository,
		templateRepository:  templateRepository,
		workflowRepository:  workflowRepository,
		taskRepository:      taskRepository,
		executionRepository: executionRepository,
		metricsRepository:   metricsRepository,
		eventRepository:     eventRepository,
		customerRepository:  customerRepository,
		interestRepository:  interestRepository,
		segmentService:      segmentService,
		delivery:            delivery,
		cfg:                 cfg,
	}
}

func (s *Service) ListCampaigns(status *domain.CampaignStatus, campaignType *domain.CampaignType) ([]*domain.Campaign, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if campaignType != nil && !campaignType.Valid() {
		return nil, ErrInvalidCampaignType
	}

	return s.campaignRepository.List(status, campaignType)
}

func (s *Service) CreateCampaign(request *CreateCampaignRequest) (*domain.Campaign, error) {
	if request.Name == "" {
		return nil, NewCampaignError(ErrCampaignNameMissing, apiErrors.ErrMissingRequiredData, 0, "")
	}

	if !request.Type.Valid() {
		return nil, NewCampaignError(ErrInvalidCampaignType, apiErrors.ErrInvalidCampaignType, 0,
			fmt.Sprintf("tipo %q não reconhecido", request.Type))
	}

	if request.TargetSegmentID != nil {
		if _, err := s.segmentService.GetSegment(*request.TargetSegmentID); err != nil {
			return nil, NewCampaignError(ErrSegmentNotFound, apiErrors.ErrSegmentNotFound, 0,
				fmt.Sprintf("segmento %d", *request.TargetSegmentID))
		}
	}

	startDate, err := parseOptionalDate(request.StartDate)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrInvalidFormat, 0, "start_date")
	}

	endDate, err := parseOptionalDate(request.EndDate)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrInvalidFormat, 0, "end_date")
	}

	campaign, err := s.campaignRepository.Create(&domain.Campaign{
		Name:            request.Name,
		Description:     request.Description,
		Type:            request.Type,
		TargetSegmentID: request.TargetSegmentID,
		StartDate:       startDate,
		EndDate:         endDate,
		Budget:          request.Budget,
		MessageContent:  request.MessageContent,
		CreatedBy:       request.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_type": campaign.Type,
	}).Info("campaigns: campaign created in draft")

	return campaign, nil
}

func (s *Service) GetCampaign(campaignID int64) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	return campaign, nil
}

// ChangeStatus aplica a máquina de estados da campanha; transições fora do
// conjunto permitido são rejeitadas, incluindo qualquer saída de completed
func (s *Service) ChangeStatus(campaignID int64, next domain.CampaignStatus) (*domain.Campaign, error) {
	if !next.Valid() {
		return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, campaignID, string(next))
	}

	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.Status.CanTransition(next) {
		return nil, NewCampaignError(ErrInvalidTransition, apiErrors.ErrInvalidTransition, campaignID,
			fmt.Sprintf("%s -> %s", campaign.Status, next))
	}

	previous := campaign.Status

	if err := s.campaignRepository.UpdateStatus(campaignID, next); err != nil {
		return nil, err
	}

	campaign.Status = next

	s.publishStatusEvents(campaign, previous)

	return campaign, nil
}

func (s *Service) UpdateMessage(campaignID int64, messageContent string) (*domain.Campaign, error) {
	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepository.UpdateMessage(campaignID, messageContent); err != nil {
		return nil, err
	}

	campaign.MessageContent = messageContent

	return campaign, nil
}

func (s *Service) AddTemplate(campaignID int64, request *TemplateRequest) (*domain.CampaignTemplate, error) {
	if !request.Channel.Valid() {
		return nil, NewCampaignError(ErrInvalidCampaignType, apiErrors.ErrInvalidCampaignType, campaignID,
			fmt.Sprintf("canal %q não reconhecido", request.Channel))
	}

	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.templateRepository.Create(&domain.CampaignTemplate{
		CampaignID:            campaignID,
		Channel:               request.Channel,
		SubjectLine:           request.SubjectLine,
		BodyContent:           request.BodyContent,
		PersonalizationFields: request.PersonalizationFields,
		ExternalAssetURL:      request.ExternalAssetURL,
	})
}

func (s *Service) ListTemplates(campaignID int64) ([]*domain.CampaignTemplate, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.templateRepository.ListByCampaign(campaignID)
}

// RenderPreview personaliza o template do canal para um cliente sem enviar
// nada; tokens sem valor ficam intactos
func (s *Service) RenderPreview(campaignID int64, channel domain.CampaignType, customerID int64) (*RenderedMessage, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	template, err := s.templateRepository.GetByCampaignChannel(campaignID, channel)
	if err != nil {
		return nil, err
	}

	if template == nil {
		return nil, ErrTemplateNotFound
	}

	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, segmenting.ErrCustomerNotFound
	}

	overrides := s.personalizationOverrides(template.PersonalizationFields, customerID)

	return &RenderedMessage{
		CampaignID:  campaignID,
		CustomerID:  customerID,
		Channel:     channel,
		SubjectLine: RenderContent(template.SubjectLine, attrs, overrides),
		BodyContent: RenderContent(template.BodyContent, attrs, overrides),
	}, nil
}

// personalizationOverrides combina os campos fixos do template com o valor
// derivado top_interest, a categoria de maior interesse do cliente. Clientes
// sem interesses registrados não recebem o token.
func (s *Service) personalizationOverrides(fields map[string]string, customerID int64) map[string]string {
	overrides := make(map[string]string, len(fields)+1)
	for key, value := range fields {
		overrides[key] = value
	}

	interest, err := s.interestRepository.TopInterest(customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Warn("campaigns: failed to resolve top interest")
		return overrides
	}

	if interest != nil {
		overrides["top_interest"] = interest.ProductCategory
	}

	return overrides
}

// ExecuteCampaign dispara a campanha ativa para os membros do segmento alvo.
// Cada destinatário é uma unidade de trabalho independente: falha de entrega
// vira resultado na execução, nunca aborta o lote.
func (s *Service) ExecuteCampaign(ctx context.Context, campaignID int64) (*domain.ExecutionSummary, error) {
	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	switch campaign.Status {
	case domain.CampaignStatusActive:
	case domain.CampaignStatusDraft, domain.CampaignStatusScheduled:
		// Executar uma campanha em rascunho ou agendada a promove para ativa
		if campaign, err = s.ChangeStatus(campaignID, domain.CampaignStatusActive); err != nil {
			return nil, err
		}
	default:
		return nil, NewCampaignError(ErrCampaignNotActive, apiErrors.ErrInvalidTransition, campaignID,
			string(campaign.Status))
	}

	if campaign.TargetSegmentID == nil {
		return nil, NewCampaignError(ErrNoTargetSegment, apiErrors.ErrMissingRequiredData, campaignID, "")
	}

	members, err := s.segmentService.CustomersBySegment(*campaign.TargetSegmentID)
	if err != nil {
		return nil, err
	}

	batchRef, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepository.GetByCampaignChannel(campaignID, campaign.Type)
	if err != nil {
		return nil, err
	}

	summary := &domain.ExecutionSummary{
		CampaignID:    campaignID,
		BatchRef:      batchRef,
		TotalTargeted: len(members),
	}

	for _, member := range members {
		s.executeForCustomer(ctx, campaign, template, member, summary)
	}

	if summary.Sent > 0 {
		if err := s.metricsRepository.UpsertDaily(&domain.CampaignMetrics{
			CampaignID: campaignID,
			MetricDate: metricDay(time.Now()),
			EmailsSent: summary.Sent,
		}); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to update send metrics")
		}
	}

	s.publishEvent(domain.EventCampaignStarted, nil, &campaignID, map[string]any{
		"batch_ref":      batchRef,
		"total_targeted": summary.TotalTargeted,
		"sent":           summary.Sent,
		"failed":         summary.Failed,
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"batch_ref":   batchRef,
		"targeted":    summary.TotalTargeted,
		"sent":        summary.Sent,
		"failed":      summary.Failed,
		"skipped":     summary.Skipped,
	}).Info("campaigns: campaign execution finished")

	return summary, nil
}

// ListExecutions retorna o histórico de entregas individuais da campanha
func (s *Service) ListExecutions(campaignID int64) ([]*domain.CampaignExecution, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.executionRepository.ListByCampaign(campaignID)
}

func (s *Service) executeForCustomer(
	ctx context.Context,
	campaign *domain.Campaign,
	template *domain.CampaignTemplate,
	member *domain.CustomerAttributes,
	summary *domain.ExecutionSummary,
) {
	// Sem template do canal e sem mensagem base não há o que entregar
	if template == nil && campaign.MessageContent == "" {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"customer_id": member.ID,
		}).Warn("campaigns: skipping customer without resolvable content")
		summary.Skipped++
		return
	}

	content := campaign.MessageContent
	subject := ""

	if template != nil {
		overrides := s.personalizationOverrides(template.PersonalizationFields, member.ID)
		content = RenderContent(template.BodyContent, member, overrides)
		subject = RenderContent(template.SubjectLine, member, overrides)
	} else {
		content = RenderContent(content, member, nil)
	}

	execution, err := s.executionRepository.Insert(&domain.CampaignExecution{
		CampaignID:          campaign.ID,
		CustomerID:          member.ID,
		Channel:             campaign.Type,
		DeliveryStatus:      domain.DeliveryPending,
		PersonalizedContent: content,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"customer_id": member.ID,
			"error":       err.Error(),
		}).Error("campaigns: failed to record execution")
		summary.Skipped++
		return
	}

	// Campanhas de anúncio não têm entrega individual por provedor
	if campaign.Type == domain.CampaignTypeAd {
		if err := s.executionRepository.UpdateStatus(execution.ID, domain.DeliverySent, nil); err == nil {
			summary.Sent++
		} else {
			summary.Skipped++
		}
		return
	}

	outcome := s.delivery.Deliver(ctx, campaign.ID, campaign.Type, &providerclient.DeliveryRequest{
		CustomerID: member.ID,
		Recipient:  deliveryRecipient(campaign.Type, member),
		Subject:    subject,
		Content:    content,
		CampaignID: campaign.ID,
	})

	if !outcome.Delivered {
		reason := outcome.FailureReason
		if err := s.executionRepository.UpdateStatus(execution.ID, domain.DeliveryFailed, &reason); err != nil {
			logrus.WithField("execution_id", execution.ID).
				Error("campaigns: failed to mark execution as failed")
		}
		summary.Failed++
		return
	}

	if err := s.executionRepository.UpdateStatus(execution.ID, domain.DeliverySent, nil); err != nil {
		logrus.WithField("execution_id", execution.ID).
			Error("campaigns: failed to mark execution as sent")
	}

	summary.Sent++

	eventType := domain.EventEmailSent
	if campaign.Type == domain.CampaignTypeSMS {
		eventType = domain.EventSMSSent
	}

	s.publishEvent(eventType, &member.ID, &campaign.ID, map[string]any{
		"channel": campaign.Type,
	})

	if _, err := s.ProcessWorkflowTrigger(ctx, campaign.ID, member.ID, TriggerEventCampaignStart); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"customer_id": member.ID,
			"error":       err.Error(),
		}).Warn("campaigns: failed to schedule workflow steps")
	}
}

func (s *Service) UpsertWorkflowStep(campaignID int64, request *WorkflowStepRequest) (*domain.CampaignWorkflow, error) {
	if !request.ActionType.Valid() {
		return nil, NewCampaignError(ErrInvalidActionType, apiErrors.ErrInvalidRequest, campaignID,
			string(request.ActionType))
	}

	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.workflowRepository.UpsertStep(&domain.CampaignWorkflow{
		CampaignID:   campaignID,
		StepNumber:   request.StepNumber,
		TriggerEvent: request.TriggerEvent,
		DelayHours:   request.DelayHours,
		ActionType:   request.ActionType,
		ActionConfig: request.ActionConfig,
	})
}

func (s *Service) ListWorkflowSteps(campaignID int64) ([]*domain.CampaignWorkflow, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.workflowRepository.ListSteps(campaignID)
}

// ProcessWorkflowTrigger materializa os passos ativos do evento em jobs
// agendados. Passos sem atraso executam na hora; os demais ficam para o worker.
func (s *Service) ProcessWorkflowTrigger(ctx context.Context, campaignID, customerID int64, triggerEvent string) ([]*domain.WorkflowTask, error) {
	steps, err := s.workflowRepository.ListActiveByTrigger(campaignID, triggerEvent)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tasks := make([]*domain.WorkflowTask, 0, len(steps))

	for _, step := range steps {
		status := domain.TaskStatusPending
		if step.DelayHours <= 0 {
			// Passos imediatos já nascem reivindicados; se entrassem como
			// pending, a varredura do worker poderia executá-los de novo
			// antes do desfecho inline chegar ao banco
			status = domain.TaskStatusProcessing
		}

		task, err := s.taskRepository.Insert(&domain.WorkflowTask{
			CampaignID:   campaignID,
			CustomerID:   customerID,
			WorkflowID:   step.ID,
			ActionType:   step.ActionType,
			ActionConfig: step.ActionConfig,
			FireAt:       now.Add(time.Duration(step.DelayHours) * time.Hour),
			Status:       status,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"workflow_id": step.ID,
				"error":       err.Error(),
			}).Error("campaigns: failed to enqueue workflow task")
			continue
		}

		if step.DelayHours <= 0 {
			if runErr := s.runTask(ctx, task); runErr != nil {
				if markErr := s.taskRepository.MarkFailed(task.ID, runErr.Error()); markErr != nil {
					logrus.WithField("task_id", task.ID).
						Error("campaigns: failed to mark workflow task as failed")
				}
			} else if markErr := s.taskRepository.MarkDone(task.ID); markErr != nil {
				logrus.WithField("task_id", task.ID).
					Error("campaigns: failed to mark workflow task as done")
			}
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// ProcessDueWorkflowTasks consome os jobs vencidos. Jobs de campanha pausada
// ou encerrada são devolvidos como falha sem executar a ação.
func (s *Service) ProcessDueWorkflowTasks(ctx context.Context, limit uint64) (*WorkflowRunSummary, error) {
	tasks, err := s.taskRepository.ClaimDue(time.Now(), limit)
	if err != nil {
		return nil, err
	}

	summary := &WorkflowRunSummary{Claimed: len(tasks)}

	for _, task := range tasks {
		if err := s.runTask(ctx, task); err != nil {
			if markErr := s.taskRepository.MarkFailed(task.ID, err.Error()); markErr != nil {
				logrus.WithField("task_id", task.ID).
					Error("campaigns: failed to mark workflow task as failed")
			}
			summary.Failed++
			continue
		}

		if err := s.taskRepository.MarkDone(task.ID); err != nil {
			logrus.WithField("task_id", task.ID).
				Error("campaigns: failed to mark workflow task as done")
		}
		summary.Done++
	}

	return summary, nil
}

func (s *Service) runTask(ctx context.Context, task *domain.WorkflowTask) error {
	campaign, err := s.GetCampaign(task.CampaignID)
	if err != nil {
		return err
	}

	if campaign.Status != domain.CampaignStatusActive {
		return fmt.Errorf("campaign %d is %s", campaign.ID, campaign.Status)
	}

	switch task.ActionType {
	case domain.ActionAddToSegment, domain.ActionRemoveFromSegment:
		return s.runSegmentAction(task)
	case domain.ActionSendEmail, domain.ActionSendSMS, domain.ActionPostSocial:
		return s.runDeliveryAction(ctx, campaign, task)
	}

	return fmt.Errorf("unknown action type %s", task.ActionType)
}

func (s *Service) runSegmentAction(task *domain.WorkflowTask) error {
	var config struct {
		SegmentID int64 `json:"segment_id"`
	}

	if err := json.Unmarshal(task.ActionConfig, &config); err != nil {
		return fmt.Errorf("invalid action config: %w", err)
	}

	if config.SegmentID == 0 {
		return fmt.Errorf("action config missing segment_id")
	}

	if task.ActionType == domain.ActionAddToSegment {
		return s.segmentService.AssignCustomer(task.CustomerID, config.SegmentID)
	}

	return s.segmentService.UnassignCustomer(task.CustomerID, config.SegmentID)
}

func (s *Service) runDeliveryAction(ctx context.Context, campaign *domain.Campaign, task *domain.WorkflowTask) error {
	attrs, err := s.customerRepository.GetAttributes(task.CustomerID)
	if err != nil {
		return err
	}

	if attrs == nil {
		return segmenting.ErrCustomerNotFound
	}

	channel := actionChannel(task.ActionType)

	var config struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	}

	if len(task.ActionConfig) > 0 {
		if err := json.Unmarshal(task.ActionConfig, &config); err != nil {
			return fmt.Errorf("invalid action config: %w", err)
		}
	}

	content := config.Content
	if content == "" {
		content = campaign.MessageContent
	}

	outcome := s.delivery.Deliver(ctx, campaign.ID, channel, &providerclient.DeliveryRequest{
		CustomerID: task.CustomerID,
		Recipient:  deliveryRecipient(channel, attrs),
		Subject:    RenderContent(config.Subject, attrs, nil),
		Content:    RenderContent(content, attrs, nil),
		CampaignID: campaign.ID,
	})

	if !outcome.Delivered {
		return fmt.Errorf("delivery failed: %s", outcome.FailureReason)
	}

	return nil
}

func (s *Service) publishStatusEvents(campaign *domain.Campaign, previous domain.CampaignStatus) {
	payload := map[string]any{
		"previous_status": previous,
		"new_status":      campaign.Status,
	}

	s.publishEvent(domain.EventCampaignStatusChanged, nil, &campaign.ID, payload)

	if campaign.Status == domain.CampaignStatusCompleted {
		s.publishEvent(domain.EventCampaignCompleted, nil, &campaign.ID, nil)
	}
}

// publishEvent grava no log de eventos; falha de publicação não interrompe a
// operação que a originou
func (s *Service) publishEvent(eventType string, customerID, campaignID *int64, payload map[string]any) {
	raw := json.RawMessage("{}")
	if payload != nil {
		if encoded, err := json.Marshal(payload); err == nil {
			raw = encoded
		}
	}

	if _, err := s.eventRepository.Insert(&domain.MarketingEvent{
		EventType:  eventType,
		Payload:    raw,
		CustomerID: customerID,
		CampaignID: campaignID,
	}); err != nil {
		logrus.WithFields(logrus.Fields{
			"event_type": eventType,
			"error":      err.Error(),
		}).Warn("campaigns: failed to publish event")
	}
}

func actionChannel(action domain.ActionType) domain.CampaignType {
	switch action {
	case domain.ActionSendSMS:
		return domain.CampaignTypeSMS
	case domain.ActionPostSocial:
		return domain.CampaignTypeSocial
	}
	return domain.CampaignTypeEmail
}

func deliveryRecipient(channel domain.CampaignType, attrs *domain.CustomerAttributes) string {
	if channel == domain.CampaignTypeSMS && attrs.Phone != nil {
		return *attrs.Phone
	}
	return attrs.Email
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	return utils.ParseDate(*value)
}

func metricDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
