package domain

import (
	"encoding/json"
	"time"
)

// CampaignType é o canal principal da campanha
type CampaignType string

const (
	CampaignTypeEmail  CampaignType = "email"
	CampaignTypeSocial CampaignType = "social"
	CampaignTypeSMS    CampaignType = "sms"
	CampaignTypeAd     CampaignType = "ad"
)

// Valid informa se o tipo de campanha é reconhecido
func (t CampaignType) Valid() bool {
	switch t {
	case CampaignTypeEmail, CampaignTypeSocial, CampaignTypeSMS, CampaignTypeAd:
		return true
	}
	return false
}

// CampaignStatus representa o estado da campanha na máquina de estados
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Valid informa se o status é reconhecido
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusActive,
		CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// allowedTransitions define as arestas válidas da máquina de estados.
// Nenhuma transição sai de completed.
var allowedTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:     {CampaignStatusScheduled, CampaignStatusActive},
	CampaignStatusScheduled: {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

// CanTransition informa se a transição de status é permitida
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Campaign é uma campanha de marketing direcionada a um segmento
type Campaign struct {
	ID              int64          `json:"campaign_id"`
	Name            string         `json:"campaign_name"`
	Description     string         `json:"description"`
	Type            CampaignType   `json:"campaign_type"`
	Status          CampaignStatus `json:"status"`
	TargetSegmentID *int64         `json:"target_segment_id,omitempty"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	EndDate         *time.Time     `json:"end_date,omitempty"`
	Budget          float64        `json:"budget"`
	MessageContent  string         `json:"message_content"`
	CreatedBy       string         `json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CampaignTemplate é o conteúdo de um canal da campanha com tokens {{campo}}
type CampaignTemplate struct {
	ID                    int64             `json:"template_id"`
	CampaignID            int64             `json:"campaign_id"`
	Channel               CampaignType      `json:"channel"`
	SubjectLine           string            `json:"subject_line"`
	BodyContent           string            `json:"body_content"`
	PersonalizationFields map[string]string `json:"personalization_fields"`
	ExternalAssetURL      *string           `json:"external_asset_url,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
}

// ActionType é a ação executada por um passo de workflow
type ActionType string

const (
	ActionSendEmail         ActionType = "SEND_EMAIL"
	ActionSendSMS           ActionType = "SEND_SMS"
	ActionPostSocial        ActionType = "POST_SOCIAL"
	ActionAddToSegment      ActionType = "ADD_TO_SEGMENT"
	ActionRemoveFromSegment ActionType = "REMOVE_FROM_SEGMENT"
)

// Valid informa se o tipo de ação é reconhecido
func (a ActionType) Valid() bool {
	switch a {
	case ActionSendEmail, ActionSendSMS, ActionPostSocial,
		ActionAddToSegment, ActionRemoveFromSegment:
		return true
	}
	return false
}

// CampaignWorkflow é um passo declarativo da sequência de automação da campanha.
// A sequência é configuração consumida pelo worker, não uma instância viva.
type CampaignWorkflow struct {
	ID           int64           `json:"workflow_id"`
	CampaignID   int64           `json:"campaign_id"`
	StepNumber   int             `json:"step_number"`
	TriggerEvent string          `json:"trigger_event"`
	DelayHours   int             `json:"delay_hours"`
	ActionType   ActionType      `json:"action_type"`
	ActionConfig json.RawMessage `json:"action_config"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// WorkflowTaskStatus é o estado de um job agendado de workflow
type WorkflowTaskStatus string

const (
	TaskStatusPending    WorkflowTaskStatus = "pending"
	TaskStatusProcessing WorkflowTaskStatus = "processing"
	TaskStatusDone       WorkflowTaskStatus = "done"
	TaskStatusFailed     WorkflowTaskStatus = "failed"
)

// WorkflowTask é a materialização persistida de um passo com atraso: cada passo
// devido vira um job com horário de disparo, consumido pelo worker fora do
// ciclo de requisição
type WorkflowTask struct {
	ID           int64              `json:"task_id"`
	CampaignID   int64              `json:"campaign_id"`
	CustomerID   int64              `json:"customer_id"`
	WorkflowID   int64              `json:"workflow_id"`
	ActionType   ActionType         `json:"action_type"`
	ActionConfig json.RawMessage    `json:"action_config"`
	FireAt       time.Time          `json:"fire_at"`
	Status       WorkflowTaskStatus `json:"status"`
	ErrorMessage *string            `json:"error_message,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	ProcessedAt  *time.Time         `json:"processed_at,omitempty"`
}
