package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const workflowColumns = `workflow_id, campaign_id, step_number, trigger_event, delay_hours,
	action_type, action_config, is_active, created_at`

type WorkflowRepository interface {
	UpsertStep(step *domain.CampaignWorkflow) (*domain.CampaignWorkflow, error)
	ListSteps(campaignID int64) ([]*domain.CampaignWorkflow, error)
	ListActiveByTrigger(campaignID int64, triggerEvent string) ([]*domain.CampaignWorkflow, error)
}

type workflowRepository struct {
	conn *postgres.Connection
}

func NewWorkflowRepository(conn *postgres.Connection) WorkflowRepository {
	return &workflowRepository{
		conn: conn,
	}
}

// UpsertStep substitui a definição do passo quando o número já existe na
// campanha; a sequência é configuração, não histórico
func (r *workflowRepository) UpsertStep(step *domain.CampaignWorkflow) (*domain.CampaignWorkflow, error) {
	config := step.ActionConfig
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}

	query, args, err := squirrel.
		Insert("campaign_workflows").
		Columns("campaign_id", "step_number", "trigger_event", "delay_hours",
			"action_type", "action_config", "is_active").
		Values(step.CampaignID, step.StepNumber, step.TriggerEvent, step.DelayHours,
			step.ActionType, []byte(config), true).
		Suffix(`ON CONFLICT (campaign_id, step_number) DO UPDATE SET
			trigger_event = EXCLUDED.trigger_event,
			delay_hours = EXCLUDED.delay_hours,
			action_type = EXCLUDED.action_type,
			action_config = EXCLUDED.action_config,
			is_active = EXCLUDED.is_active
		RETURNING ` + workflowColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeWorkflow(r.conn.QueryRow(query, args...))
}

func (r *workflowRepository) ListSteps(campaignID int64) ([]*domain.CampaignWorkflow, error) {
	return r.queryWorkflows(squirrel.Eq{"campaign_id": campaignID})
}

func (r *workflowRepository) ListActiveByTrigger(campaignID int64, triggerEvent string) ([]*domain.CampaignWorkflow, error) {
	return r.queryWorkflows(squirrel.Eq{
		"campaign_id":   campaignID,
		"trigger_event": triggerEvent,
		"is_active":     true,
	})
}

func (r *workflowRepository) queryWorkflows(where squirrel.Eq) ([]*domain.CampaignWorkflow, error) {
	query, args, err := squirrel.
		Select(workflowColumns).
		From("campaign_workflows").
		Where(where).
		OrderBy("step_number").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	steps := make([]*domain.CampaignWorkflow, 0)

	for rows.Next() {
		step, err := deserializeWorkflow(rows)
		if err != nil {
			return nil, err
		}

		steps = append(steps, step)
	}

	return steps, rows.Err()
}

func deserializeWorkflow(row rowScanner) (*domain.CampaignWorkflow, error) {
	step := &domain.CampaignWorkflow{}
	var config []byte

	if err := row.Scan(
		&step.ID,
		&step.CampaignID,
		&step.StepNumber,
		&step.TriggerEvent,
		&step.DelayHours,
		&step.ActionType,
		&config,
		&step.IsActive,
		&step.CreatedAt,
	); err != nil {
		return nil, err
	}

	step.ActionConfig = json.RawMessage(config)

	return step, nil
}
