package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const executionColumns = `execution_id, campaign_id, customer_id, channel, delivery_status,
	personalized_content, error_message, executed_at`

type ExecutionRepository interface {
	Insert(execution *domain.CampaignExecution) (*domain.CampaignExecution, error)
	UpdateStatus(executionID int64, status domain.DeliveryStatus, errorMessage *string) error
	ListByCampaign(campaignID int64) ([]*domain.CampaignExecution, error)
}

type executionRepository struct {
	conn *postgres.Connection
}

func NewExecutionRepository(conn *postgres.Connection) ExecutionRepository {
	return &executionRepository{
		conn: conn,
	}
}

func (r *executionRepository) Insert(execution *domain.CampaignExecution) (*domain.CampaignExecution, error) {
	query, args, err := squirrel.
		Insert("campaign_executions").
		Columns("campaign_id", "customer_id", "channel", "delivery_status",
			"personalized_content", "error_message").
		Values(execution.CampaignID, execution.CustomerID, execution.Channel,
			execution.DeliveryStatus, execution.PersonalizedContent, execution.ErrorMessage).
		Suffix("RETURNING " + executionColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeExecution(r.conn.QueryRow(query, args...))
}

func (r *executionRepository) UpdateStatus(executionID int64, status domain.DeliveryStatus, errorMessage *string) error {
	query, args, err := squirrel.
		Update("campaign_executions").
		Set("delivery_status", status).
		Set("error_message", errorMessage).
		Where(squirrel.Eq{"execution_id": executionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *executionRepository) ListByCampaign(campaignID int64) ([]*domain.CampaignExecution, error) {
	query, args, err := squirrel.
		Select(executionColumns).
		From("campaign_executions").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("execution_id").
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

	executions := make([]*domain.CampaignExecution, 0)

	for rows.Next() {
		execution, err := deserializeExecution(rows)
		if err != nil {
			return nil, err
		}

		executions = append(executions, execution)
	}

	return executions, rows.Err()
}

func deserializeExecution(row rowScanner) (*domain.CampaignExecution, error) {
	execution := &domain.CampaignExecution{}

	if err := row.Scan(
		&execution.ID,
		&execution.CampaignID,
		&execution.CustomerID,
		&execution.Channel,
		&execution.DeliveryStatus,
		&execution.PersonalizedContent,
		&execution.ErrorMessage,
		&execution.ExecutedAt,
	); err != nil {
		return nil, err
	}

	return execution, nil
}
