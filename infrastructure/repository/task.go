package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const taskColumns = `task_id, campaign_id, customer_id, workflow_id, action_type, action_config,
	fire_at, status, error_message, created_at, processed_at`

type TaskRepository interface {
	Insert(task *domain.WorkflowTask) (*domain.WorkflowTask, error)
	ClaimDue(now time.Time, limit uint64) ([]*domain.WorkflowTask, error)
	MarkDone(taskID int64) error
	MarkFailed(taskID int64, reason string) error
	CountPending() (int, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) Insert(task *domain.WorkflowTask) (*domain.WorkflowTask, error) {
	config := task.ActionConfig
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}

	status := task.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	query, args, err := squirrel.
		Insert("workflow_tasks").
		Columns("campaign_id", "customer_id", "workflow_id", "action_type",
			"action_config", "fire_at", "status").
		Values(task.CampaignID, task.CustomerID, task.WorkflowID, task.ActionType,
			[]byte(config), task.FireAt, status).
		Suffix("RETURNING " + taskColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeTask(r.conn.QueryRow(query, args...))
}

// ClaimDue reivindica os jobs pendentes vencidos em ordem de disparo. A
// reivindicação é atômica: o UPDATE move cada job para processing antes de
// devolvê-lo, então varreduras concorrentes nunca pegam o mesmo job duas vezes.
func (r *taskRepository) ClaimDue(now time.Time, limit uint64) ([]*domain.WorkflowTask, error) {
	query, args, err := squirrel.
		Update("workflow_tasks").
		Set("status", domain.TaskStatusProcessing).
		Where(squirrel.Expr(`task_id IN (
			SELECT task_id FROM workflow_tasks
			WHERE status = ? AND fire_at <= ?
			ORDER BY fire_at
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)`, domain.TaskStatusPending, now, limit)).
		Suffix("RETURNING " + taskColumns).
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

	tasks := make([]*domain.WorkflowTask, 0)

	for rows.Next() {
		task, err := deserializeTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) MarkDone(taskID int64) error {
	return r.finish(taskID, domain.TaskStatusDone, nil)
}

func (r *taskRepository) MarkFailed(taskID int64, reason string) error {
	return r.finish(taskID, domain.TaskStatusFailed, &reason)
}

func (r *taskRepository) finish(taskID int64, status domain.WorkflowTaskStatus, reason *string) error {
	query, args, err := squirrel.
		Update("workflow_tasks").
		Set("status", status).
		Set("error_message", reason).
		Set("processed_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"task_id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *taskRepository) CountPending() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("workflow_tasks").
		Where(squirrel.Eq{"status": domain.TaskStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func deserializeTask(row rowScanner) (*domain.WorkflowTask, error) {
	task := &domain.WorkflowTask{}
	var config []byte

	if err := row.Scan(
		&task.ID,
		&task.CampaignID,
		&task.CustomerID,
		&task.WorkflowID,
		&task.ActionType,
		&config,
		&task.FireAt,
		&task.Status,
		&task.ErrorMessage,
		&task.CreatedAt,
		&task.ProcessedAt,
	); err != nil {
		return nil, err
	}

	task.ActionConfig = json.RawMessage(config)

	return task, nil
}
