package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

var taskTestColumns = []string{
	"task_id", "campaign_id", "customer_id", "workflow_id", "action_type",
	"action_config", "fire_at", "status", "error_message", "created_at", "processed_at",
}

func newTaskRepository(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return NewTaskRepository(&postgres.Connection{DB: db}), mock
}

func taskRow(id int64, status domain.WorkflowTaskStatus, fireAt time.Time) *sqlmock.Rows {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	return sqlmock.NewRows(taskTestColumns).
		AddRow(id, int64(1), int64(100), int64(50), string(domain.ActionAddToSegment),
			[]byte(`{"segment_id": 10}`), fireAt, string(status), nil, now, nil)
}

func TestTaskInsertDefaultsToPending(t *testing.T) {
	repo, mock := newTaskRepository(t)

	fireAt := time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO workflow_tasks (.+) RETURNING`).
		WithArgs(int64(1), int64(100), int64(50), string(domain.ActionAddToSegment),
			[]byte(`{"segment_id": 10}`), fireAt, string(domain.TaskStatusPending)).
		WillReturnRows(taskRow(900, domain.TaskStatusPending, fireAt))

	task, err := repo.Insert(&domain.WorkflowTask{
		CampaignID:   1,
		CustomerID:   100,
		WorkflowID:   50,
		ActionType:   domain.ActionAddToSegment,
		ActionConfig: json.RawMessage(`{"segment_id": 10}`),
		FireAt:       fireAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(900), task.ID)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
}

func TestTaskInsertKeepsProvidedStatus(t *testing.T) {
	repo, mock := newTaskRepository(t)

	fireAt := time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)

	// Passos imediatos entram como processing para a varredura não revê-los
	mock.ExpectQuery(`INSERT INTO workflow_tasks (.+) RETURNING`).
		WithArgs(int64(1), int64(100), int64(50), string(domain.ActionAddToSegment),
			[]byte(`{"segment_id": 10}`), fireAt, string(domain.TaskStatusProcessing)).
		WillReturnRows(taskRow(901, domain.TaskStatusProcessing, fireAt))

	task, err := repo.Insert(&domain.WorkflowTask{
		CampaignID:   1,
		CustomerID:   100,
		WorkflowID:   50,
		ActionType:   domain.ActionAddToSegment,
		ActionConfig: json.RawMessage(`{"segment_id": 10}`),
		FireAt:       fireAt,
		Status:       domain.TaskStatusProcessing,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusProcessing, task.Status)
}

func TestTaskClaimDueFlipsStatusAtomically(t *testing.T) {
	repo, mock := newTaskRepository(t)

	now := time.Date(2026, 6, 3, 12, 0, 0, 0, time.UTC)
	fireAt := now.Add(-time.Hour)

	// A reivindicação é um único UPDATE que só enxerga jobs pending; jobs já
	// reivindicados por outro consumidor nunca voltam duas vezes
	mock.ExpectQuery(`UPDATE workflow_tasks SET status = \$1 WHERE task_id IN \( SELECT task_id FROM workflow_tasks WHERE status = \$2 AND fire_at <= \$3 ORDER BY fire_at LIMIT \$4 FOR UPDATE SKIP LOCKED \) RETURNING`).
		WithArgs(string(domain.TaskStatusProcessing), string(domain.TaskStatusPending), now, int64(5)).
		WillReturnRows(taskRow(902, domain.TaskStatusProcessing, fireAt))

	tasks, err := repo.ClaimDue(now, 5)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(902), tasks[0].ID)
	assert.Equal(t, domain.TaskStatusProcessing, tasks[0].Status)
}

func TestTaskClaimDueWithoutDueTasks(t *testing.T) {
	repo, mock := newTaskRepository(t)

	now := time.Date(2026, 6, 3, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE workflow_tasks SET status = \$1 WHERE task_id IN`).
		WithArgs(string(domain.TaskStatusProcessing), string(domain.TaskStatusPending), now, int64(5)).
		WillReturnRows(sqlmock.NewRows(taskTestColumns))

	tasks, err := repo.ClaimDue(now, 5)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskMarkDone(t *testing.T) {
	repo, mock := newTaskRepository(t)

	mock.ExpectExec(`UPDATE workflow_tasks SET status = \$1, error_message = \$2, processed_at = CURRENT_TIMESTAMP WHERE task_id = \$3`).
		WithArgs(string(domain.TaskStatusDone), nil, int64(900)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkDone(900))
}
