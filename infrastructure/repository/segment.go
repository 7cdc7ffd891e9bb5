package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const segmentColumns = "segment_id, segment_name, description, criteria, is_active, created_at, updated_at"

type SegmentRepository interface {
	GetByID(segmentID int64) (*domain.Segment, error)
	ListActive() ([]*domain.Segment, error)
	Create(segment *domain.Segment) (*domain.Segment, error)
	Update(segment *domain.Segment) error
	Deactivate(segmentID int64) error
	AssignCustomer(customerID, segmentID int64, autoAssigned bool) error
	UnassignCustomer(customerID, segmentID int64) error
	ListAssignments(segmentID int64) ([]*domain.CustomerSegment, error)
	ListCustomerAssignments(customerID int64) ([]*domain.CustomerSegment, error)
	ListActiveTriggers(triggerType domain.TriggerType) ([]*domain.SegmentTrigger, error)
	CreateTrigger(trigger *domain.SegmentTrigger) (*domain.SegmentTrigger, error)
}

type segmentRepository struct {
	conn *postgres.Connection
}

func NewSegmentRepository(conn *postgres.Connection) SegmentRepository {
	return &segmentRepository{
		conn: conn,
	}
}

func (r *segmentRepository) GetByID(segmentID int64) (*domain.Segment, error) {
	query, args, err := squirrel.
		Select(segmentColumns).
		From("customer_segments_def").
		Where(squirrel.Eq{"segment_id": segmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	segment, err := deserializeSegment(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return segment, nil
}

func (r *segmentRepository) ListActive() ([]*domain.Segment, error) {
	query, args, err := squirrel.
		Select(segmentColumns).
		From("customer_segments_def").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("segment_id").
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

	segments := make([]*domain.Segment, 0)

	for rows.Next() {
		segment, err := deserializeSegment(rows)
		if err != nil {
			return nil, err
		}

		segments = append(segments, segment)
	}

	return segments, rows.Err()
}

func (r *segmentRepository) Create(segment *domain.Segment) (*domain.Segment, error) {
	criteria := segment.Criteria
	if len(criteria) == 0 {
		criteria = json.RawMessage("{}")
	}

	query, args, err := squirrel.
		Insert("customer_segments_def").
		Columns("segment_name", "description", "criteria", "is_active").
		Values(segment.Name, segment.Description, []byte(criteria), true).
		Suffix("RETURNING " + segmentColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeSegment(r.conn.QueryRow(query, args...))
}

func (r *segmentRepository) Update(segment *domain.Segment) error {
	query, args, err := squirrel.
		Update("customer_segments_def").
		Set("segment_name", segment.Name).
		Set("description", segment.Description).
		Set("criteria", []byte(segment.Criteria)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"segment_id": segment.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *segmentRepository) Deactivate(segmentID int64) error {
	query, args, err := squirrel.
		Update("customer_segments_def").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"segment_id": segmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// AssignCustomer é idempotente; reatribuir um par existente não é erro
func (r *segmentRepository) AssignCustomer(customerID, segmentID int64, autoAssigned bool) error {
	query, args, err := squirrel.
		Insert("customer_segment_members").
		Columns("customer_id", "segment_id", "auto_assigned").
		Values(customerID, segmentID, autoAssigned).
		Suffix("ON CONFLICT (customer_id, segment_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *segmentRepository) UnassignCustomer(customerID, segmentID int64) error {
	query, args, err := squirrel.
		Delete("customer_segment_members").
		Where(squirrel.Eq{"customer_id": customerID, "segment_id": segmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *segmentRepository) ListAssignments(segmentID int64) ([]*domain.CustomerSegment, error) {
	return r.queryAssignments(squirrel.Eq{"segment_id": segmentID})
}

func (r *segmentRepository) ListCustomerAssignments(customerID int64) ([]*domain.CustomerSegment, error) {
	return r.queryAssignments(squirrel.Eq{"customer_id": customerID})
}

func (r *segmentRepository) queryAssignments(where squirrel.Eq) ([]*domain.CustomerSegment, error) {
	query, args, err := squirrel.
		Select("customer_id, segment_id, auto_assigned, assigned_at").
		From("customer_segment_members").
		Where(where).
		OrderBy("assigned_at").
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

	assignments := make([]*domain.CustomerSegment, 0)

	for rows.Next() {
		assignment := &domain.CustomerSegment{}

		if err := rows.Scan(
			&assignment.CustomerID,
			&assignment.SegmentID,
			&assignment.AutoAssigned,
			&assignment.AssignedAt,
		); err != nil {
			return nil, err
		}

		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

func (r *segmentRepository) ListActiveTriggers(triggerType domain.TriggerType) ([]*domain.SegmentTrigger, error) {
	query, args, err := squirrel.
		Select("trigger_id, segment_id, trigger_type, condition, action, is_active, created_at").
		From("segment_triggers").
		Where(squirrel.Eq{"trigger_type": triggerType, "is_active": true}).
		OrderBy("trigger_id").
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

	triggers := make([]*domain.SegmentTrigger, 0)

	for rows.Next() {
		trigger := &domain.SegmentTrigger{}
		var condition []byte

		if err := rows.Scan(
			&trigger.ID,
			&trigger.SegmentID,
			&trigger.TriggerType,
			&condition,
			&trigger.Action,
			&trigger.IsActive,
			&trigger.CreatedAt,
		); err != nil {
			return nil, err
		}

		trigger.Condition = json.RawMessage(condition)
		triggers = append(triggers, trigger)
	}

	return triggers, rows.Err()
}

func (r *segmentRepository) CreateTrigger(trigger *domain.SegmentTrigger) (*domain.SegmentTrigger, error) {
	condition := trigger.Condition
	if len(condition) == 0 {
		condition = json.RawMessage("{}")
	}

	query, args, err := squirrel.
		Insert("segment_triggers").
		Columns("segment_id", "trigger_type", "condition", "action", "is_active").
		Values(trigger.SegmentID, trigger.TriggerType, []byte(condition), trigger.Action, true).
		Suffix("RETURNING trigger_id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *trigger
	created.IsActive = true

	if err := r.conn.QueryRow(query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}

	return &created, nil
}

func deserializeSegment(row rowScanner) (*domain.Segment, error) {
	segment := &domain.Segment{}
	var criteria []byte

	if err := row.Scan(
		&segment.ID,
		&segment.Name,
		&segment.Description,
		&criteria,
		&segment.IsActive,
		&segment.CreatedAt,
		&segment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	segment.Criteria = json.RawMessage(criteria)

	return segment, nil
}
