package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const eventColumns = `event_id, event_type, event_source, payload, customer_id, campaign_id,
	processed, published_at`

type EventRepository interface {
	Insert(event *domain.MarketingEvent) (*domain.MarketingEvent, error)
	ListUnprocessed(limit uint64) ([]*domain.MarketingEvent, error)
	MarkProcessed(eventID int64) error
	List(eventType *string, customerID *int64, limit uint64) ([]*domain.MarketingEvent, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) Insert(event *domain.MarketingEvent) (*domain.MarketingEvent, error) {
	payload := event.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	source := event.EventSource
	if source == "" {
		source = domain.DefaultEventSource
	}

	query, args, err := squirrel.
		Insert("marketing_events").
		Columns("event_type", "event_source", "payload", "customer_id", "campaign_id").
		Values(event.EventType, source, []byte(payload), event.CustomerID, event.CampaignID).
		Suffix("RETURNING event_id, published_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *event
	created.EventSource = source
	created.Payload = payload

	if err := r.conn.QueryRow(query, args...).Scan(&created.ID, &created.PublishedAt); err != nil {
		return nil, err
	}

	return &created, nil
}

// ListUnprocessed retorna os eventos pendentes na ordem de publicação
func (r *eventRepository) ListUnprocessed(limit uint64) ([]*domain.MarketingEvent, error) {
	query, args, err := squirrel.
		Select(eventColumns).
		From("marketing_events").
		Where(squirrel.Eq{"processed": false}).
		OrderBy("published_at").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryEvents(query, args)
}

func (r *eventRepository) MarkProcessed(eventID int64) error {
	query, args, err := squirrel.
		Update("marketing_events").
		Set("processed", true).
		Where(squirrel.Eq{"event_id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *eventRepository) List(eventType *string, customerID *int64, limit uint64) ([]*domain.MarketingEvent, error) {
	queryBuilder := squirrel.
		Select(eventColumns).
		From("marketing_events").
		OrderBy("published_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if eventType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"event_type": *eventType})
	}

	if customerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": *customerID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryEvents(query, args)
}

func (r *eventRepository) queryEvents(query string, args []interface{}) ([]*domain.MarketingEvent, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.MarketingEvent, 0)

	for rows.Next() {
		event := &domain.MarketingEvent{}
		var payload []byte

		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.EventSource,
			&payload,
			&event.CustomerID,
			&event.CampaignID,
			&event.Processed,
			&event.PublishedAt,
		); err != nil {
			return nil, err
		}

		event.Payload = json.RawMessage(payload)
		events = append(events, event)
	}

	return events, rows.Err()
}
