package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

type InteractionRepository interface {
	Insert(interaction *domain.CustomerInteraction) (*domain.CustomerInteraction, error)
	Breakdown(start, end time.Time) ([]*domain.InteractionBreakdown, error)
	History(customerID int64, limit uint64) ([]*domain.InteractionHistoryEntry, error)
}

type interactionRepository struct {
	conn *postgres.Connection
}

func NewInteractionRepository(conn *postgres.Connection) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) Insert(interaction *domain.CustomerInteraction) (*domain.CustomerInteraction, error) {
	metadata := interaction.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage("{}")
	}

	query, args, err := squirrel.
		Insert("customer_interactions").
		Columns("customer_id", "campaign_id", "interaction_type", "metadata", "conversion_value").
		Values(interaction.CustomerID, interaction.CampaignID, interaction.InteractionType,
			[]byte(metadata), interaction.ConversionValue).
		Suffix("RETURNING interaction_id, interaction_timestamp").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *interaction
	created.Metadata = metadata

	if err := r.conn.QueryRow(query, args...).Scan(&created.ID, &created.InteractionTimestamp); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *interactionRepository) Breakdown(start, end time.Time) ([]*domain.InteractionBreakdown, error) {
	query, args, err := squirrel.
		Select("interaction_type, COUNT(*), COALESCE(SUM(conversion_value), 0)").
		From("customer_interactions").
		Where(squirrel.GtOrEq{"interaction_timestamp": start}).
		Where(squirrel.LtOrEq{"interaction_timestamp": end}).
		GroupBy("interaction_type").
		OrderBy("COUNT(*) DESC").
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

	breakdown := make([]*domain.InteractionBreakdown, 0)

	for rows.Next() {
		entry := &domain.InteractionBreakdown{}

		if err := rows.Scan(&entry.InteractionType, &entry.Count, &entry.TotalValue); err != nil {
			return nil, err
		}

		breakdown = append(breakdown, entry)
	}

	return breakdown, rows.Err()
}

// History retorna as interações do cliente mais recentes primeiro, com o nome
// e o tipo da campanha já resolvidos
func (r *interactionRepository) History(customerID int64, limit uint64) ([]*domain.InteractionHistoryEntry, error) {
	query, args, err := squirrel.
		Select(`i.interaction_id, i.customer_id, i.campaign_id, i.interaction_type,
			i.metadata, i.conversion_value, i.interaction_timestamp,
			c.campaign_name, c.campaign_type`).
		From("customer_interactions i").
		Join("campaigns c ON c.campaign_id = i.campaign_id").
		Where(squirrel.Eq{"i.customer_id": customerID}).
		OrderBy("i.interaction_timestamp DESC").
		Limit(limit).
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

	history := make([]*domain.InteractionHistoryEntry, 0)

	for rows.Next() {
		entry := &domain.InteractionHistoryEntry{}
		var metadata []byte

		if err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.CampaignID,
			&entry.InteractionType,
			&metadata,
			&entry.ConversionValue,
			&entry.InteractionTimestamp,
			&entry.CampaignName,
			&entry.CampaignType,
		); err != nil {
			return nil, err
		}

		entry.Metadata = json.RawMessage(metadata)
		history = append(history, entry)
	}

	return history, rows.Err()
}
