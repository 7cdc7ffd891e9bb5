package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const campaignColumns = `campaign_id, campaign_name, description, campaign_type, status,
	target_segment_id, start_date, end_date, budget, message_content, created_by,
	created_at, updated_at`

type CampaignRepository interface {
	GetByID(campaignID int64) (*domain.Campaign, error)
	List(status *domain.CampaignStatus, campaignType *domain.CampaignType) ([]*domain.Campaign, error)
	ListByStatus(status domain.CampaignStatus) ([]*domain.Campaign, error)
	Create(campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateStatus(campaignID int64, status domain.CampaignStatus) error
	UpdateMessage(campaignID int64, messageContent string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(campaignID int64) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From("campaigns").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign, err := deserializeCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) List(status *domain.CampaignStatus, campaignType *domain.CampaignType) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns).
		From("campaigns").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *status})
	}

	if campaignType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_type": *campaignType})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryCampaigns(query, args)
}

func (r *campaignRepository) ListByStatus(status domain.CampaignStatus) ([]*domain.Campaign, error) {
	return r.List(&status, nil)
}

func (r *campaignRepository) Create(campaign *domain.Campaign) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("campaign_name", "description", "campaign_type", "status",
			"target_segment_id", "start_date", "end_date", "budget",
			"message_content", "created_by").
		Values(campaign.Name, campaign.Description, campaign.Type, domain.CampaignStatusDraft,
			campaign.TargetSegmentID, campaign.StartDate, campaign.EndDate, campaign.Budget,
			campaign.MessageContent, campaign.CreatedBy).
		Suffix("RETURNING " + campaignColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeCampaign(r.conn.QueryRow(query, args...))
}

func (r *campaignRepository) UpdateStatus(campaignID int64, status domain.CampaignStatus) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *campaignRepository) UpdateMessage(campaignID int64, messageContent string) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("message_content", messageContent).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *campaignRepository) queryCampaigns(query string, args []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func deserializeCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Type,
		&campaign.Status,
		&campaign.TargetSegmentID,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.Budget,
		&campaign.MessageContent,
		&campaign.CreatedBy,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}
