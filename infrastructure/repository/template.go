package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const templateColumns = `template_id, campaign_id, channel, subject_line, body_content,
	personalization_fields, external_asset_url, created_at`

type TemplateRepository interface {
	Create(template *domain.CampaignTemplate) (*domain.CampaignTemplate, error)
	ListByCampaign(campaignID int64) ([]*domain.CampaignTemplate, error)
	GetByCampaignChannel(campaignID int64, channel domain.CampaignType) (*domain.CampaignTemplate, error)
}

type templateRepository struct {
	conn *postgres.Connection
}

func NewTemplateRepository(conn *postgres.Connection) TemplateRepository {
	return &templateRepository{
		conn: conn,
	}
}

func (r *templateRepository) Create(template *domain.CampaignTemplate) (*domain.CampaignTemplate, error) {
	fields, err := json.Marshal(template.PersonalizationFields)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert("campaign_templates").
		Columns("campaign_id", "channel", "subject_line", "body_content",
			"personalization_fields", "external_asset_url").
		Values(template.CampaignID, template.Channel, template.SubjectLine,
			template.BodyContent, fields, template.ExternalAssetURL).
		Suffix("RETURNING " + templateColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return deserializeTemplate(r.conn.QueryRow(query, args...))
}

func (r *templateRepository) ListByCampaign(campaignID int64) ([]*domain.CampaignTemplate, error) {
	query, args, err := squirrel.
		Select(templateColumns).
		From("campaign_templates").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("template_id").
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

	templates := make([]*domain.CampaignTemplate, 0)

	for rows.Next() {
		template, err := deserializeTemplate(rows)
		if err != nil {
			return nil, err
		}

		templates = append(templates, template)
	}

	return templates, rows.Err()
}

// GetByCampaignChannel retorna o template mais recente do canal na campanha
func (r *templateRepository) GetByCampaignChannel(campaignID int64, channel domain.CampaignType) (*domain.CampaignTemplate, error) {
	query, args, err := squirrel.
		Select(templateColumns).
		From("campaign_templates").
		Where(squirrel.Eq{"campaign_id": campaignID, "channel": channel}).
		OrderBy("template_id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	template, err := deserializeTemplate(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return template, nil
}

func deserializeTemplate(row rowScanner) (*domain.CampaignTemplate, error) {
	template := &domain.CampaignTemplate{}
	var fields []byte

	if err := row.Scan(
		&template.ID,
		&template.CampaignID,
		&template.Channel,
		&template.SubjectLine,
		&template.BodyContent,
		&fields,
		&template.ExternalAssetURL,
		&template.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &template.PersonalizationFields); err != nil {
			return nil, err
		}
	}

	return template, nil
}
