package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

const roiColumns = "campaign_id, total_cost, total_revenue, roi_percentage, profit, calculated_at"

type ROIRepository interface {
	Upsert(roi *domain.CampaignROI) error
	Get(campaignID int64) (*domain.CampaignROI, error)
}

type roiRepository struct {
	conn *postgres.Connection
}

func NewROIRepository(conn *postgres.Connection) ROIRepository {
	return &roiRepository{
		conn: conn,
	}
}

// Upsert substitui o cálculo anterior; só o resultado mais recente interessa
func (r *roiRepository) Upsert(roi *domain.CampaignROI) error {
	query, args, err := squirrel.
		Insert("campaign_roi").
		Columns("campaign_id", "total_cost", "total_revenue", "roi_percentage", "profit").
		Values(roi.CampaignID, roi.TotalCost, roi.TotalRevenue, roi.ROIPercentage, roi.Profit).
		Suffix(`ON CONFLICT (campaign_id) DO UPDATE SET
			total_cost = EXCLUDED.total_cost,
			total_revenue = EXCLUDED.total_revenue,
			roi_percentage = EXCLUDED.roi_percentage,
			profit = EXCLUDED.profit,
			calculated_at = CURRENT_TIMESTAMP`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *roiRepository) Get(campaignID int64) (*domain.CampaignROI, error) {
	query, args, err := squirrel.
		Select(roiColumns).
		From("campaign_roi").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	roi := &domain.CampaignROI{}

	if err := r.conn.QueryRow(query, args...).Scan(
		&roi.CampaignID,
		&roi.TotalCost,
		&roi.TotalRevenue,
		&roi.ROIPercentage,
		&roi.Profit,
		&roi.CalculatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return roi, nil
}
