package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

type MetricsRepository interface {
	UpsertDaily(metrics *domain.CampaignMetrics) error
	IncrementDaily(campaignID int64, metricDate time.Time, column string, delta int) error
	AddRevenue(campaignID int64, metricDate time.Time, revenue float64) error
	ListDaily(campaignID int64) ([]*domain.CampaignMetrics, error)
	CampaignSummary(campaignID int64) (*domain.CampaignSummary, error)
	FunnelStages(campaignID int64) (*domain.FunnelStages, error)
	CountActiveCampaigns() (int, error)
	DashboardTotals(start, end time.Time) (*domain.DashboardTotals, error)
	TopCampaigns(start, end time.Time, limit uint64) ([]*domain.TopCampaign, error)
	SegmentPerformance(segmentID int64) (*domain.SegmentPerformance, error)
	Attribution(start, end time.Time) ([]*domain.AttributionRow, error)
	CampaignsOverview() ([]*domain.CampaignOverview, error)
}

// Colunas de contadores aceitas em incrementos diários
var metricCounterColumns = map[string]bool{
	"emails_sent":   true,
	"emails_opened": true,
	"links_clicked": true,
	"conversions":   true,
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// UpsertDaily grava o rollup do dia; o par (campanha, data) é único e
// reenvios somam aos contadores existentes
func (r *metricsRepository) UpsertDaily(metrics *domain.CampaignMetrics) error {
	query, args, err := squirrel.
		Insert("campaign_metrics").
		Columns("campaign_id", "metric_date", "emails_sent", "emails_opened",
			"links_clicked", "conversions", "revenue_generated", "cost_incurred").
		Values(metrics.CampaignID, metrics.MetricDate, metrics.EmailsSent, metrics.EmailsOpened,
			metrics.LinksClicked, metrics.Conversions, metrics.RevenueGenerated, metrics.CostIncurred).
		Suffix(`ON CONFLICT (campaign_id, metric_date) DO UPDATE SET
			emails_sent = campaign_metrics.emails_sent + EXCLUDED.emails_sent,
			emails_opened = campaign_metrics.emails_opened + EXCLUDED.emails_opened,
			links_clicked = campaign_metrics.links_clicked + EXCLUDED.links_clicked,
			conversions = campaign_metrics.conversions + EXCLUDED.conversions,
			revenue_generated = campaign_metrics.revenue_generated + EXCLUDED.revenue_generated,
			cost_incurred = campaign_metrics.cost_incurred + EXCLUDED.cost_incurred,
			updated_at = CURRENT_TIMESTAMP`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *metricsRepository) IncrementDaily(campaignID int64, metricDate time.Time, column string, delta int) error {
	if !metricCounterColumns[column] {
		return ErrUnknownMetricColumn
	}

	metrics := &domain.CampaignMetrics{CampaignID: campaignID, MetricDate: metricDate}

	switch column {
	case "emails_sent":
		metrics.EmailsSent = delta
	case "emails_opened":
		metrics.EmailsOpened = delta
	case "links_clicked":
		metrics.LinksClicked = delta
	case "conversions":
		metrics.Conversions = delta
	}

	return r.UpsertDaily(metrics)
}

func (r *metricsRepository) AddRevenue(campaignID int64, metricDate time.Time, revenue float64) error {
	return r.UpsertDaily(&domain.CampaignMetrics{
		CampaignID:       campaignID,
		MetricDate:       metricDate,
		RevenueGenerated: revenue,
	})
}

func (r *metricsRepository) ListDaily(campaignID int64) ([]*domain.CampaignMetrics, error) {
	query, args, err := squirrel.
		Select(`metric_id, campaign_id, metric_date, emails_sent, emails_opened,
			links_clicked, conversions, revenue_generated, cost_incurred, updated_at`).
		From("campaign_metrics").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("metric_date").
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

	metrics := make([]*domain.CampaignMetrics, 0)

	for rows.Next() {
		entry := &domain.CampaignMetrics{}

		if err := rows.Scan(
			&entry.ID,
			&entry.CampaignID,
			&entry.MetricDate,
			&entry.EmailsSent,
			&entry.EmailsOpened,
			&entry.LinksClicked,
			&entry.Conversions,
			&entry.RevenueGenerated,
			&entry.CostIncurred,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}

		metrics = append(metrics, entry)
	}

	return metrics, rows.Err()
}

func (r *metricsRepository) CampaignSummary(campaignID int64) (*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(`COALESCE(SUM(emails_sent), 0), COALESCE(SUM(emails_opened), 0),
			COALESCE(SUM(links_clicked), 0), COALESCE(SUM(conversions), 0),
			COALESCE(SUM(revenue_generated), 0), COALESCE(SUM(cost_incurred), 0)`).
		From("campaign_metrics").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	summary := &domain.CampaignSummary{}

	if err := r.conn.QueryRow(query, args...).Scan(
		&summary.TotalSent,
		&summary.TotalOpened,
		&summary.TotalClicks,
		&summary.TotalConversions,
		&summary.TotalRevenue,
		&summary.TotalCost,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	summary.OpenRate = utils.SafeRate(float64(summary.TotalOpened), float64(summary.TotalSent))
	summary.ClickThroughRate = utils.SafeRate(float64(summary.TotalClicks), float64(summary.TotalOpened))
	summary.ConversionRate = utils.SafeRate(float64(summary.TotalConversions), float64(summary.TotalSent))

	return summary, nil
}

func (r *metricsRepository) FunnelStages(campaignID int64) (*domain.FunnelStages, error) {
	query, args, err := squirrel.
		Select(`COALESCE(SUM(emails_sent), 0), COALESCE(SUM(emails_opened), 0),
			COALESCE(SUM(links_clicked), 0), COALESCE(SUM(conversions), 0)`).
		From("campaign_metrics").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	stages := &domain.FunnelStages{}

	if err := r.conn.QueryRow(query, args...).Scan(
		&stages.Sent,
		&stages.Opened,
		&stages.Clicked,
		&stages.Converted,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return stages, nil
}

func (r *metricsRepository) CountActiveCampaigns() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("campaigns").
		Where(squirrel.Eq{"status": domain.CampaignStatusActive}).
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

func (r *metricsRepository) DashboardTotals(start, end time.Time) (*domain.DashboardTotals, error) {
	query, args, err := squirrel.
		Select(`COALESCE(SUM(emails_sent), 0), COALESCE(SUM(emails_opened), 0),
			COALESCE(SUM(conversions), 0), COALESCE(SUM(revenue_generated), 0)`).
		From("campaign_metrics").
		Where(squirrel.GtOrEq{"metric_date": start}).
		Where(squirrel.LtOrEq{"metric_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	totals := &domain.DashboardTotals{}

	if err := r.conn.QueryRow(query, args...).Scan(
		&totals.TotalEmailsSent,
		&totals.TotalEmailsOpened,
		&totals.TotalConversions,
		&totals.TotalRevenue,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return totals, nil
}

// TopCampaigns ranqueia por taxa de conversão no período, ignorando campanhas
// sem envios
func (r *metricsRepository) TopCampaigns(start, end time.Time, limit uint64) ([]*domain.TopCampaign, error) {
	query, args, err := squirrel.
		Select(`c.campaign_id, c.campaign_name, c.campaign_type,
			COALESCE(SUM(m.conversions), 0) AS conversions,
			COALESCE(SUM(m.revenue_generated), 0) AS revenue,
			COALESCE(SUM(m.emails_sent), 0) AS sent`).
		From("campaigns c").
		Join("campaign_metrics m ON m.campaign_id = c.campaign_id").
		Where(squirrel.GtOrEq{"m.metric_date": start}).
		Where(squirrel.LtOrEq{"m.metric_date": end}).
		GroupBy("c.campaign_id", "c.campaign_name", "c.campaign_type").
		Having("COALESCE(SUM(m.emails_sent), 0) > 0").
		OrderBy("COALESCE(SUM(m.conversions), 0)::FLOAT / SUM(m.emails_sent) DESC").
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

	campaigns := make([]*domain.TopCampaign, 0)

	for rows.Next() {
		top := &domain.TopCampaign{}
		var sent int

		if err := rows.Scan(
			&top.CampaignID,
			&top.CampaignName,
			&top.CampaignType,
			&top.Conversions,
			&top.Revenue,
			&sent,
		); err != nil {
			return nil, err
		}

		top.ConversionRate = utils.SafeRate(float64(top.Conversions), float64(sent))
		campaigns = append(campaigns, top)
	}

	return campaigns, rows.Err()
}

func (r *metricsRepository) SegmentPerformance(segmentID int64) (*domain.SegmentPerformance, error) {
	query, args, err := squirrel.
		Select(`COUNT(DISTINCT c.campaign_id),
			COALESCE(SUM(m.emails_sent), 0),
			COALESCE(SUM(m.conversions), 0),
			COALESCE(SUM(m.revenue_generated), 0)`).
		From("campaigns c").
		LeftJoin("campaign_metrics m ON m.campaign_id = c.campaign_id").
		Where(squirrel.Eq{"c.target_segment_id": segmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	performance := &domain.SegmentPerformance{SegmentID: segmentID}

	if err := r.conn.QueryRow(query, args...).Scan(
		&performance.TotalCampaigns,
		&performance.TotalSent,
		&performance.TotalConversions,
		&performance.TotalRevenue,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	performance.AvgConversionRate = utils.SafeRate(
		float64(performance.TotalConversions), float64(performance.TotalSent))

	return performance, nil
}

// Attribution atribui receita de conversão às campanhas com interações no
// período; o custo vem do rollup de métricas
func (r *metricsRepository) Attribution(start, end time.Time) ([]*domain.AttributionRow, error) {
	query, args, err := squirrel.
		Select(`c.campaign_id, c.campaign_name, c.campaign_type,
			COUNT(DISTINCT i.customer_id),
			COALESCE(SUM(i.conversion_value) FILTER (WHERE i.interaction_type = 'conversion'), 0),
			COALESCE((SELECT SUM(m.cost_incurred) FROM campaign_metrics m
				WHERE m.campaign_id = c.campaign_id
				AND m.metric_date BETWEEN ?::DATE AND ?::DATE), 0)`).
		From("campaigns c").
		Join("customer_interactions i ON i.campaign_id = c.campaign_id").
		Where(squirrel.GtOrEq{"i.interaction_timestamp": start}).
		Where(squirrel.LtOrEq{"i.interaction_timestamp": end}).
		GroupBy("c.campaign_id", "c.campaign_name", "c.campaign_type").
		OrderBy("5 DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	// os placeholders da subconsulta vêm antes dos filtros de interação
	args = append([]interface{}{start, end}, args...)

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	report := make([]*domain.AttributionRow, 0)

	for rows.Next() {
		row := &domain.AttributionRow{}

		if err := rows.Scan(
			&row.CampaignID,
			&row.CampaignName,
			&row.CampaignType,
			&row.UniqueCustomersEngaged,
			&row.AttributedRevenue,
			&row.CampaignCost,
		); err != nil {
			return nil, err
		}

		row.ROIPercentage = domain.ComputeROIPercentage(row.AttributedRevenue, row.CampaignCost)
		report = append(report, row)
	}

	return report, rows.Err()
}

func (r *metricsRepository) CampaignsOverview() ([]*domain.CampaignOverview, error) {
	query, args, err := squirrel.
		Select(`c.campaign_id, c.campaign_name, c.campaign_type, c.status,
			c.target_segment_id, s.segment_name, c.start_date, c.end_date, c.budget,
			COALESCE(SUM(m.emails_sent), 0), COALESCE(SUM(m.emails_opened), 0),
			COALESCE(SUM(m.links_clicked), 0), COALESCE(SUM(m.conversions), 0),
			COALESCE(SUM(m.revenue_generated), 0), COALESCE(SUM(m.cost_incurred), 0),
			(SELECT COUNT(DISTINCT i.customer_id) FROM customer_interactions i
				WHERE i.campaign_id = c.campaign_id)`).
		From("campaigns c").
		LeftJoin("customer_segments_def s ON s.segment_id = c.target_segment_id").
		LeftJoin("campaign_metrics m ON m.campaign_id = c.campaign_id").
		GroupBy("c.campaign_id", "c.campaign_name", "c.campaign_type", "c.status",
			"c.target_segment_id", "s.segment_name", "c.start_date", "c.end_date", "c.budget").
		OrderBy("c.created_at DESC").
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

	overview := make([]*domain.CampaignOverview, 0)

	for rows.Next() {
		row := &domain.CampaignOverview{}

		if err := rows.Scan(
			&row.CampaignID,
			&row.CampaignName,
			&row.CampaignType,
			&row.Status,
			&row.TargetSegmentID,
			&row.SegmentName,
			&row.StartDate,
			&row.EndDate,
			&row.Budget,
			&row.TotalSent,
			&row.TotalOpened,
			&row.TotalClicks,
			&row.TotalConversions,
			&row.TotalRevenue,
			&row.TotalCost,
			&row.ActiveCustomers,
		); err != nil {
			return nil, err
		}

		row.OpenRate = utils.SafeRate(float64(row.TotalOpened), float64(row.TotalSent))
		row.ConversionRate = utils.SafeRate(float64(row.TotalConversions), float64(row.TotalSent))
		overview = append(overview, row)
	}

	return overview, rows.Err()
}
