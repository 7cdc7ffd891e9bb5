package domain

import (
	"time"
)

// CampaignMetrics é o rollup diário de uma campanha (único por campanha/data)
type CampaignMetrics struct {
	ID               int64     `json:"metric_id"`
	CampaignID       int64     `json:"campaign_id"`
	MetricDate       time.Time `json:"metric_date"`
	EmailsSent       int       `json:"emails_sent"`
	EmailsOpened     int       `json:"emails_opened"`
	LinksClicked     int       `json:"links_clicked"`
	Conversions      int       `json:"conversions"`
	RevenueGenerated float64   `json:"revenue_generated"`
	CostIncurred     float64   `json:"cost_incurred"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CampaignSummary agrega o desempenho acumulado de uma campanha com taxas
// protegidas contra denominador zero
type CampaignSummary struct {
	TotalSent        int     `json:"total_sent"`
	TotalOpened      int     `json:"total_opened"`
	TotalClicks      int     `json:"total_clicks"`
	TotalConversions int     `json:"total_conversions"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCost        float64 `json:"total_cost"`
	OpenRate         float64 `json:"open_rate"`
	ClickThroughRate float64 `json:"click_through_rate"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// DashboardPeriod delimita a janela de análise do dashboard
type DashboardPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DashboardTotals são os agregados de todas as campanhas no período
type DashboardTotals struct {
	TotalEmailsSent   int     `json:"total_emails_sent"`
	TotalEmailsOpened int     `json:"total_emails_opened"`
	TotalConversions  int     `json:"total_conversions"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// TopCampaign é uma campanha ranqueada por taxa de conversão
type TopCampaign struct {
	CampaignID     int64        `json:"campaign_id"`
	CampaignName   string       `json:"campaign_name"`
	CampaignType   CampaignType `json:"campaign_type"`
	Conversions    int          `json:"conversions"`
	Revenue        float64      `json:"revenue"`
	ConversionRate float64      `json:"conversion_rate"`
}

// InteractionBreakdown agrupa interações por tipo no período
type InteractionBreakdown struct {
	InteractionType InteractionType `json:"interaction_type"`
	Count           int             `json:"count"`
	TotalValue      float64         `json:"total_value"`
}

// DashboardData é a carga completa do dashboard de marketing
type DashboardData struct {
	Period               DashboardPeriod         `json:"period"`
	ActiveCampaigns      int                     `json:"active_campaigns"`
	Totals               DashboardTotals         `json:"totals"`
	TopCampaigns         []*TopCampaign          `json:"top_performing_campaigns"`
	InteractionBreakdown []*InteractionBreakdown `json:"interaction_breakdown"`
}

// FunnelStages são as contagens por estágio do funil de conversão
type FunnelStages struct {
	Sent      int `json:"sent"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Converted int `json:"converted"`
}

// FunnelRates são as taxas de passagem entre estágios
type FunnelRates struct {
	SentToOpen        float64 `json:"sent_to_open"`
	OpenToClick       float64 `json:"open_to_click"`
	ClickToConversion float64 `json:"click_to_conversion"`
	Overall           float64 `json:"overall"`
}

// FunnelDropOff são as perdas entre estágios
type FunnelDropOff struct {
	AfterSend  int `json:"after_send"`
	AfterOpen  int `json:"after_open"`
	AfterClick int `json:"after_click"`
}

// ConversionFunnel é a análise completa do funil de uma campanha
type ConversionFunnel struct {
	CampaignID int64         `json:"campaign_id"`
	Stages     FunnelStages  `json:"funnel_stages"`
	Rates      FunnelRates   `json:"conversion_rates"`
	DropOff    FunnelDropOff `json:"drop_off"`
}

// SegmentPerformance resume as campanhas direcionadas a um segmento
type SegmentPerformance struct {
	SegmentID         int64   `json:"segment_id"`
	TotalCampaigns    int     `json:"total_campaigns"`
	TotalSent         int     `json:"total_sent"`
	TotalConversions  int     `json:"total_conversions"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
}

// AttributionRow atribui receita de conversão a uma campanha no período
type AttributionRow struct {
	CampaignID             int64        `json:"campaign_id"`
	CampaignName           string       `json:"campaign_name"`
	CampaignType           CampaignType `json:"campaign_type"`
	UniqueCustomersEngaged int          `json:"unique_customers_engaged"`
	AttributedRevenue      float64      `json:"attributed_revenue"`
	CampaignCost           float64      `json:"campaign_cost"`
	ROIPercentage          float64      `json:"roi_percentage"`
}

// CampaignOverview é a linha da visão geral de todas as campanhas
type CampaignOverview struct {
	CampaignID       int64          `json:"campaign_id"`
	CampaignName     string         `json:"campaign_name"`
	CampaignType     CampaignType   `json:"campaign_type"`
	Status           CampaignStatus `json:"status"`
	TargetSegmentID  *int64         `json:"target_segment_id,omitempty"`
	SegmentName      *string        `json:"segment_name,omitempty"`
	StartDate        *time.Time     `json:"start_date,omitempty"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	Budget           float64        `json:"budget"`
	TotalSent        int            `json:"total_emails_sent"`
	TotalOpened      int            `json:"total_emails_opened"`
	TotalClicks      int            `json:"total_clicks"`
	TotalConversions int            `json:"total_conversions"`
	TotalRevenue     float64        `json:"total_revenue"`
	TotalCost        float64        `json:"total_cost"`
	OpenRate         float64        `json:"open_rate"`
	ConversionRate   float64        `json:"conversion_rate"`
	ActiveCustomers  int            `json:"active_customers"`
}
