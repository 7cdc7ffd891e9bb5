package domain

import (
	"time"

	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

// CampaignROI é o retorno sobre investimento persistido de uma campanha.
// O percentual é derivado, nunca armazenado diretamente.
type CampaignROI struct {
	CampaignID    int64     `json:"campaign_id"`
	TotalCost     float64   `json:"total_cost"`
	TotalRevenue  float64   `json:"total_revenue"`
	ROIPercentage float64   `json:"roi_percentage"`
	Profit        float64   `json:"profit"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

// ComputeROIPercentage calcula (receita − custo) / custo × 100.
// Custo zero produz 0, nunca erro ou infinito.
func ComputeROIPercentage(revenue, cost float64) float64 {
	if cost <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((revenue - cost) / cost * 100)
}
