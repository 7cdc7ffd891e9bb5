package analyzing

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

// Janela padrão do dashboard quando o período não é informado
const defaultDashboardDays = 30

// Impulsos de engajamento por tipo de interação, limitados a 100 no perfil
var engagementBoosts = map[domain.InteractionType]int{
	domain.InteractionEmailOpen:  2,
	domain.InteractionClick:      5,
	domain.InteractionConversion: 10,
}

type AnalyticsService interface {
	TrackInteraction(request *TrackInteractionRequest) (*domain.CustomerInteraction, error)
	CampaignSummary(campaignID int64) (*domain.CampaignSummary, error)
	CampaignDailyMetrics(campaignID int64) ([]*domain.CampaignMetrics, error)
	ComputeROI(campaignID int64, costOverride *float64) (*domain.CampaignROI, error)
	GetROI(campaignID int64) (*domain.CampaignROI, error)
	DashboardSummary(start, end *time.Time) (*domain.DashboardData, error)
	ConversionFunnel(campaignID int64) (*domain.ConversionFunnel, error)
	SegmentPerformance(segmentID int64) (*domain.SegmentPerformance, error)
	AttributionReport(start, end *time.Time) ([]*domain.AttributionRow, error)
	EngagementHistory(customerID int64, limit uint64) ([]*domain.InteractionHistoryEntry, error)
	AllCampaignsOverview() ([]*domain.CampaignOverview, error)
}

// TrackInteractionRequest é a entrada de registro de interação
type TrackInteractionRequest struct {
	CustomerID      int64                  `json:"customer_id"`
	CampaignID      int64                  `json:"campaign_id"`
	InteractionType domain.InteractionType `json:"interaction_type"`
	Metadata        json.RawMessage        `json:"metadata,omitempty"`
	ConversionValue *float64               `json:"conversion_value,omitempty"`
}

type Service struct {
	interactionRepository repository.InteractionRepository
	metricsRepository     repository.MetricsRepository
	roiRepository         repository.ROIRepository
	campaignRepository    repository.CampaignRepository
	customerRepository    repository.CustomerRepository
	eventRepository       repository.EventRepository
}

func NewService(
	interactionRepository repository.InteractionRepository,
	metricsRepository repository.MetricsRepository,
	roiRepository repository.ROIRepository,
	campaignRepository repository.CampaignRepository,
	customerRepository repository.CustomerRepository,
	eventRepository repository.EventRepository,
) AnalyticsService {
	return &Service{
		interactionRepository: interactionRepository,
		metricsRepository:     metricsRepository,
		roiRepository:         roiRepository,
		campaignRepository:    campaignRepository,
		customerRepository:    customerRepository,
		eventRepository:       eventRepository,
	}
}

// TrackInteraction registra a interação e propaga os efeitos: rollup diário
// da campanha, atividade e engajamento do cliente e evento no log
func (s *Service) TrackInteraction(request *TrackInteractionRequest) (*domain.CustomerInteraction, error) {
	if !request.InteractionType.Valid() {
		return nil, ErrInvalidInteraction
	}

	campaign, err := s.campaignRepository.GetByID(request.CampaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	attrs, err := s.customerRepository.GetAttributes(request.CustomerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	interaction, err := s.interactionRepository.Insert(&domain.CustomerInteraction{
		CustomerID:      request.CustomerID,
		CampaignID:      request.CampaignID,
		InteractionType: request.InteractionType,
		Metadata:        request.Metadata,
		ConversionValue: request.ConversionValue,
	})
	if err != nil {
		return nil, err
	}

	s.applyMetrics(request)
	s.applyBehavior(request)
	s.publishInteractionEvent(request)

	return interaction, nil
}

func (s *Service) applyMetrics(request *TrackInteractionRequest) {
	metrics := &domain.CampaignMetrics{
		CampaignID: request.CampaignID,
		MetricDate: metricDay(time.Now()),
	}

	switch request.InteractionType {
	case domain.InteractionEmailOpen:
		metrics.EmailsOpened = 1
	case domain.InteractionClick:
		metrics.LinksClicked = 1
	case domain.InteractionConversion:
		metrics.Conversions = 1
		if request.ConversionValue != nil {
			metrics.RevenueGenerated = *request.ConversionValue
		}
	case domain.InteractionUnsubscribe:
		return
	}

	if err := s.metricsRepository.UpsertDaily(metrics); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": request.CampaignID,
			"error":       err.Error(),
		}).Error("analytics: failed to update daily metrics")
	}
}

// applyBehavior propaga a interação para o perfil do cliente; cancelamento de
// inscrição revoga o consentimento de marketing
func (s *Service) applyBehavior(request *TrackInteractionRequest) {
	if err := s.customerRepository.TouchActivity(request.CustomerID); err != nil {
		logrus.WithField("customer_id", request.CustomerID).
			Warn("analytics: failed to touch customer activity")
	}

	if request.InteractionType == domain.InteractionUnsubscribe {
		if err := s.customerRepository.RevokeConsent(request.CustomerID); err != nil {
			logrus.WithField("customer_id", request.CustomerID).
				Error("analytics: failed to revoke marketing consent")
		}
		return
	}

	if boost, ok := engagementBoosts[request.InteractionType]; ok {
		if err := s.customerRepository.BoostEngagement(request.CustomerID, boost); err != nil {
			logrus.WithField("customer_id", request.CustomerID).
				Warn("analytics: failed to boost engagement score")
		}
	}

	if request.InteractionType == domain.InteractionConversion && request.ConversionValue != nil {
		if err := s.customerRepository.ApplyPurchase(request.CustomerID, *request.ConversionValue); err != nil {
			logrus.WithField("customer_id", request.CustomerID).
				Error("analytics: failed to apply purchase to profile")
		}
	}
}

func (s *Service) publishInteractionEvent(request *TrackInteractionRequest) {
	eventTypes := map[domain.InteractionType]string{
		domain.InteractionEmailOpen:   domain.EventEmailOpened,
		domain.InteractionClick:       domain.EventLinkClicked,
		domain.InteractionConversion:  domain.EventCustomerPurchase,
		domain.InteractionUnsubscribe: domain.EventCustomerUnsubscribed,
	}

	eventType, ok := eventTypes[request.InteractionType]
	if !ok {
		return
	}

	payload := map[string]any{
		"interaction_type": request.InteractionType,
	}
	if request.ConversionValue != nil {
		payload["amount"] = *request.ConversionValue
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = json.RawMessage("{}")
	}

	if _, err := s.eventRepository.Insert(&domain.MarketingEvent{
		EventType:  eventType,
		Payload:    raw,
		CustomerID: &request.CustomerID,
		CampaignID: &request.CampaignID,
	}); err != nil {
		logrus.WithFields(logrus.Fields{
			"event_type": eventType,
			"error":      err.Error(),
		}).Warn("analytics: failed to publish interaction event")
	}
}

func (s *Service) CampaignSummary(campaignID int64) (*domain.CampaignSummary, error) {
	if err := s.ensureCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.metricsRepository.CampaignSummary(campaignID)
}

// CampaignDailyMetrics lista o rollup diário da campanha em ordem cronológica
func (s *Service) CampaignDailyMetrics(campaignID int64) ([]*domain.CampaignMetrics, error) {
	if err := s.ensureCampaign(campaignID); err != nil {
		return nil, err
	}

	return s.metricsRepository.ListDaily(campaignID)
}

// ComputeROI recalcula e persiste o retorno da campanha. Sem custo informado
// usa o custo acumulado nas métricas; custo zero produz ROI zero.
func (s *Service) ComputeROI(campaignID int64, costOverride *float64) (*domain.CampaignROI, error) {
	if err := s.ensureCampaign(campaignID); err != nil {
		return nil, err
	}

	summary, err := s.metricsRepository.CampaignSummary(campaignID)
	if err != nil {
		return nil, err
	}

	cost := summary.TotalCost
	if costOverride != nil {
		cost = *costOverride
	}

	roi := &domain.CampaignROI{
		CampaignID:    campaignID,
		TotalCost:     cost,
		TotalRevenue:  summary.TotalRevenue,
		ROIPercentage: domain.ComputeROIPercentage(summary.TotalRevenue, cost),
		Profit:        utils.RoundWithTwoDecimalPlace(summary.TotalRevenue - cost),
		CalculatedAt:  time.Now(),
	}

	if err := s.roiRepository.Upsert(roi); err != nil {
		return nil, err
	}

	return roi, nil
}

func (s *Service) GetROI(campaignID int64) (*domain.CampaignROI, error) {
	if err := s.ensureCampaign(campaignID); err != nil {
		return nil, err
	}

	roi, err := s.roiRepository.Get(campaignID)
	if err != nil {
		return nil, err
	}

	if roi == nil {
		return nil, ErrROINotComputed
	}

	return roi, nil
}

func (s *Service) DashboardSummary(start, end *time.Time) (*domain.DashboardData, error) {
	period, err := resolvePeriod(start, end)
	if err != nil {
		return nil, err
	}

	activeCampaigns, err := s.metricsRepository.CountActiveCampaigns()
	if err != nil {
		return nil, err
	}

	totals, err := s.metricsRepository.DashboardTotals(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	topCampaigns, err := s.metricsRepository.TopCampaigns(period.StartDate, period.EndDate, 5)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.interactionRepository.Breakdown(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardData{
		Period:               *period,
		ActiveCampaigns:      activeCampaigns,
		Totals:               *totals,
		TopCampaigns:         topCampaigns,
		InteractionBreakdown: breakdown,
	}, nil
}

// ConversionFunnel monta os estágios, as taxas de passagem e as perdas do
// funil; denominador zero produz taxa zero
func (s *Service) ConversionFunnel(campaignID int64) (*domain.ConversionFunnel, error) {
	if err := s.ensureCampaign(campaignID); err != nil {
		return nil, err
	}

	stages, err := s.metricsRepository.FunnelStages(campaignID)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionFunnel{
		CampaignID: campaignID,
		Stages:     *stages,
		Rates: domain.FunnelRates{
			SentToOpen:        utils.SafeRate(float64(stages.Opened), float64(stages.Sent)),
			OpenToClick:       utils.SafeRate(float64(stages.Clicked), float64(stages.Opened)),
			ClickToConversion: utils.SafeRate(float64(stages.Converted), float64(stages.Clicked)),
			Overall:           utils.SafeRate(float64(stages.Converted), float64(stages.Sent)),
		},
		DropOff: domain.FunnelDropOff{
			AfterSend:  stages.Sent - stages.Opened,
			AfterOpen:  stages.Opened - stages.Clicked,
			AfterClick: stages.Clicked - stages.Converted,
		},
	}, nil
}

func (s *Service) SegmentPerformance(segmentID int64) (*domain.SegmentPerformance, error) {
	return s.metricsRepository.SegmentPerformance(segmentID)
}

func (s *Service) AttributionReport(start, end *time.Time) ([]*domain.AttributionRow, error) {
	period, err := resolvePeriod(start, end)
	if err != nil {
		return nil, err
	}

	return s.metricsRepository.Attribution(period.StartDate, period.EndDate)
}

func (s *Service) EngagementHistory(customerID int64, limit uint64) ([]*domain.InteractionHistoryEntry, error) {
	attrs, err := s.customerRepository.GetAttributes(customerID)
	if err != nil {
		return nil, err
	}

	if attrs == nil {
		return nil, ErrCustomerNotFound
	}

	return s.interactionRepository.History(customerID, limit)
}

func (s *Service) AllCampaignsOverview() ([]*domain.CampaignOverview, error) {
	return s.metricsRepository.CampaignsOverview()
}

func (s *Service) ensureCampaign(campaignID int64) error {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return err
	}

	if campaign == nil {
		return ErrCampaignNotFound
	}

	return nil
}

func resolvePeriod(start, end *time.Time) (*domain.DashboardPeriod, error) {
	now := time.Now()

	period := &domain.DashboardPeriod{
		StartDate: now.AddDate(0, 0, -defaultDashboardDays),
		EndDate:   now,
	}

	if start != nil {
		period.StartDate = *start
	}

	if end != nil {
		period.EndDate = *end
	}

	if period.EndDate.Before(period.StartDate) {
		return nil, ErrInvalidPeriod
	}

	return period, nil
}

func metricDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
