package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type analyticsMocks struct {
	interactionRepo *mocks.MockInteractionRepository
	metricsRepo     *mocks.MockMetricsRepository
	roiRepo         *mocks.MockROIRepository
	campaignRepo    *mocks.MockCampaignRepository
	customerRepo    *mocks.MockCustomerRepository
	eventRepo       *mocks.MockEventRepository
}

func newAnalyticsService(t *testing.T) (*Service, *analyticsMocks) {
	ctrl := gomock.NewController(t)

	m := &analyticsMocks{
		interactionRepo: mocks.NewMockInteractionRepository(ctrl),
		metricsRepo:     mocks.NewMockMetricsRepository(ctrl),
		roiRepo:         mocks.NewMockROIRepository(ctrl),
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		customerRepo:    mocks.NewMockCustomerRepository(ctrl),
		eventRepo:       mocks.NewMockEventRepository(ctrl),
	}

	service := &Service{
		interactionRepository: m.interactionRepo,
		metricsRepository:     m.metricsRepo,
		roiRepository:         m.roiRepo,
		campaignRepository:    m.campaignRepo,
		customerRepository:    m.customerRepo,
		eventRepository:       m.eventRepo,
	}

	return service, m
}

func activeCampaign(id int64) *domain.Campaign {
	return &domain.Campaign{ID: id, Status: domain.CampaignStatusActive, Type: domain.CampaignTypeEmail}
}

func attrsFor(id int64) *domain.CustomerAttributes {
	return &domain.CustomerAttributes{Customer: domain.Customer{ID: id, Email: "cliente@exemplo.com"}}
}

func TestTrackInteractionRejectsUnknownType(t *testing.T) {
	service, _ := newAnalyticsService(t)

	_, err := service.TrackInteraction(&TrackInteractionRequest{
		CustomerID:      100,
		CampaignID:      1,
		InteractionType: domain.InteractionType("forwarded"),
	})

	assert.ErrorIs(t, err, ErrInvalidInteraction)
}

func TestTrackInteractionConversion(t *testing.T) {
	service, m := newAnalyticsService(t)

	value := 350.0
	request := &TrackInteractionRequest{
		CustomerID:      100,
		CampaignID:      1,
		InteractionType: domain.InteractionConversion,
		ConversionValue: &value,
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
	m.customerRepo.EXPECT().GetAttributes(int64(100)).Return(attrsFor(100), nil)

	m.interactionRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(interaction *domain.CustomerInteraction) (*domain.CustomerInteraction, error) {
			assert.Equal(t, domain.InteractionConversion, interaction.InteractionType)
			require.NotNil(t, interaction.ConversionValue)
			assert.Equal(t, 350.0, *interaction.ConversionValue)
			interaction.ID = 77
			return interaction, nil
		})

	m.metricsRepo.EXPECT().
		UpsertDaily(gomock.Any()).
		DoAndReturn(func(metrics *domain.CampaignMetrics) error {
			assert.Equal(t, 1, metrics.Conversions)
			assert.Equal(t, 350.0, metrics.RevenueGenerated)
			return nil
		})

	m.customerRepo.EXPECT().TouchActivity(int64(100)).Return(nil)
	m.customerRepo.EXPECT().BoostEngagement(int64(100), 10).Return(nil)
	m.customerRepo.EXPECT().ApplyPurchase(int64(100), 350.0).Return(nil)

	m.eventRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(event *domain.MarketingEvent) (*domain.MarketingEvent, error) {
			assert.Equal(t, domain.EventCustomerPurchase, event.EventType)
			return event, nil
		})

	interaction, err := service.TrackInteraction(request)

	require.NoError(t, err)
	assert.Equal(t, int64(77), interaction.ID)
}

func TestTrackInteractionUnsubscribeRevokesConsent(t *testing.T) {
	service, m := newAnalyticsService(t)

	request := &TrackInteractionRequest{
		CustomerID:      100,
		CampaignID:      1,
		InteractionType: domain.InteractionUnsubscribe,
	}

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
	m.customerRepo.EXPECT().GetAttributes(int64(100)).Return(attrsFor(100), nil)
	m.interactionRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(interaction *domain.CustomerInteraction) (*domain.CustomerInteraction, error) {
			return interaction, nil
		})

	// Cancelamento não mexe em métricas nem em engajamento
	m.customerRepo.EXPECT().TouchActivity(int64(100)).Return(nil)
	m.customerRepo.EXPECT().RevokeConsent(int64(100)).Return(nil)
	m.eventRepo.EXPECT().Insert(gomock.Any()).Return(&domain.MarketingEvent{}, nil)

	_, err := service.TrackInteraction(request)

	require.NoError(t, err)
}

func TestTrackInteractionCampaignNotFound(t *testing.T) {
	service, m := newAnalyticsService(t)

	m.campaignRepo.EXPECT().GetByID(int64(9)).Return(nil, nil)

	_, err := service.TrackInteraction(&TrackInteractionRequest{
		CustomerID:      100,
		CampaignID:      9,
		InteractionType: domain.InteractionClick,
	})

	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestComputeROI(t *testing.T) {
	tests := []struct {
		name         string
		revenue      float64
		cost         float64
		costOverride *float64
		wantROI      float64
		wantProfit   float64
	}{
		{
			name:       "Receita acima do custo produz ROI positivo",
			revenue:    5000,
			cost:       1000,
			wantROI:    400,
			wantProfit: 4000,
		},
		{
			name:       "Receita abaixo do custo produz ROI negativo",
			revenue:    500,
			cost:       1000,
			wantROI:    -50,
			wantProfit: -500,
		},
		{
			name:       "Custo zero produz ROI zero",
			revenue:    5000,
			cost:       0,
			wantROI:    0,
			wantProfit: 5000,
		},
		{
			name:         "Custo informado substitui o custo acumulado",
			revenue:      5000,
			cost:         1000,
			costOverride: floatPtr(2500),
			wantROI:      100,
			wantProfit:   2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newAnalyticsService(t)

			m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
			m.metricsRepo.EXPECT().CampaignSummary(int64(1)).Return(&domain.CampaignSummary{
				TotalRevenue: tt.revenue,
				TotalCost:    tt.cost,
			}, nil)
			m.roiRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

			roi, err := service.ComputeROI(1, tt.costOverride)

			require.NoError(t, err)
			assert.Equal(t, tt.wantROI, roi.ROIPercentage)
			assert.Equal(t, tt.wantProfit, roi.Profit)
		})
	}
}

func TestGetROINotComputed(t *testing.T) {
	service, m := newAnalyticsService(t)

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
	m.roiRepo.EXPECT().Get(int64(1)).Return(nil, nil)

	_, err := service.GetROI(1)

	assert.ErrorIs(t, err, ErrROINotComputed)
}

func TestConversionFunnel(t *testing.T) {
	service, m := newAnalyticsService(t)

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
	m.metricsRepo.EXPECT().FunnelStages(int64(1)).Return(&domain.FunnelStages{
		Sent:      1000,
		Opened:    400,
		Clicked:   100,
		Converted: 20,
	}, nil)

	funnel, err := service.ConversionFunnel(1)

	require.NoError(t, err)
	assert.Equal(t, 40.0, funnel.Rates.SentToOpen)
	assert.Equal(t, 25.0, funnel.Rates.OpenToClick)
	assert.Equal(t, 20.0, funnel.Rates.ClickToConversion)
	assert.Equal(t, 2.0, funnel.Rates.Overall)
	assert.Equal(t, 600, funnel.DropOff.AfterSend)
	assert.Equal(t, 300, funnel.DropOff.AfterOpen)
	assert.Equal(t, 80, funnel.DropOff.AfterClick)
}

func TestConversionFunnelWithoutSends(t *testing.T) {
	service, m := newAnalyticsService(t)

	m.campaignRepo.EXPECT().GetByID(int64(1)).Return(activeCampaign(1), nil)
	m.metricsRepo.EXPECT().FunnelStages(int64(1)).Return(&domain.FunnelStages{}, nil)

	funnel, err := service.ConversionFunnel(1)

	require.NoError(t, err)
	assert.Equal(t, 0.0, funnel.Rates.SentToOpen)
	assert.Equal(t, 0.0, funnel.Rates.Overall)
}

func TestDashboardSummaryRejectsInvertedPeriod(t *testing.T) {
	service, _ := newAnalyticsService(t)

	start := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.DashboardSummary(&start, &end)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestEngagementHistoryUnknownCustomer(t *testing.T) {
	service, m := newAnalyticsService(t)

	m.customerRepo.EXPECT().GetAttributes(int64(404)).Return(nil, nil)

	_, err := service.EngagementHistory(404, 20)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func floatPtr(f float64) *float64 {
	return &f
}
