package eventing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
)

// eventPayload são os campos reconhecidos nos payloads dos eventos tratados
type eventPayload struct {
	Amount *float64 `json:"amount,omitempty"`
}

// RegisterDefaultHandlers liga o log de eventos aos demais contextos. Eventos
// publicados pelo próprio módulo não são re-rastreados como interação para não
// realimentar o log.
func RegisterDefaultHandlers(
	service EventService,
	segmentService segmenting.SegmentService,
	campaignService campaigning.CampaignService,
	analyticsService analyzing.AnalyticsService,
	customerRepository repository.CustomerRepository,
	segmentRepository repository.SegmentRepository,
	metricsRepository repository.MetricsRepository,
) {
	service.Register(domain.EventCustomerPurchase, func(ctx context.Context, event *domain.MarketingEvent) error {
		if event.CustomerID == nil {
			return nil
		}

		payload := decodePayload(event)

		if event.EventSource != domain.DefaultEventSource && payload.Amount != nil {
			if err := customerRepository.ApplyPurchase(*event.CustomerID, *payload.Amount); err != nil {
				return err
			}

			// Compras reportadas pelo log com campanha vinculada entram na
			// receita diária da campanha
			if event.CampaignID != nil {
				if err := metricsRepository.AddRevenue(*event.CampaignID, dayOf(time.Now()), *payload.Amount); err != nil {
					logrus.WithFields(logrus.Fields{
						"campaign_id": *event.CampaignID,
						"error":       err.Error(),
					}).Error("events: failed to attribute purchase revenue")
				}
			}
		}

		if err := customerRepository.TouchActivity(*event.CustomerID); err != nil {
			logrus.WithField("customer_id", *event.CustomerID).
				Warn("events: failed to touch customer activity")
		}

		_, err := segmentService.ProcessTrigger(domain.TriggerPurchase, *event.CustomerID, event.Payload)
		return err
	})

	service.Register(domain.EventEmailOpened, func(ctx context.Context, event *domain.MarketingEvent) error {
		return handleEngagement(ctx, event, domain.TriggerEmailOpen, domain.InteractionEmailOpen,
			segmentService, campaignService, analyticsService)
	})

	service.Register(domain.EventLinkClicked, func(ctx context.Context, event *domain.MarketingEvent) error {
		return handleEngagement(ctx, event, domain.TriggerPageView, domain.InteractionClick,
			segmentService, campaignService, analyticsService)
	})

	service.Register(domain.EventCustomerUnsubscribed, func(ctx context.Context, event *domain.MarketingEvent) error {
		if event.CustomerID == nil {
			return nil
		}

		if event.EventSource != domain.DefaultEventSource && event.CampaignID != nil {
			if _, err := analyticsService.TrackInteraction(&analyzing.TrackInteractionRequest{
				CustomerID:      *event.CustomerID,
				CampaignID:      *event.CampaignID,
				InteractionType: domain.InteractionUnsubscribe,
			}); err != nil {
				return err
			}
			return nil
		}

		if err := customerRepository.RevokeConsent(*event.CustomerID); err != nil {
			return err
		}

		return purgeAssignments(*event.CustomerID, segmentRepository)
	})

	service.Register(domain.EventCustomerRegistered, func(ctx context.Context, event *domain.MarketingEvent) error {
		if event.CustomerID == nil {
			return nil
		}

		if err := customerRepository.TouchActivity(*event.CustomerID); err != nil {
			logrus.WithField("customer_id", *event.CustomerID).
				Warn("events: failed to touch customer activity")
		}

		_, err := segmentService.ProcessTrigger(domain.TriggerRegistration, *event.CustomerID, event.Payload)
		return err
	})

	service.Register(domain.EventTicketCreated, func(ctx context.Context, event *domain.MarketingEvent) error {
		logrus.WithFields(logrus.Fields{
			"event_id":    event.ID,
			"customer_id": event.CustomerID,
		}).Info("events: support ticket created")
		return nil
	})
}

// handleEngagement trata aberturas e cliques: interações externas são
// rastreadas, e os gatilhos de segmento e de workflow são disparados
func handleEngagement(
	ctx context.Context,
	event *domain.MarketingEvent,
	triggerType domain.TriggerType,
	interactionType domain.InteractionType,
	segmentService segmenting.SegmentService,
	campaignService campaigning.CampaignService,
	analyticsService analyzing.AnalyticsService,
) error {
	if event.CustomerID == nil {
		return nil
	}

	if event.EventSource != domain.DefaultEventSource && event.CampaignID != nil {
		if _, err := analyticsService.TrackInteraction(&analyzing.TrackInteractionRequest{
			CustomerID:      *event.CustomerID,
			CampaignID:      *event.CampaignID,
			InteractionType: interactionType,
		}); err != nil {
			return err
		}
	}

	if _, err := segmentService.ProcessTrigger(triggerType, *event.CustomerID, event.Payload); err != nil {
		return err
	}

	if event.CampaignID != nil {
		if _, err := campaignService.ProcessWorkflowTrigger(ctx, *event.CampaignID, *event.CustomerID, event.EventType); err != nil {
			return err
		}
	}

	return nil
}

func purgeAssignments(customerID int64, segmentRepository repository.SegmentRepository) error {
	assignments, err := segmentRepository.ListCustomerAssignments(customerID)
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		if err := segmentRepository.UnassignCustomer(customerID, assignment.SegmentID); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"segment_id":  assignment.SegmentID,
				"error":       err.Error(),
			}).Error("events: failed to purge segment assignment")
		}
	}

	return nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func decodePayload(event *domain.MarketingEvent) *eventPayload {
	payload := &eventPayload{}

	if len(event.Payload) > 0 {
		if err := json.Unmarshal(event.Payload, payload); err != nil {
			logrus.WithField("event_id", event.ID).
				Warn("events: ignoring unparsable payload")
		}
	}

	return payload
}
