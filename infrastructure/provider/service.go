package provider

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider/providerclient"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

// DeliveryOutcome é o resultado de uma tentativa de entrega; falhas de
// provedor viram resultado, nunca erro do chamador
type DeliveryOutcome struct {
	Delivered         bool
	ProviderMessageID string
	FailureReason     string
}

type DeliveryIntegrator interface {
	Deliver(ctx context.Context, campaignID int64, channel domain.CampaignType, request *providerclient.DeliveryRequest) *DeliveryOutcome
}

type deliveryIntegrator struct {
	cfg            *config.Config
	client         providerclient.Client
	serviceLogRepo repository.ServiceLogRepository
}

func New(cfg *config.Config, client providerclient.Client, serviceLogRepo repository.ServiceLogRepository) DeliveryIntegrator {
	return &deliveryIntegrator{
		cfg:            cfg,
		client:         client,
		serviceLogRepo: serviceLogRepo,
	}
}

func (s *deliveryIntegrator) Deliver(ctx context.Context, campaignID int64, channel domain.CampaignType, request *providerclient.DeliveryRequest) *DeliveryOutcome {
	response, err := s.client.Send(ctx, channel, request)

	s.audit(campaignID, channel, request, response, err)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"customer_id": request.CustomerID,
			"channel":     channel,
			"error":       err.Error(),
		}).Error("delivery: provider call failed")

		return &DeliveryOutcome{
			Delivered:     false,
			FailureReason: err.Error(),
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":         campaignID,
		"customer_id":         request.CustomerID,
		"channel":             channel,
		"provider_message_id": response.ProviderMessageID,
	}).Debug("delivery: message accepted by provider")

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Trace("delivery request: ", utils.PrettyJson(request))
	}

	return &DeliveryOutcome{
		Delivered:         true,
		ProviderMessageID: response.ProviderMessageID,
	}
}

// audit registra a chamada no log de serviços externos; falha de auditoria
// não interrompe a entrega
func (s *deliveryIntegrator) audit(campaignID int64, channel domain.CampaignType, request *providerclient.DeliveryRequest, response *providerclient.DeliveryResponse, callErr error) {
	requestPayload, err := json.Marshal(request)
	if err != nil {
		requestPayload = json.RawMessage("{}")
	}

	entry := &domain.ExternalServiceLog{
		ServiceType:    string(channel),
		CampaignID:     &campaignID,
		RequestPayload: requestPayload,
		Success:        callErr == nil,
	}

	if response != nil {
		entry.StatusCode = response.StatusCode
		if len(response.RawBody) > 0 && json.Valid(response.RawBody) {
			entry.ResponsePayload = json.RawMessage(response.RawBody)
		}
	}

	if err := s.serviceLogRepo.Insert(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"channel":     channel,
			"error":       err.Error(),
		}).Warn("delivery: failed to audit provider call")
	}
}
