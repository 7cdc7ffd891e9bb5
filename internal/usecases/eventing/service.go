package eventing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

// Erros específicos para o contexto de eventos
var (
	ErrEventTypeMissing = errors.New("event type is required")
)

// Handler reage a um tipo de evento durante a varredura de pendentes
type Handler func(ctx context.Context, event *domain.MarketingEvent) error

// PublishRequest é a entrada de publicação de evento
type PublishRequest struct {
	EventType   string          `json:"event_type"`
	EventSource string          `json:"event_source,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	CustomerID  *int64          `json:"customer_id,omitempty"`
	CampaignID  *int64          `json:"campaign_id,omitempty"`
}

type EventService interface {
	Publish(request *PublishRequest) (*domain.MarketingEvent, error)
	PublishBatch(requests []*PublishRequest) ([]*domain.MarketingEvent, error)
	ProcessPending(ctx context.Context, limit uint64) (*domain.EventProcessSummary, error)
	ListEvents(eventType *string, customerID *int64, limit uint64) ([]*domain.MarketingEvent, error)
	Register(eventType string, handler Handler)
}

type Service struct {
	eventRepository repository.EventRepository
	handlers        map[string][]Handler
}

func NewService(eventRepository repository.EventRepository) *Service {
	return &Service{
		eventRepository: eventRepository,
		handlers:        make(map[string][]Handler),
	}
}

// Register associa um handler a um tipo de evento. O registro acontece na
// montagem da aplicação, antes de qualquer varredura.
func (s *Service) Register(eventType string, handler Handler) {
	s.handlers[eventType] = append(s.handlers[eventType], handler)
}

func (s *Service) Publish(request *PublishRequest) (*domain.MarketingEvent, error) {
	if request.EventType == "" {
		return nil, ErrEventTypeMissing
	}

	return s.eventRepository.Insert(&domain.MarketingEvent{
		EventType:   request.EventType,
		EventSource: request.EventSource,
		Payload:     request.Payload,
		CustomerID:  request.CustomerID,
		CampaignID:  request.CampaignID,
	})
}

func (s *Service) PublishBatch(requests []*PublishRequest) ([]*domain.MarketingEvent, error) {
	events := make([]*domain.MarketingEvent, 0, len(requests))

	for _, request := range requests {
		event, err := s.Publish(request)
		if err != nil {
			return events, err
		}

		events = append(events, event)
	}

	return events, nil
}

// ProcessPending varre os eventos não processados na ordem de publicação e
// despacha para os handlers registrados. O log é um diário: o evento é marcado
// como processado mesmo sem handler ou com handler falhando; a falha só conta
// no resumo.
func (s *Service) ProcessPending(ctx context.Context, limit uint64) (*domain.EventProcessSummary, error) {
	events, err := s.eventRepository.ListUnprocessed(limit)
	if err != nil {
		return nil, err
	}

	summary := &domain.EventProcessSummary{Total: len(events)}

	for _, event := range events {
		failed := false

		for _, handler := range s.handlers[event.EventType] {
			if err := handler(ctx, event); err != nil {
				logrus.WithFields(logrus.Fields{
					"event_id":   event.ID,
					"event_type": event.EventType,
					"error":      err.Error(),
				}).Error("events: handler failed")
				failed = true
			}
		}

		if err := s.eventRepository.MarkProcessed(event.ID); err != nil {
			logrus.WithField("event_id", event.ID).
				Error("events: failed to mark event as processed")
			summary.Errors++
			continue
		}

		if failed {
			summary.Errors++
		} else {
			summary.Processed++
		}
	}

	return summary, nil
}

func (s *Service) ListEvents(eventType *string, customerID *int64, limit uint64) ([]*domain.MarketingEvent, error) {
	return s.eventRepository.List(eventType, customerID, limit)
}
