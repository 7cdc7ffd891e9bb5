package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/log"
)

const (
	defaultEventListLimit    = 100
	defaultEventProcessLimit = 100
)

// PublishEvents grava eventos no log de marketing. Aceita um evento único ou
// um lote como array JSON.
func PublishEvents(service eventing.EventService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
			return
		}

		if trimmed[0] == '[' {
			var requests []*eventing.PublishRequest
			if err := json.Unmarshal(trimmed, &requests); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Lote de eventos inválido", nil)
				return
			}

			events, err := service.PublishBatch(requests)
			if err != nil {
				logger.WithFields(log.Fields{
					"published": len(events),
					"error":     err.Error(),
				}).Warn("events: failed to publish event batch")
				writeServiceError(w, err)
				return
			}

			logger.WithField("published", len(events)).Info("events: event batch published")

			writeJSON(w, http.StatusCreated, map[string]any{
				"published": len(events),
				"events":    events,
			})
			return
		}

		request := &eventing.PublishRequest{}
		if err := json.Unmarshal(trimmed, request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Evento inválido", nil)
			return
		}

		event, err := service.Publish(request)
		if err != nil {
			logger.WithFields(log.Fields{
				"event_type": request.EventType,
				"error":      err.Error(),
			}).Warn("events: failed to publish event")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, event)
	})
}

// ProcessEvents executa manualmente uma varredura dos eventos pendentes
func ProcessEvents(service eventing.EventService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := queryUint(r, "limit", defaultEventProcessLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.ProcessPending(r.Context(), limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("events: failed to process pending events")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"total":     summary.Total,
			"processed": summary.Processed,
			"errors":    summary.Errors,
		}).Info("events: pending events processed")

		writeJSON(w, http.StatusOK, summary)
	})
}

// ListEvents lista o log de eventos com filtros opcionais
func ListEvents(service eventing.EventService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		eventType := queryString(r, "event_type")

		customerID, err := queryInt(r, "customer_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var customerRef *int64
		if customerID != nil {
			value := int64(*customerID)
			customerRef = &value
		}

		limit, err := queryUint(r, "limit", defaultEventListLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		events, err := service.ListEvents(eventType, customerRef, limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("events: failed to list events")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":  len(events),
			"events": events,
		})
	})
}
