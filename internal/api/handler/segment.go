package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/log"
)

// ListSegments lista os segmentos ativos com contagens dinâmicas de membros
func ListSegments(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		statistics, err := service.ListSegments()
		if err != nil {
			logger.WithField("error", err.Error()).Error("segments: failed to list segments")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statistics)
	})
}

// CreateSegment cria um segmento a partir de critérios declarativos
func CreateSegment(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &segmenting.CreateSegmentRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		segment, err := service.CreateSegment(request)
		if err != nil {
			logger.WithFields(log.Fields{
				"segment_name": request.Name,
				"error":        err.Error(),
			}).Warn("segments: failed to create segment")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"segment_id":   segment.ID,
			"segment_name": segment.Name,
		}).Info("segments: segment created")

		writeJSON(w, http.StatusCreated, segment)
	})
}

// GetSegment retorna um segmento com a contagem dinâmica de membros
func GetSegment(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		segmentID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		segment, err := service.GetSegment(segmentID)
		if err != nil {
			logger.WithFields(log.Fields{
				"segment_id": segmentID,
				"error":      err.Error(),
			}).Warn("segments: failed to get segment")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, segment)
	})
}

// GetSegmentCustomers avalia os critérios do segmento e retorna os membros
// atuais
func GetSegmentCustomers(service segmenting.SegmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		segmentID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		customers, err := service.CustomersBySegment(segmentID)
		if err != nil {
			logger.WithFields(log.Fields{
				"segment_id": segmentID,
				"error":      err.Error(),
			}).Warn("segments: failed to list segment customers")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"segment_id":     segmentID,
			"customer_count": len(customers),
			"customers":      customers,
		})
	})
}
