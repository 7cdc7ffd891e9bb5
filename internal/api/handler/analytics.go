package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/log"
	"github.com/vfg2006/marketing-automation-api/pkg/utils"
)

const defaultHistoryLimit = 50

// GetDashboard retorna o resumo executivo do período
func GetDashboard(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		start, end, err := periodFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.DashboardSummary(start, end)
		if err != nil {
			logger.WithField("error", err.Error()).Error("analytics: failed to build dashboard")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	})
}

// GetCampaignsOverview resolve a rota coringa de um segmento sob campanhas.
// O httprouter não aceita um segmento estático ao lado de :id na mesma árvore,
// então /summary chega por aqui.
func GetCampaignsOverview(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if id := httprouter.ParamsFromContext(r.Context()).ByName("id"); id != "summary" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Recurso de análise desconhecido", id)
			return
		}

		overview, err := service.AllCampaignsOverview()
		if err != nil {
			logger.WithField("error", err.Error()).Error("analytics: failed to build campaigns overview")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":     len(overview),
			"campaigns": overview,
		})
	})
}

// GetCampaignReport despacha os relatórios por campanha: summary, metrics,
// funnel e roi
func GetCampaignReport(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report := httprouter.ParamsFromContext(r.Context()).ByName("report")

		var payload any

		switch report {
		case "summary":
			payload, err = service.CampaignSummary(campaignID)
		case "metrics":
			payload, err = service.CampaignDailyMetrics(campaignID)
		case "funnel":
			payload, err = service.ConversionFunnel(campaignID)
		case "roi":
			payload, err = service.GetROI(campaignID)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Relatório de campanha desconhecido", report)
			return
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"report":      report,
				"error":       err.Error(),
			}).Warn("analytics: failed to build campaign report")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	})
}

// ComputeCampaignROI calcula e persiste o ROI da campanha; o custo pode ser
// sobrescrito no corpo da requisição
func ComputeCampaignROI(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var request struct {
			CampaignCost *float64 `json:"campaign_cost,omitempty"`
		}

		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		roi, err := service.ComputeROI(campaignID, request.CampaignCost)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("analytics: failed to compute campaign roi")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":    campaignID,
			"roi_percentage": roi.ROIPercentage,
		}).Info("analytics: campaign roi computed")

		writeJSON(w, http.StatusOK, roi)
	})
}

// GetAttributionReport atribui receita de conversão às campanhas no período
func GetAttributionReport(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		start, end, err := periodFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		rows, err := service.AttributionReport(start, end)
		if err != nil {
			logger.WithField("error", err.Error()).Error("analytics: failed to build attribution report")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":     len(rows),
			"campaigns": rows,
		})
	})
}

// GetSegmentPerformance resume o desempenho das campanhas de um segmento
func GetSegmentPerformance(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		segmentID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performance, err := service.SegmentPerformance(segmentID)
		if err != nil {
			logger.WithFields(log.Fields{
				"segment_id": segmentID,
				"error":      err.Error(),
			}).Warn("analytics: failed to build segment performance")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, performance)
	})
}

// TrackInteraction registra uma interação do cliente com uma campanha
func TrackInteraction(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		request := &analyzing.TrackInteractionRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		// O cliente vem da rota, não do corpo
		request.CustomerID = customerID

		interaction, err := service.TrackInteraction(request)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id":      customerID,
				"campaign_id":      request.CampaignID,
				"interaction_type": request.InteractionType,
				"error":            err.Error(),
			}).Warn("analytics: failed to track interaction")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, interaction)
	})
}

// GetEngagementHistory lista o histórico de interações do cliente
func GetEngagementHistory(service analyzing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := queryUint(r, "limit", defaultHistoryLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		history, err := service.EngagementHistory(customerID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("analytics: failed to list engagement history")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"customer_id":  customerID,
			"count":        len(history),
			"interactions": history,
		})
	})
}

func periodFromQuery(r *http.Request) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		start = parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		end = parsed
	}

	return start, end, nil
}
