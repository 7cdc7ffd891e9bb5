package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-automation-api/pkg/log"
)

// ListCampaigns lista campanhas com filtros opcionais de status e tipo
func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var status *domain.CampaignStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			value := domain.CampaignStatus(raw)
			status = &value
		}

		var campaignType *domain.CampaignType
		if raw := r.URL.Query().Get("type"); raw != "" {
			value := domain.CampaignType(raw)
			campaignType = &value
		}

		campaigns, err := service.ListCampaigns(status, campaignType)
		if err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to list campaigns")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":     len(campaigns),
			"campaigns": campaigns,
		})
	})
}

// CreateCampaign cria uma campanha em rascunho
func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &campaigning.CreateCampaignRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		campaign, err := service.CreateCampaign(request)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_name": request.Name,
				"error":         err.Error(),
			}).Warn("campaigns: failed to create campaign")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	})
}

// GetCampaign retorna uma campanha pelo identificador
func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaign, err := service.GetCampaign(campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("campaigns: failed to get campaign")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

// GetCampaignResource resolve as rotas GET de dois segmentos sob campanhas.
// O httprouter não aceita um segmento estático ao lado de :id na mesma árvore,
// então /status/:status, /:id/workflow e /:id/preview compartilham esta rota.
func GetCampaignResource(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		if params.ByName("id") == "status" {
			listCampaignsByStatus(service, w, r, params.ByName("resource"))
			return
		}

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		switch params.ByName("resource") {
		case "workflow":
			listCampaignWorkflow(service, w, r, campaignID)
		case "preview":
			previewCampaign(service, w, r, campaignID)
		case "template":
			listCampaignTemplates(service, w, r, campaignID)
		case "executions":
			listCampaignExecutions(service, w, r, campaignID)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Recurso de campanha desconhecido", params.ByName("resource"))
		}
	})
}

func listCampaignsByStatus(service campaigning.CampaignService, w http.ResponseWriter, r *http.Request, raw string) {
	logger := log.ForContext(r.Context())

	status := domain.CampaignStatus(raw)

	campaigns, err := service.ListCampaigns(&status, nil)
	if err != nil {
		logger.WithFields(log.Fields{
			"status": raw,
			"error":  err.Error(),
		}).Warn("campaigns: failed to list campaigns by status")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"count":     len(campaigns),
		"campaigns": campaigns,
	})
}

func listCampaignWorkflow(service campaigning.CampaignService, w http.ResponseWriter, r *http.Request, campaignID int64) {
	logger := log.ForContext(r.Context())

	steps, err := service.ListWorkflowSteps(campaignID)
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("campaigns: failed to list workflow steps")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": campaignID,
		"steps":       steps,
	})
}

func listCampaignTemplates(service campaigning.CampaignService, w http.ResponseWriter, r *http.Request, campaignID int64) {
	logger := log.ForContext(r.Context())

	templates, err := service.ListTemplates(campaignID)
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("campaigns: failed to list templates")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": campaignID,
		"templates":   templates,
	})
}

func listCampaignExecutions(service campaigning.CampaignService, w http.ResponseWriter, r *http.Request, campaignID int64) {
	logger := log.ForContext(r.Context())

	executions, err := service.ListExecutions(campaignID)
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("campaigns: failed to list executions")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": campaignID,
		"count":       len(executions),
		"executions":  executions,
	})
}

func previewCampaign(service campaigning.CampaignService, w http.ResponseWriter, r *http.Request, campaignID int64) {
	logger := log.ForContext(r.Context())

	customerID, err := queryInt(r, "customer_id")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	if customerID == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro customer_id é obrigatório", nil)
		return
	}

	channel := domain.CampaignType(r.URL.Query().Get("channel"))
	if channel == "" {
		campaign, err := service.GetCampaign(campaignID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		channel = campaign.Type
	}

	preview, err := service.RenderPreview(campaignID, channel, int64(*customerID))
	if err != nil {
		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"customer_id": *customerID,
			"channel":     channel,
			"error":       err.Error(),
		}).Warn("campaigns: failed to render preview")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, preview)
}

// ChangeCampaignStatus aplica uma transição da máquina de estados da campanha
func ChangeCampaignStatus(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var request struct {
			Status domain.CampaignStatus `json:"status"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		campaign, err := service.ChangeStatus(campaignID, request.Status)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"next_status": request.Status,
				"error":       err.Error(),
			}).Warn("campaigns: failed to change status")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"status":      campaign.Status,
		}).Info("campaigns: status changed")

		writeJSON(w, http.StatusOK, campaign)
	})
}

// UpdateCampaignMessage substitui o conteúdo base da mensagem da campanha
func UpdateCampaignMessage(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var request struct {
			MessageContent string `json:"message_content"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		campaign, err := service.UpdateMessage(campaignID, request.MessageContent)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("campaigns: failed to update message")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

// AddCampaignTemplate adiciona um template de canal à campanha
func AddCampaignTemplate(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		request := &campaigning.TemplateRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		template, err := service.AddTemplate(campaignID, request)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"channel":     request.Channel,
				"error":       err.Error(),
			}).Warn("campaigns: failed to add template")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, template)
	})
}

// UpsertCampaignWorkflow define ou atualiza um passo de workflow da campanha
func UpsertCampaignWorkflow(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		request := &campaigning.WorkflowStepRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		step, err := service.UpsertWorkflowStep(campaignID, request)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"step_number": request.StepNumber,
				"error":       err.Error(),
			}).Warn("campaigns: failed to upsert workflow step")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, step)
	})
}

// ExecuteCampaign dispara a campanha para os membros do segmento alvo
func ExecuteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.ExecuteCampaign(r.Context(), campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to execute campaign")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}
