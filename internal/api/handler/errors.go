package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/marketing-automation-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
	"github.com/vfg2006/marketing-automation-api/pkg/apiErrors"
)

// writeServiceError traduz erros dos casos de uso para a taxonomia de códigos
// da API. Erros não mapeados respondem como erro interno sem vazar detalhes.
func writeServiceError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, segmenting.ErrCustomerNotFound),
		errors.Is(err, analyzing.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, err.Error(), nil)

	case errors.Is(err, segmenting.ErrSegmentNotFound),
		errors.Is(err, analyzing.ErrSegmentNotFound),
		errors.Is(err, campaigning.ErrSegmentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSegmentNotFound, err.Error(), nil)

	case errors.Is(err, campaigning.ErrCampaignNotFound),
		errors.Is(err, analyzing.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, err.Error(), nil)

	case errors.Is(err, campaigning.ErrTemplateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTemplateNotFound, err.Error(), nil)

	case errors.Is(err, analyzing.ErrROINotComputed):
		apiErrors.WriteError(w, apiErrors.ErrROINotComputed, err.Error(), nil)

	case errors.Is(err, segmenting.ErrSegmentNameMissing),
		errors.Is(err, segmenting.ErrCategoryMissing),
		errors.Is(err, eventing.ErrEventTypeMissing):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, segmenting.ErrInvalidCriteria),
		errors.Is(err, segmenting.ErrInvalidTrigger):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, segmenting.ErrInvalidInterest):
		apiErrors.WriteError(w, apiErrors.ErrInvalidInterestTier, err.Error(), nil)

	case errors.Is(err, campaigning.ErrInvalidCampaignType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCampaignType, err.Error(), nil)

	case errors.Is(err, campaigning.ErrInvalidStatus),
		errors.Is(err, campaigning.ErrInvalidActionType),
		errors.Is(err, analyzing.ErrInvalidInteraction),
		errors.Is(err, analyzing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, campaigning.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
