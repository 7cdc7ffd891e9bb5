package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignNameMissing = errors.New("campaign name is required")
	ErrInvalidCampaignType = errors.New("invalid campaign type")
	ErrInvalidActionType   = errors.New("invalid workflow action type")
	ErrInvalidStatus       = errors.New("invalid campaign status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrCampaignNotActive   = errors.New("campaign is not active")

	// Erros de recurso
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrSegmentNotFound  = errors.New("target segment not found")
	ErrTemplateNotFound = errors.New("no template for campaign channel")
	ErrNoTargetSegment  = errors.New("campaign has no target segment")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error
	Code       string
	CampaignID int64
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, campaignID int64, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
