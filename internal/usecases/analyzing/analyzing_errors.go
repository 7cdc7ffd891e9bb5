package analyzing

import (
	"errors"
)

// Erros específicos para o contexto de análise
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSegmentNotFound    = errors.New("segment not found")
	ErrInvalidInteraction = errors.New("invalid interaction type")
	ErrROINotComputed     = errors.New("roi has not been computed yet")
	ErrInvalidPeriod      = errors.New("invalid analysis period")
)
