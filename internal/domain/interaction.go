package domain

import (
	"encoding/json"
	"time"
)

// InteractionType classifica a interação de um cliente com uma campanha
type InteractionType string

const (
	InteractionEmailOpen   InteractionType = "email_open"
	InteractionClick       InteractionType = "click"
	InteractionConversion  InteractionType = "conversion"
	InteractionUnsubscribe InteractionType = "unsubscribe"
)

// Valid informa se o tipo de interação é reconhecido
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionEmailOpen, InteractionClick, InteractionConversion, InteractionUnsubscribe:
		return true
	}
	return false
}

// CustomerInteraction é o registro append-only de uma interação; conversões
// carregam o valor convertido para atribuição de receita
type CustomerInteraction struct {
	ID                   int64           `json:"interaction_id"`
	CustomerID           int64           `json:"customer_id"`
	CampaignID           int64           `json:"campaign_id"`
	InteractionType      InteractionType `json:"interaction_type"`
	Metadata             json.RawMessage `json:"metadata,omitempty"`
	ConversionValue      *float64        `json:"conversion_value,omitempty"`
	InteractionTimestamp time.Time       `json:"interaction_timestamp"`
}

// InteractionHistoryEntry é uma interação enriquecida com dados da campanha
type InteractionHistoryEntry struct {
	CustomerInteraction
	CampaignName string       `json:"campaign_name"`
	CampaignType CampaignType `json:"campaign_type"`
}
