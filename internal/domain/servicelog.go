package domain

import (
	"encoding/json"
	"time"
)

// ExternalServiceLog audita cada chamada aos provedores externos de entrega
type ExternalServiceLog struct {
	ID              int64           `json:"log_id"`
	ServiceType     string          `json:"service_type"`
	CampaignID      *int64          `json:"campaign_id,omitempty"`
	RequestPayload  json.RawMessage `json:"request_payload"`
	ResponsePayload json.RawMessage `json:"response_payload"`
	StatusCode      int             `json:"status_code"`
	Success         bool            `json:"success"`
	CalledAt        time.Time       `json:"called_at"`
}
