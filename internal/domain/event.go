package domain

import (
	"encoding/json"
	"time"
)

// Tipos de evento padronizados do log de eventos de marketing
const (
	EventCampaignStarted       = "CAMPAIGN_STARTED"
	EventCampaignCompleted     = "CAMPAIGN_COMPLETED"
	EventCampaignStatusChanged = "CAMPAIGN_STATUS_CHANGED"
	EventEmailSent             = "EMAIL_SENT"
	EventSMSSent               = "SMS_SENT"

	EventEmailOpened          = "EMAIL_OPENED"
	EventLinkClicked          = "LINK_CLICKED"
	EventCustomerUnsubscribed = "CUSTOMER_UNSUBSCRIBED"

	EventCustomerPurchase   = "CUSTOMER_PURCHASE"
	EventTicketCreated      = "TICKET_CREATED"
	EventCustomerRegistered = "CUSTOMER_REGISTERED"
	EventCustomerUpdated    = "CUSTOMER_UPDATED"

	EventSegmentChanged         = "SEGMENT_CHANGED"
	EventCustomerAddedToSegment = "CUSTOMER_ADDED_TO_SEGMENT"
)

// DefaultEventSource identifica eventos originados neste módulo
const DefaultEventSource = "marketing_automation"

// MarketingEvent é uma linha append-only do log de eventos; as referências a
// cliente e campanha são anuláveis para que o histórico sobreviva à exclusão
// das entidades
type MarketingEvent struct {
	ID          int64           `json:"event_id"`
	EventType   string          `json:"event_type"`
	EventSource string          `json:"event_source"`
	Payload     json.RawMessage `json:"payload"`
	CustomerID  *int64          `json:"customer_id,omitempty"`
	CampaignID  *int64          `json:"campaign_id,omitempty"`
	Processed   bool            `json:"processed"`
	PublishedAt time.Time       `json:"published_at"`
}

// EventProcessSummary resume uma varredura de eventos pendentes
type EventProcessSummary struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
	Total     int `json:"total"`
}
