package domain

import (
	"time"
)

// DeliveryStatus é o estado de entrega de uma execução individual
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryBounced   DeliveryStatus = "bounced"
)

// CampaignExecution é uma mensagem renderizada enviada (ou tentada) para um
// cliente; cada execução é uma unidade de trabalho independente
type CampaignExecution struct {
	ID                  int64          `json:"execution_id"`
	CampaignID          int64          `json:"campaign_id"`
	CustomerID          int64          `json:"customer_id"`
	Channel             CampaignType   `json:"channel"`
	DeliveryStatus      DeliveryStatus `json:"delivery_status"`
	PersonalizedContent string         `json:"personalized_content"`
	ErrorMessage        *string        `json:"error_message,omitempty"`
	ExecutedAt          time.Time      `json:"executed_at"`
}

// ExecutionSummary resume o resultado de uma execução de campanha em lote
type ExecutionSummary struct {
	CampaignID    int64  `json:"campaign_id"`
	BatchRef      string `json:"batch_ref"`
	TotalTargeted int    `json:"total_targeted"`
	Sent          int    `json:"sent"`
	Failed        int    `json:"failed"`
	Skipped       int    `json:"skipped"`
}
