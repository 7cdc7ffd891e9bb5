package domain

import (
	"encoding/json"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Segment é um grupo nomeado de clientes definido por critérios declarativos
type Segment struct {
	ID          int64           `json:"segment_id"`
	Name        string          `json:"segment_name"`
	Description string          `json:"description"`
	Criteria    json.RawMessage `json:"criteria"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SegmentWithCount é um segmento acompanhado da contagem dinâmica de membros
type SegmentWithCount struct {
	Segment
	CustomerCount int `json:"customer_count"`
}

// SegmentCriteria é o conjunto fechado de predicados reconhecidos na avaliação
// de segmentos. Todos os predicados presentes são combinados com AND; predicados
// ausentes não impõem restrição.
type SegmentCriteria struct {
	MinPurchaseValue      *float64 `mapstructure:"min_purchase_value" json:"min_purchase_value,omitempty"`
	MaxPurchaseValue      *float64 `mapstructure:"max_purchase_value" json:"max_purchase_value,omitempty"`
	MinEngagementScore    *int     `mapstructure:"min_engagement_score" json:"min_engagement_score,omitempty"`
	MaxEngagementScore    *int     `mapstructure:"max_engagement_score" json:"max_engagement_score,omitempty"`
	MinAge                *int     `mapstructure:"min_age" json:"min_age,omitempty"`
	MaxAge                *int     `mapstructure:"max_age" json:"max_age,omitempty"`
	Location              *string  `mapstructure:"location" json:"location,omitempty"`
	Industry              *string  `mapstructure:"industry" json:"industry,omitempty"`
	CompanySize           *string  `mapstructure:"company_size" json:"company_size,omitempty"`
	MarketingConsent      *bool    `mapstructure:"marketing_consent" json:"marketing_consent,omitempty"`
	TotalPurchases        *int     `mapstructure:"total_purchases" json:"total_purchases,omitempty"`
	MinTotalPurchases     *int     `mapstructure:"min_total_purchases" json:"min_total_purchases,omitempty"`
	MaxTotalPurchases     *int     `mapstructure:"max_total_purchases" json:"max_total_purchases,omitempty"`
	DaysSinceLastActivity *int     `mapstructure:"days_since_last_activity" json:"days_since_last_activity,omitempty"`
	DaysSinceRegistration *int     `mapstructure:"days_since_registration" json:"days_since_registration,omitempty"`
	CreatedWithinDays     *int     `mapstructure:"created_within_days" json:"created_within_days,omitempty"`
}

// Empty informa se nenhum predicado foi definido
func (c SegmentCriteria) Empty() bool {
	return c == (SegmentCriteria{})
}

// ParseCriteria decodifica o JSON de critérios em predicados tipados.
// Chaves desconhecidas são toleradas e devolvidas para que o chamador
// possa registrá-las em log.
func ParseCriteria(raw json.RawMessage) (*SegmentCriteria, []string, error) {
	if len(raw) == 0 {
		return &SegmentCriteria{}, nil, nil
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, nil, err
	}

	criteria := &SegmentCriteria{}
	metadata := &mapstructure.Metadata{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           criteria,
		Metadata:         metadata,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := decoder.Decode(asMap); err != nil {
		return nil, nil, err
	}

	return criteria, metadata.Unused, nil
}

// CustomerSegment é a associação explícita cliente/segmento; a chave primária
// composta torna a reatribuição idempotente
type CustomerSegment struct {
	CustomerID   int64     `json:"customer_id"`
	SegmentID    int64     `json:"segment_id"`
	AutoAssigned bool      `json:"auto_assigned"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// TriggerType identifica o evento observado que dispara uma regra de segmento
type TriggerType string

const (
	TriggerPurchase     TriggerType = "PURCHASE"
	TriggerInactivity   TriggerType = "INACTIVITY"
	TriggerRegistration TriggerType = "REGISTRATION"
	TriggerEmailOpen    TriggerType = "EMAIL_OPEN"
	TriggerPageView     TriggerType = "PAGE_VIEW"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerPurchase, TriggerInactivity, TriggerRegistration, TriggerEmailOpen, TriggerPageView:
		return true
	}
	return false
}

// TriggerAction é a ação aplicada à associação de segmento
type TriggerAction string

const (
	TriggerActionAdd    TriggerAction = "ADD"
	TriggerActionRemove TriggerAction = "REMOVE"
)

func (a TriggerAction) Valid() bool {
	return a == TriggerActionAdd || a == TriggerActionRemove
}

// SegmentTrigger é uma regra declarativa vinculada a um segmento; é avaliada
// externamente, nunca se auto-executa
type SegmentTrigger struct {
	ID          int64           `json:"trigger_id"`
	SegmentID   int64           `json:"segment_id"`
	TriggerType TriggerType     `json:"trigger_type"`
	Condition   json.RawMessage `json:"condition"`
	Action      TriggerAction   `json:"action"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SegmentStatistics resume os segmentos ativos com suas contagens dinâmicas
type SegmentStatistics struct {
	TotalSegments int                 `json:"total_segments"`
	Segments      []*SegmentWithCount `json:"segments"`
}
