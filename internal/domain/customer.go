package domain

import (
	"time"
)

// Customer representa a identidade de um cliente no CRM
type Customer struct {
	ID               int64      `json:"customer_id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Phone            *string    `json:"phone,omitempty"`
	MarketingConsent bool       `json:"marketing_consent"`
	ConsentDate      *time.Time `json:"consent_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	LastActivityAt   *time.Time `json:"last_activity_at,omitempty"`
}

// CustomerProfile agrega o histórico de compras e dados demográficos (1:1 com Customer)
type CustomerProfile struct {
	CustomerID           int64      `json:"customer_id"`
	PurchaseHistoryValue float64    `json:"purchase_history_value"`
	TotalPurchases       int        `json:"total_purchases"`
	LastPurchaseDate     *time.Time `json:"last_purchase_date,omitempty"`
	AvgOrderValue        *float64   `json:"avg_order_value,omitempty"`
	EngagementScore      int        `json:"engagement_score"`
	DateOfBirth          *time.Time `json:"date_of_birth,omitempty"`
	Location             *string    `json:"location,omitempty"`
	Industry             *string    `json:"industry,omitempty"`
	CompanySize          *string    `json:"company_size,omitempty"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// InterestLevel é o nível de interesse declarado em uma categoria de produto
type InterestLevel string

const (
	InterestHigh   InterestLevel = "high"
	InterestMedium InterestLevel = "medium"
	InterestLow    InterestLevel = "low"
)

// Valid informa se o nível de interesse é reconhecido
func (l InterestLevel) Valid() bool {
	switch l {
	case InterestHigh, InterestMedium, InterestLow:
		return true
	}
	return false
}

// CustomerInterest registra o interesse de um cliente em uma categoria de produto
type CustomerInterest struct {
	ID                  int64         `json:"interest_id"`
	CustomerID          int64         `json:"customer_id"`
	ProductCategory     string        `json:"product_category"`
	InterestLevel       InterestLevel `json:"interest_level"`
	InteractionCount    int           `json:"interaction_count"`
	LastInteractionDate *time.Time    `json:"last_interaction_date,omitempty"`
}

// CustomerAttributes é a visão achatada (cliente + perfil) usada na avaliação
// de critérios de segmento; a idade é derivada no momento da consulta.
type CustomerAttributes struct {
	Customer
	PurchaseHistoryValue float64    `json:"purchase_history_value"`
	TotalPurchases       int        `json:"total_purchases"`
	LastPurchaseDate     *time.Time `json:"last_purchase_date,omitempty"`
	AvgOrderValue        *float64   `json:"avg_order_value,omitempty"`
	EngagementScore      int        `json:"engagement_score"`
	DateOfBirth          *time.Time `json:"date_of_birth,omitempty"`
	Location             *string    `json:"location,omitempty"`
	Industry             *string    `json:"industry,omitempty"`
	CompanySize          *string    `json:"company_size,omitempty"`
	Age                  *int       `json:"age,omitempty"`
}

// CustomerFilters define os filtros suportados na listagem de clientes
type CustomerFilters struct {
	Location           *string
	Industry           *string
	CompanySize        *string
	MinAge             *int
	MaxAge             *int
	MinPurchaseValue   *float64
	MaxPurchaseValue   *float64
	MinEngagementScore *int
	MaxEngagementScore *int
	MarketingConsent   *bool
}

// Empty informa se nenhum filtro foi aplicado
func (f CustomerFilters) Empty() bool {
	return f.Location == nil && f.Industry == nil && f.CompanySize == nil &&
		f.MinAge == nil && f.MaxAge == nil &&
		f.MinPurchaseValue == nil && f.MaxPurchaseValue == nil &&
		f.MinEngagementScore == nil && f.MaxEngagementScore == nil &&
		f.MarketingConsent == nil
}

// SearchableCustomerFields são os campos pesquisáveis por texto livre
var SearchableCustomerFields = []string{"email", "first_name", "last_name", "location", "industry"}
