package segmenting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

func TestMatches(t *testing.T) {
	// Data de referência fixa para critérios temporais
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		criteria string
		attrs    *domain.CustomerAttributes
		expected bool
	}{
		{
			name:     "Cliente de alto valor deve satisfazer os dois limiares",
			criteria: `{"min_purchase_value": 20000, "min_engagement_score": 90}`,
			attrs: &domain.CustomerAttributes{
				PurchaseHistoryValue: 22000,
				EngagementScore:      95,
			},
			expected: true,
		},
		{
			name:     "Valor de compra acima mas engajamento abaixo não satisfaz",
			criteria: `{"min_purchase_value": 20000, "min_engagement_score": 90}`,
			attrs: &domain.CustomerAttributes{
				PurchaseHistoryValue: 22000,
				EngagementScore:      85,
			},
			expected: false,
		},
		{
			name:     "Engajamento acima mas valor de compra abaixo não satisfaz",
			criteria: `{"min_purchase_value": 20000, "min_engagement_score": 90}`,
			attrs: &domain.CustomerAttributes{
				PurchaseHistoryValue: 18000,
				EngagementScore:      95,
			},
			expected: false,
		},
		{
			name:     "Valores exatamente no limiar satisfazem",
			criteria: `{"min_purchase_value": 20000, "min_engagement_score": 90}`,
			attrs: &domain.CustomerAttributes{
				PurchaseHistoryValue: 20000,
				EngagementScore:      90,
			},
			expected: true,
		},
		{
			name:     "Critérios vazios aceitam qualquer cliente",
			criteria: `{}`,
			attrs:    &domain.CustomerAttributes{},
			expected: true,
		},
		{
			name:     "Chaves desconhecidas não restringem a avaliação",
			criteria: `{"min_engagement_score": 50, "favorite_color": "azul"}`,
			attrs: &domain.CustomerAttributes{
				EngagementScore: 60,
			},
			expected: true,
		},
		{
			name:     "Faixa etária usa a idade derivada da data de nascimento",
			criteria: `{"min_age": 30, "max_age": 40}`,
			attrs: &domain.CustomerAttributes{
				DateOfBirth: timePtr(time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC)),
			},
			expected: true,
		},
		{
			name:     "Cliente sem data de nascimento não satisfaz critério etário",
			criteria: `{"min_age": 30}`,
			attrs:    &domain.CustomerAttributes{},
			expected: false,
		},
		{
			name:     "Localização compara por substring sem diferenciar maiúsculas",
			criteria: `{"location": "são paulo"}`,
			attrs: &domain.CustomerAttributes{
				Location: stringPtr("São Paulo - Zona Sul"),
			},
			expected: true,
		},
		{
			name:     "Porte da empresa exige igualdade exata",
			criteria: `{"company_size": "51-200"}`,
			attrs: &domain.CustomerAttributes{
				CompanySize: stringPtr("11-50"),
			},
			expected: false,
		},
		{
			name:     "Inatividade usa a última atividade quando presente",
			criteria: `{"days_since_last_activity": 60}`,
			attrs: &domain.CustomerAttributes{
				Customer: domain.Customer{
					CreatedAt:      now.AddDate(0, 0, -400),
					LastActivityAt: timePtr(now.AddDate(0, 0, -90)),
				},
			},
			expected: true,
		},
		{
			name:     "Cliente ativo recentemente não é considerado inativo",
			criteria: `{"days_since_last_activity": 60}`,
			attrs: &domain.CustomerAttributes{
				Customer: domain.Customer{
					CreatedAt:      now.AddDate(0, 0, -400),
					LastActivityAt: timePtr(now.AddDate(0, 0, -10)),
				},
			},
			expected: false,
		},
		{
			name:     "Sem última atividade a inatividade cai para a data de cadastro",
			criteria: `{"days_since_last_activity": 60}`,
			attrs: &domain.CustomerAttributes{
				Customer: domain.Customer{
					CreatedAt: now.AddDate(0, 0, -90),
				},
			},
			expected: true,
		},
		{
			name:     "Lead novo satisfaz a janela de cadastro recente",
			criteria: `{"created_within_days": 30, "total_purchases": 0}`,
			attrs: &domain.CustomerAttributes{
				Customer: domain.Customer{
					CreatedAt: now.AddDate(0, 0, -10),
				},
				TotalPurchases: 0,
			},
			expected: true,
		},
		{
			name:     "Cadastro antigo não satisfaz a janela de cadastro recente",
			criteria: `{"created_within_days": 30}`,
			attrs: &domain.CustomerAttributes{
				Customer: domain.Customer{
					CreatedAt: now.AddDate(0, 0, -45),
				},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, _, err := domain.ParseCriteria(json.RawMessage(tt.criteria))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, Matches(criteria, tt.attrs, now))
		})
	}
}

func TestMatchesNilInputs(t *testing.T) {
	now := time.Now()

	assert.False(t, Matches(nil, &domain.CustomerAttributes{}, now))
	assert.False(t, Matches(&domain.SegmentCriteria{}, nil, now))
}

func TestParseCriteriaUnknownKeys(t *testing.T) {
	criteria, unknown, err := domain.ParseCriteria(
		json.RawMessage(`{"min_purchase_value": 100, "vip_tier": "gold"}`))

	assert.NoError(t, err)
	assert.Equal(t, []string{"vip_tier"}, unknown)
	assert.Equal(t, 100.0, *criteria.MinPurchaseValue)
}

func TestParseCriteriaInvalidJSON(t *testing.T) {
	_, _, err := domain.ParseCriteria(json.RawMessage(`{"min_purchase_value":`))

	assert.Error(t, err)
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
