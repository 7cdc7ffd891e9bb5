package campaigning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

func TestRenderContent(t *testing.T) {
	attrs := &domain.CustomerAttributes{
		Customer: domain.Customer{
			ID:        42,
			Email:     "maria.santos@vision.com.br",
			FirstName: "Maria",
			LastName:  "Santos",
		},
		Location: stringPtr("Rio de Janeiro"),
	}

	tests := []struct {
		name      string
		content   string
		overrides map[string]string
		expected  string
	}{
		{
			name:     "Tokens de atributos são substituídos",
			content:  "Olá {{first_name}} {{last_name}}!",
			expected: "Olá Maria Santos!",
		},
		{
			name:     "Tokens sem valor permanecem intactos",
			content:  "Seu cupom: {{coupon_code}}",
			expected: "Seu cupom: {{coupon_code}}",
		},
		{
			name:     "Espaços dentro do token são tolerados",
			content:  "Oi {{ first_name }}, tudo bem?",
			expected: "Oi Maria, tudo bem?",
		},
		{
			name:      "Campos de personalização do template têm precedência",
			content:   "Olá {{first_name}}, seu nível é {{tier}}",
			overrides: map[string]string{"first_name": "Cliente", "tier": "VIP"},
			expected:  "Olá Cliente, seu nível é VIP",
		},
		{
			name:     "Nome completo é derivado dos atributos",
			content:  "{{full_name}} <{{email}}>",
			expected: "Maria Santos <maria.santos@vision.com.br>",
		},
		{
			name:     "Conteúdo sem tokens não é alterado",
			content:  "Mensagem fixa sem personalização",
			expected: "Mensagem fixa sem personalização",
		},
		{
			name:     "Localização opcional é resolvida quando presente",
			content:  "Novidades para {{location}}",
			expected: "Novidades para Rio de Janeiro",
		},
		{
			name:      "Interesse dominante é resolvido via valores derivados",
			content:   "{{first_name}}, veja as ofertas de {{top_interest}}",
			overrides: map[string]string{"top_interest": "eletrônicos"},
			expected:  "Maria, veja as ofertas de eletrônicos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderContent(tt.content, attrs, tt.overrides)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRenderContentNilAttributes(t *testing.T) {
	result := RenderContent("Olá {{first_name}}", nil, map[string]string{"tier": "VIP"})

	// Sem atributos só os campos do template resolvem
	assert.Equal(t, "Olá {{first_name}}", result)
}

func stringPtr(s string) *string {
	return &s
}
