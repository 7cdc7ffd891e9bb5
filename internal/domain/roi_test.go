package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeROIPercentage(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		cost     float64
		expected float64
	}{
		{"Receita acima do custo gera ROI positivo", 5000, 1000, 400},
		{"Receita abaixo do custo gera ROI negativo", 500, 1000, -50},
		{"Receita igual ao custo gera ROI zero", 1000, 1000, 0},
		{"Custo zero produz ROI zero, nunca infinito", 5000, 0, 0},
		{"Custo negativo também produz ROI zero", 5000, -10, 0},
		{"Resultado é arredondado em duas casas", 1000, 300, 233.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeROIPercentage(tt.revenue, tt.cost))
		})
	}
}
