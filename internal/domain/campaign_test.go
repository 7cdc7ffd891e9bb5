package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    CampaignStatus
		to      CampaignStatus
		allowed bool
	}{
		{"Rascunho pode ser agendado", CampaignStatusDraft, CampaignStatusScheduled, true},
		{"Rascunho pode ser ativado direto", CampaignStatusDraft, CampaignStatusActive, true},
		{"Rascunho não pode ser pausado", CampaignStatusDraft, CampaignStatusPaused, false},
		{"Rascunho não pode ser concluído", CampaignStatusDraft, CampaignStatusCompleted, false},
		{"Agendada pode ser ativada", CampaignStatusScheduled, CampaignStatusActive, true},
		{"Agendada pode ser concluída", CampaignStatusScheduled, CampaignStatusCompleted, true},
		{"Agendada não pode voltar a rascunho", CampaignStatusScheduled, CampaignStatusDraft, false},
		{"Ativa pode ser pausada", CampaignStatusActive, CampaignStatusPaused, true},
		{"Ativa pode ser concluída", CampaignStatusActive, CampaignStatusCompleted, true},
		{"Ativa não pode voltar a agendada", CampaignStatusActive, CampaignStatusScheduled, false},
		{"Pausada pode ser retomada", CampaignStatusPaused, CampaignStatusActive, true},
		{"Pausada pode ser concluída", CampaignStatusPaused, CampaignStatusCompleted, true},
		{"Concluída não pode ser reativada", CampaignStatusCompleted, CampaignStatusActive, false},
		{"Concluída não pode ser pausada", CampaignStatusCompleted, CampaignStatusPaused, false},
		{"Concluída não pode voltar a rascunho", CampaignStatusCompleted, CampaignStatusDraft, false},
		{"Transição para o mesmo estado não é permitida", CampaignStatusActive, CampaignStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestCampaignTypeValid(t *testing.T) {
	assert.True(t, CampaignTypeEmail.Valid())
	assert.True(t, CampaignTypeSMS.Valid())
	assert.True(t, CampaignTypeSocial.Valid())
	assert.True(t, CampaignTypeAd.Valid())
	assert.False(t, CampaignType("push").Valid())
}

func TestActionTypeValid(t *testing.T) {
	assert.True(t, ActionSendEmail.Valid())
	assert.True(t, ActionAddToSegment.Valid())
	assert.False(t, ActionType("NOTIFY_SLACK").Valid())
}
